package util

import (
	"reflect"
	"testing"
)

// AssertExpected fails the test when expected and got are not deeply equal.
func AssertExpected(t *testing.T, expected, got interface{}) bool {
	t.Helper()
	if !reflect.DeepEqual(expected, got) {
		t.Errorf("error, expected: %v, got: %v\n", expected, got)
		return false
	}
	return true
}

func AssertTrue(t *testing.T, got bool) bool {
	t.Helper()
	return AssertExpected(t, true, got)
}

func AssertFalse(t *testing.T, got bool) bool {
	t.Helper()
	return AssertExpected(t, false, got)
}

func AssertNoError(t *testing.T, err error) bool {
	t.Helper()
	if err != nil {
		t.Errorf("error, expected no error, got: %v\n", err)
		return false
	}
	return true
}

func AssertError(t *testing.T, err error) bool {
	t.Helper()
	if err == nil {
		t.Errorf("error, expected an error, got nil\n")
		return false
	}
	return true
}
