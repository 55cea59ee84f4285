package modular

import (
	"testing"

	"github.com/davecrane/hashtab/pkg/util"
)

func TestIndex(t *testing.T) {
	util.AssertExpected(t, 0, Index(0, 10))
	util.AssertExpected(t, 5, Index(15, 10))
	util.AssertExpected(t, 5, Index(25, 10))
	util.AssertExpected(t, 0, Index(10, 10))
	util.AssertExpected(t, 1, Index(7, 3))
	util.AssertExpected(t, 0, Index(42, 1))
}

func TestIndex_NegativeKeys(t *testing.T) {
	// Go's % truncates toward zero, so raw remainders of negative keys are
	// non-positive; Index folds them back into [0, capacity)
	util.AssertExpected(t, 9, Index(-1, 10))
	util.AssertExpected(t, 0, Index(-10, 10))
	util.AssertExpected(t, 7, Index(-23, 10))
	for key := int64(-100); key < 0; key++ {
		i := Index(key, 7)
		util.AssertTrue(t, i >= 0 && i < 7)
	}
}

func TestMixedIndex(t *testing.T) {
	for key := int64(-512); key < 512; key++ {
		i := MixedIndex(key, 13)
		util.AssertTrue(t, i >= 0 && i < 13)
		// deterministic per key
		util.AssertExpected(t, i, MixedIndex(key, 13))
	}
}
