package openaddr

import (
	"github.com/davecrane/hashtab/pkg/hash/modular"
	"github.com/pkg/errors"
)

// user specified key and value types
type keyType = int64
type valType = int64

var valZeroType = *new(valType)

// ErrInvalidCapacity is returned by the constructors when asked for a table
// with fewer than one slot.
var ErrInvalidCapacity = errors.New("openaddr: capacity must be a positive integer")

// entry is a key value pair occupying a single slot
type entry struct {
	key keyType
	val valType
}

// bucket represents a single slot in the HashMap table. A slot only ever
// moves from empty to occupied; with no delete there are no tombstones.
type bucket struct {
	occupied bool
	entry
}

// SlotFunc maps a key to a slot index in [0, capacity). Implementations must
// stay in range for any capacity they are handed.
type SlotFunc func(key keyType, capacity int) int

// defaultSlotFunc is the plain modulo reduction. This is here mainly as a
// convenience for NewFunc callers passing nil.
func defaultSlotFunc(key keyType, capacity int) int {
	return modular.Index(key, capacity)
}

// HashMap represents an open addressing hashtable using linear probing.
// Unlike the chained variant it grows itself: once occupancy reaches the
// load factor threshold the next Put rebuilds the table at double the
// capacity before placing its entry.
type HashMap struct {
	slot   SlotFunc
	policy growthPolicy
	expand uint
	keys   uint
	slots  []bucket
}

// New returns a HashMap with capacity slots and the default growth policy.
func New(capacity int) (*HashMap, error) {
	return NewFunc(capacity, defaultSlotFunc)
}

// NewFunc is the slot-function-injecting variant of New. A nil slot function
// falls back to plain modulo.
func NewFunc(capacity int, slot SlotFunc) (*HashMap, error) {
	if capacity < 1 {
		return nil, errors.Wrapf(ErrInvalidCapacity, "got %d", capacity)
	}
	if slot == nil {
		slot = defaultSlotFunc
	}
	return newHashMap(capacity, slot, defaultGrowthPolicy()), nil
}

// newHashMap assumes its arguments have already been validated
func newHashMap(capacity int, slot SlotFunc, policy growthPolicy) *HashMap {
	return &HashMap{
		slot:   slot,
		policy: policy,
		expand: policy.threshold(capacity),
		keys:   0,
		slots:  make([]bucket, capacity),
	}
}

// Put places the entry in the first empty slot on its key's probe sequence.
// The growth check runs before any slot is touched, so the table is never
// full and the probe loop always finds an empty slot. Duplicate keys are not
// rejected: a re-inserted key takes its own slot further down the sequence.
func (m *HashMap) Put(key keyType, value valType) {
	// check and see if we need to resize
	if m.keys >= m.expand {
		// if we do, then double the table size
		m.grow()
	}
	m.place(key, value)
}

// place is the probe-and-occupy path shared by Put and grow's re-insertion
// pass. It requires at least one empty slot in the table.
func (m *HashMap) place(key keyType, value valType) {
	// reduce the key to get the initial index
	i := m.slot(key, len(m.slots))
	// search the position linearly
	for m.slots[i].occupied {
		// keep on probing, wrapping at the end of the table
		i = (i + 1) % len(m.slots)
	}
	// we found a spot, insert the new entry
	m.slots[i] = bucket{
		occupied: true,
		entry: entry{
			key: key,
			val: value,
		},
	}
	m.keys++
}

// grow rebuilds the table at the next capacity, re-inserting every entry so
// each lands on its probe sequence under the new slot count. The rebuilt
// state is swapped into m in a single assignment, so the caller's handle
// never observes an intermediate table.
func (m *HashMap) grow() {
	newHM := newHashMap(m.policy.next(len(m.slots)), m.slot, m.policy)
	for i := 0; i < len(m.slots); i++ {
		if m.slots[i].occupied {
			newHM.place(m.slots[i].entry.key, m.slots[i].entry.val)
		}
	}
	*m = *newHM
}

// Get returns the value stored for key, or false when the key is absent.
// With duplicate keys in the table the first match on the probe sequence
// wins, which is the oldest insertion.
func (m *HashMap) Get(key keyType) (valType, bool) {
	// reduce the key to get the initial index, and remember it
	origin := m.slot(key, len(m.slots))
	i := origin
	// search the position linearly
	for m.slots[i].occupied {
		// check for a matching key
		if m.slots[i].entry.key == key {
			return m.slots[i].entry.val, true
		}
		// keep on probing, wrapping at the end of the table
		i = (i + 1) % len(m.slots)
		// coming full circle means every slot was occupied and none
		// matched; without this check a saturated table would loop forever
		if i == origin {
			break
		}
	}
	return valZeroType, false
}

// Iterator is an iterator function type
type Iterator func(key keyType, value valType) bool

// Range takes an Iterator and ranges the HashMap as long as the iterator
// function continues to be true. Range is not safe to perform an insert
// while ranging!
func (m *HashMap) Range(it Iterator) {
	for i := 0; i < len(m.slots); i++ {
		if !m.slots[i].occupied {
			continue
		}
		if !it(m.slots[i].key, m.slots[i].val) {
			return
		}
	}
}

// PercentFull returns the current load factor of the HashMap. Growth keeps
// it below the configured threshold across Put calls.
func (m *HashMap) PercentFull() float64 {
	return float64(m.keys) / float64(len(m.slots))
}

// Len returns the number of entries currently in the HashMap, counting
// duplicates separately.
func (m *HashMap) Len() int {
	return int(m.keys)
}

// Cap returns the current slot count of the HashMap.
func (m *HashMap) Cap() int {
	return len(m.slots)
}

// Close releases the slot array. Calling any method on the HashMap after
// this will most likely result in a panic
func (m *HashMap) Close() {
	m.slots = nil
	m.keys = 0
}
