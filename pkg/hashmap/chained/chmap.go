package chained

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
var ErrInvalidCapacity = errors.New("chained: capacity must be a positive integer")

// entry is a key value pair that is found in each bucket
type entry struct {
	key keyType
	val valType
}

// entryNode is a node in part of our linked list
type entryNode struct {
	entry
	next *entryNode
}

// bucket represents a single slot in the HashMap table. Its chain holds
// every entry whose key reduces to this slot, newest first.
type bucket struct {
	head *entryNode
}

// insert prepends a new entry node to the chain. It never searches for an
// existing key, so inserting the same key twice leaves two nodes in the
// chain with the newer one closer to the head.
func (b *bucket) insert(key keyType, val valType) {
	b.head = &entryNode{
		entry: entry{
			key: key,
			val: val,
		},
		next: b.head,
	}
}

// search walks the chain head to tail and returns the first entry whose key
// matches. With duplicate keys in the chain the newest one sits closest to
// the head, so the most recently inserted value wins.
func (b *bucket) search(key keyType) (valType, bool) {
	current := b.head
	for current != nil {
		if current.entry.key == key {
			return current.entry.val, true
		}
		current = current.next
	}
	return valZeroType, false
}

func (b *bucket) scan(it Iterator) {
	current := b.head
	for current != nil {
		if !it(current.entry.key, current.entry.val) {
			return
		}
		current = current.next
	}
}

// release unlinks every node in the chain
func (b *bucket) release() {
	current := b.head
	for current != nil {
		next := current.next
		current.next = nil
		current = next
	}
	b.head = nil
}

// SlotFunc maps a key to a slot index in [0, capacity). Implementations must
// stay in range for any capacity they are handed.
type SlotFunc func(key keyType, capacity int) int

// defaultSlotFunc is the plain modulo reduction. This is here mainly as a
// convenience for NewFunc callers passing nil.
func defaultSlotFunc(key keyType, capacity int) int {
	return modular.Index(key, capacity)
}

// HashMap represents a separate chaining hashtable implementation. Capacity
// is fixed at construction for the lifetime of the map; collisions grow the
// chains instead of the table, so load may exceed 1.0 under skew.
type HashMap struct {
	slot  SlotFunc
	keys  uint
	slots []bucket
}

// New returns a HashMap with exactly capacity slots.
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
	return &HashMap{
		slot:  slot,
		keys:  0,
		slots: make([]bucket, capacity),
	}, nil
}

// Put inserts a key value entry at the head of its slot's chain. Duplicate
// keys are not rejected; the newer entry shadows the older ones on lookup
// while both remain in the chain and both count toward Len.
func (m *HashMap) Put(key keyType, value valType) {
	// reduce the key to get the slot index
	i := m.slot(key, len(m.slots))
	// prepend to the chain
	m.slots[i].insert(key, value)
	m.keys++
}

// Get returns the value stored for key, or false when the key is absent.
func (m *HashMap) Get(key keyType) (valType, bool) {
	// reduce the key to get the slot index
	i := m.slot(key, len(m.slots))
	// check if the chain is empty
	if m.slots[i].head == nil {
		return valZeroType, false
	}
	// not empty, lets look for it in the list
	return m.slots[i].search(key)
}

// Iterator is an iterator function type
type Iterator func(key keyType, value valType) bool

// Range takes an Iterator and ranges the HashMap as long as the iterator
// function continues to be true. Range is not safe to perform an insert
// while ranging!
func (m *HashMap) Range(it Iterator) {
	for i := 0; i < len(m.slots); i++ {
		m.slots[i].scan(it)
	}
}

// PercentFull returns the current load factor of the HashMap. With a fixed
// capacity this has no ceiling.
func (m *HashMap) PercentFull() float64 {
	return float64(m.keys) / float64(len(m.slots))
}

// Len returns the number of entries currently in the HashMap, counting
// duplicates separately.
func (m *HashMap) Len() int {
	return int(m.keys)
}

// Cap returns the slot count of the HashMap.
func (m *HashMap) Cap() int {
	return len(m.slots)
}

// Close releases every chain and the slot array. Calling any method on the
// HashMap after this will most likely result in a panic
func (m *HashMap) Close() {
	for i := range m.slots {
		m.slots[i].release()
	}
	m.slots = nil
	m.keys = 0
}
