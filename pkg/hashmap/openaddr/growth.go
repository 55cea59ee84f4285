package openaddr

const (
	// DefaultLoadFactor is the occupancy ratio at which Put grows the table
	// before placing the next entry.
	DefaultLoadFactor = 0.70
	// DefaultGrowthFactor is the capacity multiplier applied on growth.
	DefaultGrowthFactor = 2
)

// growthPolicy decides when a table must grow and how big its replacement
// is. It is plain data carried by each HashMap, not package state.
type growthPolicy struct {
	loadFactor   float64
	growthFactor int
}

func defaultGrowthPolicy() growthPolicy {
	return growthPolicy{
		loadFactor:   DefaultLoadFactor,
		growthFactor: DefaultGrowthFactor,
	}
}

// threshold returns the key count at which a table of the given capacity
// must grow before accepting another entry. The threshold always sits below
// capacity, so a successful Put leaves at least one empty slot and every
// probe loop terminates.
func (p growthPolicy) threshold(capacity int) uint {
	return uint(p.loadFactor * float64(capacity))
}

// next returns the capacity of the replacement table.
func (p growthPolicy) next(capacity int) int {
	return capacity * p.growthFactor
}
