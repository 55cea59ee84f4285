package hashtab

import (
	"github.com/davecrane/hashtab/pkg/hashmap/chained"
	"github.com/davecrane/hashtab/pkg/hashmap/openaddr"
)

// Table is the logical surface shared by both collision strategies. A Table
// is created with an explicit slot count, mutated only through Put, and torn
// down as a unit with Close. Lookup misses are reported through the boolean,
// never through a sentinel value; any int64, including -1, is a legitimate
// stored value.
type Table interface {
	Put(key, value int64)
	Get(key int64) (int64, bool)
	Len() int
	Cap() int
	Close()
}

var (
	_ Table = (*chained.HashMap)(nil)
	_ Table = (*openaddr.HashMap)(nil)
)
