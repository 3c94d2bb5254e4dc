package model

import "sync"

// cellSetPool recycles live-cell sets so each generation advance reuses a
// previously retired map instead of allocating a fresh one.
var cellSetPool = sync.Pool{
	New: func() interface{} {
		return make(map[Cell]struct{})
	},
}

// newCellSet retrieves an empty set from the pool.
func newCellSet() map[Cell]struct{} {
	return cellSetPool.Get().(map[Cell]struct{})
}

// recycleCellSet clears a set and returns it to the pool.
func recycleCellSet(s map[Cell]struct{}) {
	for c := range s {
		delete(s, c)
	}
	cellSetPool.Put(s)
}
