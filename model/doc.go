// Package model contains the in-memory representation of an allocation run:
// persons, items, preference lists, the priority order, the per-rank choice
// levels derived from them and the allocations produced by each round.
//
// The types carry no behaviour beyond lookups, copies and structural
// validation.  The allocation algorithm itself lives in service/allocator.
package model
