// Package allocator owns the two-round allocation of items to persons.
//
// BuildChoiceLevels turns preferences and a priority order into per-rank
// choice levels, Allocate greedily consumes them into an injective
// allocation and PrepareRoundTwo re-weights the leftovers so that persons
// who fared worst in round one are served first in round two.  The three
// functions are pure; Service wires them together with tracing, progress
// reporting and logging.
package allocator
