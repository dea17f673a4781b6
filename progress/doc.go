// Package progress defines primitives for reporting the progress of an
// allocation run.  Counters travel with the context so that the allocator
// does not depend on how a caller consumes them.
package progress
