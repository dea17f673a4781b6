// Package policy provides optional rules applied on top of an allocation run,
// the round-two removal scope and the preference ranking bound, without
// changing the allocator's defaults.
package policy
