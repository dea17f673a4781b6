package model

import "errors"

// Sentinel errors shared by the builder, the re-weighter and the input
// collaborators.  Callers detect them via errors.Is.
var (
	// ErrUnknownPerson is returned when a person has no position in the
	// priority order.
	ErrUnknownPerson = errors.New("person not in priority order")

	// ErrDuplicatePerson is returned when a person appears twice in the
	// priority order or in the preferences.
	ErrDuplicatePerson = errors.New("duplicate person")

	// ErrMalformedPreference is returned for preference lists that cannot be
	// accepted, for example when they exceed the ranking bound.
	ErrMalformedPreference = errors.New("malformed preference list")

	// ErrInconsistentAllocation is returned when an allocation assigns a
	// person an item outside of their preference list.
	ErrInconsistentAllocation = errors.New("inconsistent allocation")
)
