package model

import "fmt"

// Allocation maps a person to the item they received in one round.  It is
// injective: no item is held by two persons.
type Allocation map[Person]Item

// Holder returns the person holding item.
func (a Allocation) Holder(item Item) (Person, bool) {
	for person, held := range a {
		if held == item {
			return person, true
		}
	}
	return "", false
}

// Validate checks injectivity.
func (a Allocation) Validate() error {
	holders := make(map[Item]Person, len(a))
	for person, item := range a {
		if other, ok := holders[item]; ok {
			return fmt.Errorf("%w: item %v held by both %v and %v", ErrInconsistentAllocation, item, other, person)
		}
		holders[item] = person
	}
	return nil
}

// Conforms checks that every assignment is drawn from the person's own
// preference list.
func (a Allocation) Conforms(preferences Preferences) error {
	for person, item := range a {
		pref, ok := preferences.Lookup(person)
		if !ok || pref.Rank(item) < 0 {
			return fmt.Errorf("%w: %v never ranked %v", ErrInconsistentAllocation, person, item)
		}
	}
	return nil
}
