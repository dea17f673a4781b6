package model

import "fmt"

type (
	// Person identifies a participant requesting an item.
	Person string

	// Item identifies a unique good being allocated.
	Item string
)

// Preference holds a person's items ordered by decreasing desirability,
// index 0 being the most preferred.
type Preference struct {
	Person Person `json:"person" yaml:"person"`
	Items  []Item `json:"items,omitempty" yaml:"items,omitempty"`
}

// Rank returns the 0-based position of item in the preference list or -1.
func (p *Preference) Rank(item Item) int {
	for i, candidate := range p.Items {
		if candidate == item {
			return i
		}
	}
	return -1
}

// Preferences is the full preference input of a run, in source order.
type Preferences []*Preference

// Persons returns the persons in source order.
func (p Preferences) Persons() []Person {
	ret := make([]Person, 0, len(p))
	for _, pref := range p {
		ret = append(ret, pref.Person)
	}
	return ret
}

// Lookup returns the preference of the supplied person.
func (p Preferences) Lookup(person Person) (*Preference, bool) {
	for _, pref := range p {
		if pref.Person == person {
			return pref, true
		}
	}
	return nil, false
}

// MaxLength returns the length of the longest preference list.
func (p Preferences) MaxLength() int {
	ret := 0
	for _, pref := range p {
		if len(pref.Items) > ret {
			ret = len(pref.Items)
		}
	}
	return ret
}

// Validate checks person uniqueness and, when maxRanking is positive, that no
// list is longer than maxRanking.
func (p Preferences) Validate(maxRanking int) error {
	seen := make(map[Person]bool, len(p))
	for i, pref := range p {
		if pref == nil {
			return fmt.Errorf("%w: entry %d is nil", ErrMalformedPreference, i)
		}
		if pref.Person == "" {
			return fmt.Errorf("%w: entry %d has no person", ErrMalformedPreference, i)
		}
		if seen[pref.Person] {
			return fmt.Errorf("%w: %v in preferences", ErrDuplicatePerson, pref.Person)
		}
		seen[pref.Person] = true
		if maxRanking > 0 && len(pref.Items) > maxRanking {
			return fmt.Errorf("%w: %v ranked %d items, at most %d allowed", ErrMalformedPreference, pref.Person, len(pref.Items), maxRanking)
		}
	}
	return nil
}
