package model

import "fmt"

// PriorityOrder is a total order over persons, earlier means higher priority.
type PriorityOrder []Person

// Ranks precomputes the position of every person.  A person listed twice
// makes the order unusable.
func (o PriorityOrder) Ranks() (Ranks, error) {
	ret := make(Ranks, len(o))
	for i, person := range o {
		if _, ok := ret[person]; ok {
			return nil, fmt.Errorf("%w: %v in priority order", ErrDuplicatePerson, person)
		}
		ret[person] = i
	}
	return ret, nil
}

// Ranks maps a person to its position in a PriorityOrder.
type Ranks map[Person]int

// Of returns the position of person; absence is an error, never a default.
func (r Ranks) Of(person Person) (int, error) {
	rank, ok := r[person]
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrUnknownPerson, person)
	}
	return rank, nil
}
