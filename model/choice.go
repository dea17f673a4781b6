package model

// Choice states that a person's preference list includes an item.
type Choice struct {
	Person Person `json:"person" yaml:"person"`
	Item   Item   `json:"item" yaml:"item"`
}

// ChoiceLevel holds the choices of a single preference rank ordered by
// priority.
type ChoiceLevel []Choice

// Without returns a new level without choices touching person or item.  The
// receiver is left untouched.
func (l ChoiceLevel) Without(person Person, item Item) ChoiceLevel {
	return l.Filter(func(c Choice) bool {
		return c.Person != person && c.Item != item
	})
}

// Filter returns a new level with the choices accepted by keep.
func (l ChoiceLevel) Filter(keep func(Choice) bool) ChoiceLevel {
	ret := make(ChoiceLevel, 0, len(l))
	for _, choice := range l {
		if keep(choice) {
			ret = append(ret, choice)
		}
	}
	return ret
}

// ChoiceLevels is the ordered sequence of levels, index 0 holds first choices.
type ChoiceLevels []ChoiceLevel

// Clone returns a deep copy.
func (l ChoiceLevels) Clone() ChoiceLevels {
	ret := make(ChoiceLevels, len(l))
	for i, level := range l {
		ret[i] = append(ChoiceLevel{}, level...)
	}
	return ret
}

// Len returns the total number of choices across all levels.
func (l ChoiceLevels) Len() int {
	ret := 0
	for _, level := range l {
		ret += len(level)
	}
	return ret
}
