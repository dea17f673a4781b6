package allocator

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/viant/guitarfest/model"
)

// BuildChoiceLevels returns one level per preference rank.  Level i holds the
// i-th choice of every person ranking at least i+1 items, ordered by the
// person's position in order.  Every person with a preference must be in
// order.
func BuildChoiceLevels(preferences model.Preferences, order model.PriorityOrder) (model.ChoiceLevels, error) {
	ranks, err := order.Ranks()
	if err != nil {
		return nil, err
	}
	ordered, err := byPriority(preferences, ranks)
	if err != nil {
		return nil, err
	}

	depth := preferences.MaxLength()
	levels := make(model.ChoiceLevels, depth)
	for i := 0; i < depth; i++ {
		level := model.ChoiceLevel{}
		for _, pref := range ordered {
			if len(pref.Items) > i {
				level = append(level, model.Choice{Person: pref.Person, Item: pref.Items[i]})
			}
		}
		levels[i] = level
	}
	return levels, nil
}

// byPriority returns a copy of preferences sorted by rank.
func byPriority(preferences model.Preferences, ranks model.Ranks) (model.Preferences, error) {
	type ranked struct {
		rank int
		pref *model.Preference
	}
	seen := make(map[model.Person]bool, len(preferences))
	items := make([]ranked, 0, len(preferences))
	for _, pref := range preferences {
		if seen[pref.Person] {
			return nil, fmt.Errorf("%w: %v in preferences", model.ErrDuplicatePerson, pref.Person)
		}
		seen[pref.Person] = true
		rank, err := ranks.Of(pref.Person)
		if err != nil {
			return nil, err
		}
		items = append(items, ranked{rank: rank, pref: pref})
	}
	slices.SortFunc(items, func(a, b ranked) int { return cmp.Compare(a.rank, b.rank) })

	ret := make(model.Preferences, len(items))
	for i, item := range items {
		ret[i] = item.pref
	}
	return ret, nil
}
