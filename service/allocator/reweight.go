package allocator

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/viant/guitarfest/model"
	"github.com/viant/guitarfest/policy"
)

// unmatchedWeight ranks persons left without an item ahead of any real
// preference rank.
const unmatchedWeight = math.MaxInt

// PrepareRoundTwo removes the exact pairs won in round one from levels and
// re-sorts each surviving level so that unmatched persons come first,
// followed by matched persons in decreasing rank of the item they received.
// Ties keep their round-one order.
func PrepareRoundTwo(levels model.ChoiceLevels, roundOne model.Allocation, preferences model.Preferences) (model.ChoiceLevels, error) {
	return prepareRoundTwo(levels, roundOne, preferences, policy.ScopeWinningPairs)
}

func prepareRoundTwo(levels model.ChoiceLevels, roundOne model.Allocation, preferences model.Preferences, scope string) (model.ChoiceLevels, error) {
	weights, err := roundTwoWeights(roundOne, preferences)
	if err != nil {
		return nil, err
	}
	keep, err := survivorFilter(roundOne, scope)
	if err != nil {
		return nil, err
	}

	ret := make(model.ChoiceLevels, len(levels))
	for i, level := range levels {
		surviving := level.Filter(keep)
		for _, choice := range surviving {
			if _, ok := weights[choice.Person]; !ok {
				return nil, fmt.Errorf("%w: %v has no preference", model.ErrUnknownPerson, choice.Person)
			}
		}
		slices.SortStableFunc(surviving, func(a, b model.Choice) int {
			return cmp.Compare(weights[b.Person], weights[a.Person])
		})
		ret[i] = surviving
	}
	return ret, nil
}

// roundTwoWeights returns, per person, the rank of the item received in
// round one or unmatchedWeight.
func roundTwoWeights(roundOne model.Allocation, preferences model.Preferences) (map[model.Person]int, error) {
	weights := make(map[model.Person]int, len(preferences))
	for _, pref := range preferences {
		item, ok := roundOne[pref.Person]
		if !ok {
			weights[pref.Person] = unmatchedWeight
			continue
		}
		rank := pref.Rank(item)
		if rank < 0 {
			return nil, fmt.Errorf("%w: %v received %v outside of their preferences", model.ErrInconsistentAllocation, pref.Person, item)
		}
		weights[pref.Person] = rank
	}
	for person := range roundOne {
		if _, ok := weights[person]; !ok {
			return nil, fmt.Errorf("%w: %v has no preference", model.ErrInconsistentAllocation, person)
		}
	}
	return weights, nil
}

func survivorFilter(roundOne model.Allocation, scope string) (func(model.Choice) bool, error) {
	switch scope {
	case policy.ScopeWinningPairs:
		return func(c model.Choice) bool {
			item, ok := roundOne[c.Person]
			return !ok || item != c.Item
		}, nil
	case policy.ScopeClaimed:
		claimed := make(map[model.Item]bool, len(roundOne))
		for _, item := range roundOne {
			claimed[item] = true
		}
		return func(c model.Choice) bool {
			_, matched := roundOne[c.Person]
			return !matched && !claimed[c.Item]
		}, nil
	}
	return nil, fmt.Errorf("unsupported round two scope: %q", scope)
}
