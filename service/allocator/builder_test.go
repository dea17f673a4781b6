package allocator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/guitarfest/model"
)

func TestBuildChoiceLevels(t *testing.T) {
	testCases := []struct {
		description string
		preferences model.Preferences
		order       model.PriorityOrder
		expect      model.ChoiceLevels
		expectErr   error
	}{
		{
			description: "worked example",
			preferences: festPreferences(),
			order:       festOrder(),
			expect: model.ChoiceLevels{
				{{Person: "ty", Item: "1"}, {Person: "helene", Item: "1"}, {Person: "alex", Item: "2"}, {Person: "dominique", Item: "4"}},
				{{Person: "ty", Item: "2"}, {Person: "helene", Item: "2"}, {Person: "alex", Item: "3"}, {Person: "dominique", Item: "1"}},
				{{Person: "ty", Item: "3"}, {Person: "helene", Item: "4"}, {Person: "alex", Item: "4"}, {Person: "dominique", Item: "2"}},
			},
		},
		{
			description: "priority order differs from source order, short lists",
			preferences: model.Preferences{
				{Person: "a", Items: []model.Item{"x"}},
				{Person: "b", Items: []model.Item{"y", "x", "z"}},
				{Person: "c"},
			},
			order: model.PriorityOrder{"c", "b", "a", "extra"},
			expect: model.ChoiceLevels{
				{{Person: "b", Item: "y"}, {Person: "a", Item: "x"}},
				{{Person: "b", Item: "x"}},
				{{Person: "b", Item: "z"}},
			},
		},
		{
			description: "empty input",
			order:       model.PriorityOrder{},
			expect:      model.ChoiceLevels{},
		},
		{
			description: "person missing from order",
			preferences: festPreferences(),
			order:       model.PriorityOrder{"ty", "helene", "alex"},
			expectErr:   model.ErrUnknownPerson,
		},
		{
			description: "empty list still requires a position",
			preferences: model.Preferences{{Person: "a", Items: []model.Item{"x"}}, {Person: "b"}},
			order:       model.PriorityOrder{"a"},
			expectErr:   model.ErrUnknownPerson,
		},
		{
			description: "duplicate in order",
			preferences: festPreferences(),
			order:       model.PriorityOrder{"ty", "helene", "alex", "dominique", "ty"},
			expectErr:   model.ErrDuplicatePerson,
		},
		{
			description: "duplicate in preferences",
			preferences: model.Preferences{{Person: "a", Items: []model.Item{"x"}}, {Person: "a", Items: []model.Item{"y"}}},
			order:       model.PriorityOrder{"a"},
			expectErr:   model.ErrDuplicatePerson,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			actual, err := BuildChoiceLevels(tc.preferences, tc.order)
			if tc.expectErr != nil {
				assert.True(t, errors.Is(err, tc.expectErr), err)
				assert.Nil(t, actual)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expect, actual)
		})
	}
}

func TestBuildChoiceLevels_Idempotent(t *testing.T) {
	preferences, order := festPreferences(), festOrder()
	first, err := BuildChoiceLevels(preferences, order)
	assert.NoError(t, err)
	second, err := BuildChoiceLevels(preferences, order)
	assert.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, festPreferences(), preferences, "inputs must stay untouched")
	assert.Equal(t, festOrder(), order)
}
