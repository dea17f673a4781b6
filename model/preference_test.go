package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPreferences_Validate(t *testing.T) {
	testCases := []struct {
		description string
		preferences Preferences
		maxRanking  int
		expectErr   error
	}{
		{
			description: "valid lists of varying length",
			preferences: Preferences{
				{Person: "ty", Items: []Item{"1", "2", "3"}},
				{Person: "helene", Items: []Item{"1"}},
				{Person: "alex"},
			},
			maxRanking: 6,
		},
		{
			description: "list over the bound",
			preferences: Preferences{
				{Person: "ty", Items: []Item{"1", "2", "3"}},
			},
			maxRanking: 2,
			expectErr:  ErrMalformedPreference,
		},
		{
			description: "bound disabled",
			preferences: Preferences{
				{Person: "ty", Items: []Item{"1", "2", "3", "4", "5", "6", "7"}},
			},
		},
		{
			description: "duplicate person",
			preferences: Preferences{
				{Person: "ty", Items: []Item{"1"}},
				{Person: "ty", Items: []Item{"2"}},
			},
			expectErr: ErrDuplicatePerson,
		},
		{
			description: "blank person",
			preferences: Preferences{
				{Items: []Item{"1"}},
			},
			expectErr: ErrMalformedPreference,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			err := tc.preferences.Validate(tc.maxRanking)
			if tc.expectErr != nil {
				assert.True(t, errors.Is(err, tc.expectErr), err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestPreferences_Lookups(t *testing.T) {
	preferences := Preferences{
		{Person: "ty", Items: []Item{"1", "2", "3"}},
		{Person: "alex", Items: []Item{"2"}},
	}
	assert.Equal(t, []Person{"ty", "alex"}, preferences.Persons())
	assert.Equal(t, 3, preferences.MaxLength())

	pref, ok := preferences.Lookup("ty")
	assert.True(t, ok)
	assert.Equal(t, 1, pref.Rank("2"))
	assert.Equal(t, -1, pref.Rank("9"))

	_, ok = preferences.Lookup("nobody")
	assert.False(t, ok)
	assert.Equal(t, 0, Preferences{}.MaxLength())
}

func TestPriorityOrder_Ranks(t *testing.T) {
	ranks, err := PriorityOrder{"ty", "helene", "alex"}.Ranks()
	assert.NoError(t, err)

	rank, err := ranks.Of("alex")
	assert.NoError(t, err)
	assert.Equal(t, 2, rank)

	_, err = ranks.Of("dominique")
	assert.True(t, errors.Is(err, ErrUnknownPerson))

	_, err = PriorityOrder{"ty", "helene", "ty"}.Ranks()
	assert.True(t, errors.Is(err, ErrDuplicatePerson))
}
