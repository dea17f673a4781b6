package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChoiceLevel_Without(t *testing.T) {
	level := ChoiceLevel{
		{Person: "ty", Item: "1"},
		{Person: "helene", Item: "1"},
		{Person: "alex", Item: "2"},
		{Person: "ty", Item: "3"},
	}
	actual := level.Without("ty", "1")
	assert.Equal(t, ChoiceLevel{{Person: "alex", Item: "2"}}, actual)
	assert.Len(t, level, 4, "receiver must stay untouched")
}

func TestChoiceLevels_Clone(t *testing.T) {
	levels := ChoiceLevels{
		{{Person: "ty", Item: "1"}},
		{{Person: "ty", Item: "2"}, {Person: "alex", Item: "3"}},
	}
	clone := levels.Clone()
	clone[1][0].Item = "9"
	assert.Equal(t, Item("2"), levels[1][0].Item)
	assert.Equal(t, 3, clone.Len())
}

func TestAllocation_Validate(t *testing.T) {
	assert.NoError(t, Allocation{"ty": "1", "alex": "2"}.Validate())
	err := Allocation{"ty": "1", "alex": "1"}.Validate()
	assert.True(t, errors.Is(err, ErrInconsistentAllocation))

	holder, ok := Allocation{"ty": "1"}.Holder("1")
	assert.True(t, ok)
	assert.Equal(t, Person("ty"), holder)
}

func TestAllocation_Conforms(t *testing.T) {
	preferences := Preferences{{Person: "ty", Items: []Item{"1", "2"}}}
	assert.NoError(t, Allocation{"ty": "2"}.Conforms(preferences))
	assert.Error(t, Allocation{"ty": "3"}.Conforms(preferences))
	assert.Error(t, Allocation{"alex": "1"}.Conforms(preferences))
}

func TestRun_Validate(t *testing.T) {
	run := &Run{RoundOne: Allocation{"ty": "1"}, RoundTwo: Allocation{"ty": "2", "alex": "2"}}
	err := run.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "round 2")
}
