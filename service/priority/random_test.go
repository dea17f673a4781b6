package priority

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/guitarfest/model"
)

func TestRandom_Order(t *testing.T) {
	persons := []model.Person{"ty", "helene", "alex", "dominique", "sam", "kim"}
	testCases := []struct {
		description string
		vips        []model.Person
		expectHead  model.PriorityOrder
		expectErr   error
	}{
		{description: "no vips"},
		{description: "vip prefix kept in given order", vips: []model.Person{"kim", "ty"}, expectHead: model.PriorityOrder{"kim", "ty"}},
		{description: "vip without preferences still leads", vips: []model.Person{"guest"}, expectHead: model.PriorityOrder{"guest"}},
		{description: "duplicate vip", vips: []model.Person{"ty", "ty"}, expectErr: model.ErrDuplicatePerson},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			provider, err := NewRandom(tc.vips, 42)
			assert.NoError(t, err)
			order, err := provider.Order(context.Background(), persons)
			if tc.expectErr != nil {
				assert.True(t, errors.Is(err, tc.expectErr), err)
				return
			}
			assert.NoError(t, err)
			if len(tc.expectHead) > 0 {
				assert.Equal(t, tc.expectHead, order[:len(tc.expectHead)])
			}
			_, err = order.Ranks()
			assert.NoError(t, err)
			for _, person := range persons {
				assert.Contains(t, order, person)
			}
		})
	}
}

func TestRandom_Reproducible(t *testing.T) {
	persons := []model.Person{"a", "b", "c", "d", "e", "f", "g", "h"}
	reversed := []model.Person{"h", "g", "f", "e", "d", "c", "b", "a"}

	first, err := NewRandom(nil, 7)
	assert.NoError(t, err)
	second, err := NewRandom(nil, 7)
	assert.NoError(t, err)

	one, err := first.Order(context.Background(), persons)
	assert.NoError(t, err)
	two, err := second.Order(context.Background(), reversed)
	assert.NoError(t, err)
	assert.Equal(t, one, two, "same seed must yield the same order regardless of input order")
	assert.Equal(t, int64(7), first.Seed())
}

func TestRandom_DrawsSeed(t *testing.T) {
	provider, err := NewRandom(nil, 0)
	assert.NoError(t, err)
	assert.NotZero(t, provider.Seed())
}

func TestRandom_DuplicatePersons(t *testing.T) {
	provider, err := NewRandom(nil, 1)
	assert.NoError(t, err)
	_, err = provider.Order(context.Background(), []model.Person{"a", "a"})
	assert.True(t, errors.Is(err, model.ErrDuplicatePerson))
}

func TestFixed_Order(t *testing.T) {
	fixed := Fixed{"ty", "helene"}
	order, err := fixed.Order(context.Background(), nil)
	assert.NoError(t, err)
	assert.Equal(t, model.PriorityOrder{"ty", "helene"}, order)
	order[0] = "changed"
	assert.Equal(t, model.Person("ty"), fixed[0])
}
