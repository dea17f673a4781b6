package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/guitarfest/model"
	"github.com/viant/guitarfest/service/dao"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	runs := NewMemoryStore[string, model.Run](func(r *model.Run) string { return r.ID })

	assert.True(t, errors.Is(runs.Save(ctx, nil), dao.ErrNilEntity))
	assert.True(t, errors.Is(runs.Save(ctx, &model.Run{}), dao.ErrInvalidID))

	assert.NoError(t, runs.Save(ctx, &model.Run{ID: "b"}))
	assert.NoError(t, runs.Save(ctx, &model.Run{ID: "a"}))
	assert.NoError(t, runs.Save(ctx, &model.Run{ID: "b", Seed: 3}))

	loaded, err := runs.Load(ctx, "b")
	assert.NoError(t, err)
	assert.Equal(t, int64(3), loaded.Seed)

	list, err := runs.List(ctx)
	assert.NoError(t, err)
	if assert.Len(t, list, 2) {
		assert.Equal(t, "b", list[0].ID)
		assert.Equal(t, "a", list[1].ID)
	}

	assert.NoError(t, runs.Delete(ctx, "b"))
	_, err = runs.Load(ctx, "b")
	assert.True(t, errors.Is(err, dao.ErrNotFound))
	assert.True(t, errors.Is(runs.Delete(ctx, "b"), dao.ErrNotFound))

	list, err = runs.List(ctx)
	assert.NoError(t, err)
	assert.Len(t, list, 1)
}
