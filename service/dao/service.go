package dao

import (
	"context"
)

// Service stores entities of type T by key K.
type Service[K comparable, T any] interface {
	// Save inserts or replaces t under its key
	Save(ctx context.Context, t *T) error

	// Load returns ErrNotFound for an unknown id
	Load(ctx context.Context, id K) (*T, error)

	Delete(ctx context.Context, id K) error

	// List returns entities in insertion order
	List(ctx context.Context) ([]*T, error)
}
