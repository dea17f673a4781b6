// Package priority supplies the total order over persons that breaks ties
// within a preference rank.
package priority

import (
	"context"

	"github.com/viant/guitarfest/model"
)

// Provider returns a priority order covering persons.
type Provider interface {
	Order(ctx context.Context, persons []model.Person) (model.PriorityOrder, error)
}

// Fixed is a caller-supplied order returned as is.
type Fixed model.PriorityOrder

// Order returns a copy of the fixed order.
func (f Fixed) Order(_ context.Context, _ []model.Person) (model.PriorityOrder, error) {
	return append(model.PriorityOrder{}, f...), nil
}
