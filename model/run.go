package model

import (
	"fmt"
	"time"
)

// Run is the outcome of one allocation: the priority order used and the two
// round allocations.
type Run struct {
	ID          string        `json:"id" yaml:"id"`
	StartedAt   time.Time     `json:"startedAt" yaml:"startedAt"`
	CompletedAt time.Time     `json:"completedAt" yaml:"completedAt"`
	Seed        int64         `json:"seed,omitempty" yaml:"seed,omitempty"`
	Order       PriorityOrder `json:"order" yaml:"order"`
	RoundOne    Allocation    `json:"roundOne" yaml:"roundOne"`
	RoundTwo    Allocation    `json:"roundTwo" yaml:"roundTwo"`
}

// Rounds returns the round allocations in execution order.
func (r *Run) Rounds() []Allocation {
	return []Allocation{r.RoundOne, r.RoundTwo}
}

// Validate checks injectivity of both rounds.
func (r *Run) Validate() error {
	for i, allocation := range r.Rounds() {
		if err := allocation.Validate(); err != nil {
			return fmt.Errorf("round %d: %w", i+1, err)
		}
	}
	return nil
}
