package allocator

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/viant/guitarfest/model"
	"github.com/viant/guitarfest/policy"
	"github.com/viant/guitarfest/progress"
	"github.com/viant/guitarfest/tracing"
)

// Outcome holds the levels built for round one and both round allocations.
type Outcome struct {
	Levels   model.ChoiceLevels
	RoundOne model.Allocation
	RoundTwo model.Allocation
}

// Service runs both allocation rounds.
type Service struct {
	policy *policy.Policy
	logger zerolog.Logger
}

// Run validates the inputs, builds the choice levels and runs round one and
// round two.  Any error aborts the whole run.
func (s *Service) Run(ctx context.Context, preferences model.Preferences, order model.PriorityOrder) (outcome *Outcome, err error) {
	ctx, span := tracing.StartSpan(ctx, "guitarfest.allocate")
	defer func() { tracing.EndSpan(span, err) }()

	aPolicy := s.policyFor(ctx)
	if err = aPolicy.Validate(); err != nil {
		return nil, err
	}
	if err = preferences.Validate(aPolicy.MaxRanking); err != nil {
		return nil, err
	}
	span.WithAttributes(map[string]string{"scope": aPolicy.Scope()}).
		WithCount("persons", len(preferences))

	levels, err := s.build(ctx, preferences, order)
	if err != nil {
		return nil, fmt.Errorf("failed to build choice levels: %w", err)
	}
	outcome = &Outcome{Levels: levels}

	outcome.RoundOne = s.round(ctx, 1, levels, len(preferences))

	_, reweightSpan := tracing.StartSpan(ctx, "reweight")
	leftovers, err := prepareRoundTwo(levels, outcome.RoundOne, preferences, aPolicy.Scope())
	tracing.EndSpan(reweightSpan, err)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare round two: %w", err)
	}
	outcome.RoundTwo = s.round(ctx, 2, leftovers, len(preferences))
	return outcome, nil
}

func (s *Service) build(ctx context.Context, preferences model.Preferences, order model.PriorityOrder) (model.ChoiceLevels, error) {
	ctx, span := tracing.StartSpan(ctx, "build")
	levels, err := BuildChoiceLevels(preferences, order)
	tracing.EndSpan(span.WithCount("levels", len(levels)), err)
	if err != nil {
		return nil, err
	}
	progress.UpdateCtx(ctx, progress.Delta{Choices: levels.Len()})
	return levels, nil
}

func (s *Service) round(ctx context.Context, round int, levels model.ChoiceLevels, persons int) model.Allocation {
	ctx, span := tracing.StartRoundSpan(ctx, round)
	allocation := Allocate(levels)
	unmatched := persons - len(allocation)
	span.WithCount("choices", levels.Len()).WithCount("assigned", len(allocation))
	tracing.EndSpan(span, nil)

	progress.UpdateCtx(ctx, progress.Delta{Rounds: 1, Assigned: len(allocation), Unmatched: unmatched})
	s.logger.Debug().
		Int("round", round).
		Int("choices", levels.Len()).
		Int("assigned", len(allocation)).
		Int("unmatched", unmatched).
		Msg("round allocated")
	return allocation
}

func (s *Service) policyFor(ctx context.Context) *policy.Policy {
	if p := policy.FromContext(ctx); p != nil {
		return p
	}
	return s.policy
}

// New creates an allocator service.
func New(options ...Option) *Service {
	ret := &Service{
		policy: policy.Default(),
		logger: zerolog.Nop(),
	}
	for _, option := range options {
		option(ret)
	}
	if ret.policy == nil {
		ret.policy = policy.Default()
	}
	return ret
}
