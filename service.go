package guitarfest

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/viant/afs"
	"github.com/viant/guitarfest/internal/clock"
	"github.com/viant/guitarfest/internal/idgen"
	"github.com/viant/guitarfest/model"
	"github.com/viant/guitarfest/policy"
	"github.com/viant/guitarfest/progress"
	"github.com/viant/guitarfest/service/allocator"
	"github.com/viant/guitarfest/service/dao"
	"github.com/viant/guitarfest/service/dao/store"
	"github.com/viant/guitarfest/service/event"
	"github.com/viant/guitarfest/service/preference"
	"github.com/viant/guitarfest/service/priority"
	"github.com/viant/guitarfest/service/report"
)

type Service struct {
	config      *Config
	fs          afs.Service
	logger      zerolog.Logger
	preferences preference.Store
	priority    priority.Provider
	allocator   *allocator.Service
	runs        dao.Service[string, model.Run]
	events      *event.Publisher[event.Notice]
	onProgress  func(progress.Progress)
}

// Config returns the effective configuration.
func (s *Service) Config() *Config {
	return s.config
}

// Run loads the preferences from the configured store and allocates them.
func (s *Service) Run(ctx context.Context) (*model.Run, error) {
	if s.preferences == nil {
		return nil, fmt.Errorf("preference store was not configured")
	}
	preferences, err := s.preferences.Load(ctx)
	if err != nil {
		return nil, err
	}
	return s.Allocate(ctx, preferences)
}

// Allocate orders the persons of preferences and runs both rounds.  The run
// is stored only when both rounds succeed.
func (s *Service) Allocate(ctx context.Context, preferences model.Preferences) (*model.Run, error) {
	run := &model.Run{ID: idgen.New(), StartedAt: clock.Now()}
	logger := s.logger.With().Str("run", run.ID).Logger()
	ret, err := s.allocate(ctx, logger, run, preferences)
	if err != nil {
		logger.Error().Err(err).Msg("run aborted")
		s.publish(ctx, logger, event.Failed(run.ID, err))
		return nil, err
	}
	s.publish(ctx, logger, event.Completed(ret))
	return ret, nil
}

func (s *Service) allocate(ctx context.Context, logger zerolog.Logger, run *model.Run, preferences model.Preferences) (*model.Run, error) {
	ctx, _ = progress.WithNewTracker(ctx, run.ID, s.onProgress)

	order, err := s.priority.Order(ctx, preferences.Persons())
	if err != nil {
		return nil, fmt.Errorf("failed to build priority order: %w", err)
	}
	if seeded, ok := s.priority.(interface{ Seed() int64 }); ok {
		run.Seed = seeded.Seed()
	}

	outcome, err := s.allocator.Run(ctx, preferences, order)
	if err != nil {
		return nil, err
	}
	run.Order = order
	run.RoundOne = outcome.RoundOne
	run.RoundTwo = outcome.RoundTwo
	run.CompletedAt = clock.Now()
	if err = run.Validate(); err != nil {
		return nil, err
	}
	if err = s.runs.Save(ctx, run); err != nil {
		return nil, fmt.Errorf("failed to save run %s: %w", run.ID, err)
	}
	logger.Info().
		Int("persons", len(preferences)).
		Int("roundOne", len(run.RoundOne)).
		Int("roundTwo", len(run.RoundTwo)).
		Msg("run completed")
	return run, nil
}

// publish hands e to the event queue; a failed publication does not fail
// the run.
func (s *Service) publish(ctx context.Context, logger zerolog.Logger, e *event.Event[event.Notice]) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(ctx, e); err != nil {
		logger.Warn().Err(err).Str("type", e.Type).Msg("failed to publish event")
	}
}

// Load returns a run completed by this service.
func (s *Service) Load(ctx context.Context, id string) (*model.Run, error) {
	if id == "" {
		return nil, dao.ErrInvalidID
	}
	return s.runs.Load(ctx, id)
}

// Runs returns all runs completed by this service.
func (s *Service) Runs(ctx context.Context) ([]*model.Run, error) {
	return s.runs.List(ctx)
}

// Report renders run in the configured format and, when report.url is set,
// writes it there.
func (s *Service) Report(ctx context.Context, run *model.Run) ([]byte, error) {
	data, err := report.Render(run, s.config.Report.Format)
	if err != nil {
		return nil, err
	}
	if s.config.Report.URL != "" {
		if err = report.Write(ctx, s.fs, s.config.Report.URL, data); err != nil {
			return nil, err
		}
	}
	return data, nil
}

func (s *Service) ensureBaseSetup() error {
	if s.config == nil {
		s.config = DefaultConfig()
	}
	if err := s.config.Validate(); err != nil {
		return err
	}
	if s.fs == nil {
		s.fs = afs.New()
	}
	if s.preferences == nil && s.config.Preferences.URL != "" {
		s.preferences = preference.New(s.config.Preferences.URL,
			preference.WithFs(s.fs),
			preference.WithFormat(s.config.Preferences.Format),
			preference.WithHeader(s.config.Preferences.Header))
	}
	if s.priority == nil {
		vips := make([]model.Person, 0, len(s.config.Priority.VIPs))
		for _, vip := range s.config.Priority.VIPs {
			vips = append(vips, model.Person(vip))
		}
		provider, err := priority.NewRandom(vips, s.config.Priority.Seed)
		if err != nil {
			return err
		}
		s.priority = provider
	}
	if s.runs == nil {
		s.runs = store.NewMemoryStore[string, model.Run](func(r *model.Run) string { return r.ID })
	}
	if s.events == nil && s.config.Events.Enabled() {
		publisher, err := event.PublisherOf[event.Notice](context.Background(), s.fs, &s.config.Events)
		if err != nil {
			return err
		}
		s.events = publisher
	}
	s.allocator = allocator.New(
		allocator.WithPolicy(policy.FromConfig(&s.config.Allocation)),
		allocator.WithLogger(s.logger))
	return nil
}

// New creates a service; invalid configuration is reported here rather than
// on the first run.
func New(options ...Option) (*Service, error) {
	ret := &Service{logger: zerolog.Nop()}
	for _, option := range options {
		option(ret)
	}
	if err := ret.ensureBaseSetup(); err != nil {
		return nil, err
	}
	return ret, nil
}
