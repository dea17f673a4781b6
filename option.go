package guitarfest

import (
	"github.com/rs/zerolog"
	"github.com/viant/afs"
	"github.com/viant/guitarfest/model"
	"github.com/viant/guitarfest/progress"
	"github.com/viant/guitarfest/service/dao"
	"github.com/viant/guitarfest/service/event"
	"github.com/viant/guitarfest/service/preference"
	"github.com/viant/guitarfest/service/priority"
)

// Option configures the Service.
type Option func(s *Service)

// WithConfig sets the configuration; collaborators not supplied explicitly
// are built from it.
func WithConfig(config *Config) Option {
	return func(s *Service) {
		s.config = config
	}
}

// WithFs sets the file system used for preferences and reports.
func WithFs(fs afs.Service) Option {
	return func(s *Service) {
		s.fs = fs
	}
}

// WithLogger sets the logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithPreferenceStore sets the preference store, overriding preferences.url.
func WithPreferenceStore(store preference.Store) Option {
	return func(s *Service) {
		s.preferences = store
	}
}

// WithPreferences uses static, in-memory preferences.
func WithPreferences(preferences model.Preferences) Option {
	return WithPreferenceStore(preference.Static(preferences))
}

// WithPriorityProvider sets the priority provider, overriding the priority
// section of the configuration.
func WithPriorityProvider(provider priority.Provider) Option {
	return func(s *Service) {
		s.priority = provider
	}
}

// WithRunDAO sets the run store.
func WithRunDAO(runs dao.Service[string, model.Run]) Option {
	return func(s *Service) {
		s.runs = runs
	}
}

// WithProgress registers a callback receiving progress snapshots of each run.
func WithProgress(onChange func(progress.Progress)) Option {
	return func(s *Service) {
		s.onProgress = onChange
	}
}

// WithEventPublisher sets the publisher receiving run.completed and
// run.failed events, overriding the events section of the configuration.
func WithEventPublisher(publisher *event.Publisher[event.Notice]) Option {
	return func(s *Service) {
		s.events = publisher
	}
}
