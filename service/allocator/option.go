package allocator

import (
	"github.com/rs/zerolog"
	"github.com/viant/guitarfest/policy"
)

// Option configures the allocator service.
type Option func(*Service)

// WithPolicy sets the default policy used when the run context carries none.
func WithPolicy(p *policy.Policy) Option {
	return func(s *Service) {
		s.policy = p
	}
}

// WithLogger sets the logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}
