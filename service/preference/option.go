package preference

import "github.com/viant/afs"

// Option configures the preference service.
type Option func(*Service)

// WithFs sets the file system.
func WithFs(fs afs.Service) Option {
	return func(s *Service) {
		s.fs = fs
	}
}

// WithFormat forces the document format instead of inferring it.
func WithFormat(format string) Option {
	return func(s *Service) {
		s.format = format
	}
}

// WithHeader skips the first csv/tsv row.
func WithHeader(header bool) Option {
	return func(s *Service) {
		s.header = header
	}
}
