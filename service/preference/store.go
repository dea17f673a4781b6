package preference

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/guitarfest/model"
)

// Supported document formats.
const (
	FormatCSV  = "csv"
	FormatTSV  = "tsv"
	FormatYAML = "yaml"
)

// Store supplies preferences for a run.
type Store interface {
	Load(ctx context.Context) (model.Preferences, error)
}

// Static is an in-memory store.
type Static model.Preferences

// Load returns the static preferences.
func (s Static) Load(_ context.Context) (model.Preferences, error) {
	return model.Preferences(s), nil
}

// Service loads preferences from a URL.
type Service struct {
	fs     afs.Service
	URL    string
	format string
	header bool
}

// Load downloads and decodes the document.
func (s *Service) Load(ctx context.Context) (model.Preferences, error) {
	if s.URL == "" {
		return nil, fmt.Errorf("preferences URL was empty")
	}
	format, err := s.Format()
	if err != nil {
		return nil, err
	}
	data, err := s.fs.DownloadWithURL(ctx, s.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to download preferences %s: %w", s.URL, err)
	}
	ret, err := Decode(data, format, s.header)
	if err != nil {
		return nil, fmt.Errorf("failed to decode preferences %s: %w", s.URL, err)
	}
	return ret, nil
}

// Format returns the configured format or the one implied by the URL
// extension.
func (s *Service) Format() (string, error) {
	if s.format != "" {
		return ParseFormat(s.format)
	}
	ext := strings.TrimPrefix(path.Ext(s.URL), ".")
	if ext == "" {
		return "", fmt.Errorf("unable to infer preferences format from %s", s.URL)
	}
	return ParseFormat(ext)
}

// Decode decodes data in the supplied format.
func Decode(data []byte, format string, header bool) (model.Preferences, error) {
	format, err := ParseFormat(format)
	if err != nil {
		return nil, err
	}
	switch format {
	case FormatCSV:
		return DecodeCSV(data, ',', header)
	case FormatTSV:
		return DecodeCSV(data, '\t', header)
	}
	return DecodeYAML(data)
}

// ParseFormat returns the canonical name of a supported format.
func ParseFormat(format string) (string, error) {
	switch strings.ToLower(format) {
	case FormatCSV:
		return FormatCSV, nil
	case FormatTSV:
		return FormatTSV, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unsupported preferences format: %q", format)
}

// New creates a URL backed store.
func New(URL string, options ...Option) *Service {
	ret := &Service{URL: URL}
	for _, option := range options {
		option(ret)
	}
	if ret.fs == nil {
		ret.fs = afs.New()
	}
	return ret
}
