package config

import (
	"ccline/internal/domain"
	"ccline/internal/logging"
	"ccline/internal/ports"
)

// Store gives segments read access to the configuration file on disk.
// Every call re-reads the file; nothing is cached between calls.
type Store struct {
	path string
}

// Verify interface compliance at compile time
var _ ports.SegmentOptionsReader = (*Store)(nil)

// NewStore creates a Store for the file at path
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the configuration file path
func (s *Store) Path() string {
	return s.path
}

// Load reads and parses the configuration file
func (s *Store) Load() (*Config, error) {
	return LoadFrom(s.path)
}

// SegmentOptions implements ports.SegmentOptionsReader.
// Returns empty options when the segment is not configured.
func (s *Store) SegmentOptions(id domain.SegmentID) (domain.Options, error) {
	logging.Logger.Debug("Reading segment options from disk", "segment", id, "path", s.path)

	cfg, err := s.Load()
	if err != nil {
		return nil, err
	}

	seg := cfg.Segment(id)
	if seg == nil {
		return domain.Options{}, nil
	}
	return seg.Options, nil
}
