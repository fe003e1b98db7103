package segments

import (
	"fmt"
	"time"

	"ccline/internal/domain"
	"ccline/internal/ports"
)

// Factory builds segments from their configuration entries
type Factory struct {
	Git         ports.GitStatusProvider
	Now         func() time.Time
	Options     ports.SegmentOptionsReader
	Stats       ports.UsageStatClient
	Transcripts ports.TranscriptReader
}

// Verify interface compliance at compile time
var _ ports.SegmentFactory = (*Factory)(nil)

// New creates the segment described by cfg.
// Returns domain.ErrUnknownSegment for IDs outside the built-in set.
func (f *Factory) New(cfg domain.SegmentConfig) (ports.Segment, error) {
	opts := cfg.Options
	if opts == nil {
		opts = domain.Options{}
	}

	switch cfg.ID {
	case domain.SegmentModel:
		return &ModelSegment{}, nil
	case domain.SegmentDirectory:
		return NewDirectorySegment(opts), nil
	case domain.SegmentGit:
		return NewGitSegment(f.Git, opts), nil
	case domain.SegmentContextWindow:
		return NewContextWindowSegment(f.Transcripts, opts), nil
	case domain.SegmentSession:
		return NewSessionSegment(opts), nil
	case domain.SegmentOutputStyle:
		return &OutputStyleSegment{}, nil
	case domain.SegmentCost:
		return NewCostSegment(f.Stats, f.Options, opts, f.Now), nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownSegment, cfg.ID)
	}
}
