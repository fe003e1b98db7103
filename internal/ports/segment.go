package ports

import (
	"context"

	"ccline/internal/domain"
)

// Segment produces one piece of the status line.
// Collect reports ok=false when the segment has nothing to show; it never fails the render.
type Segment interface {
	Collect(ctx context.Context, snapshot *domain.SessionSnapshot) (domain.SegmentResult, bool)
	ID() domain.SegmentID
}

// SegmentOptionsReader reads the persisted options of a segment at call time
type SegmentOptionsReader interface {
	SegmentOptions(id domain.SegmentID) (domain.Options, error)
}

// SegmentFactory builds a segment from its configuration entry
type SegmentFactory interface {
	New(cfg domain.SegmentConfig) (Segment, error)
}
