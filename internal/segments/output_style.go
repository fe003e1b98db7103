package segments

import (
	"context"

	"ccline/internal/domain"
)

// OutputStyleSegment shows the active output style
type OutputStyleSegment struct{}

func (s *OutputStyleSegment) ID() domain.SegmentID { return domain.SegmentOutputStyle }

func (s *OutputStyleSegment) Collect(_ context.Context, snap *domain.SessionSnapshot) (domain.SegmentResult, bool) {
	if snap.OutputStyle.Name == "" {
		return domain.SegmentResult{}, false
	}
	return domain.SegmentResult{Primary: snap.OutputStyle.Name}, true
}
