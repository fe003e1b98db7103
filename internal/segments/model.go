package segments

import (
	"context"

	"ccline/internal/domain"
)

// ModelSegment shows the model serving the session
type ModelSegment struct{}

func (s *ModelSegment) ID() domain.SegmentID { return domain.SegmentModel }

func (s *ModelSegment) Collect(_ context.Context, snap *domain.SessionSnapshot) (domain.SegmentResult, bool) {
	name := snap.Model.DisplayName
	if name == "" {
		name = snap.Model.ID
	}
	if name == "" {
		return domain.SegmentResult{}, false
	}

	return domain.SegmentResult{
		Primary:  name,
		Metadata: map[string]string{"model_id": snap.Model.ID},
	}, true
}
