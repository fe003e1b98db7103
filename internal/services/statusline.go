package services

import (
	"context"
	"fmt"
	"runtime/debug"

	"ccline/internal/domain"
	"ccline/internal/logging"
	"ccline/internal/ports"
)

// StatusLineService collects the results of the configured segments
type StatusLineService struct {
	factory ports.SegmentFactory
}

// NewStatusLineService creates a new StatusLineService
func NewStatusLineService(factory ports.SegmentFactory) *StatusLineService {
	return &StatusLineService{
		factory: factory,
	}
}

// CollectAll runs every enabled segment in configuration order and returns
// the results of those that produced one. Segments run one at a time.
func (s *StatusLineService) CollectAll(
	ctx context.Context,
	segments []domain.SegmentConfig,
	snapshot *domain.SessionSnapshot,
) []domain.SegmentOutput {
	outputs := make([]domain.SegmentOutput, 0, len(segments))

	for _, cfg := range segments {
		if !cfg.Enabled {
			logging.Logger.Debug("Segment disabled", "segment", cfg.ID)
			continue
		}

		segment, err := s.factory.New(cfg)
		if err != nil {
			logging.Logger.Warn("Skipping segment", "segment", cfg.ID, "error", err)
			continue
		}

		result, ok := collect(ctx, segment, snapshot)
		if !ok {
			logging.Logger.Debug("Segment has no result", "segment", cfg.ID)
			continue
		}

		outputs = append(outputs, domain.SegmentOutput{ID: cfg.ID, Result: result})
	}

	logging.Logger.Debug("Segments collected", "configured", len(segments), "rendered", len(outputs))
	return outputs
}

// collect invokes segment, converting a panic into "no result"
func collect(ctx context.Context, segment ports.Segment, snapshot *domain.SessionSnapshot) (result domain.SegmentResult, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			logging.Logger.Error("Segment panicked",
				"segment", segment.ID(),
				"panic", fmt.Sprint(r),
				"stack", string(debug.Stack()))
			result, ok = domain.SegmentResult{}, false
		}
	}()

	return segment.Collect(ctx, snapshot)
}
