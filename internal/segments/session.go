package segments

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"ccline/internal/domain"
)

// SessionSegment shows how long the session has run and the lines it changed
type SessionSegment struct {
	showLines bool
}

// NewSessionSegment creates a SessionSegment configured from opts
func NewSessionSegment(opts domain.Options) *SessionSegment {
	return &SessionSegment{showLines: opts.BoolOr(domain.OptionShowLines, true)}
}

func (s *SessionSegment) ID() domain.SegmentID { return domain.SegmentSession }

func (s *SessionSegment) Collect(_ context.Context, snap *domain.SessionSnapshot) (domain.SegmentResult, bool) {
	if snap.Cost == nil {
		return domain.SegmentResult{}, false
	}

	result := domain.SegmentResult{
		Primary: FormatDuration(time.Duration(snap.Cost.TotalDurationMS) * time.Millisecond),
		Metadata: map[string]string{
			"duration_ms":   strconv.FormatInt(snap.Cost.TotalDurationMS, 10),
			"lines_added":   strconv.Itoa(snap.Cost.TotalLinesAdded),
			"lines_removed": strconv.Itoa(snap.Cost.TotalLinesRemoved),
		},
	}
	if s.showLines && (snap.Cost.TotalLinesAdded > 0 || snap.Cost.TotalLinesRemoved > 0) {
		result.Secondary = fmt.Sprintf("+%d -%d", snap.Cost.TotalLinesAdded, snap.Cost.TotalLinesRemoved)
	}

	return result, true
}

// FormatDuration renders d with its two most significant units (1h2m, 4m12s, 38s)
func FormatDuration(d time.Duration) string {
	d = d.Truncate(time.Second)
	hours := int(d / time.Hour)
	minutes := int(d%time.Hour) / int(time.Minute)
	seconds := int(d%time.Minute) / int(time.Second)

	switch {
	case hours > 0:
		return fmt.Sprintf("%dh%dm", hours, minutes)
	case minutes > 0:
		return fmt.Sprintf("%dm%ds", minutes, seconds)
	default:
		return fmt.Sprintf("%ds", seconds)
	}
}
