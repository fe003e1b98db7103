package segments

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"ccline/internal/domain"
	"ccline/internal/logging"
	"ccline/internal/ports"
)

// DefaultContextLimit is the context window size assumed when none is configured
const DefaultContextLimit = 200000

// ContextWindowSegment shows how much of the context window the last message used
type ContextWindowSegment struct {
	limit  int64
	reader ports.TranscriptReader
}

// NewContextWindowSegment creates a ContextWindowSegment configured from opts
func NewContextWindowSegment(reader ports.TranscriptReader, opts domain.Options) *ContextWindowSegment {
	limit := opts.IntOr(domain.OptionContextLimit, DefaultContextLimit)
	if limit <= 0 {
		limit = DefaultContextLimit
	}
	return &ContextWindowSegment{limit: limit, reader: reader}
}

func (s *ContextWindowSegment) ID() domain.SegmentID { return domain.SegmentContextWindow }

func (s *ContextWindowSegment) Collect(_ context.Context, snap *domain.SessionSnapshot) (domain.SegmentResult, bool) {
	if snap.TranscriptPath == "" {
		return domain.SegmentResult{}, false
	}

	usage, err := s.reader.LastUsage(snap.TranscriptPath)
	if err != nil {
		logging.Logger.Debug("No context usage available", "transcript", snap.TranscriptPath, "error", err)
		return domain.SegmentResult{}, false
	}

	tokens := usage.ContextTokens()
	percent := float64(tokens) * 100 / float64(s.limit)

	return domain.SegmentResult{
		Primary:   fmt.Sprintf("%.1f%%", percent),
		Secondary: FormatTokens(tokens),
		Metadata: map[string]string{
			"limit":   strconv.FormatInt(s.limit, 10),
			"percent": strconv.FormatFloat(percent, 'f', 1, 64),
			"tokens":  strconv.Itoa(tokens),
		},
	}, true
}

// FormatTokens renders a token count compactly (532, 84.2k, 1.2M)
func FormatTokens(tokens int) string {
	return strings.ReplaceAll(humanize.SIWithDigits(float64(tokens), 1, ""), " ", "")
}
