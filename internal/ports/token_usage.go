package ports

import "ccline/internal/domain"

// TranscriptReader reads token usage from Claude session transcripts
type TranscriptReader interface {
	// LastUsage returns the usage of the most recent assistant message,
	// or domain.ErrNoUsage when the transcript has none
	LastUsage(transcriptPath string) (*domain.TokenUsage, error)
}
