package claude

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"ccline/internal/domain"
	"ccline/internal/logging"
	"ccline/internal/ports"
)

// TranscriptParser reads Claude session transcript JSONL files
type TranscriptParser struct{}

// Verify interface compliance at compile time
var _ ports.TranscriptReader = (*TranscriptParser)(nil)

// NewTranscriptParser creates a new TranscriptParser
func NewTranscriptParser() *TranscriptParser {
	return &TranscriptParser{}
}

// jsonlEntry represents a single entry in the JSONL file
type jsonlEntry struct {
	IsSidechain bool          `json:"isSidechain"`
	Message     *jsonlMessage `json:"message"`
	Timestamp   string        `json:"timestamp"`
	Type        string        `json:"type"`
}

type jsonlMessage struct {
	Usage *jsonlUsage `json:"usage"`
}

type jsonlUsage struct {
	CacheCreationInputTokens int `json:"cache_creation_input_tokens"`
	CacheReadInputTokens     int `json:"cache_read_input_tokens"`
	InputTokens              int `json:"input_tokens"`
	OutputTokens             int `json:"output_tokens"`
}

// LastUsage implements TranscriptReader.LastUsage.
// Sidechain (subagent) messages are skipped since they don't share the main context window.
func (p *TranscriptParser) LastUsage(transcriptPath string) (*domain.TokenUsage, error) {
	file, err := os.Open(transcriptPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open transcript: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	// Increase buffer size for large lines
	buf := make([]byte, 0, 1024*1024) // 1MB buffer
	scanner.Buffer(buf, 10*1024*1024) // 10MB max line size

	var last *domain.TokenUsage
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var entry jsonlEntry
		if err := json.Unmarshal(line, &entry); err != nil {
			continue
		}

		if entry.Type != "assistant" || entry.IsSidechain {
			continue
		}
		if entry.Message == nil || entry.Message.Usage == nil {
			continue
		}

		// Missing or malformed timestamps leave the zero time
		timestamp, _ := time.Parse(time.RFC3339, entry.Timestamp)

		last = &domain.TokenUsage{
			CacheCreation: entry.Message.Usage.CacheCreationInputTokens,
			CacheRead:     entry.Message.Usage.CacheReadInputTokens,
			InputTokens:   entry.Message.Usage.InputTokens,
			OutputTokens:  entry.Message.Usage.OutputTokens,
			Timestamp:     timestamp,
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read transcript: %w", err)
	}

	if last == nil {
		logging.Logger.Debug("No assistant usage in transcript", "path", transcriptPath)
		return nil, domain.ErrNoUsage
	}

	return last, nil
}
