package segments

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ccline/internal/domain"
	portsmocks "ccline/internal/ports/mocks"
)

func TestModelSegment(t *testing.T) {
	segment := &ModelSegment{}

	result, ok := segment.Collect(context.Background(), &domain.SessionSnapshot{
		Model: domain.ModelInfo{DisplayName: "Opus", ID: "claude-opus"},
	})
	require.True(t, ok)
	assert.Equal(t, "Opus", result.Primary)

	result, ok = segment.Collect(context.Background(), &domain.SessionSnapshot{
		Model: domain.ModelInfo{ID: "claude-opus"},
	})
	require.True(t, ok)
	assert.Equal(t, "claude-opus", result.Primary)

	_, ok = segment.Collect(context.Background(), &domain.SessionSnapshot{})
	assert.False(t, ok)
}

func TestOutputStyleSegment(t *testing.T) {
	segment := &OutputStyleSegment{}

	result, ok := segment.Collect(context.Background(), &domain.SessionSnapshot{
		OutputStyle: domain.OutputStyle{Name: "Explanatory"},
	})
	require.True(t, ok)
	assert.Equal(t, "Explanatory", result.Primary)

	_, ok = segment.Collect(context.Background(), &domain.SessionSnapshot{})
	assert.False(t, ok)
}

func TestDirectorySegment(t *testing.T) {
	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)
	projectDir := filepath.Join(homeDir, "code", "ccline")

	tests := []struct {
		name     string
		opts     domain.Options
		snap     domain.SessionSnapshot
		expected string
	}{
		{
			"basename of current dir",
			nil,
			domain.SessionSnapshot{Workspace: domain.Workspace{CurrentDir: "/work/project"}, Cwd: "/elsewhere"},
			"project",
		},
		{
			"falls back to cwd",
			nil,
			domain.SessionSnapshot{Cwd: "/work/fallback"},
			"fallback",
		},
		{
			"full path abbreviates home",
			domain.Options{domain.OptionFullPath: domain.BoolValue(true)},
			domain.SessionSnapshot{Cwd: projectDir},
			filepath.Join("~", "code", "ccline"),
		},
		{
			"truncates to max width",
			domain.Options{domain.OptionMaxWidth: domain.IntValue(6)},
			domain.SessionSnapshot{Cwd: "/work/averylongname"},
			"avery…",
		},
		{
			"wide runes count double",
			domain.Options{domain.OptionMaxWidth: domain.IntValue(5)},
			domain.SessionSnapshot{Cwd: "/work/项目目录"},
			"项目…",
		},
		{
			"short names untouched",
			domain.Options{domain.OptionMaxWidth: domain.IntValue(20)},
			domain.SessionSnapshot{Cwd: "/work/app"},
			"app",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, ok := NewDirectorySegment(tt.opts).Collect(context.Background(), &tt.snap)

			require.True(t, ok)
			assert.Equal(t, tt.expected, result.Primary)
		})
	}

	_, ok := NewDirectorySegment(nil).Collect(context.Background(), &domain.SessionSnapshot{})
	assert.False(t, ok)
}

func TestContextWindowSegment(t *testing.T) {
	reader := portsmocks.NewMockTranscriptReader(t)
	reader.EXPECT().LastUsage("/tmp/session.jsonl").Return(&domain.TokenUsage{
		InputTokens:   200,
		CacheCreation: 4000,
		CacheRead:     80000,
		OutputTokens:  999,
	}, nil)

	segment := NewContextWindowSegment(reader, domain.Options{})

	result, ok := segment.Collect(context.Background(), &domain.SessionSnapshot{TranscriptPath: "/tmp/session.jsonl"})

	require.True(t, ok)
	assert.Equal(t, "42.1%", result.Primary)
	assert.Equal(t, "84.2k", result.Secondary)
	assert.Equal(t, "84200", result.Metadata["tokens"])
	assert.Equal(t, "200000", result.Metadata["limit"])
}

func TestContextWindowSegment_CustomLimit(t *testing.T) {
	reader := portsmocks.NewMockTranscriptReader(t)
	reader.EXPECT().LastUsage("/tmp/session.jsonl").Return(&domain.TokenUsage{InputTokens: 250000}, nil)

	segment := NewContextWindowSegment(reader, domain.Options{domain.OptionContextLimit: domain.IntValue(1000000)})

	result, ok := segment.Collect(context.Background(), &domain.SessionSnapshot{TranscriptPath: "/tmp/session.jsonl"})

	require.True(t, ok)
	assert.Equal(t, "25.0%", result.Primary)
	assert.Equal(t, "250k", result.Secondary)
}

func TestContextWindowSegment_NoUsage(t *testing.T) {
	reader := portsmocks.NewMockTranscriptReader(t)
	reader.EXPECT().LastUsage("/tmp/session.jsonl").Return(nil, domain.ErrNoUsage)

	segment := NewContextWindowSegment(reader, nil)

	_, ok := segment.Collect(context.Background(), &domain.SessionSnapshot{TranscriptPath: "/tmp/session.jsonl"})
	assert.False(t, ok)

	_, ok = segment.Collect(context.Background(), &domain.SessionSnapshot{})
	assert.False(t, ok)
}

func TestFormatTokens(t *testing.T) {
	assert.Equal(t, "0", FormatTokens(0))
	assert.Equal(t, "532", FormatTokens(532))
	assert.Equal(t, "84.2k", FormatTokens(84200))
	assert.Equal(t, "1.2M", FormatTokens(1234567))
}

func TestSessionSegment(t *testing.T) {
	snap := &domain.SessionSnapshot{Cost: &domain.SessionCost{
		TotalDurationMS:   3720000,
		TotalLinesAdded:   120,
		TotalLinesRemoved: 8,
	}}

	result, ok := NewSessionSegment(nil).Collect(context.Background(), snap)
	require.True(t, ok)
	assert.Equal(t, "1h2m", result.Primary)
	assert.Equal(t, "+120 -8", result.Secondary)

	result, ok = NewSessionSegment(domain.Options{domain.OptionShowLines: domain.BoolValue(false)}).Collect(context.Background(), snap)
	require.True(t, ok)
	assert.Empty(t, result.Secondary)

	_, ok = NewSessionSegment(nil).Collect(context.Background(), &domain.SessionSnapshot{})
	assert.False(t, ok)
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		duration time.Duration
		expected string
	}{
		{0, "0s"},
		{38 * time.Second, "38s"},
		{38*time.Second + 900*time.Millisecond, "38s"},
		{4*time.Minute + 12*time.Second, "4m12s"},
		{time.Hour + 2*time.Minute + 30*time.Second, "1h2m"},
		{26 * time.Hour, "26h0m"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatDuration(tt.duration))
		})
	}
}

func TestFactory_New(t *testing.T) {
	factory := &Factory{
		Git:         portsmocks.NewMockGitStatusProvider(t),
		Options:     portsmocks.NewMockSegmentOptionsReader(t),
		Stats:       portsmocks.NewMockUsageStatClient(t),
		Transcripts: portsmocks.NewMockTranscriptReader(t),
	}

	for _, id := range domain.AllSegmentIDs {
		t.Run(id.String(), func(t *testing.T) {
			segment, err := factory.New(domain.SegmentConfig{ID: id, Enabled: true})

			require.NoError(t, err)
			assert.Equal(t, id, segment.ID())
		})
	}

	_, err := factory.New(domain.SegmentConfig{ID: "weather"})
	assert.ErrorIs(t, err, domain.ErrUnknownSegment)
}
