package segments

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"ccline/internal/domain"
	"ccline/internal/logging"
	"ccline/internal/ports"
)

// DefaultGitTimeout bounds all git commands of one render
const DefaultGitTimeout = 2 * time.Second

// GitSegment shows branch, working tree state and upstream divergence
type GitSegment struct {
	provider      ports.GitStatusProvider
	showDiffStats bool
	showSHA       bool
	timeout       time.Duration
}

// NewGitSegment creates a GitSegment configured from opts
func NewGitSegment(provider ports.GitStatusProvider, opts domain.Options) *GitSegment {
	timeout := DefaultGitTimeout
	if secs, ok := opts.Int(domain.OptionTimeout); ok && secs > 0 {
		timeout = time.Duration(secs) * time.Second
	}
	return &GitSegment{
		provider:      provider,
		showDiffStats: opts.BoolOr(domain.OptionShowDiffStats, false),
		showSHA:       opts.BoolOr(domain.OptionShowSHA, false),
		timeout:       timeout,
	}
}

func (s *GitSegment) ID() domain.SegmentID { return domain.SegmentGit }

func (s *GitSegment) Collect(ctx context.Context, snap *domain.SessionSnapshot) (domain.SegmentResult, bool) {
	dir := snap.WorkingDir()
	if dir == "" {
		return domain.SegmentResult{}, false
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	status, err := s.provider.FetchStatus(ctx, dir)
	if err != nil {
		if errors.Is(err, domain.ErrNotGitRepo) {
			logging.Logger.Debug("Skipping git segment outside repository", "path", dir)
		} else {
			logging.Logger.Warn("Failed to fetch git status", "path", dir, "error", err)
		}
		return domain.SegmentResult{}, false
	}

	return domain.SegmentResult{
		Primary:   s.primary(status),
		Secondary: s.secondary(status),
		Metadata: map[string]string{
			"ahead":  strconv.Itoa(status.Ahead),
			"behind": strconv.Itoa(status.Behind),
			"branch": status.Branch,
			"commit": status.Commit,
			"dirty":  strconv.FormatBool(status.Dirty()),
		},
	}, true
}

func (s *GitSegment) primary(status *domain.GitStatus) string {
	parts := make([]string, 0, 5)

	switch {
	case status.Branch != "":
		parts = append(parts, status.Branch)
		if s.showSHA && status.Commit != "" {
			parts = append(parts, status.Commit)
		}
	case status.Commit != "":
		parts = append(parts, status.Commit)
	default:
		parts = append(parts, "HEAD")
	}

	switch {
	case status.Conflicted > 0:
		parts = append(parts, domain.SymbolGitConflict)
	case status.Dirty():
		parts = append(parts, domain.SymbolGitDirty)
	default:
		parts = append(parts, domain.SymbolGitClean)
	}

	if status.Ahead > 0 {
		parts = append(parts, domain.SymbolGitAhead+strconv.Itoa(status.Ahead))
	}
	if status.Behind > 0 {
		parts = append(parts, domain.SymbolGitBehind+strconv.Itoa(status.Behind))
	}

	return strings.Join(parts, " ")
}

func (s *GitSegment) secondary(status *domain.GitStatus) string {
	if !s.showDiffStats || (status.Additions == 0 && status.Deletions == 0) {
		return ""
	}
	return fmt.Sprintf("+%d -%d", status.Additions, status.Deletions)
}
