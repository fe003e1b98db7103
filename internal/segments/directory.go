package segments

import (
	"context"
	"path/filepath"

	"github.com/mattn/go-runewidth"

	"ccline/internal/config"
	"ccline/internal/domain"
)

const ellipsis = "…"

// DirectorySegment shows the directory the session works in
type DirectorySegment struct {
	fullPath bool
	maxWidth int
}

// NewDirectorySegment reads full_path and max_width from opts
func NewDirectorySegment(opts domain.Options) *DirectorySegment {
	return &DirectorySegment{
		fullPath: opts.BoolOr(domain.OptionFullPath, false),
		maxWidth: int(opts.IntOr(domain.OptionMaxWidth, 0)),
	}
}

func (s *DirectorySegment) ID() domain.SegmentID { return domain.SegmentDirectory }

func (s *DirectorySegment) Collect(_ context.Context, snap *domain.SessionSnapshot) (domain.SegmentResult, bool) {
	dir := snap.WorkingDir()
	if dir == "" {
		return domain.SegmentResult{}, false
	}

	display := filepath.Base(dir)
	if s.fullPath {
		display = config.AbbreviateHome(dir)
	}
	display = truncateWidth(display, s.maxWidth)

	return domain.SegmentResult{
		Primary:  display,
		Metadata: map[string]string{"path": dir},
	}, true
}

// truncateWidth cuts s to at most width terminal cells, ending with an ellipsis.
// A non-positive width disables truncation.
func truncateWidth(s string, width int) string {
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, ellipsis)
}
