package domain

import (
	"fmt"
	"strings"
)

// SegmentID identifies a kind of status line segment
type SegmentID string

const (
	SegmentContextWindow SegmentID = "context_window"
	SegmentCost          SegmentID = "cost"
	SegmentDirectory     SegmentID = "directory"
	SegmentGit           SegmentID = "git"
	SegmentModel         SegmentID = "model"
	SegmentOutputStyle   SegmentID = "output_style"
	SegmentSession       SegmentID = "session"
)

// AllSegmentIDs lists every known segment in default render order
var AllSegmentIDs = []SegmentID{
	SegmentModel,
	SegmentDirectory,
	SegmentGit,
	SegmentContextWindow,
	SegmentSession,
	SegmentOutputStyle,
	SegmentCost,
}

// Valid reports whether id is one of the known segment kinds
func (id SegmentID) Valid() bool {
	for _, known := range AllSegmentIDs {
		if id == known {
			return true
		}
	}
	return false
}

func (id SegmentID) String() string {
	return string(id)
}

// ParseSegmentID converts a configuration string to a SegmentID
func ParseSegmentID(s string) (SegmentID, error) {
	id := SegmentID(strings.ToLower(strings.TrimSpace(s)))
	if !id.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownSegment, s)
	}
	return id, nil
}

// StyleOverride holds optional per-segment render settings that win over the theme
type StyleOverride struct {
	Background string
	Bold       *bool
	Icon       string
	IconColor  string
	TextColor  string
}

// SegmentConfig is one configured segment. Order in the configuration is render order.
type SegmentConfig struct {
	Enabled bool
	ID      SegmentID
	Options Options
	Style   StyleOverride
}

// SegmentResult is the data produced by a segment that has something to show
type SegmentResult struct {
	Metadata  map[string]string
	Primary   string
	Secondary string
}

// SegmentOutput is a result tagged with the segment that produced it
type SegmentOutput struct {
	ID     SegmentID
	Result SegmentResult
}
