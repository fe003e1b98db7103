package config

import (
	"ccline/internal/domain"
)

// OptionSpec describes one option understood by a segment
type OptionSpec struct {
	Default     string
	Description string
	Key         string
	Kind        domain.ValueKind
}

// SegmentMeta describes a segment kind for `config meta`
type SegmentMeta struct {
	Description string
	ID          domain.SegmentID
	Options     []OptionSpec
}

var segmentMeta = map[domain.SegmentID]SegmentMeta{
	domain.SegmentModel: {
		Description: "Model display name",
	},
	domain.SegmentDirectory: {
		Description: "Current working directory",
		Options: []OptionSpec{
			{Key: domain.OptionFullPath, Kind: domain.KindBool, Default: "false", Description: "Show the full path with home abbreviated as ~"},
			{Key: domain.OptionMaxWidth, Kind: domain.KindInt, Default: "0", Description: "Truncate to this display width (0 disables)"},
		},
	},
	domain.SegmentGit: {
		Description: "Branch, working tree state and upstream divergence",
		Options: []OptionSpec{
			{Key: domain.OptionTimeout, Kind: domain.KindInt, Default: "2", Description: "Seconds allowed for git commands"},
			{Key: domain.OptionShowDiffStats, Kind: domain.KindBool, Default: "false", Description: "Show added and deleted line counts"},
			{Key: domain.OptionShowSHA, Kind: domain.KindBool, Default: "false", Description: "Append the short commit hash"},
		},
	},
	domain.SegmentContextWindow: {
		Description: "Context window usage from the session transcript",
		Options: []OptionSpec{
			{Key: domain.OptionContextLimit, Kind: domain.KindInt, Default: "200000", Description: "Context window size in tokens"},
		},
	},
	domain.SegmentSession: {
		Description: "Session duration and lines changed",
		Options: []OptionSpec{
			{Key: domain.OptionShowLines, Kind: domain.KindBool, Default: "true", Description: "Show added and removed line counts"},
		},
	},
	domain.SegmentOutputStyle: {
		Description: "Active output style",
	},
	domain.SegmentCost: {
		Description: "Today's spend reported by a New API compatible gateway",
		Options: []OptionSpec{
			{Key: domain.OptionBaseURL, Kind: domain.KindString, Description: "Gateway base URL (required)"},
			{Key: domain.OptionUserToken, Kind: domain.KindString, Description: "Access token sent as Bearer (required)"},
			{Key: domain.OptionUserID, Kind: domain.KindString, Description: "Account id sent as New-Api-User (required)"},
			{Key: domain.OptionTokenName, Kind: domain.KindString, Description: "Only count usage of this token"},
			{Key: domain.OptionProvider, Kind: domain.KindString, Description: "Label shown next to the amount"},
			{Key: domain.OptionTimeout, Kind: domain.KindInt, Default: "5", Description: "Request timeout in seconds"},
		},
	},
}

// OptionSpecs returns the options understood by segment id
func OptionSpecs(id domain.SegmentID) []OptionSpec {
	return segmentMeta[id].Options
}

// Meta returns the description of every segment kind in default order
func Meta() []SegmentMeta {
	out := make([]SegmentMeta, 0, len(domain.AllSegmentIDs))
	for _, id := range domain.AllSegmentIDs {
		m := segmentMeta[id]
		m.ID = id
		out = append(out, m)
	}
	return out
}
