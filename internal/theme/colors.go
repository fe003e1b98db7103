package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Segment accent colors (ANSI 256)
const (
	ColorContext   Color = "213" // Pink
	ColorCost      Color = "214" // Orange
	ColorDirectory Color = "39"  // Blue
	ColorGit       Color = "114" // Green
	ColorModel     Color = "141" // Purple
	ColorSession   Color = "180" // Tan
	ColorStyle     Color = "117" // Light cyan
)

// Semantic colors
const (
	ColorMuted     Color = "241" // Gray - separators, secondary text
	ColorNormal    Color = "250" // Default text
	ColorSubtle    Color = "245" // Light gray - secondary text
	ColorHighlight Color = "255" // White - emphasis
)

// Powerline-style backgrounds
const (
	ColorBackgroundDark  Color = "236"
	ColorBackgroundLight Color = "238"
)
