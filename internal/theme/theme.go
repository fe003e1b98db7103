package theme

import (
	"fmt"
	"sort"

	"ccline/internal/domain"
)

// DefaultName is the theme used when none is configured
const DefaultName = "default"

// SegmentStyle holds the render rules for one segment
type SegmentStyle struct {
	Background     Color
	Bold           bool
	Icon           string
	IconColor      Color
	SecondaryColor Color
	TextColor      Color
}

// Theme is a named set of render rules keyed by segment
type Theme struct {
	Name           string
	Segments       map[domain.SegmentID]SegmentStyle
	Separator      string
	SeparatorColor Color
}

// Style returns the style for id, or a plain style when the theme has none
func (t Theme) Style(id domain.SegmentID) SegmentStyle {
	if s, ok := t.Segments[id]; ok {
		return s
	}
	return SegmentStyle{TextColor: ColorNormal}
}

var presets = map[string]func() Theme{
	"default": defaultTheme,
	"minimal": minimalTheme,
	"nerd":    nerdTheme,
	"block":   blockTheme,
}

// Get returns the built-in theme with the given name
func Get(name string) (Theme, error) {
	build, ok := presets[name]
	if !ok {
		return Theme{}, fmt.Errorf("%w: %q", domain.ErrUnknownTheme, name)
	}
	return build(), nil
}

// Names lists the built-in themes in alphabetical order
func Names() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func defaultTheme() Theme {
	return Theme{
		Name:           "default",
		Separator:      " | ",
		SeparatorColor: ColorMuted,
		Segments: map[domain.SegmentID]SegmentStyle{
			domain.SegmentModel:         {Icon: "🤖", IconColor: ColorModel, TextColor: ColorModel, Bold: true},
			domain.SegmentDirectory:     {Icon: "📁", IconColor: ColorDirectory, TextColor: ColorDirectory},
			domain.SegmentGit:           {Icon: "🌿", IconColor: ColorGit, TextColor: ColorGit, SecondaryColor: ColorSubtle},
			domain.SegmentContextWindow: {Icon: "⚡", IconColor: ColorContext, TextColor: ColorContext, SecondaryColor: ColorSubtle},
			domain.SegmentSession:       {Icon: "⏱", IconColor: ColorSession, TextColor: ColorSession, SecondaryColor: ColorSubtle},
			domain.SegmentOutputStyle:   {Icon: "🎯", IconColor: ColorStyle, TextColor: ColorStyle},
			domain.SegmentCost:          {Icon: "💰", IconColor: ColorCost, TextColor: ColorCost, SecondaryColor: ColorSubtle},
		},
	}
}

func minimalTheme() Theme {
	return Theme{
		Name:           "minimal",
		Separator:      " · ",
		SeparatorColor: ColorMuted,
		Segments: map[domain.SegmentID]SegmentStyle{
			domain.SegmentModel:         {TextColor: ColorNormal},
			domain.SegmentDirectory:     {TextColor: ColorNormal},
			domain.SegmentGit:           {TextColor: ColorNormal, SecondaryColor: ColorMuted},
			domain.SegmentContextWindow: {TextColor: ColorNormal, SecondaryColor: ColorMuted},
			domain.SegmentSession:       {TextColor: ColorNormal, SecondaryColor: ColorMuted},
			domain.SegmentOutputStyle:   {TextColor: ColorNormal},
			domain.SegmentCost:          {TextColor: ColorNormal, SecondaryColor: ColorMuted},
		},
	}
}

// nerdTheme needs a Nerd Font patched terminal font
func nerdTheme() Theme {
	return Theme{
		Name:           "nerd",
		Separator:      "  ",
		SeparatorColor: ColorMuted,
		Segments: map[domain.SegmentID]SegmentStyle{
			domain.SegmentModel:         {Icon: "\uf2db", IconColor: ColorModel, TextColor: ColorModel, Bold: true},
			domain.SegmentDirectory:     {Icon: "\uf07b", IconColor: ColorDirectory, TextColor: ColorDirectory},
			domain.SegmentGit:           {Icon: "\ue725", IconColor: ColorGit, TextColor: ColorGit, SecondaryColor: ColorSubtle},
			domain.SegmentContextWindow: {Icon: "\uf0e4", IconColor: ColorContext, TextColor: ColorContext, SecondaryColor: ColorSubtle},
			domain.SegmentSession:       {Icon: "\uf017", IconColor: ColorSession, TextColor: ColorSession, SecondaryColor: ColorSubtle},
			domain.SegmentOutputStyle:   {Icon: "\uf1fc", IconColor: ColorStyle, TextColor: ColorStyle},
			domain.SegmentCost:          {Icon: "\uf0d6", IconColor: ColorCost, TextColor: ColorCost, SecondaryColor: ColorSubtle},
		},
	}
}

func blockTheme() Theme {
	t := nerdTheme()
	t.Name = "block"
	t.Separator = " "
	for id, s := range t.Segments {
		s.Background = ColorBackgroundDark
		s.SecondaryColor = ColorNormal
		t.Segments[id] = s
	}
	return t
}
