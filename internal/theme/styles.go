package theme

import "github.com/charmbracelet/lipgloss"

// IconStyle returns the style for the segment icon
func (s SegmentStyle) IconStyle(r *lipgloss.Renderer) lipgloss.Style {
	return s.base(r).Foreground(s.IconColor)
}

// TextStyle returns the style for the primary text
func (s SegmentStyle) TextStyle(r *lipgloss.Renderer) lipgloss.Style {
	return s.base(r).
		Foreground(s.TextColor).
		Bold(s.Bold)
}

// SecondaryStyle returns the style for the secondary text
func (s SegmentStyle) SecondaryStyle(r *lipgloss.Renderer) lipgloss.Style {
	color := s.SecondaryColor
	if color == "" {
		color = s.TextColor
	}
	return s.base(r).Foreground(color)
}

// GapStyle styles the spaces between icon, primary and secondary text
func (s SegmentStyle) GapStyle(r *lipgloss.Renderer) lipgloss.Style {
	return s.base(r)
}

// SeparatorStyle returns the style for the separator between segments
func (t Theme) SeparatorStyle(r *lipgloss.Renderer) lipgloss.Style {
	return r.NewStyle().Foreground(t.SeparatorColor)
}

func (s SegmentStyle) base(r *lipgloss.Renderer) lipgloss.Style {
	style := r.NewStyle()
	if s.Background != "" {
		style = style.Background(s.Background)
	}
	return style
}
