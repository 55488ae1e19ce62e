package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Banner is a boxed block of text printed at the start or end of an operation.
type Banner struct {
	Title    string
	Subtitle string
	Lines    []string
	Tone     Tone
}

// Render draws the banner. Title and subtitle are centered, body lines are left aligned.
func (s Styles) Render(b Banner) string {
	accent := b.Tone.Accent()
	box := s.Banner.BorderForeground(accent)

	inner := BannerWidth - box.GetHorizontalPadding()
	center := s.BannerTitle.Foreground(accent).Width(inner).Align(lipgloss.Center)

	var rows []string
	rows = append(rows, center.Render(b.Title))
	if b.Subtitle != "" {
		rows = append(rows, center.Bold(false).Render(b.Subtitle))
	}
	if len(b.Lines) > 0 {
		rows = append(rows, "")
		for _, line := range b.Lines {
			rows = append(rows, s.BannerBody.Render(line))
		}
	}

	return box.Render(strings.Join(rows, "\n"))
}
