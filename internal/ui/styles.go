// Package ui provides the colors, styles and banners used for operator output.
package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme colors (Catppuccin Mocha inspired).
var (
	ColorPrimary = lipgloss.AdaptiveColor{Light: "#1e66f5", Dark: "#89b4fa"} // Blue
	ColorSuccess = lipgloss.AdaptiveColor{Light: "#40a02b", Dark: "#a6e3a1"} // Green
	ColorWarning = lipgloss.AdaptiveColor{Light: "#df8e1d", Dark: "#f9e2af"} // Yellow
	ColorError   = lipgloss.AdaptiveColor{Light: "#d20f39", Dark: "#f38ba8"} // Red
	ColorMuted   = lipgloss.AdaptiveColor{Light: "#6c6f85", Dark: "#6c7086"} // Overlay0
	ColorText    = lipgloss.AdaptiveColor{Light: "#4c4f69", Dark: "#cdd6f4"} // Text
)

// Tone selects the accent color of a banner.
type Tone int

const (
	// ToneInfo is used for opening banners.
	ToneInfo Tone = iota
	// ToneSuccess is used for closing banners.
	ToneSuccess
	// ToneDanger is used for destructive operations.
	ToneDanger
)

// Styles contains reusable lipgloss styles bound to one renderer.
type Styles struct {
	// Log line styles
	Info    lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style

	// Banner styles
	BannerTitle lipgloss.Style
	BannerBody  lipgloss.Style
	Banner      lipgloss.Style
}

// NewStyles returns the default styles for the given renderer. The renderer
// decides whether colors are emitted for its writer.
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Info:    r.NewStyle().Foreground(ColorSuccess),
		Success: r.NewStyle().Foreground(ColorSuccess).Bold(true),
		Warning: r.NewStyle().Foreground(ColorWarning),
		Error:   r.NewStyle().Foreground(ColorError).Bold(true),
		Muted:   r.NewStyle().Foreground(ColorMuted),

		BannerTitle: r.NewStyle().Bold(true),
		BannerBody:  r.NewStyle().Foreground(ColorText),
		Banner: r.NewStyle().
			Border(lipgloss.DoubleBorder()).
			Padding(0, 2).
			Width(BannerWidth),
	}
}

// BannerWidth is the inner width of every banner.
const BannerWidth = 62

// Accent returns the color associated with a tone.
func (t Tone) Accent() lipgloss.AdaptiveColor {
	switch t {
	case ToneSuccess:
		return ColorSuccess
	case ToneDanger:
		return ColorError
	default:
		return ColorPrimary
	}
}
