package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func plainStyles() Styles {
	// A renderer on a buffer detects no terminal and emits no escape codes.
	return NewStyles(lipgloss.NewRenderer(&bytes.Buffer{}))
}

func TestStyles_Render_ContainsAllText(t *testing.T) {
	t.Parallel()

	out := plainStyles().Render(Banner{
		Title:    "SETUP COMPLETE!",
		Subtitle: "Setup Script",
		Lines:    []string{"Backend:  http://localhost:8000", "Run 'devstack cleanup' to remove everything."},
		Tone:     ToneSuccess,
	})

	assert.Contains(t, out, "SETUP COMPLETE!")
	assert.Contains(t, out, "Setup Script")
	assert.Contains(t, out, "http://localhost:8000")
	assert.Contains(t, out, "devstack cleanup")
	assert.NotContains(t, out, "\x1b[", "plain renderer must not emit ANSI codes")
}

func TestStyles_Render_IsBoxed(t *testing.T) {
	t.Parallel()

	out := plainStyles().Render(Banner{Title: "RESTART CONTAINERS"})
	lines := strings.Split(out, "\n")

	assert.GreaterOrEqual(t, len(lines), 3)
	assert.True(t, strings.HasPrefix(lines[0], "╔"), "top border, got %q", lines[0])
	assert.True(t, strings.HasPrefix(lines[len(lines)-1], "╚"), "bottom border, got %q", lines[len(lines)-1])
}

func TestTone_Accent(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ColorPrimary, ToneInfo.Accent())
	assert.Equal(t, ColorSuccess, ToneSuccess.Accent())
	assert.Equal(t, ColorError, ToneDanger.Accent())
}
