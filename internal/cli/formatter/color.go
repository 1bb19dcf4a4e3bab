package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mkoval/plotline/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// TypeBadge returns a colored marker for the node type.
func TypeBadge(t domain.NodeType) string {
	switch t {
	case domain.NodeMilestone:
		return StylePurple.Render("◆ milestone")
	case domain.NodeNormal:
		return StyleBlue.Render("● normal")
	default:
		return StyleDim.Render("● " + string(t))
	}
}

// TodoMark renders a checklist glyph for a todo's completion state.
func TodoMark(completed bool) string {
	if completed {
		return StyleGreen.Render("[x]")
	}
	return StyleDim.Render("[ ]")
}

// Progress renders "done/total" with a color reflecting completion.
func Progress(done, total int) string {
	text := fmt.Sprintf("%d/%d", done, total)
	switch {
	case total == 0:
		return StyleDim.Render("–")
	case done == total:
		return StyleGreen.Render(text)
	case done == 0:
		return StyleRed.Render(text)
	default:
		return StyleYellow.Render(text)
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}
