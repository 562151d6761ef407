package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/syllabus/internal/domain"
	"github.com/charmbracelet/lipgloss"
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

// Heat-map shades from empty (0) to busiest (4), green ramp.
var heatColors = []lipgloss.Color{
	lipgloss.Color("#3c3836"),
	lipgloss.Color("#4f6b3a"),
	lipgloss.Color("#6f8f3f"),
	lipgloss.Color("#98971a"),
	lipgloss.Color("#b8bb26"),
}

// HeatStyle returns the cell style for a heat level; out-of-range levels clamp.
func HeatStyle(level int) lipgloss.Style {
	if level < 0 {
		level = 0
	}
	if level >= len(heatColors) {
		level = len(heatColors) - 1
	}
	style := lipgloss.NewStyle().Foreground(ColorFg).Background(heatColors[level])
	if level == 0 {
		style = style.Foreground(ColorDim)
	}
	return style
}

// PlanningStatusPill returns a colored indicator for a planning status.
func PlanningStatusPill(status domain.PlanningStatus) string {
	switch status {
	case domain.PlanningScheduled:
		return StyleGreen.Render("● Scheduled")
	case domain.PlanningHistory:
		return StyleDim.Render("✔ History")
	default:
		return StyleDim.Render(string(status))
	}
}

// UnitStatusPill returns a colored indicator for a unit log status.
func UnitStatusPill(status domain.UnitStatus) string {
	switch status {
	case domain.UnitCompleted:
		return StyleGreen.Render("✔ Completed")
	case domain.UnitInProgress:
		return StyleYellow.Render("● In progress")
	case "":
		return StyleDim.Render("--")
	default:
		return StyleDim.Render(string(status))
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
