package dashboard

import (
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// Dashboard color palette
const (
	// Text colors
	ColorTextSecondary = lipgloss.Color("#B4B4D0")
	ColorTextMuted     = lipgloss.Color("#6B6B8D")

	ColorAccent = lipgloss.Color("#FF2E97") // Neon pink
	ColorValue  = lipgloss.Color("#00FFFF") // Neon cyan
	ColorTemp   = lipgloss.Color("#FFAA00") // Electric amber
	ColorQuit   = lipgloss.Color("#FF0055")

	// Per-panel accents
	ColorCPU  = lipgloss.Color("#5FAFFF")
	ColorRAM  = lipgloss.Color("#FF5C00")
	ColorGPU  = lipgloss.Color("#39FF14")
	ColorDisk = lipgloss.Color("#FF0055")
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorQuit).
			Italic(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorValue).
			Bold(true)

	TempStyle = lipgloss.NewStyle().
			Foreground(ColorTemp)

	// UnavailableStyle marks the placeholder shown for absent metrics.
	UnavailableStyle = lipgloss.NewStyle().
				Foreground(ColorTextMuted)
)

// PanelTop renders the top border with the title set into it.
// Format: ╭─ Title ─────────────────────────────╮
func PanelTop(title string, color lipgloss.Color, width int) string {
	borderStyle := lipgloss.NewStyle().Foreground(color)
	titleStyle := lipgloss.NewStyle().Foreground(color).Bold(true)

	// "╭─ " + title + " " + fill + "╮"
	fillWidth := width - 3 - lipgloss.Width(title) - 1 - 1
	if fillWidth < 0 {
		fillWidth = 0
	}

	return borderStyle.Render("╭─ ") +
		titleStyle.Render(title) +
		borderStyle.Render(" "+strings.Repeat("─", fillWidth)+"╮")
}

// PanelBottom renders the bottom border of a panel.
// Format: ╰────────────────────────────────────╯
func PanelBottom(color lipgloss.Color, width int) string {
	if width < 2 {
		width = 2
	}
	return lipgloss.NewStyle().Foreground(color).Render("╰" + strings.Repeat("─", width-2) + "╯")
}

// PanelLine renders a content line with left and right borders, padded to width.
// Format: │ content                            │
func PanelLine(content string, color lipgloss.Color, width int) string {
	if width < 4 {
		width = 4
	}
	borderStyle := lipgloss.NewStyle().Foreground(color)

	// "│ " on the left and " │" on the right
	inner := fitWidth(content, width-4)
	return borderStyle.Render("│") + " " + inner + " " + borderStyle.Render("│")
}

// GaugeBar renders a filled bar for a ratio in [0, 1].
func GaugeBar(ratio float64, color lipgloss.Color, width int) string {
	if width < 1 {
		return ""
	}
	bar := progress.New(
		progress.WithSolidFill(string(color)),
		progress.WithoutPercentage(),
		progress.WithWidth(width),
	)
	return bar.ViewAs(ratio)
}

// fitWidth truncates or pads s to exactly width cells, ANSI-aware.
func fitWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) > width {
		s = lipgloss.NewStyle().MaxWidth(width).Render(s)
	}
	if pad := width - lipgloss.Width(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}

// fitBlock makes lines exactly height lines of width cells.
func fitBlock(lines []string, width, height int) []string {
	out := make([]string, height)
	for i := range out {
		line := ""
		if i < len(lines) {
			line = lines[i]
		}
		out[i] = fitWidth(line, width)
	}
	return out
}
