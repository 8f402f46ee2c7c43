package dashboard

import (
	"github.com/charmbracelet/lipgloss"
)

// Widget draws itself into a width x height block. Lines may be shorter
// or fewer than asked for; the painter pads and clips.
type Widget interface {
	Render(width, height int) []string
}

// Text is a styled value that keeps its unstyled form for inspection.
type Text struct {
	Plain string
	Style lipgloss.Style
}

func (t Text) String() string {
	return t.Style.Render(t.Plain)
}

// Paragraph is pre-styled lines with an alignment.
type Paragraph struct {
	Lines []string
	Align lipgloss.Position
}

// Render implements Widget.
func (p *Paragraph) Render(width, height int) []string {
	out := make([]string, 0, len(p.Lines))
	for _, line := range p.Lines {
		out = append(out, lipgloss.PlaceHorizontal(width, p.Align, line))
	}
	return out
}

// Item is one row of a panel. Gauge items draw a bar underneath.
type Item struct {
	Label string
	Value Text
	Gauge bool
	Ratio float64
}

// Panel is a rounded box with its title in the top border.
type Panel struct {
	Title string
	Color lipgloss.Color
	Align lipgloss.Position
	Items []Item
}

// Render implements Widget.
func (p *Panel) Render(width, height int) []string {
	if width <= 0 || height <= 0 {
		return nil
	}

	lines := []string{PanelTop(p.Title, p.Color, width)}
	body := p.body(width - 4)
	for i := 0; i < height-2; i++ {
		content := ""
		if i < len(body) {
			content = body[i]
		}
		lines = append(lines, PanelLine(content, p.Color, width))
	}
	if height >= 2 {
		lines = append(lines, PanelBottom(p.Color, width))
	}
	return lines
}

func (p *Panel) body(width int) []string {
	if width <= 0 {
		return nil
	}
	var out []string
	for _, item := range p.Items {
		line := LabelStyle.Render(item.Label) + item.Value.String()
		out = append(out, lipgloss.PlaceHorizontal(width, p.Align, line))
		if item.Gauge {
			out = append(out, GaugeBar(item.Ratio, p.Color, width))
		}
	}
	return out
}
