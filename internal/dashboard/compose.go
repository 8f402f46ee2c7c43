package dashboard

import (
	"fmt"
	"math"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/yoinky/internal/layout"
	"github.com/rileyhilliard/yoinky/internal/metrics"
)

const (
	// Title is shown centred at the top of the screen.
	Title = "YOINKY :: SYSTEM MONITOR"

	// Unavailable replaces any metric that could not be read this tick.
	Unavailable = "N/A"

	titleHeight  = 3
	footerHeight = 2
)

// Panel titles
const (
	PanelCPU  = "CPU"
	PanelRAM  = "RAM"
	PanelGPU  = "GPU"
	PanelDisk = "DISK"
)

// ComposeOptions carries the bits of configuration that show up on screen.
type ComposeOptions struct {
	QuitKey string
}

// Node is one region of the screen. Branches split their Area among
// Children along Direction; leaves carry a Widget.
type Node struct {
	Area      layout.Rect
	Direction layout.Direction
	Children  []*Node
	Widget    Widget
}

// Compose lays out frame inside area. It is deterministic: the same frame
// and area always give the same tree.
func Compose(frame metrics.Frame, area layout.Rect, opts ComposeOptions) *Node {
	quitKey := opts.QuitKey
	if quitKey == "" {
		quitKey = DefaultQuitKey
	}

	rows := layout.Split(area, layout.Vertical, 0,
		layout.Length(titleHeight), layout.Min(0), layout.Length(footerHeight))
	halves := layout.Split(rows[1], layout.Vertical, 0,
		layout.Percentage(50), layout.Percentage(50))
	top := layout.Split(halves[0], layout.Horizontal, 0,
		layout.Percentage(50), layout.Percentage(50))
	bottom := layout.Split(halves[1], layout.Horizontal, 0,
		layout.Percentage(50), layout.Percentage(50))

	title := &Paragraph{
		Lines: []string{"", TitleStyle.Render(Title)},
		Align: lipgloss.Center,
	}
	footer := &Paragraph{
		Lines: []string{FooterStyle.Render(fmt.Sprintf("Press '%s' to quit", quitKey))},
		Align: lipgloss.Center,
	}

	return &Node{
		Area:      area,
		Direction: layout.Vertical,
		Children: []*Node{
			{Area: rows[0], Widget: title},
			{
				Area:      rows[1],
				Direction: layout.Vertical,
				Children: []*Node{
					{
						Area:      halves[0],
						Direction: layout.Horizontal,
						Children: []*Node{
							{Area: top[0], Widget: cpuPanel(frame)},
							{Area: top[1], Widget: ramPanel(frame)},
						},
					},
					{
						Area:      halves[1],
						Direction: layout.Horizontal,
						Children: []*Node{
							{Area: bottom[0], Widget: gpuPanel(frame)},
							{Area: bottom[1], Widget: diskPanel(frame)},
						},
					},
				},
			},
			{Area: rows[2], Widget: footer},
		},
	}
}

func cpuPanel(f metrics.Frame) *Panel {
	temp := unavailable()
	if f.CPUTemp != nil {
		temp = value(formatCelsius(*f.CPUTemp), TempStyle)
	}

	usage := unavailable()
	ratio := 0.0
	if f.CPUUsage != nil {
		usage = value(fmt.Sprintf("%.1f%%", *f.CPUUsage), ValueStyle)
		ratio = GaugeRatio(*f.CPUUsage, true)
	}

	return &Panel{
		Title: PanelCPU,
		Color: ColorCPU,
		Items: []Item{
			{Label: "Cores: ", Value: value(fmt.Sprintf("%d", f.CPUCores), ValueStyle)},
			{Label: "Temp: ", Value: temp},
			{Label: "Usage: ", Value: usage, Gauge: true, Ratio: ratio},
		},
	}
}

func ramPanel(f metrics.Frame) *Panel {
	text := unavailable()
	ratio := 0.0
	if f.RAM != nil {
		text = value(fmt.Sprintf("%.1f MB / %.1f MB", float64(f.RAM.UsedMB), float64(f.RAM.TotalMB)), ValueStyle)
		ratio = usedRatio(float64(f.RAM.UsedMB), float64(f.RAM.TotalMB))
	}
	return &Panel{
		Title: PanelRAM,
		Color: ColorRAM,
		Items: []Item{{Value: text, Gauge: true, Ratio: ratio}},
	}
}

func gpuPanel(f metrics.Frame) *Panel {
	temp := unavailable()
	if f.GPU != nil {
		temp = value(formatCelsius(f.GPU.TemperatureC), TempStyle)
	}
	return &Panel{
		Title: PanelGPU,
		Color: ColorGPU,
		Align: lipgloss.Center,
		Items: []Item{
			{Label: "Type: ", Value: value(f.GPUVendor.String(), ValueStyle)},
			{Label: "Temp: ", Value: temp},
		},
	}
}

func diskPanel(f metrics.Frame) *Panel {
	text := unavailable()
	ratio := 0.0
	if f.Disk != nil {
		text = value(fmt.Sprintf("%.1f GB / %.1f GB", f.Disk.UsedGB, f.Disk.TotalGB), ValueStyle)
		ratio = usedRatio(f.Disk.UsedGB, f.Disk.TotalGB)
	}
	return &Panel{
		Title: PanelDisk,
		Color: ColorDisk,
		Items: []Item{{Value: text, Gauge: true, Ratio: ratio}},
	}
}

// GaugeRatio maps a percentage to a gauge fill in [0, 1]. Absent, NaN and
// out-of-range values show an empty gauge rather than a clamped full one.
func GaugeRatio(percent float64, ok bool) float64 {
	if !ok || math.IsNaN(percent) || percent < 0 || percent > 100 {
		return 0
	}
	return percent / 100
}

func usedRatio(used, total float64) float64 {
	if total <= 0 {
		return 0
	}
	return GaugeRatio(used/total*100, true)
}

func formatCelsius(c float64) string {
	return fmt.Sprintf("%.1f °C", c)
}

func unavailable() Text {
	return value(Unavailable, UnavailableStyle)
}

func value(s string, style lipgloss.Style) Text {
	return Text{Plain: s, Style: style}
}
