package dashboard

import (
	"strings"

	"github.com/rileyhilliard/yoinky/internal/layout"
)

// Paint renders a composed tree to exactly Area.Height lines of
// Area.Width cells each. Empty regions contribute nothing.
func Paint(root *Node) string {
	return strings.Join(paintNode(root), "\n")
}

func paintNode(n *Node) []string {
	if n == nil || n.Area.Empty() {
		return nil
	}
	w, h := n.Area.Width, n.Area.Height

	if n.Widget != nil {
		return fitBlock(n.Widget.Render(w, h), w, h)
	}

	var lines []string
	if n.Direction == layout.Horizontal {
		lines = make([]string, h)
		for _, c := range n.Children {
			block := paintNode(c)
			if block == nil {
				continue
			}
			for i := range lines {
				if i < len(block) {
					lines[i] += block[i]
				}
			}
		}
	} else {
		for _, c := range n.Children {
			lines = append(lines, paintNode(c)...)
		}
	}
	return fitBlock(lines, w, h)
}
