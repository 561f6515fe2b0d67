// Package content turns text into a measured block of graph nodes for
// use as scrollable content.
package content

import (
	"strconv"
	"strings"

	"github.com/muesli/ansi"

	"scrollkit/geometry"
	"scrollkit/graph"
)

// Measure returns the bounding box of the lines, one cell per printed
// column and one per line. ANSI escape sequences do not count toward
// the width.
func Measure(lines []string) geometry.Rect {
	width := 0
	for _, line := range lines {
		if w := ansi.PrintableRuneWidth(line); w > width {
			width = w
		}
	}
	return geometry.Rect{Width: float64(width), Height: float64(len(lines))}
}

// Nodes lays the lines out as text nodes, one per line, at
// content-local coordinates.
func Nodes(lines []string, style graph.Style) []graph.Node {
	nodes := make([]graph.Node, 0, len(lines))
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		nodes = append(nodes, &graph.Text{
			ID:       graph.NodeID("line-" + strconv.Itoa(i)),
			Position: geometry.Vector2{Y: float64(i)},
			Text:     line,
			Style:    style,
		})
	}
	return nodes
}
