package scrollbar

import (
	"scrollkit/events"
	"scrollkit/geometry"
	"scrollkit/graph"
)

// Local/world mapping. Local is the slider's own pixel coordinate
// along its track; world is the corresponding content scroll position.
// The two are exact inverses within the unclamped track range.
func (b *ScrollBar) localToWorld(local float64) float64 {
	return -(local - b.btnSize) / b.widthFactor
}

func (b *ScrollBar) worldToLocal(world float64) float64 {
	return -world*b.widthFactor + b.btnSize
}

// setLocal moves the slider to the capped local coordinate and derives
// the world position from it.
func (b *ScrollBar) setLocal(local float64) {
	capped := b.localCap.Cap(b.axisVec(local))
	b.position = geometry.Tag(b.localToWorld(b.along(capped)), b.axis)
}

// local is the slider's current track coordinate.
func (b *ScrollBar) local() float64 {
	return b.worldToLocal(b.position.Value)
}

// along picks the along-axis coordinate out of a bar-local point.
func (b *ScrollBar) along(p geometry.Vector2) float64 {
	if b.axis == geometry.Horizontal {
		return p.X
	}
	return p.Y
}

// axisVec places v in the along-axis slot.
func (b *ScrollBar) axisVec(v float64) geometry.Vector2 {
	if b.axis == geometry.Horizontal {
		return geometry.Vector2{X: v}
	}
	return geometry.Vector2{Y: v}
}

func (b *ScrollBar) rect(along, length float64) geometry.Rect {
	if b.axis == geometry.Horizontal {
		return geometry.Rect{X: along, Width: length, Height: b.thickness}
	}
	return geometry.Rect{Y: along, Width: b.thickness, Height: length}
}

func (b *ScrollBar) sliderRect() geometry.Rect {
	return b.rect(b.local(), b.sliderLen)
}

func (b *ScrollBar) leadingRect() geometry.Rect {
	if b.btnSize == 0 {
		return geometry.Rect{}
	}
	return b.rect(0, b.btnSize)
}

func (b *ScrollBar) trailingRect() geometry.Rect {
	if b.btnSize == 0 {
		return geometry.Rect{}
	}
	return b.rect(b.span-b.btnSize, b.btnSize)
}

func (b *ScrollBar) trackRect() geometry.Rect {
	return b.rect(b.btnSize, b.trackLen)
}

// sliderOrigin is the slider's bar-local position, the entity position
// a drag starts from.
func (b *ScrollBar) sliderOrigin() geometry.Vector2 {
	return b.axisVec(b.local())
}

func (b *ScrollBar) sliderNodeID() graph.NodeID {
	return graph.NodeID(b.id + "/slider")
}

// sliderOffset tells the graph owner where the slider node sits now.
func (b *ScrollBar) sliderOffset() events.SliderOffset {
	return events.SliderOffset{ID: string(b.sliderNodeID()), Offset: b.sliderOrigin()}
}

// BuildGraph renders the bar's static sub-graph in bar-local
// coordinates: track background, optional step buttons with arrow
// glyphs, and the slider wrapped in a group whose translation the
// owner moves by id. Build once at mount; only the slider group
// changes afterwards.
func (b *ScrollBar) BuildGraph(styles Styles) *graph.Group {
	group := &graph.Group{ID: graph.NodeID(b.id)}
	group.Children = append(group.Children, &graph.Rect{
		ID:     graph.NodeID(b.id + "/track"),
		Bounds: b.trackRect(),
		Style:  styles.Track,
	})
	if b.btnSize > 0 {
		leadGlyph, trailGlyph := "<", ">"
		if b.axis == geometry.Vertical {
			leadGlyph, trailGlyph = "^", "v"
		}
		group.Children = append(group.Children,
			&graph.Rect{ID: graph.NodeID(b.id + "/button-leading"), Bounds: b.leadingRect(), Style: styles.Slider},
			&graph.Text{
				ID:       graph.NodeID(b.id + "/button-leading-glyph"),
				Position: geometry.Vector2{X: b.leadingRect().X, Y: b.leadingRect().Y},
				Text:     leadGlyph,
				Style:    styles.Slider,
			},
			&graph.Rect{ID: graph.NodeID(b.id + "/button-trailing"), Bounds: b.trailingRect(), Style: styles.Slider},
			&graph.Text{
				ID:       graph.NodeID(b.id + "/button-trailing-glyph"),
				Position: geometry.Vector2{X: b.trailingRect().X, Y: b.trailingRect().Y},
				Text:     trailGlyph,
				Style:    styles.Slider,
			},
		)
	}
	group.Children = append(group.Children, &graph.Group{
		ID:        b.sliderNodeID(),
		Translate: b.sliderOrigin(),
		Children: []graph.Node{
			&graph.RoundedRect{
				ID:     graph.NodeID(b.id + "/slider-shape"),
				Bounds: b.rect(0, b.sliderLen),
				Radius: styles.Radius,
				Style:  styles.Slider,
			},
		},
	})
	return group
}
