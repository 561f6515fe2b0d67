// Package graph is the retained render-graph contract the scroll core
// draws against: nested groups with a translation and an optional
// scissor rect, plus rectangle, rounded-rectangle and text primitives.
// Nodes are modified in place by id; a Pusher commits the whole graph
// to the display.
package graph

import "scrollkit/geometry"

type NodeID string

type Node interface {
	node()
}

// Group translates and optionally clips its children. Children render
// in group-local coordinates.
type Group struct {
	ID        NodeID
	Translate geometry.Vector2
	Scissor   *geometry.Rect
	Children  []Node
}

func (*Group) node() {}

type Rect struct {
	ID     NodeID
	Bounds geometry.Rect
	Style  Style
}

func (*Rect) node() {}

type RoundedRect struct {
	ID     NodeID
	Bounds geometry.Rect
	Radius float64
	Style  Style
}

func (*RoundedRect) node() {}

type Text struct {
	ID       NodeID
	Position geometry.Vector2
	Text     string
	Style    Style
}

func (*Text) node() {}

// Style carries palette colors, matching the terminal backend.
type Style struct {
	FG, BG byte
}

type Graph struct {
	Root *Group
}

func New(rootID NodeID) *Graph {
	return &Graph{Root: &Group{ID: rootID}}
}

// Pusher commits the current graph to the display. Implementations
// must stay cheap; the scroll core pushes many times per second.
type Pusher interface {
	Push(*Graph)
}

// Find returns the node with the given id, depth first, or nil.
func (g *Graph) Find(id NodeID) Node {
	return find(g.Root, id)
}

// Modify applies fn to the node with the given id. Reports whether the
// node was found.
func (g *Graph) Modify(id NodeID, fn func(Node)) bool {
	n := g.Find(id)
	if n == nil {
		return false
	}
	fn(n)
	return true
}

func find(n Node, id NodeID) Node {
	switch n := n.(type) {
	case *Group:
		if n.ID == id {
			return n
		}
		for _, child := range n.Children {
			if found := find(child, id); found != nil {
				return found
			}
		}
	case *Rect:
		if n.ID == id {
			return n
		}
	case *RoundedRect:
		if n.ID == id {
			return n
		}
	case *Text:
		if n.ID == id {
			return n
		}
	}
	return nil
}

// Clone deep-copies the graph so a snapshot can cross into a renderer
// mailbox while the owner keeps mutating the original.
func (g *Graph) Clone() *Graph {
	return &Graph{Root: cloneGroup(g.Root)}
}

func cloneGroup(grp *Group) *Group {
	out := &Group{ID: grp.ID, Translate: grp.Translate}
	if grp.Scissor != nil {
		scissor := *grp.Scissor
		out.Scissor = &scissor
	}
	out.Children = make([]Node, len(grp.Children))
	for i, child := range grp.Children {
		out.Children[i] = cloneNode(child)
	}
	return out
}

func cloneNode(n Node) Node {
	switch n := n.(type) {
	case *Group:
		return cloneGroup(n)
	case *Rect:
		c := *n
		return &c
	case *RoundedRect:
		c := *n
		return &c
	case *Text:
		c := *n
		return &c
	}
	return nil
}
