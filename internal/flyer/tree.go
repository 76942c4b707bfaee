// Package flyer implements the poster generation engine: style inference,
// layout profiles, procedural decorations, a declarative layout tree, and
// rasterization to a fixed 1080x1350 bitmap with a derived single-page PDF.
package flyer

import "image"

// Canvas dimensions. The design resolution and the output resolution are the
// same; there is no separate scale step.
const (
	CanvasWidth  = 1080
	CanvasHeight = 1350
)

// NodeKind discriminates layout tree nodes.
type NodeKind int

const (
	NodeBox NodeKind = iota
	NodeText
	NodeImage
)

// Shape selects the outline drawn for a box node.
type Shape int

const (
	ShapeRect Shape = iota
	ShapeEllipse
)

// Align positions text within its node width.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Node is one element of the declarative layout tree. Coordinates are
// absolute canvas pixels. A node is a container (NodeBox, with optional fill,
// stroke and children), a text leaf, or an image leaf. The tree is the sole
// input to rasterization and is never persisted.
type Node struct {
	Kind NodeKind

	X, Y, W, H float64

	// Box styling.
	Shape       Shape
	Fill        string // hex, "" = no fill
	Gradient    *Gradient
	Stroke      string
	StrokeWidth float64
	Dash        []float64
	Radius      float64 // corner radius for rects
	Rotation    float64 // degrees, about the node center

	// Text styling. Every text node must carry a resolved font role; the
	// rasterizer has no default-font concept.
	Text       string
	Role       FontRole
	Size       float64
	Bold       bool
	Italic     bool
	Color      string
	Align      Align
	LineHeight float64

	// Image payload, already decoded.
	Image image.Image

	Children []*Node
}

// Gradient is a two-stop linear gradient drawn top to bottom across the node.
type Gradient struct {
	From string
	To   string
}

func box(x, y, w, h float64) *Node {
	return &Node{Kind: NodeBox, X: x, Y: y, W: w, H: h}
}

func text(s string, x, y, w float64) *Node {
	return &Node{Kind: NodeText, Text: s, X: x, Y: y, W: w, LineHeight: 1.3}
}

// CountNodes returns the total number of nodes in the tree rooted at n.
func CountNodes(n *Node) int {
	if n == nil {
		return 0
	}
	total := 1
	for _, c := range n.Children {
		total += CountNodes(c)
	}
	return total
}

// WalkText calls fn for every text node in the tree rooted at n.
func WalkText(n *Node, fn func(*Node)) {
	if n == nil {
		return
	}
	if n.Kind == NodeText {
		fn(n)
	}
	for _, c := range n.Children {
		WalkText(c, fn)
	}
}
