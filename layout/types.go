// Package layout computes a box for every node of a styled tree, the
// "layout engine" spec.md §1 treats as an external collaborator with a
// fixed interface: given a tree of styled nodes and a measurement
// callback, return a computed box per node. Flex and grid are adapted
// from the teacher's pkg/layout/layout_flex.go and pkg/layout/grid.go,
// generalized from DOM-coupled boxes to a generic styled-item model.
package layout

import "github.com/xiaoxigua1/takumi-go/style"

// AvailableSpaceKind names the three forms of available space a layout
// pass can offer an axis, spec.md §4.8's MinContent/MaxContent/Definite.
type AvailableSpaceKind uint8

const (
	MinContent AvailableSpaceKind = iota
	MaxContent
	Definite
)

// AvailableSpace is one axis's available space during measurement.
type AvailableSpace struct {
	Kind  AvailableSpaceKind
	Value float32 // meaningful when Kind == Definite
}

// DefiniteSpace builds a definite available space of v pixels.
func DefiniteSpace(v float32) AvailableSpace { return AvailableSpace{Kind: Definite, Value: v} }

// Size is a width/height pair in pixels.
type Size struct {
	Width, Height float32
}

// Point is an x/y pixel position.
type Point struct {
	X, Y float32
}

// Rect is an axis-aligned pixel rectangle, origin top-left.
type Rect struct {
	X, Y, Width, Height float32
}

// KnownDimensions carries whichever of width/height the caller already
// pinned down before measurement (e.g. an explicit style width), nil
// meaning "ask the node to figure it out".
type KnownDimensions struct {
	Width, Height *float32
}

// MeasureFunc computes a leaf node's content size given the dimensions
// already known and the space available on each axis, spec.md §4.8's
// measurement contract consumed by the layout engine during its measure
// pass. Implemented by node.Text/node.Image; containers never measure.
type MeasureFunc func(known KnownDimensions, available [2]AvailableSpace) Size

// Layout is the box the engine produces for one node, spec.md §3.5.
// Location is relative to the node's containing block; the renderer
// orchestrator accumulates it into document-absolute coordinates while
// walking the tree (spec.md §4.9a).
type Layout struct {
	Location    Point
	Size        Size
	ContentSize Size
	BorderRect  Rect
	PaddingRect Rect
	MarginRect  Rect
}

// Node is one entry of the layout tree: a styled box with children
// and/or a measurement callback. The renderer orchestrator builds this
// tree from the node.Node sum type, lowering each style.Style to a
// style.LayoutStyle per spec.md §4.9.1.
type Node struct {
	Style    style.LayoutStyle
	Children []*Node
	Measure  MeasureFunc // nil for containers

	// Layout is filled in by Engine.Compute; zero until then.
	Layout Layout
}

// Engine computes a Layout for every node in a tree rooted at root,
// given the outer available space (normally the viewport size, both
// Definite). Spec.md §6.1's "layout engine" consumed by Render().
type Engine interface {
	Compute(root *Node, available [2]AvailableSpace) error
}

// DefaultEngine is the flex/grid layout engine shipped with this
// package; spec.md §1 scopes "the low-level flex/grid solver" out of
// the core's hard engineering, but something has to implement it, so
// this lives alongside rather than inside the core packages.
type DefaultEngine struct{}

// Compute implements Engine by dispatching on the root's display value.
func (DefaultEngine) Compute(root *Node, available [2]AvailableSpace) error {
	computeNode(root, available)
	return nil
}

// computeNode resolves one node's box (and recursively its subtree) and
// stores the result on node.Layout. available is the space offered to
// this node by its parent.
func computeNode(n *Node, available [2]AvailableSpace) {
	if n.Measure != nil {
		size := measureLeaf(n, available)
		n.Layout = boxFromContentSize(n, size, available)
		return
	}

	switch n.Style.Display {
	case style.DisplayGrid:
		computeGrid(n, available)
	default:
		computeFlex(n, available)
	}
}

// resolveAxis turns a LoweredLength into a definite pixel value
// against the available space on that axis, or reports indefinite.
func resolveAxis(l style.LoweredLength, avail AvailableSpace) (float32, bool) {
	switch l.Kind {
	case style.LoweredLength_:
		return l.PxValue, true
	case style.LoweredPercentage:
		if avail.Kind == Definite {
			return l.Percentage * avail.Value, true
		}
		return 0, false
	default:
		return 0, false
	}
}

func clampSize(v, min, max float32, hasMin, hasMax bool) float32 {
	if hasMin && v < min {
		v = min
	}
	if hasMax && v > max {
		v = max
	}
	return v
}

func maybeAxis(l style.LoweredLength, avail AvailableSpace) (float32, bool) {
	return resolveAxis(l, avail)
}
