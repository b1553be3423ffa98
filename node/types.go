// Package node implements the Container/Text/Image sum type spec.md
// §3.4 describes: a tree of styled boxes the renderer consumes once,
// each variant sharing the same paint-order protocol (§4.9c) and
// contributing its own measurement rule to the layout engine's measure
// pass (§4.10). Grounded on the teacher's pkg/html node tree shape,
// generalized from DOM elements to the three closed variants the spec
// allows.
package node

import (
	"github.com/xiaoxigua1/takumi-go/style"
	"github.com/xiaoxigua1/takumi-go/text"
)

// Kind discriminates Node's variant.
type Kind uint8

const (
	KindContainer Kind = iota
	KindText
	KindImage
)

// Node is the sum type `Container{style, children} | Text{style, text}
// | Image{style, src, width?, height?}` from spec.md §3.4, represented
// as one struct with Kind-gated fields rather than an interface
// hierarchy, since every variant shares the same Style field and the
// renderer dispatches on Kind anyway for draw order.
type Node struct {
	Kind  Kind
	Style style.Style

	// Container
	Children []*Node

	// Text
	Text string

	// Image. Width/Height are the optional intrinsic-size hints spec.md
	// §3.4 allows on the Image variant (the HTML width/height-attribute
	// analogue), distinct from the Style.Width/Style.Height box-sizing
	// properties; nil means "ask the image store".
	Src           string
	Width, Height *float32

	// resolvedFont/laidOut cache the text measurement pass's results for
	// the paint pass that follows it, spec.md §3.4's "consumed once by
	// the renderer" lifecycle — a Node tree is single-use, so caching on
	// the node itself (rather than threading a side table through the
	// renderer) is safe.
	resolvedFont style.FontStyle
	laidOut      *text.LaidOutLayout
}
