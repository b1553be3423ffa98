// Package core holds the small pieces of shared state that flow through
// every stage of a render: the viewport, the caller-owned resource
// handles (font service, image store), and the per-node render context
// built while walking the style/layout tree.
package core

// Viewport describes the canvas being rendered into and the root font
// size used to resolve rem units.
type Viewport struct {
	Width        uint32
	Height       uint32
	RootFontSize float32
}

// FontService is the external collaborator that shapes text into
// positioned glyphs and rasterizes glyph outlines/bitmaps. The core
// never parses font files itself; see the text package for the
// interface this is assignable to.
type FontService interface{}

// ImageStore is the external collaborator that resolves image sources
// (URLs, data URIs) to decoded bitmaps or parsed SVG trees. The core
// never performs network or filesystem I/O itself; see the imagestore
// package for the interface this is assignable to.
type ImageStore interface{}

// GlobalContext bundles the resources a caller owns for the lifetime of
// one or more renders: the font database, the image store, and a couple
// of debug toggles. It is never mutated by the renderer.
type GlobalContext struct {
	FontService FontService
	ImageStore  ImageStore

	// Debug makes the canvas loop print every draw command to stdout
	// (fmt.Println) as it executes it; off by default, matching the
	// teacher's gated fmt.Printf debug lines.
	Debug bool
	// DrawDebugBorder draws a one-pixel outline around every node's
	// border box after its normal content, for visual debugging.
	DrawDebugBorder bool
	// PrintDebugTree dumps the computed layout tree to the debug logger
	// before painting.
	PrintDebugTree bool
}

// RenderContext is threaded through the style-resolution and paint walk.
// It carries the resources from GlobalContext plus the state that
// changes as the walk descends: the font size inherited for em/rem
// resolution and the node's accumulated affine transform.
type RenderContext struct {
	Global *GlobalContext
	Viewport Viewport

	// ParentFontSize is the resolved font-size of the nearest ancestor,
	// used to resolve `em` lengths. The root uses Viewport.RootFontSize.
	ParentFontSize float32
}

// WithParentFontSize returns a copy of the context with a new inherited
// font size, leaving Global/Viewport untouched. Children are built from
// their parent's context this way rather than mutating it in place.
func (c RenderContext) WithParentFontSize(size float32) RenderContext {
	c.ParentFontSize = size
	return c
}
