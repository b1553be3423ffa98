package core

import "errors"

// ErrLayoutNotConstructed is returned by Renderer.Draw when Construct
// hasn't been called yet. Mirrors takumi's RenderError::TaffyContextMissing.
var ErrLayoutNotConstructed = errors.New("takumi-go: layout tree not constructed, call Construct first")

// ErrLayoutEngine wraps a failure reported by the layout engine itself.
// Per spec.md §7 this is the one class of failure treated as fatal
// rather than absorbed by drawing less.
var ErrLayoutEngine = errors.New("takumi-go: layout engine failed")
