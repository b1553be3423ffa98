// Package render implements the renderer orchestrator, spec.md §4.9's
// Construct/Compute/Draw sequence and §6.1's render() entry point.
// Grounded on the teacher's pkg/render.Renderer, generalized from its
// single imperative paintStackingContext walk to the two-pass
// layout-then-paint pipeline the node/layout/canvas split requires, and
// from its gg.Context-as-canvas model to the command-queue canvas.
package render

import (
	"fmt"
	"image"
	"log"

	"github.com/xiaoxigua1/takumi-go/canvas"
	"github.com/xiaoxigua1/takumi-go/core"
	"github.com/xiaoxigua1/takumi-go/layout"
	"github.com/xiaoxigua1/takumi-go/node"
	"github.com/xiaoxigua1/takumi-go/style"
)

// boundNode pairs one layout.Node with the node.Node and resolved style
// it was built from, so the paint walk can revisit both trees in
// lockstep after the layout engine fills in layout.Node.Layout.
type boundNode struct {
	src      *node.Node
	resolved style.Style
	lay      *layout.Node
	children []*boundNode
}

// Renderer walks a node.Node tree through layout and paint, matching
// the teacher's NewRenderer/Render two-call shape: construct once,
// draw once.
type Renderer struct {
	viewport core.Viewport
	global   *core.GlobalContext
	engine   layout.Engine

	bound *boundNode
}

// NewRenderer builds a Renderer for one viewport/global-context pair.
// The default layout engine is layout.DefaultEngine{}.
func NewRenderer(viewport core.Viewport, global *core.GlobalContext) *Renderer {
	return &Renderer{viewport: viewport, global: global, engine: layout.DefaultEngine{}}
}

// SetEngine overrides the layout engine.
func (r *Renderer) SetEngine(e layout.Engine) { r.engine = e }

// Construct builds the layout tree from root, resolving each node's
// style against its parent's resolved style and lowering to
// style.LayoutStyle, then invokes the layout engine. Spec.md §4.9 steps
// 1-2.
func (r *Renderer) Construct(root *node.Node) error {
	ctx := core.RenderContext{Global: r.global, Viewport: r.viewport, ParentFontSize: r.viewport.RootFontSize}
	resolved := root.Style.InheritFrom(style.Initial())
	r.bound = r.buildLayoutNode(root, resolved, ctx)

	available := [2]layout.AvailableSpace{
		layout.DefiniteSpace(float32(r.viewport.Width)),
		layout.DefiniteSpace(float32(r.viewport.Height)),
	}
	if err := r.engine.Compute(r.bound.lay, available); err != nil {
		return fmt.Errorf("%w: %v", core.ErrLayoutEngine, err)
	}
	return nil
}

func (r *Renderer) buildLayoutNode(n *node.Node, resolved style.Style, ctx core.RenderContext) *boundNode {
	ln := &layout.Node{Style: resolved.ResolveToLayoutStyle(ctx)}
	bn := &boundNode{src: n, resolved: resolved, lay: ln}

	if mf := n.MeasureFunc(ctx, resolved); mf != nil {
		ln.Measure = mf
		return bn
	}

	ownFontPx := resolved.FontSize.Value.ResolveToPx(ctx, 0)
	childCtx := ctx.WithParentFontSize(ownFontPx)
	for _, c := range n.Children {
		childResolved := c.Style.InheritFrom(resolved)
		childBound := r.buildLayoutNode(c, childResolved, childCtx)
		ln.Children = append(ln.Children, childBound.lay)
		bn.children = append(bn.children, childBound)
	}
	return bn
}

// Draw walks the computed tree in depth-first pre-order and enqueues
// draw commands onto a dedicated canvas consumer, spec.md §4.9 steps
// 3-4 and §5's producer/consumer threading. Returns
// core.ErrLayoutNotConstructed if Construct hasn't run yet.
func (r *Renderer) Draw() (*image.RGBA, error) {
	if r.bound == nil {
		return nil, core.ErrLayoutNotConstructed
	}

	commands := make(chan canvas.DrawCommand, 64)
	cv := canvas.NewCanvas(commands)
	result := make(chan *image.RGBA, 1)
	go func() {
		result <- canvas.RunBlockingLoop(r.viewport.Width, r.viewport.Height, commands, r.global.Debug)
	}()

	if r.global.PrintDebugTree {
		log.Printf("takumi-go: layout tree:\n%s", dumpTree(r.bound, 0))
	}

	ctx := core.RenderContext{Global: r.global, Viewport: r.viewport, ParentFontSize: r.viewport.RootFontSize}
	r.walk(r.bound, cv, ctx, style.Identity, 0, 0)

	close(commands)
	return <-result, nil
}

// walk paints one node and recurses into its children, accumulating the
// document-absolute origin and the composite affine transform as it
// descends (spec.md §4.9a/b).
func (r *Renderer) walk(bn *boundNode, cv canvas.Canvas, ctx core.RenderContext, transform style.Affine, parentX, parentY float32) {
	lay := bn.lay.Layout
	originX := parentX + lay.Location.X
	originY := parentY + lay.Location.Y

	nodeTransform := transform
	if ops := bn.resolved.Transform.Value; len(ops) > 0 {
		ox, oy := resolveTransformOrigin(ctx, bn.resolved.TransformOrigin.Value, lay.Size)
		nodeTransform = transform.Mul(ops.ToAffine(ctx, lay.Size.Width, lay.Size.Height, ox, oy))
	}

	pc := node.PaintContext{RenderCtx: ctx, Canvas: cv, Transform: nodeTransform, OriginX: originX, OriginY: originY}
	bn.src.DrawOnCanvas(pc, bn.resolved, lay)

	if ctx.Global.DrawDebugBorder {
		drawDebugBorder(cv, pc, lay.Size)
	}

	childFontPx := bn.resolved.FontSize.Value.ResolveToPx(ctx, 0)
	childCtx := ctx.WithParentFontSize(childFontPx)
	for _, c := range bn.children {
		r.walk(c, cv, childCtx, nodeTransform, originX, originY)
	}
}

// resolveTransformOrigin turns the transform-origin property into a
// pixel offset within the node's own border box.
func resolveTransformOrigin(ctx core.RenderContext, pos style.BackgroundPosition, size layout.Size) (float32, float32) {
	x := pos.X.ToLength().ResolveToPx(ctx, size.Width)
	y := pos.Y.ToLength().ResolveToPx(ctx, size.Height)
	return x, y
}

func dumpTree(bn *boundNode, depth int) string {
	indent := ""
	for i := 0; i < depth; i++ {
		indent += "  "
	}
	s := fmt.Sprintf("%s%T kind=%d size=%.1fx%.1f\n", indent, bn.src, bn.src.Kind, bn.lay.Layout.Size.Width, bn.lay.Layout.Size.Height)
	for _, c := range bn.children {
		s += dumpTree(c, depth+1)
	}
	return s
}

// Render is the package-level convenience matching spec.md §6.1's
// render(viewport, global_context, root_node) -> RGBA image signature.
func Render(viewport core.Viewport, global *core.GlobalContext, root *node.Node) (*image.RGBA, error) {
	r := NewRenderer(viewport, global)
	if err := r.Construct(root); err != nil {
		return nil, err
	}
	return r.Draw()
}
