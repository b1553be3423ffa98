package layout

import (
	"testing"

	"github.com/xiaoxigua1/takumi-go/core"
	"github.com/xiaoxigua1/takumi-go/style"
)

func styleFor(width, height style.Length) style.LayoutStyle {
	s := style.Initial()
	s.Width = style.Set(width)
	s.Height = style.Set(height)
	return s.ResolveToLayoutStyle(core.RenderContext{Viewport: core.Viewport{RootFontSize: 16}})
}

func TestComputeFlexRowPlacesChildrenSideBySide(t *testing.T) {
	root := &Node{
		Style: styleFor(style.Px(100), style.Px(50)),
		Children: []*Node{
			{Style: styleFor(style.Px(30), style.Px(20))},
			{Style: styleFor(style.Px(40), style.Px(20))},
		},
	}
	(DefaultEngine{}).Compute(root, [2]AvailableSpace{DefiniteSpace(100), DefiniteSpace(50)})

	if root.Layout.Size.Width != 100 || root.Layout.Size.Height != 50 {
		t.Fatalf("root size = %+v, want 100x50", root.Layout.Size)
	}
	first, second := root.Children[0], root.Children[1]
	if first.Layout.Location.X != 0 {
		t.Fatalf("first child X = %v, want 0", first.Layout.Location.X)
	}
	if second.Layout.Location.X != first.Layout.Size.Width {
		t.Fatalf("second child X = %v, want flush after the first child's width (%v)", second.Layout.Location.X, first.Layout.Size.Width)
	}
}

func TestComputeFlexColumnStacksChildrenVertically(t *testing.T) {
	root := &Node{
		Style: func() style.LayoutStyle {
			ls := styleFor(style.Px(50), style.Px(100))
			ls.FlexDirection = style.FlexColumn
			return ls
		}(),
		Children: []*Node{
			{Style: styleFor(style.Px(50), style.Px(30))},
			{Style: styleFor(style.Px(50), style.Px(40))},
		},
	}
	(DefaultEngine{}).Compute(root, [2]AvailableSpace{DefiniteSpace(50), DefiniteSpace(100)})

	first, second := root.Children[0], root.Children[1]
	if first.Layout.Location.Y != 0 {
		t.Fatalf("first child Y = %v, want 0", first.Layout.Location.Y)
	}
	if second.Layout.Location.Y != first.Layout.Size.Height {
		t.Fatalf("second child Y = %v, want flush after the first child's height (%v)", second.Layout.Location.Y, first.Layout.Size.Height)
	}
}

func TestComputeLeafUsesMeasureFunc(t *testing.T) {
	leaf := &Node{
		Style: styleFor(style.Auto, style.Auto),
		Measure: func(known KnownDimensions, available [2]AvailableSpace) Size {
			return Size{Width: 42, Height: 17}
		},
	}
	(DefaultEngine{}).Compute(leaf, [2]AvailableSpace{DefiniteSpace(200), DefiniteSpace(200)})
	if leaf.Layout.Size.Width != 42 || leaf.Layout.Size.Height != 17 {
		t.Fatalf("leaf size = %+v, want the measured 42x17", leaf.Layout.Size)
	}
}

func TestResolveAxisDefiniteAndPercentage(t *testing.T) {
	px := style.LoweredLength{Kind: style.LoweredLength_, PxValue: 10}
	if v, ok := resolveAxis(px, DefiniteSpace(100)); !ok || v != 10 {
		t.Fatalf("got (%v,%v), want (10,true)", v, ok)
	}
	pct := style.LoweredLength{Kind: style.LoweredPercentage, Percentage: 0.5}
	if v, ok := resolveAxis(pct, DefiniteSpace(100)); !ok || v != 50 {
		t.Fatalf("got (%v,%v), want (50,true)", v, ok)
	}
	if _, ok := resolveAxis(pct, AvailableSpace{Kind: MaxContent}); ok {
		t.Fatal("expected a percentage against indefinite available space to report indefinite")
	}
	auto := style.LoweredLength{Kind: style.LoweredAuto}
	if _, ok := resolveAxis(auto, DefiniteSpace(100)); ok {
		t.Fatal("expected auto to report indefinite")
	}
}

func TestClampSize(t *testing.T) {
	if got := clampSize(5, 10, 20, true, true); got != 10 {
		t.Fatalf("got %v, want clamped up to min 10", got)
	}
	if got := clampSize(25, 10, 20, true, true); got != 20 {
		t.Fatalf("got %v, want clamped down to max 20", got)
	}
	if got := clampSize(15, 10, 20, true, true); got != 15 {
		t.Fatalf("got %v, want unchanged within range", got)
	}
}
