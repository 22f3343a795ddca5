package components

import (
	"context"
	"math"
)

// UnitsPerCell is how many design units one terminal cell spans.
const UnitsPerCell = 8.0

// Renderable is anything that can draw itself with the theme found in ctx.
type Renderable interface {
	Render(ctx context.Context) string
}

// RenderFunc adapts a function to Renderable.
type RenderFunc func(ctx context.Context) string

// Render implements Renderable.
func (f RenderFunc) Render(ctx context.Context) string {
	return f(ctx)
}

// Raw renders s unchanged.
func Raw(s string) Renderable {
	return RenderFunc(func(context.Context) string { return s })
}

// Units returns a pointer to v, for optional numeric props.
func Units(v float64) *float64 {
	return &v
}

// cells converts design units to whole terminal cells. Any positive value
// takes at least one cell.
func cells(units float64) int {
	if units <= 0 {
		return 0
	}
	n := int(math.Round(units / UnitsPerCell))
	if n == 0 {
		return 1
	}
	return n
}

// box resolves the general, horizontal and vertical shorthands into top,
// right, bottom and left cells. The axis-specific value wins over the
// general one.
func box(all, horizontal, vertical *float64) (top, right, bottom, left int) {
	var h, v float64
	if all != nil {
		h, v = *all, *all
	}
	if horizontal != nil {
		h = *horizontal
	}
	if vertical != nil {
		v = *vertical
	}
	return cells(v), cells(h), cells(v), cells(h)
}

func clonePtr(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
