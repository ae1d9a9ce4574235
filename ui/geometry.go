// Copyright © 2025 Asset Index Browser contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: ui/geometry.go
// Summary: Declarative panel constraints and the pure layout resolver.

package ui

import (
	"fmt"
	"math"
)

// Anchor pins a panel or text block to one side of its available space.
type Anchor int

const (
	AnchorStart Anchor = iota
	AnchorCenter
	AnchorEnd
)

// anchorOffset maps an anchor to the base offset of a block of the given
// length inside max cells.
func anchorOffset(a Anchor, length, max int) int {
	switch a {
	case AnchorCenter:
		return (max - length) / 2
	case AnchorEnd:
		return max - length
	default:
		return 0
	}
}

// Constraint is a layout measure along one axis: either an absolute cell
// count or a fraction of the terminal dimension. A size constraint that
// resolves to zero means "fill the leftover space".
type Constraint struct {
	fraction bool
	value    float64
}

// Cells returns an absolute constraint of n terminal cells.
func Cells(n int) Constraint { return Constraint{value: float64(n)} }

// Frac returns a proportional constraint; f must lie within [0, 1].
func Frac(f float64) Constraint { return Constraint{fraction: true, value: f} }

func (c Constraint) valid() bool {
	if c.fraction {
		return c.value >= 0 && c.value <= 1
	}
	return c.value >= 0
}

// resolve turns the constraint into cells against one terminal dimension.
// Fractions floor to whole cells.
func (c Constraint) resolve(dim int) int {
	if c.fraction {
		return int(math.Floor(c.value * float64(dim)))
	}
	return int(c.value)
}

// Size is a terminal dimension pair in cells.
type Size struct {
	W, H int
}

// Rect is a resolved panel rectangle. Derived data only: recomputed on
// every layout pass and cached by the owning panel until the next one.
type Rect struct {
	X, Y, W, H int
}

// PanelSpec declares where a panel lives: edge insets, a size per axis
// (zero meaning auto), an anchor per axis and border flags. Build one with
// NewPanelSpec and the chained setters; panels never mutate their spec
// after construction.
type PanelSpec struct {
	name string

	top    Constraint
	bottom Constraint
	left   Constraint
	right  Constraint

	width  Constraint
	height Constraint

	hAnchor Anchor
	vAnchor Anchor

	borderH bool
	borderV bool
}

// NewPanelSpec returns a spec with the default insets: one row above and
// below the panel, full width and full height.
func NewPanelSpec(name string) *PanelSpec {
	return &PanelSpec{
		name:   name,
		top:    Cells(1),
		bottom: Cells(1),
		width:  Frac(1),
		height: Frac(1),
	}
}

func (p *PanelSpec) Top(c Constraint) *PanelSpec    { p.top = c; return p }
func (p *PanelSpec) Bottom(c Constraint) *PanelSpec { p.bottom = c; return p }
func (p *PanelSpec) Left(c Constraint) *PanelSpec   { p.left = c; return p }
func (p *PanelSpec) Right(c Constraint) *PanelSpec  { p.right = c; return p }

func (p *PanelSpec) Width(c Constraint) *PanelSpec  { p.width = c; return p }
func (p *PanelSpec) Height(c Constraint) *PanelSpec { p.height = c; return p }

func (p *PanelSpec) AlignH(a Anchor) *PanelSpec { p.hAnchor = a; return p }
func (p *PanelSpec) AlignV(a Anchor) *PanelSpec { p.vAnchor = a; return p }

// Borders enables the horizontal (top/bottom) and vertical (left/right)
// border lines.
func (p *PanelSpec) Borders(horizontal, vertical bool) *PanelSpec {
	p.borderH = horizontal
	p.borderV = vertical
	return p
}

// Name returns the panel's display name.
func (p *PanelSpec) Name() string { return p.name }

func (p *PanelSpec) validate() error {
	for _, c := range []struct {
		what string
		c    Constraint
	}{
		{"top", p.top}, {"bottom", p.bottom}, {"left", p.left}, {"right", p.right},
		{"width", p.width}, {"height", p.height},
	} {
		if !c.c.valid() {
			return fmt.Errorf("panel %q: %s constraint out of range: %w", p.name, c.what, ErrInvalidSpec)
		}
	}
	return nil
}

// ComputeRect resolves a spec against a terminal size. Pure and
// deterministic: no caching across calls, no side effects. Degenerate
// results on very small terminals are returned as-is; Surface.SetRect
// clamps them when the rectangle is bound.
func ComputeRect(spec *PanelSpec, size Size) Rect {
	w, x := resolveAxis(spec.left, spec.right, spec.width, spec.hAnchor, size.W)
	h, y := resolveAxis(spec.top, spec.bottom, spec.height, spec.vAnchor, size.H)
	return Rect{X: x, Y: y, W: w, H: h}
}

// resolveAxis computes one axis: length from the size constraint capped by
// the leftover space between the insets, offset from the anchor plus a
// directional correction toward the near or far edge.
func resolveAxis(near, far, size Constraint, anchor Anchor, dim int) (length, offset int) {
	n := near.resolve(dim)
	f := far.resolve(dim)
	leftover := dim - n - f

	length = size.resolve(dim)
	if length == 0 || length > leftover {
		length = leftover
	}

	offset = anchorOffset(anchor, length, dim)
	switch anchor {
	case AnchorStart:
		offset += n
	case AnchorEnd:
		offset -= f
	}
	return length, offset
}
