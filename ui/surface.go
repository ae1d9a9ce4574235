// Copyright © 2025 Asset Index Browser contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: ui/surface.go
// Summary: Bordered rectangular screen region with clipped cell writes.

package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// h, v, tl, tr, bl, br
var borderCharset = [6]rune{'─', '│', '┌', '┐', '└', '┘'}

// Surface is a bordered rectangular region of the terminal. It owns the
// current Rect, translates content-relative writes past any border lines,
// and drops writes landing outside the addressable area one cell at a
// time, never aborting the rest of a draw.
type Surface struct {
	screen  tcell.Screen
	name    string
	style   tcell.Style
	rect    Rect
	borderH bool
	borderV bool

	contentW int
	contentH int
}

func newSurface(screen tcell.Screen, spec *PanelSpec, style tcell.Style) *Surface {
	return &Surface{
		screen:  screen,
		name:    spec.name,
		style:   style,
		borderH: spec.borderH,
		borderV: spec.borderV,
	}
}

// Name returns the panel's display name.
func (s *Surface) Name() string { return s.name }

// Rect returns the currently bound rectangle.
func (s *Surface) Rect() Rect { return s.rect }

// ContentSize returns the writable area inside any border lines.
func (s *Surface) ContentSize() (w, h int) { return s.contentW, s.contentH }

// SetRect binds the surface to a new rectangle, recomputes the content
// area, clears and redraws the frame. Degenerate dimensions clamp to zero
// so drawing simply produces nothing on too-small terminals.
func (s *Surface) SetRect(r Rect) {
	if r.W < 0 {
		r.W = 0
	}
	if r.H < 0 {
		r.H = 0
	}
	s.rect = r

	s.contentW = r.W
	s.contentH = r.H
	if s.borderV {
		s.contentW -= 2
	}
	if s.borderH {
		s.contentH -= 2
	}
	if s.contentW < 0 {
		s.contentW = 0
	}
	if s.contentH < 0 {
		s.contentH = 0
	}

	s.Clear()
	s.drawBorder()
}

// Clear fills the whole surface rectangle with blanks.
func (s *Surface) Clear() {
	for y := 0; y < s.rect.H; y++ {
		for x := 0; x < s.rect.W; x++ {
			s.setCell(s.rect.X+x, s.rect.Y+y, ' ', s.style)
		}
	}
}

// WriteLine writes text at content-relative coordinates, advancing one
// column per cell of display width. Cells outside the content area or the
// terminal are discarded individually.
func (s *Surface) WriteLine(row, col int, text string, style tcell.Style) {
	if row < 0 || row >= s.contentH {
		return
	}
	x0 := s.rect.X
	y0 := s.rect.Y
	if s.borderV {
		x0++
	}
	if s.borderH {
		y0++
	}

	c := col
	for _, ch := range text {
		cw := runewidth.RuneWidth(ch)
		if cw == 0 {
			continue
		}
		if c >= 0 && c+cw <= s.contentW {
			s.setCell(x0+c, y0+row, ch, style)
		}
		c += cw
	}
}

// setCell writes one cell in absolute coordinates. tcell already ignores
// writes outside the terminal; the rect guard keeps the surface from
// scribbling over its neighbours.
func (s *Surface) setCell(x, y int, ch rune, style tcell.Style) {
	if x < s.rect.X || x >= s.rect.X+s.rect.W || y < s.rect.Y || y >= s.rect.Y+s.rect.H {
		return
	}
	w, h := s.screen.Size()
	if x < 0 || x >= w || y < 0 || y >= h {
		return
	}
	s.screen.SetContent(x, y, ch, nil, style)
}

func (s *Surface) drawBorder() {
	r := s.rect
	if s.borderH {
		for x := 0; x < r.W; x++ {
			s.setCell(r.X+x, r.Y, borderCharset[0], s.style)
			s.setCell(r.X+x, r.Y+r.H-1, borderCharset[0], s.style)
		}
	}
	if s.borderV {
		for y := 0; y < r.H; y++ {
			s.setCell(r.X, r.Y+y, borderCharset[1], s.style)
			s.setCell(r.X+r.W-1, r.Y+y, borderCharset[1], s.style)
		}
	}
	if s.borderH && s.borderV && r.W > 1 && r.H > 1 {
		s.setCell(r.X, r.Y, borderCharset[2], s.style)
		s.setCell(r.X+r.W-1, r.Y, borderCharset[3], s.style)
		s.setCell(r.X, r.Y+r.H-1, borderCharset[4], s.style)
		s.setCell(r.X+r.W-1, r.Y+r.H-1, borderCharset[5], s.style)
	}
}

// flush pushes pending writes to the terminal.
func (s *Surface) flush() { s.screen.Show() }
