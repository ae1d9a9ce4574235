// Copyright © 2025 Asset Index Browser contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: ui/palette.go
// Summary: Cached style resolution for color pairs and color tokens.

package ui

import "github.com/gdamore/tcell/v2"

type styleKey struct {
	fg, bg tcell.Color
}

// Palette is an instance-owned style registry. The display manager creates
// one and hands it to panels at construction, so color resolution carries
// no process-wide state and tests can exercise it in isolation.
type Palette struct {
	def   tcell.Style
	cache map[styleKey]tcell.Style
}

func NewPalette() *Palette {
	return &Palette{
		def:   tcell.StyleDefault.Background(tcell.ColorReset).Foreground(tcell.ColorReset),
		cache: make(map[styleKey]tcell.Style),
	}
}

// Default returns the terminal's default style.
func (p *Palette) Default() tcell.Style { return p.def }

// Style returns a cached style for a color pair. ColorDefault leaves the
// corresponding side of the pair untouched.
func (p *Palette) Style(fg, bg tcell.Color) tcell.Style {
	key := styleKey{fg: fg, bg: bg}
	if st, ok := p.cache[key]; ok {
		return st
	}
	st := p.def
	if fg != tcell.ColorDefault {
		st = st.Foreground(fg)
	}
	if bg != tcell.ColorDefault {
		st = st.Background(bg)
	}
	p.cache[key] = st
	return st
}

// StyleFor resolves a color token ("blue", "#87ceeb", ...) to a foreground
// style on the default background. Unknown tokens fall back to the default
// style.
func (p *Palette) StyleFor(token string) tcell.Style {
	c := tcell.GetColor(token)
	if c == tcell.ColorDefault {
		return p.def
	}
	return p.Style(c, tcell.ColorDefault)
}
