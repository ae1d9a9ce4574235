// Copyright © 2025 Asset Index Browser contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: ui/textpanel.go
// Summary: Surface specialization that word-wraps and aligns a text block.

package ui

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Span is a run of text drawn in a single style.
type Span struct {
	Text  string
	Style tcell.Style
}

// StyledLine is one pre-styled row of panel content.
type StyledLine []Span

// TextPanel holds a block of text and renders it word-wrapped and aligned
// inside its surface. Every set call performs a full clear-and-redraw; the
// last contents and alignment are cached so a resize can replay them
// without the caller resupplying the text.
type TextPanel struct {
	*Surface
	spec *PanelSpec

	contents string
	styled   []StyledLine // non-nil when styled content was set last
	hAlign   Anchor
	vAlign   Anchor
}

// Layout recomputes the panel's rectangle against a terminal size.
func (p *TextPanel) Layout(size Size) {
	p.SetRect(ComputeRect(p.spec, size))
}

// SetText replaces the panel contents with plain text. The text is greedily
// word-wrapped to the content width and truncated to the content height;
// excess trailing lines are dropped, not scrolled.
func (p *TextPanel) SetText(text string, hAlign, vAlign Anchor) {
	p.contents = text
	p.styled = nil
	p.hAlign = hAlign
	p.vAlign = vAlign
	p.Refresh()
}

// SetLines replaces the panel contents with pre-styled lines. Styled lines
// are clipped to the content area rather than wrapped; callers that care
// about wrapping break their lines beforehand.
func (p *TextPanel) SetLines(lines []StyledLine, hAlign, vAlign Anchor) {
	p.styled = lines
	p.contents = ""
	p.hAlign = hAlign
	p.vAlign = vAlign
	p.Refresh()
}

// Refresh redraws the cached contents into the current rectangle.
func (p *TextPanel) Refresh() {
	p.Clear()
	p.drawBorder()

	cw, ch := p.ContentSize()
	if cw <= 0 || ch <= 0 {
		p.flush()
		return
	}

	if p.styled != nil {
		p.refreshStyled(cw, ch)
	} else {
		p.refreshPlain(cw, ch)
	}
	p.flush()
}

func (p *TextPanel) refreshPlain(cw, ch int) {
	var viewport []string
	for _, line := range strings.Split(p.contents, "\n") {
		viewport = append(viewport, wrapLine(line, cw)...)
		if len(viewport) >= ch {
			break
		}
	}
	if len(viewport) > ch {
		viewport = viewport[:ch]
	}

	row := anchorOffset(p.vAlign, len(viewport), ch)
	for _, line := range viewport {
		col := anchorOffset(p.hAlign, runewidth.StringWidth(line), cw)
		p.WriteLine(row, col, line, p.style)
		row++
	}
}

func (p *TextPanel) refreshStyled(cw, ch int) {
	lines := p.styled
	if len(lines) > ch {
		lines = lines[:ch]
	}

	row := anchorOffset(p.vAlign, len(lines), ch)
	for _, line := range lines {
		width := 0
		for _, span := range line {
			width += runewidth.StringWidth(span.Text)
		}
		col := anchorOffset(p.hAlign, width, cw)
		for _, span := range line {
			p.WriteLine(row, col, span.Text, span.Style)
			col += runewidth.StringWidth(span.Text)
		}
		row++
	}
}

// wrapLine greedily wraps one source line to the given display width,
// splitting on spaces and hard-breaking words wider than a full line.
func wrapLine(line string, width int) []string {
	words := strings.Fields(line)
	if len(words) == 0 {
		return []string{""}
	}

	var out []string
	cur := ""
	curW := 0
	for _, word := range words {
		ww := runewidth.StringWidth(word)
		for ww > width {
			if curW > 0 {
				out = append(out, cur)
				cur, curW = "", 0
			}
			head := runewidth.Truncate(word, width, "")
			if head == "" {
				// A single glyph wider than the panel; nowhere to put it.
				word, ww = "", 0
				break
			}
			out = append(out, head)
			word = word[len(head):]
			ww = runewidth.StringWidth(word)
		}
		if word == "" {
			continue
		}
		switch {
		case curW == 0:
			cur, curW = word, ww
		case curW+1+ww <= width:
			cur += " " + word
			curW += 1 + ww
		default:
			out = append(out, cur)
			cur, curW = word, ww
		}
	}
	if curW > 0 {
		out = append(out, cur)
	}
	return out
}
