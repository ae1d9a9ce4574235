// Copyright © 2025 Asset Index Browser contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/preview/renderer.go
// Summary: Syntax-highlighted text rendering for the preview pane.

package preview

import (
	"strings"
	"unicode/utf8"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/gdamore/tcell/v2"

	"github.com/Kriper1111/asset-index-browser/ui"
)

// Renderer turns text assets into styled lines for a text panel. It
// caps the amount of content it will tokenize so a large object cannot
// stall the UI.
type Renderer struct {
	style    *chroma.Style
	maxBytes int
	maxLines int
}

// NewRenderer builds a renderer using the named chroma style. Unknown
// style names fall back to the chroma default.
func NewRenderer(styleName string, maxBytes int) *Renderer {
	style := styles.Get(styleName)
	if style == nil {
		style = styles.Fallback
	}
	if maxBytes <= 0 {
		maxBytes = 4096
	}
	return &Renderer{style: style, maxBytes: maxBytes, maxLines: 256}
}

// Render highlights content as the asset named name. Tab characters
// are expanded since the panel renders one cell per column.
func (r *Renderer) Render(name string, content []byte) []ui.StyledLine {
	if len(content) > r.maxBytes {
		// Back the cut up to a rune boundary so truncation cannot hand
		// chroma a mangled final glyph.
		cut := r.maxBytes
		for cut > 0 && !utf8.RuneStart(content[cut]) {
			cut--
		}
		content = content[:cut]
	}
	text := strings.ReplaceAll(string(content), "\t", "    ")

	lexer := lexers.Match(name)
	if lexer == nil {
		lexer = lexers.Analyse(text)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, text)
	if err != nil {
		// Unstyled text is still a usable preview.
		return plainLines(text, r.maxLines)
	}

	lines := []ui.StyledLine{nil}
	for token := iterator(); token != chroma.EOF; token = iterator() {
		style := r.tokenStyle(token.Type)
		parts := strings.Split(token.Value, "\n")
		for i, part := range parts {
			if i > 0 {
				if len(lines) >= r.maxLines {
					return lines
				}
				lines = append(lines, nil)
			}
			if part == "" {
				continue
			}
			last := len(lines) - 1
			lines[last] = append(lines[last], ui.Span{Text: part, Style: style})
		}
	}
	return lines
}

func (r *Renderer) tokenStyle(tt chroma.TokenType) tcell.Style {
	entry := r.style.Get(tt)
	style := tcell.StyleDefault
	if entry.Colour.IsSet() {
		style = style.Foreground(tcell.NewRGBColor(
			int32(entry.Colour.Red()),
			int32(entry.Colour.Green()),
			int32(entry.Colour.Blue()),
		))
	}
	if entry.Background.IsSet() {
		style = style.Background(tcell.NewRGBColor(
			int32(entry.Background.Red()),
			int32(entry.Background.Green()),
			int32(entry.Background.Blue()),
		))
	}
	if entry.Bold == chroma.Yes {
		style = style.Bold(true)
	}
	if entry.Italic == chroma.Yes {
		style = style.Italic(true)
	}
	if entry.Underline == chroma.Yes {
		style = style.Underline(true)
	}
	return style
}

func plainLines(text string, max int) []ui.StyledLine {
	var out []ui.StyledLine
	for _, line := range strings.Split(text, "\n") {
		if len(out) >= max {
			break
		}
		if line == "" {
			out = append(out, nil)
			continue
		}
		out = append(out, ui.StyledLine{{Text: line, Style: tcell.StyleDefault}})
	}
	return out
}
