// Copyright © 2025 Asset Index Browser contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: ui/listview.go
// Summary: Flattened-tree list navigator with cursor, scroll and styling.

package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Entry is one navigable row: a display label plus an attribute mapping
// used only for style matching. The navigator holds entries as an ordered
// sequence and never needs parent or child pointers; tree structure is
// realized by splicing contiguous blocks in and out of the list.
type Entry interface {
	Label() string
	Attr(key string) (string, bool)
}

// StyleRule pairs a style with an attribute predicate. Every predicate key
// must match the entry exactly; a missing attribute is a non-match.
type StyleRule struct {
	style     tcell.Style
	predicate map[string]string
}

func (r StyleRule) matches(e Entry) bool {
	for key, want := range r.predicate {
		got, ok := e.Attr(key)
		if !ok || got != want {
			return false
		}
	}
	return true
}

// ListView navigates a flattened tree: the entry list is always a valid
// pre-order flattening of whatever subset of the tree is currently
// expanded. Expanding inserts children contiguously after the cursor,
// collapsing removes the caller-counted block of visible descendants.
type ListView struct {
	*Surface
	spec *PanelSpec

	entries      []Entry
	cursor       int
	scrollOffset int
	rules        []StyleRule
}

// Layout recomputes the view's rectangle and keeps the cursor inside the
// resized viewport.
func (v *ListView) Layout(size Size) {
	v.SetRect(ComputeRect(v.spec, size))
	v.clampScroll()
}

// Len returns the number of entries currently in the list.
func (v *ListView) Len() int { return len(v.entries) }

// SetEntries replaces the list wholesale. The cursor clamps into the new
// bounds and the scroll offset resets to the smallest value that keeps the
// cursor visible.
func (v *ListView) SetEntries(entries []Entry) {
	v.entries = entries
	v.clampCursor()
	v.snapScroll()
	v.Refresh()
}

// InsertChildren splices a contiguous block immediately after the cursor.
// The cursor index is unchanged and still points at the expanded parent.
func (v *ListView) InsertChildren(children []Entry) {
	if len(v.entries) == 0 || len(children) == 0 {
		return
	}
	at := v.cursor + 1
	merged := make([]Entry, 0, len(v.entries)+len(children))
	merged = append(merged, v.entries[:at]...)
	merged = append(merged, children...)
	merged = append(merged, v.entries[at:]...)
	v.entries = merged

	v.clampCursor()
	v.clampScroll()
	v.Refresh()
}

// Collapse removes count entries immediately following the cursor.
// Computing the right count is the caller's contract: it must equal the
// number of currently visible descendants of the collapsing node, or
// unrelated rows get orphaned or deleted.
func (v *ListView) Collapse(count int) {
	if len(v.entries) == 0 || count <= 0 {
		return
	}
	at := v.cursor + 1
	end := at + count
	if end > len(v.entries) {
		end = len(v.entries)
	}
	v.entries = append(v.entries[:at], v.entries[end:]...)

	v.clampCursor()
	v.clampScroll()
	v.Refresh()
}

// MoveNext advances the cursor one position toward the end of the list; at
// the end it is a no-op. The scroll offset moves by at most one row, just
// enough to keep the cursor visible: a cursor that jumped further in a
// bulk mutation catches the viewport up one step at a time by design.
func (v *ListView) MoveNext() {
	if len(v.entries) == 0 || v.cursor+1 >= len(v.entries) {
		return
	}
	v.cursor++
	if vh := v.contentH; vh > 0 && v.cursor >= v.scrollOffset+vh {
		v.scrollOffset++
	}
	v.Refresh()
}

// MovePrevious moves the cursor one position toward the start; at the
// start it is a no-op. Scroll behaves as in MoveNext.
func (v *ListView) MovePrevious() {
	if len(v.entries) == 0 || v.cursor == 0 {
		return
	}
	v.cursor--
	if v.cursor < v.scrollOffset {
		v.scrollOffset--
	}
	v.Refresh()
}

// Current returns the entry under the cursor.
func (v *ListView) Current() (Entry, error) {
	if len(v.entries) == 0 {
		return nil, ErrEmptySelection
	}
	return v.entries[v.cursor], nil
}

// AddStyleRule appends a rule to the ordered rule list. Rules are
// evaluated in registration order at render time; the first full match
// wins. Rules are append-only for the life of the panel.
func (v *ListView) AddStyleRule(style tcell.Style, predicate map[string]string) {
	copied := make(map[string]string, len(predicate))
	for k, val := range predicate {
		copied[k] = val
	}
	v.rules = append(v.rules, StyleRule{style: style, predicate: copied})
}

// styleFor resolves an entry's style from the rule list.
func (v *ListView) styleFor(e Entry) tcell.Style {
	for _, rule := range v.rules {
		if rule.matches(e) {
			return rule.style
		}
	}
	return v.style
}

// Refresh redraws the visible slice of entries. The cursor row gets a
// highlight layered on top of whatever color its rule resolved to.
func (v *ListView) Refresh() {
	v.Clear()
	v.drawBorder()

	cw, vh := v.ContentSize()
	if cw > 0 && vh > 0 {
		end := v.scrollOffset + vh
		if end > len(v.entries) {
			end = len(v.entries)
		}
		for i := v.scrollOffset; i < end; i++ {
			entry := v.entries[i]
			style := v.styleFor(entry)
			if i == v.cursor {
				style = style.Reverse(true)
			}
			label := runewidth.Truncate(entry.Label(), cw, "")
			v.WriteLine(i-v.scrollOffset, 0, label, style)
		}
	}
	v.flush()
}

func (v *ListView) clampCursor() {
	if len(v.entries) == 0 {
		v.cursor = 0
		v.scrollOffset = 0
		return
	}
	if v.cursor >= len(v.entries) {
		v.cursor = len(v.entries) - 1
	}
	if v.cursor < 0 {
		v.cursor = 0
	}
}

// snapScroll resets the offset to the smallest value keeping the cursor
// visible.
func (v *ListView) snapScroll() {
	vh := v.contentH
	if vh <= 0 {
		v.scrollOffset = 0
		return
	}
	off := v.cursor - vh + 1
	if off < 0 {
		off = 0
	}
	v.scrollOffset = off
}

// clampScroll minimally adjusts the offset so the cursor stays inside the
// viewport after a mutation or a viewport resize.
func (v *ListView) clampScroll() {
	vh := v.contentH
	if vh <= 0 {
		v.scrollOffset = 0
		return
	}
	if v.scrollOffset > v.cursor {
		v.scrollOffset = v.cursor
	}
	if v.cursor >= v.scrollOffset+vh {
		v.scrollOffset = v.cursor - vh + 1
	}
	if v.scrollOffset < 0 {
		v.scrollOffset = 0
	}
}
