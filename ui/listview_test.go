package ui

import (
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"
)

// newTestList lays out a borderless list view filling a w×h terminal, so
// the viewport height equals h minus the default one-row insets.
func newTestList(t *testing.T, w, h int) *ListView {
	t.Helper()
	dm, _ := newTestDisplay(t, w, h)
	lv, err := dm.AddListView(NewPanelSpec("list").Top(Cells(0)).Bottom(Cells(0)))
	if err != nil {
		t.Fatalf("add list view: %v", err)
	}
	lv.Layout(Size{W: w, H: h})
	return lv
}

func (v *ListView) checkInvariants(t *testing.T) {
	t.Helper()
	if len(v.entries) == 0 {
		return
	}
	if v.cursor < 0 || v.cursor >= len(v.entries) {
		t.Fatalf("cursor %d out of bounds [0, %d)", v.cursor, len(v.entries))
	}
	vh := v.contentH
	if vh <= 0 {
		return
	}
	if v.scrollOffset > v.cursor || v.cursor > v.scrollOffset+vh-1 {
		t.Fatalf("cursor %d outside viewport [%d, %d]", v.cursor, v.scrollOffset, v.scrollOffset+vh-1)
	}
}

func TestListViewMoveBoundsAndScroll(t *testing.T) {
	lv := newTestList(t, 20, 4) // viewport of 4 rows
	lv.SetEntries(newEntries("a", "b", "c", "d", "e", "f"))

	// Past-the-start moves are no-ops.
	lv.MovePrevious()
	if lv.cursor != 0 {
		t.Fatalf("cursor moved past start: %d", lv.cursor)
	}

	for i := 0; i < 10; i++ {
		lv.MoveNext()
		lv.checkInvariants(t)
	}
	if lv.cursor != 5 {
		t.Fatalf("cursor after walking past the end: got %d, want 5", lv.cursor)
	}
	if lv.scrollOffset != 2 {
		t.Fatalf("scroll offset: got %d, want 2", lv.scrollOffset)
	}

	for i := 0; i < 10; i++ {
		lv.MovePrevious()
		lv.checkInvariants(t)
	}
	if lv.cursor != 0 || lv.scrollOffset != 0 {
		t.Fatalf("cursor/scroll after walking back: %d/%d", lv.cursor, lv.scrollOffset)
	}
}

func TestListViewKeepsCursorVisibleAcrossViewportShrink(t *testing.T) {
	lv := newTestList(t, 20, 10)
	labels := make([]string, 20)
	for i := range labels {
		labels[i] = string(rune('a' + i))
	}
	lv.SetEntries(newEntries(labels...))
	for i := 0; i < 15; i++ {
		lv.MoveNext()
	}
	if lv.cursor != 15 || lv.scrollOffset != 6 {
		t.Fatalf("setup cursor/scroll: %d/%d", lv.cursor, lv.scrollOffset)
	}

	// A shorter terminal shrinks the viewport under the cursor.
	lv.Layout(Size{W: 20, H: 3})
	if lv.contentH != 3 {
		t.Fatalf("viewport height after shrink: %d", lv.contentH)
	}
	lv.checkInvariants(t)
	if lv.scrollOffset != 13 {
		t.Fatalf("scroll after shrink: got %d, want 13", lv.scrollOffset)
	}

	// Growing back keeps the cursor visible without jumping the window.
	lv.Layout(Size{W: 20, H: 10})
	lv.checkInvariants(t)
	if lv.scrollOffset != 13 {
		t.Fatalf("scroll after growing back: got %d, want 13", lv.scrollOffset)
	}
}

func TestListViewExpandCollapseRoundTrip(t *testing.T) {
	lv := newTestList(t, 20, 10)

	root := &testEntry{label: "root"}
	a := &testEntry{label: "a"}
	b := &testEntry{label: "b"}
	a1 := &testEntry{label: "a1"}
	a2 := &testEntry{label: "a2"}

	lv.SetEntries([]Entry{root})
	lv.InsertChildren([]Entry{a, b})
	if !sameLabels(labelsOf(lv.entries), []string{"root", "a", "b"}) {
		t.Fatalf("after expanding root: %v", labelsOf(lv.entries))
	}

	lv.MoveNext() // select a
	before := labelsOf(lv.entries)
	lv.InsertChildren([]Entry{a1, a2})
	if !sameLabels(labelsOf(lv.entries), []string{"root", "a", "a1", "a2", "b"}) {
		t.Fatalf("after expanding a: %v", labelsOf(lv.entries))
	}
	if cur, _ := lv.Current(); cur != Entry(a) {
		t.Fatalf("cursor drifted off the expanded parent: %v", cur)
	}

	lv.Collapse(2)
	if !sameLabels(labelsOf(lv.entries), before) {
		t.Fatalf("insert/collapse round trip: got %v, want %v", labelsOf(lv.entries), before)
	}
	lv.checkInvariants(t)
}

func TestListViewCollapseClampsCursor(t *testing.T) {
	lv := newTestList(t, 20, 10)
	lv.SetEntries(newEntries("a", "b", "c", "d"))
	lv.MoveNext()
	lv.MoveNext()
	lv.MoveNext() // cursor on d

	lv.MovePrevious()
	lv.MovePrevious()
	lv.MovePrevious() // back to a
	lv.Collapse(3)
	if lv.Len() != 1 {
		t.Fatalf("entries after collapsing everything below: %d", lv.Len())
	}
	lv.checkInvariants(t)
}

func TestListViewSetEntriesClampsCursor(t *testing.T) {
	lv := newTestList(t, 20, 10)
	lv.SetEntries(newEntries("a", "b", "c", "d", "e"))
	for i := 0; i < 4; i++ {
		lv.MoveNext()
	}
	lv.SetEntries(newEntries("x", "y"))
	if lv.cursor != 1 {
		t.Fatalf("cursor after shrinking replace: got %d, want 1", lv.cursor)
	}
	lv.checkInvariants(t)
}

func TestListViewCurrentEmpty(t *testing.T) {
	lv := newTestList(t, 20, 10)
	if _, err := lv.Current(); !errors.Is(err, ErrEmptySelection) {
		t.Fatalf("Current on empty list: got %v, want ErrEmptySelection", err)
	}
	lv.SetEntries(newEntries("only"))
	if cur, err := lv.Current(); err != nil || cur.Label() != "only" {
		t.Fatalf("Current: %v, %v", cur, err)
	}
}

func TestListViewStylePrecedence(t *testing.T) {
	lv := newTestList(t, 20, 10)
	red := tcell.StyleDefault.Foreground(tcell.ColorRed)
	blue := tcell.StyleDefault.Foreground(tcell.ColorBlue)
	lv.AddStyleRule(red, map[string]string{"kind": "dir"})
	lv.AddStyleRule(blue, map[string]string{"kind": "dir"})

	dir := &testEntry{label: "d", attrs: map[string]string{"kind": "dir"}}
	file := &testEntry{label: "f", attrs: map[string]string{"kind": "file"}}
	bare := &testEntry{label: "b"}

	if got := lv.styleFor(dir); got != red {
		t.Fatal("first registered matching rule should win")
	}
	if got := lv.styleFor(file); got != lv.style {
		t.Fatal("non-matching entry should keep the default style")
	}
	// A missing attribute counts as a non-match.
	if got := lv.styleFor(bare); got != lv.style {
		t.Fatal("entry without the attribute should keep the default style")
	}
}

func TestListViewRendersVisibleWindow(t *testing.T) {
	lv := newTestList(t, 10, 3)
	lv.SetEntries(newEntries("aaa", "bbb", "ccc", "ddd", "eee"))
	for i := 0; i < 4; i++ {
		lv.MoveNext()
	}
	// Viewport is 3 rows; cursor on the last entry scrolled the window to
	// entries ccc..eee.
	sim := lv.screen.(tcell.SimulationScreen)
	if cellAt(sim, 0, 0) != 'c' || cellAt(sim, 0, 1) != 'd' || cellAt(sim, 0, 2) != 'e' {
		t.Fatalf("visible window wrong: %c %c %c",
			cellAt(sim, 0, 0), cellAt(sim, 0, 1), cellAt(sim, 0, 2))
	}
}
