package ui

import (
	"errors"
	"testing"
)

func TestDisplayManagerRejectsInvalidSpec(t *testing.T) {
	dm, _ := newTestDisplay(t, 40, 12)
	if _, err := dm.AddTextPanel(NewPanelSpec("bad").Width(Frac(2))); !errors.Is(err, ErrInvalidSpec) {
		t.Fatalf("invalid spec: got %v, want ErrInvalidSpec", err)
	}
}

func TestDisplayManagerLaysOutPanels(t *testing.T) {
	dm, _ := newTestDisplay(t, 80, 24)
	list, err := dm.AddListView(NewPanelSpec("list").Bottom(Cells(3)).Width(Frac(0.4)).Borders(false, true))
	if err != nil {
		t.Fatal(err)
	}
	status, err := dm.AddTextPanel(NewPanelSpec("status").Bottom(Cells(0)).Height(Cells(3)).AlignV(AnchorEnd).Borders(true, false))
	if err != nil {
		t.Fatal(err)
	}

	dm.layout()

	if got := list.Rect(); got != (Rect{X: 0, Y: 1, W: 32, H: 20}) {
		t.Fatalf("list rect: %+v", got)
	}
	if got := status.Rect(); got != (Rect{X: 0, Y: 21, W: 80, H: 3}) {
		t.Fatalf("status rect: %+v", got)
	}
}

func TestDisplayManagerRelayoutOnResize(t *testing.T) {
	dm, sim := newTestDisplay(t, 80, 24)
	list, _ := dm.AddListView(NewPanelSpec("list").Bottom(Cells(3)).Width(Frac(0.4)))
	list.SetEntries(newEntries("kept"))
	dm.layout()

	sim.SetSize(100, 30)
	dm.OnResize()

	if got := list.Rect(); got != (Rect{X: 0, Y: 1, W: 40, H: 26}) {
		t.Fatalf("rect after resize: %+v", got)
	}
	// Cached content replayed without the application resupplying it.
	if cellAt(sim, 0, 1) != 'k' {
		t.Fatal("list content lost on resize")
	}
}

func TestDisplayManagerTitle(t *testing.T) {
	dm, sim := newTestDisplay(t, 20, 6)
	dm.layout()
	dm.SetTitle("Hi")

	// " Hi " centered on a 20-cell rule.
	if cellAt(sim, 9, 0) != 'H' || cellAt(sim, 10, 0) != 'i' {
		t.Fatalf("title not centered: %q %q", cellAt(sim, 9, 0), cellAt(sim, 10, 0))
	}
	if cellAt(sim, 0, 0) != '─' {
		t.Fatal("title rule missing")
	}
}
