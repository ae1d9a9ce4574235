package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

// newTestDisplay binds a display manager to a simulation screen of the
// given size and tears both down with the test.
func newTestDisplay(t *testing.T, w, h int) (*DisplayManager, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	dm, err := NewDisplayManagerFor(sim)
	if err != nil {
		t.Fatalf("init display: %v", err)
	}
	sim.SetSize(w, h)
	t.Cleanup(func() { sim.Fini() })
	return dm, sim
}

// cellAt returns the primary rune at a screen position.
func cellAt(sim tcell.SimulationScreen, x, y int) rune {
	ch, _, _, _ := sim.GetContent(x, y)
	return ch
}

type testEntry struct {
	label string
	attrs map[string]string
}

func (e *testEntry) Label() string { return e.label }

func (e *testEntry) Attr(key string) (string, bool) {
	v, ok := e.attrs[key]
	return v, ok
}

func newEntries(labels ...string) []Entry {
	out := make([]Entry, len(labels))
	for i, l := range labels {
		out[i] = &testEntry{label: l}
	}
	return out
}

func labelsOf(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Label()
	}
	return out
}

func sameLabels(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
