// Copyright © 2025 Asset Index Browser contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: ui/display.go
// Summary: Panel construction, layout orchestration and terminal lifecycle.

package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Panel is a rectangular region the display manager lays out on every
// resize and asks to replay its cached content afterwards.
type Panel interface {
	Name() string
	Layout(size Size)
	Refresh()
}

// DisplayManager owns the terminal surface: it builds panels from their
// specs, runs the first layout pass, listens for resize events and
// restores the terminal on Stop. It is the only component that calls the
// geometry resolver.
type DisplayManager struct {
	screen     tcell.Screen
	dispatcher *Dispatcher
	palette    *Palette
	panels     []Panel
	title      string
}

// NewDisplayManager initializes the process terminal.
func NewDisplayManager() (*DisplayManager, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("allocate screen: %w", err)
	}
	return NewDisplayManagerFor(screen)
}

// NewDisplayManagerFor binds a display manager to a specific screen.
// Tests use it with tcell's simulation screen; the terminal is an
// exclusive resource, so exactly one manager may bind it at a time.
func NewDisplayManagerFor(screen tcell.Screen) (*DisplayManager, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	palette := NewPalette()
	screen.SetStyle(palette.Default())
	screen.HideCursor()
	return &DisplayManager{
		screen:     screen,
		dispatcher: NewDispatcher(screen),
		palette:    palette,
	}, nil
}

// Dispatcher returns the input dispatcher bound to this display.
func (m *DisplayManager) Dispatcher() *Dispatcher { return m.dispatcher }

// Palette returns the style registry owned by this display.
func (m *DisplayManager) Palette() *Palette { return m.palette }

// AddTextPanel builds a text panel from its spec. The spec is validated
// here, before anything renders.
func (m *DisplayManager) AddTextPanel(spec *PanelSpec) (*TextPanel, error) {
	if err := spec.validate(); err != nil {
		return nil, err
	}
	p := &TextPanel{Surface: newSurface(m.screen, spec, m.palette.Default()), spec: spec}
	m.panels = append(m.panels, p)
	return p, nil
}

// AddListView builds a tree list navigator from its spec.
func (m *DisplayManager) AddListView(spec *PanelSpec) (*ListView, error) {
	if err := spec.validate(); err != nil {
		return nil, err
	}
	v := &ListView{Surface: newSurface(m.screen, spec, m.palette.Default()), spec: spec}
	m.panels = append(m.panels, v)
	return v, nil
}

// Start performs the first layout pass against the current terminal size,
// registers the manager for resize events and begins input dispatch.
func (m *DisplayManager) Start() error {
	m.layout()
	if err := m.dispatcher.AddListener(m); err != nil {
		return err
	}
	m.dispatcher.Start()
	return nil
}

// Stop halts input dispatch and restores the terminal to its prior mode.
func (m *DisplayManager) Stop() {
	m.dispatcher.Stop()
	m.screen.Fini()
}

// SetTitle redraws the centered title line, independent of panel layout.
func (m *DisplayManager) SetTitle(title string) {
	m.title = title
	m.drawTitle()
	m.screen.Show()
}

// OnResize recomputes every panel's rectangle against the new terminal
// size and replays each panel's cached content.
func (m *DisplayManager) OnResize() {
	m.screen.Sync()
	m.layout()
}

// OnKey implements Listener; keys belong to the application layer.
func (m *DisplayManager) OnKey(Key) {}

func (m *DisplayManager) layout() {
	w, h := m.screen.Size()
	size := Size{W: w, H: h}

	m.screen.Clear()
	for _, p := range m.panels {
		p.Layout(size)
	}
	m.drawTitle()
	for _, p := range m.panels {
		p.Refresh()
	}
	m.screen.Show()
}

// drawTitle draws the top rule with the title centered over it.
func (m *DisplayManager) drawTitle() {
	w, _ := m.screen.Size()
	style := m.palette.Default()
	for x := 0; x < w; x++ {
		m.screen.SetContent(x, 0, borderCharset[0], nil, style)
	}
	if m.title == "" {
		return
	}
	text := " " + m.title + " "
	col := anchorOffset(AnchorCenter, runewidth.StringWidth(text), w)
	for _, ch := range text {
		cw := runewidth.RuneWidth(ch)
		if cw == 0 {
			continue
		}
		if col >= 0 && col+cw <= w {
			m.screen.SetContent(col, 0, ch, nil, style)
		}
		col += cw
	}
}
