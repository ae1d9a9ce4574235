// Copyright © 2025 Asset Index Browser contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: ui/dispatcher.go
// Summary: Input event loop: key normalization and listener fan-out.

package ui

import (
	"log"
	"sync"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// Key is a normalized input code: a named code for special keys, or the
// uppercased character itself.
type Key string

const (
	KeyUp        Key = "UP"
	KeyDown      Key = "DOWN"
	KeyLeft      Key = "LEFT"
	KeyRight     Key = "RIGHT"
	KeyEnter     Key = "ENTER"
	KeyEscape    Key = "ESCAPE"
	KeyTab       Key = "TAB"
	KeyBackspace Key = "BACKSPACE"
	KeyPgUp      Key = "PGUP"
	KeyPgDn      Key = "PGDN"
	KeyHome      Key = "HOME"
	KeyEnd       Key = "END"
	KeyCtrlC     Key = "CTRL+C"
	KeySpace     Key = " "
)

// normalizeKey maps a raw terminal key event to a Key. Character keys are
// layout-sensitive and uppercased; unmapped special keys are swallowed.
func normalizeKey(ev *tcell.EventKey) (Key, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return KeyUp, true
	case tcell.KeyDown:
		return KeyDown, true
	case tcell.KeyLeft:
		return KeyLeft, true
	case tcell.KeyRight:
		return KeyRight, true
	case tcell.KeyEnter:
		return KeyEnter, true
	case tcell.KeyEscape:
		return KeyEscape, true
	case tcell.KeyTab:
		return KeyTab, true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return KeyBackspace, true
	case tcell.KeyPgUp:
		return KeyPgUp, true
	case tcell.KeyPgDn:
		return KeyPgDn, true
	case tcell.KeyHome:
		return KeyHome, true
	case tcell.KeyEnd:
		return KeyEnd, true
	case tcell.KeyCtrlC:
		return KeyCtrlC, true
	case tcell.KeyRune:
		return Key(string(unicode.ToUpper(ev.Rune()))), true
	}
	return "", false
}

// Listener receives normalized input events. Callbacks run on the
// dispatcher goroutine; all panel and navigator mutation belongs there and
// nowhere else, which is what makes the UI single-writer. Listeners are
// keyed by identity, so they must be comparable (pointer receivers are).
type Listener interface {
	OnKey(key Key)
	OnResize()
}

// Dispatcher runs the single blocking-read loop over terminal events and
// fans them out to registered listeners in unspecified order.
type Dispatcher struct {
	screen tcell.Screen

	mu        sync.Mutex
	listeners map[Listener]struct{}
	started   bool

	quit     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

func NewDispatcher(screen tcell.Screen) *Dispatcher {
	return &Dispatcher{
		screen:    screen,
		listeners: make(map[Listener]struct{}),
		quit:      make(chan struct{}),
		done:      make(chan struct{}),
	}
}

// AddListener registers a listener by identity.
func (d *Dispatcher) AddListener(l Listener) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.listeners[l]; ok {
		return ErrDuplicateListener
	}
	d.listeners[l] = struct{}{}
	return nil
}

// RemoveListener unregisters a listener.
func (d *Dispatcher) RemoveListener(l Listener) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.listeners[l]; !ok {
		return ErrUnknownListener
	}
	delete(d.listeners, l)
	return nil
}

// Start runs the event loop on its own goroutine.
func (d *Dispatcher) Start() {
	d.mu.Lock()
	if d.started {
		d.mu.Unlock()
		return
	}
	d.started = true
	d.mu.Unlock()
	go d.loop()
}

// Stop asks the loop to exit and wakes the blocking read with a posted
// interrupt, so shutdown does not wait for the next real key. Safe to call
// from a listener callback; use Wait to join the loop.
func (d *Dispatcher) Stop() {
	d.stopOnce.Do(func() {
		close(d.quit)
		_ = d.screen.PostEvent(tcell.NewEventInterrupt(nil))
	})
}

// Wait blocks until the event loop has exited. Only meaningful after
// Start.
func (d *Dispatcher) Wait() { <-d.done }

func (d *Dispatcher) loop() {
	defer close(d.done)
	for {
		ev := d.screen.PollEvent()
		select {
		case <-d.quit:
			return
		default:
		}
		if ev == nil {
			// Screen torn down underneath us.
			return
		}
		d.dispatch(ev)
	}
}

func (d *Dispatcher) dispatch(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		for _, l := range d.snapshot() {
			deliver(l, l.OnResize)
		}
	case *tcell.EventKey:
		key, ok := normalizeKey(ev)
		if !ok {
			return
		}
		for _, l := range d.snapshot() {
			deliver(l, func() { l.OnKey(key) })
		}
	}
}

// snapshot copies the listener set so callbacks may register or remove
// listeners without deadlocking the dispatch.
func (d *Dispatcher) snapshot() []Listener {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]Listener, 0, len(d.listeners))
	for l := range d.listeners {
		out = append(out, l)
	}
	return out
}

// deliver runs one callback, isolating panics so a broken listener cannot
// starve the others or stall the loop.
func deliver(l Listener, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Dispatcher: listener %T panicked: %v", l, r)
		}
	}()
	fn()
}
