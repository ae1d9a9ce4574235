// Copyright © 2025 Asset Index Browser contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: browser/browser.go
// Summary: The interactive browser tying index, preview and extraction to the UI.

package browser

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/Kriper1111/asset-index-browser/config"
	"github.com/Kriper1111/asset-index-browser/internal/assetindex"
	"github.com/Kriper1111/asset-index-browser/internal/extract"
	"github.com/Kriper1111/asset-index-browser/internal/history"
	"github.com/Kriper1111/asset-index-browser/internal/preview"
	"github.com/Kriper1111/asset-index-browser/ui"
)

type action int

const (
	actNone action = iota
	actQuit
	actUp
	actDown
	actActivate
	actExtract
)

// Browser is the interactive session over one asset index. All of its
// methods run on the dispatcher goroutine once Run has started.
type Browser struct {
	cfg      config.Config
	ix       *assetindex.Index
	tree     *assetindex.Node
	journal  *history.Store
	renderer *preview.Renderer

	display *ui.DisplayManager
	list    *ui.ListView
	preview *ui.TextPanel
	status  *ui.TextPanel
	keymap  map[ui.Key]action
	done    chan struct{}
}

// New builds a browser session. journal may be nil to run without
// history.
func New(ix *assetindex.Index, cfg config.Config, journal *history.Store) *Browser {
	b := &Browser{
		cfg:      cfg,
		ix:       ix,
		tree:     ix.Tree(),
		journal:  journal,
		renderer: preview.NewRenderer(cfg.Preview.Style, cfg.Preview.MaxBytes),
		keymap:   make(map[ui.Key]action),
		done:     make(chan struct{}),
	}
	bind := func(keys []string, act action) {
		for _, k := range keys {
			b.keymap[ui.Key(k)] = act
		}
	}
	bind(cfg.Keys.Quit, actQuit)
	bind(cfg.Keys.Up, actUp)
	bind(cfg.Keys.Down, actDown)
	bind(cfg.Keys.Activate, actActivate)
	bind(cfg.Keys.Extract, actExtract)
	return b
}

// Run takes over the process terminal until the user quits.
func (b *Browser) Run() error {
	display, err := ui.NewDisplayManager()
	if err != nil {
		return err
	}
	if err := b.run(display); err != nil {
		display.Stop()
		return err
	}
	<-b.done
	display.Dispatcher().Wait()
	return nil
}

// run wires the panels onto an already initialized display and starts
// input dispatch. Split from Run so tests can drive a simulation screen.
func (b *Browser) run(display *ui.DisplayManager) error {
	b.display = display

	list, err := display.AddListView(
		ui.NewPanelSpec("list").Bottom(ui.Cells(3)).Width(ui.Frac(0.4)).Borders(false, true))
	if err != nil {
		return err
	}
	pv, err := display.AddTextPanel(
		ui.NewPanelSpec("preview").Left(ui.Frac(0.4)).Bottom(ui.Cells(3)).
			Width(ui.Frac(0.6)).AlignH(ui.AnchorEnd))
	if err != nil {
		return err
	}
	status, err := display.AddTextPanel(
		ui.NewPanelSpec("status").Bottom(ui.Cells(0)).Height(ui.Cells(3)).
			AlignV(ui.AnchorEnd).Borders(true, false))
	if err != nil {
		return err
	}
	b.list, b.preview, b.status = list, pv, status

	palette := display.Palette()
	if b.cfg.Theme.Directory != "" {
		list.AddStyleRule(palette.StyleFor(b.cfg.Theme.Directory), map[string]string{"type": "dir"})
	}
	if b.cfg.Theme.File != "" {
		list.AddStyleRule(palette.StyleFor(b.cfg.Theme.File), map[string]string{"type": "file"})
	}
	list.SetEntries(entriesFor(b.tree.Children()))

	if err := display.Dispatcher().AddListener(b); err != nil {
		return err
	}
	if err := display.Start(); err != nil {
		return err
	}
	display.SetTitle("Asset index: " + b.ix.Name)
	b.setStatus(b.startupStatus())
	b.showPreview()
	return nil
}

// OnKey implements ui.Listener.
func (b *Browser) OnKey(key ui.Key) {
	switch b.keymap[key] {
	case actQuit:
		b.display.Stop()
		close(b.done)
	case actUp:
		b.list.MovePrevious()
		b.showPreview()
	case actDown:
		b.list.MoveNext()
		b.showPreview()
	case actActivate:
		b.activate()
	case actExtract:
		b.extractCurrent()
	}
}

// OnResize implements ui.Listener; layout is the display manager's job.
func (b *Browser) OnResize() {}

// activate toggles a directory open or closed, and previews a file.
func (b *Browser) activate() {
	node, ok := b.currentNode()
	if !ok {
		return
	}
	if !node.Dir {
		b.showPreview()
		return
	}
	if node.Expanded {
		// Count before clearing the flags or the block size is lost.
		count := node.VisibleDescendants()
		b.list.Collapse(count)
		node.CollapseAll()
		return
	}
	node.Expanded = true
	b.list.InsertChildren(entriesFor(node.Children()))
}

// showPreview fills the preview pane for the entry under the cursor.
func (b *Browser) showPreview() {
	node, ok := b.currentNode()
	if !ok || node.Dir {
		b.preview.SetText("", ui.AnchorStart, ui.AnchorStart)
		return
	}

	content, err := os.ReadFile(b.ix.ObjectPath(node.Hash))
	if err != nil {
		b.previewMessage(fmt.Sprintf("Object %s is not in the store", node.Hash))
		return
	}
	kind := preview.Detect(node.Name, content)
	switch kind {
	case preview.KindText:
		if !utf8.Valid(content) {
			b.previewMessage(fmt.Sprintf("%s is not valid UTF-8", node.Path))
			return
		}
		b.preview.SetLines(b.renderer.Render(node.Name, content), ui.AnchorStart, ui.AnchorStart)
	default:
		b.previewMessage(fmt.Sprintf("No preview for %s assets\n\n%s (%d bytes)", kind, node.Path, node.Size))
	}
}

func (b *Browser) previewMessage(msg string) {
	b.preview.SetText(msg, ui.AnchorCenter, ui.AnchorCenter)
}

// extractCurrent copies the selected subtree out of the object store
// into <root>/<index name>.
func (b *Browser) extractCurrent() {
	node, ok := b.currentNode()
	if !ok {
		return
	}
	dest := filepath.Join(b.ix.Root, b.ix.Name)
	res, err := extract.Extract(b.ix, node, dest)
	if err != nil {
		log.Printf("extract %s: %v", node.Path, err)
		b.setStatus(fmt.Sprintf("Extraction failed: %v", err))
		return
	}
	if err := b.journal.RecordExtraction(node.Path, dest, res.Copied); err != nil {
		log.Printf("journal extraction: %v", err)
	}
	b.setStatus(fmt.Sprintf("Extracted %s to %s: %s", displayPath(node), dest, res))
}

// startupStatus is the line shown before the first key: the key help,
// followed by the most recently opened indexes from the journal.
func (b *Browser) startupStatus() string {
	help := helpText(b.cfg.Keys)
	recent, err := b.journal.Recent(3)
	if err != nil {
		log.Printf("history: recent indexes: %v", err)
		return help
	}
	if len(recent) == 0 {
		return help
	}
	names := make([]string, len(recent))
	for i, p := range recent {
		names[i] = filepath.Base(p)
	}
	return help + "   recent: " + strings.Join(names, ", ")
}

func (b *Browser) setStatus(msg string) {
	b.status.SetText(msg, ui.AnchorStart, ui.AnchorCenter)
}

func (b *Browser) currentNode() (*assetindex.Node, bool) {
	entry, err := b.list.Current()
	if err != nil {
		return nil, false
	}
	ne, ok := entry.(nodeEntry)
	if !ok {
		return nil, false
	}
	return ne.node, true
}

// nodeEntry adapts a tree node to the list view's entry interface.
type nodeEntry struct {
	node *assetindex.Node
}

func (e nodeEntry) Label() string {
	indent := strings.Repeat("  ", e.node.Depth-1)
	if e.node.Dir {
		return indent + e.node.Name + "/"
	}
	return indent + e.node.Name
}

func (e nodeEntry) Attr(key string) (string, bool) {
	if key != "type" {
		return "", false
	}
	if e.node.Dir {
		return "dir", true
	}
	return "file", true
}

func entriesFor(nodes []*assetindex.Node) []ui.Entry {
	out := make([]ui.Entry, len(nodes))
	for i, n := range nodes {
		out[i] = nodeEntry{node: n}
	}
	return out
}

func displayPath(n *assetindex.Node) string {
	if n.Path == "" {
		return "everything"
	}
	return n.Path
}

func helpText(k config.Keys) string {
	pick := func(keys []string) string {
		if len(keys) == 0 {
			return "?"
		}
		if keys[0] == " " {
			return "SPACE"
		}
		return keys[0]
	}
	return fmt.Sprintf("%s/%s move   %s open   %s extract   %s quit",
		pick(k.Up), pick(k.Down), pick(k.Activate), pick(k.Extract), pick(k.Quit))
}
