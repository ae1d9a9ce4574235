// Copyright © 2025 Asset Index Browser contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/assetindex/tree.go
// Summary: Virtual directory tree built from manifest entries.

package assetindex

import (
	"path"
	"sort"
	"strings"
)

// Node is one entry of the virtual file tree. The browser walks nodes to
// populate its flattened list; the Expanded flag tracks which directories
// currently contribute their children to that list.
type Node struct {
	Name  string
	Path  string // full virtual path
	Depth int
	Dir   bool
	Hash  string
	Size  int64

	Expanded bool
	children map[string]*Node
}

// Tree builds the virtual directory tree from the manifest entries. Every
// intermediate path segment becomes a directory node; the final segment
// carries the object hash.
func (ix *Index) Tree() *Node {
	root := &Node{Name: ".", Dir: true, children: make(map[string]*Node)}
	for _, obj := range ix.Objects {
		parts := strings.Split(path.Clean(obj.Path), "/")
		cur := root
		for i, part := range parts {
			child := cur.children[part]
			if child == nil {
				child = &Node{
					Name:     part,
					Path:     path.Join(cur.Path, part),
					Depth:    cur.Depth + 1,
					Dir:      true,
					children: make(map[string]*Node),
				}
				cur.children[part] = child
			}
			cur = child
			if i == len(parts)-1 {
				cur.Dir = false
				cur.Hash = obj.Hash
				cur.Size = obj.Size
			}
		}
	}
	return root
}

// Children returns the node's immediate children, directories first, then
// by name.
func (n *Node) Children() []*Node {
	out := make([]*Node, 0, len(n.children))
	for _, c := range n.children {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Dir != out[j].Dir {
			return out[i].Dir
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// VisibleDescendants counts every descendant reachable through expanded
// directories. A collapse removes exactly this many rows from the
// flattened list, so it must be computed before flipping Expanded off.
func (n *Node) VisibleDescendants() int {
	count := 0
	frontier := []*Node{n}
	for len(frontier) > 0 {
		var next []*Node
		for _, node := range frontier {
			if node.Dir && node.Expanded {
				kids := node.Children()
				count += len(kids)
				next = append(next, kids...)
			}
		}
		frontier = next
	}
	return count
}

// CollapseAll clears the Expanded flag on the node and every descendant,
// so a re-expanded directory starts from a collapsed view that matches
// the flattened list again.
func (n *Node) CollapseAll() {
	n.Expanded = false
	for _, c := range n.children {
		if c.Dir {
			c.CollapseAll()
		}
	}
}

// Files returns every file node in the subtree, the node itself included
// when it is a file.
func (n *Node) Files() []*Node {
	var out []*Node
	frontier := []*Node{n}
	for len(frontier) > 0 {
		var next []*Node
		for _, node := range frontier {
			if !node.Dir {
				out = append(out, node)
			}
			next = append(next, node.Children()...)
		}
		frontier = next
	}
	return out
}
