// Copyright © 2025 Asset Index Browser contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/assetindex/index.go
// Summary: Asset manifest parsing and content-addressed object resolution.

package assetindex

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Index is a parsed asset manifest: virtual file paths mapped to
// content-addressed objects stored under <Root>/objects.
type Index struct {
	// Name is the manifest file name without extension; extractions land
	// under <Root>/<Name>.
	Name string
	// Root is the asset directory holding the object store, derived from
	// the manifest location (<root>/indexes/<name>.json).
	Root string

	Objects []Object
}

// Object is one manifest entry.
type Object struct {
	Path string // virtual path, forward-slash separated
	Hash string
	Size int64
}

type manifest struct {
	Objects map[string]struct {
		Hash string `json:"hash"`
		Size int64  `json:"size"`
	} `json:"objects"`
}

// Load reads and parses an asset index file.
func Load(path string) (*Index, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read asset index: %w", err)
	}
	var m manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse asset index %s: %w", path, err)
	}
	if m.Objects == nil {
		return nil, fmt.Errorf("parse asset index %s: no objects table", path)
	}

	base := filepath.Base(path)
	ix := &Index{
		Name: strings.TrimSuffix(base, filepath.Ext(base)),
		Root: filepath.Dir(filepath.Dir(path)),
	}
	for p, obj := range m.Objects {
		ix.Objects = append(ix.Objects, Object{Path: p, Hash: obj.Hash, Size: obj.Size})
	}
	// The manifest is a JSON object, so entry order is not meaningful;
	// sort for a stable tree.
	sort.Slice(ix.Objects, func(i, j int) bool { return ix.Objects[i].Path < ix.Objects[j].Path })
	return ix, nil
}

// ObjectPath resolves a content hash to its sharded location in the
// object store: objects/<hash[:2]>/<hash>.
func (ix *Index) ObjectPath(hash string) string {
	if len(hash) < 2 {
		return filepath.Join(ix.Root, "objects", hash)
	}
	return filepath.Join(ix.Root, "objects", hash[:2], hash)
}
