// Copyright © 2025 Asset Index Browser contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/extract/extract.go
// Summary: Copying objects out of the store into a real directory tree.

package extract

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/Kriper1111/asset-index-browser/internal/assetindex"
)

// Result summarizes one extraction run.
type Result struct {
	Copied  int
	Skipped int
	Missing int
}

func (r Result) String() string {
	return fmt.Sprintf("%d copied, %d skipped, %d missing", r.Copied, r.Skipped, r.Missing)
}

// Extract materializes every file under node into destRoot, laid out by
// virtual path. Files already present at the destination are skipped,
// so re-running an extraction only fills the gaps. A hash missing from
// the object store is logged and counted but does not abort the run.
func Extract(ix *assetindex.Index, node *assetindex.Node, destRoot string) (Result, error) {
	var res Result
	for _, file := range node.Files() {
		dest := filepath.Join(destRoot, filepath.FromSlash(file.Path))
		if _, err := os.Stat(dest); err == nil {
			res.Skipped++
			continue
		}
		src := ix.ObjectPath(file.Hash)
		if _, err := os.Stat(src); err != nil {
			log.Printf("extract: object %s for %s not in store", file.Hash, file.Path)
			res.Missing++
			continue
		}
		if err := copyFile(src, dest); err != nil {
			return res, fmt.Errorf("extract %s: %w", file.Path, err)
		}
		res.Copied++
	}
	return res, nil
}

func copyFile(src, dest string) error {
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return err
	}
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
