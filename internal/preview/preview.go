// Copyright © 2025 Asset Index Browser contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/preview/preview.go
// Summary: Asset kind detection for the preview pane.

package preview

import (
	"path"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Kind classifies an asset for the preview pane.
type Kind int

const (
	KindUnknown Kind = iota
	KindText
	KindImage
	KindSound
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindImage:
		return "image"
	case KindSound:
		return "sound"
	default:
		return "unknown"
	}
}

// Extensions the object store is known to contain. Anything else falls
// back to content sniffing.
var extKinds = map[string]Kind{
	".mcmeta": KindText,
	".txt":    KindText,
	".json":   KindText,
	".lang":   KindText,
	".png":    KindImage,
	".ogg":    KindSound,
}

// Detect classifies an asset by extension, falling back to a binary
// sniff of sample when the extension is not recognized. sample may be
// nil when no content is available, in which case unrecognized
// extensions report KindUnknown.
func Detect(name string, sample []byte) Kind {
	if kind, ok := extKinds[strings.ToLower(path.Ext(name))]; ok {
		return kind
	}
	if sample == nil {
		return KindUnknown
	}
	if enry.IsBinary(sample) {
		return KindUnknown
	}
	return KindText
}
