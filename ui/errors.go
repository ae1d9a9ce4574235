// Copyright © 2025 Asset Index Browser contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: ui/errors.go
// Summary: Sentinel errors shared across the UI core.

package ui

import "errors"

var (
	// ErrInvalidSpec reports a panel spec that cannot be laid out. It is
	// returned at panel construction, before anything is rendered.
	ErrInvalidSpec = errors.New("invalid panel spec")

	// ErrEmptySelection reports a selection query against an empty list.
	ErrEmptySelection = errors.New("selection on empty list")

	// ErrDuplicateListener reports a listener registered twice.
	ErrDuplicateListener = errors.New("listener already registered")

	// ErrUnknownListener reports removal of a listener that was never
	// registered.
	ErrUnknownListener = errors.New("listener not registered")
)
