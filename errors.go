// SPDX-License-Identifier: MIT
// Copyright (c) 2026 leloulight
// Source: github.com/leloulight/bmrules

package bmrules

import "errors"

// Sentinel errors for bmrules operations.
var (
	// ErrResourceNotFound indicates a declared catalog resource could not be opened.
	ErrResourceNotFound = errors.New("rules resource not found")
	// ErrIncludeCycle indicates a catalog includes itself through a chain of includes.
	ErrIncludeCycle = errors.New("include cycle")
	// ErrInvalidContext indicates a left or right context expression failed to compile.
	ErrInvalidContext = errors.New("invalid context expression")
	// ErrUnknownRuleSet indicates a repository lookup for an unpopulated key combination.
	ErrUnknownRuleSet = errors.New("no rules found")
	// ErrNegativePosition indicates a match request at a negative input position.
	ErrNegativePosition = errors.New("cannot match pattern at negative position")
	// ErrNilRepository indicates a nil Repository receiver.
	ErrNilRepository = errors.New("repository is nil")
)
