// SPDX-License-Identifier: MIT
// Copyright (c) 2026 leloulight
// Source: github.com/leloulight/bmrules

package bmrules

import (
	"fmt"
	"io"
	"io/fs"
	"strings"
)

// Source resolves catalog names to byte streams. Repository catalogs are
// addressed as "<nameType>_<ruleType>_<language>", include directives by
// the bare name they reference. How names map to storage (embedded files,
// directories, archives) is the source's concern.
type Source interface {
	// Open returns the stream for a named catalog.
	// A missing catalog must be reported with ErrResourceNotFound.
	Open(name string) (io.ReadCloser, error)
}

const defaultCatalogExt = ".txt"

// FSSource serves catalogs from an fs.FS, appending Ext to catalog names.
// It works with embed.FS, os.DirFS and testing fstest.MapFS alike.
type FSSource struct {
	// FS is the backing filesystem.
	FS fs.FS
	// Ext is appended to catalog names, ".txt" when empty.
	Ext string
}

// NewFSSource creates an FSSource with the default ".txt" extension.
func NewFSSource(fsys fs.FS) FSSource {
	return FSSource{FS: fsys, Ext: defaultCatalogExt}
}

// Open returns the stream for a named catalog file.
func (s FSSource) Open(name string) (io.ReadCloser, error) {
	ext := s.Ext
	if ext == "" {
		ext = defaultCatalogExt
	}

	f, err := s.FS.Open(name + ext)
	if err != nil {
		return nil, fmt.Errorf("%w: %s%s: %v", ErrResourceNotFound, name, ext, err)
	}

	return f, nil
}

// MapSource serves catalogs from in-memory strings keyed by bare name.
type MapSource map[string]string

// Open returns the stream for a named in-memory catalog.
func (s MapSource) Open(name string) (io.ReadCloser, error) {
	content, ok := s[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrResourceNotFound, name)
	}

	return io.NopCloser(strings.NewReader(content)), nil
}

// resourceName builds the repository catalog name for one key combination.
func resourceName(nameType NameType, ruleType RuleType, lang string) string {
	return fmt.Sprintf("%s_%s_%s", nameType, ruleType, lang)
}
