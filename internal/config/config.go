// Package config reads the book configuration the preprocessor cares about:
// the source directory from [book] and its own [preprocessor.<name>] table.
// The same types decode the host's JSON context and a book.toml file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/pelletier/go-toml/v2"

	"github.com/itsmostafa/mdbook-summary-generate/internal/outline"
)

// FileName is the book configuration file inside a book directory.
const FileName = "book.toml"

// DefaultSrc is the source directory used when [book] src is unset.
const DefaultSrc = "src"

// File is the subset of the book configuration used by the preprocessor.
// Unknown keys are ignored.
type File struct {
	Book         Book               `json:"book" toml:"book"`
	Preprocessor map[string]Options `json:"preprocessor,omitempty" toml:"preprocessor,omitempty"`
}

// Book holds the [book] table.
type Book struct {
	Title string `json:"title,omitempty" toml:"title,omitempty"`
	Src   string `json:"src,omitempty" toml:"src,omitempty"`
}

// Options holds one [preprocessor.<name>] table.
type Options struct {
	// SkipDirs replaces the directory names skipped during the walk
	SkipDirs []string `json:"skip-dirs,omitempty" toml:"skip-dirs,omitempty"`

	// IndexFiles replaces the index file candidates, in priority order
	IndexFiles []string `json:"index-files,omitempty" toml:"index-files,omitempty"`
}

// Load reads book.toml from bookDir. A missing file is not an error and
// yields the zero configuration.
func Load(bookDir string) (File, error) {
	var f File
	data, err := os.ReadFile(filepath.Join(bookDir, FileName))
	if errors.Is(err, os.ErrNotExist) {
		return f, nil
	}
	if err != nil {
		return f, fmt.Errorf("failed to read %s: %w", FileName, err)
	}
	if err := toml.Unmarshal(data, &f); err != nil {
		return f, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}
	return f, nil
}

// SourceDir resolves the book source directory against the book root.
// An absolute src is returned unchanged.
func (f File) SourceDir(root string) string {
	src := f.Book.Src
	if src == "" {
		src = DefaultSrc
	}
	if filepath.IsAbs(src) {
		return filepath.Clean(src)
	}
	return filepath.Join(root, src)
}

// OutlineOptions returns the walk options configured for the named
// preprocessor, with defaults for anything left unset.
func (f File) OutlineOptions(name string) outline.Options {
	opts := outline.DefaultOptions()
	table, ok := f.Preprocessor[name]
	if !ok {
		return opts
	}
	if len(table.SkipDirs) > 0 {
		opts.SkipDirs = slices.Clone(table.SkipDirs)
	}
	if len(table.IndexFiles) > 0 {
		opts.IndexFiles = slices.Clone(table.IndexFiles)
	}
	return opts
}
