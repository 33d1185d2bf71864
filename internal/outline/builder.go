package outline

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// DefaultSkipDirs are directory names whose subtrees never contribute to
// the outline: the rendered output and the image assets.
var DefaultSkipDirs = []string{"book", "images"}

// ReservedFiles are markdown files that are never chapters on their own.
// They are matched case-insensitively.
var ReservedFiles = []string{"README.md", "INDEX.md", "SUMMARY.md"}

const markdownExt = ".md"

// Options controls which entries the builder visits.
type Options struct {
	// SkipDirs lists directory names to skip at any depth
	SkipDirs []string

	// IndexFiles lists the index file candidates in priority order
	IndexFiles []string
}

// DefaultOptions returns the conventional skip and index file lists.
func DefaultOptions() Options {
	return Options{
		SkipDirs:   slices.Clone(DefaultSkipDirs),
		IndexFiles: slices.Clone(DefaultIndexFiles),
	}
}

// Builder walks a source directory and produces its outline.
type Builder struct {
	opts Options
	log  *slog.Logger
}

// NewBuilder creates a builder. Empty option lists fall back to defaults.
func NewBuilder(opts Options) *Builder {
	if len(opts.SkipDirs) == 0 {
		opts.SkipDirs = slices.Clone(DefaultSkipDirs)
	}
	if len(opts.IndexFiles) == 0 {
		opts.IndexFiles = slices.Clone(DefaultIndexFiles)
	}
	return &Builder{
		opts: opts,
		log:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithLogger sets the logger used for non-fatal diagnostics.
func (b *Builder) WithLogger(log *slog.Logger) *Builder {
	if log != nil {
		b.log = log
	}
	return b
}

// Generate builds the outline of root and numbers it. This is the whole
// pipeline: walk, sort and group every level, then number top-down.
func (b *Builder) Generate(root string) ([]Item, error) {
	items, err := b.Build(root)
	if err != nil {
		return nil, err
	}
	AssignNumbers(nil, items)
	return items, nil
}

// Build walks root and returns its sorted and grouped children. Nodes are
// not numbered yet. A root that is itself a skipped directory yields an
// empty outline.
func (b *Builder) Build(root string) ([]Item, error) {
	if b.skipDir(filepath.Base(root)) {
		b.log.Debug("skipping directory", "path", root)
		return nil, nil
	}
	return b.build(root, "", nil)
}

// build returns the final child list of dir. rel is dir relative to the
// root, slash-separated, and ancestors are the display names above the
// children being built.
func (b *Builder) build(dir, rel string, ancestors []string) ([]Item, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var children []*Node
	for _, entry := range entries {
		name := entry.Name()
		full := filepath.Join(dir, name)
		entryRel := joinRel(rel, name)

		// Stat follows symlinks; entry.IsDir does not.
		info, statErr := os.Stat(full)
		if statErr == nil && info.IsDir() {
			if b.skipDir(name) {
				b.log.Debug("skipping directory", "path", full)
				continue
			}
			node, err := b.buildDir(full, entryRel, name, ancestors)
			if err != nil {
				return nil, err
			}
			children = append(children, node)
			continue
		}

		if !isChapterFile(name) {
			continue
		}
		children = append(children, b.newNode(name, entryRel, b.readContent(full), ancestors))
	}

	b.log.Debug("built directory", "path", dir, "chapters", len(children))
	return Reorder(children), nil
}

func (b *Builder) buildDir(dir, rel, name string, ancestors []string) (*Node, error) {
	content, source := b.ResolveContent(dir, rel)
	node := b.newNode(name, source, content, ancestors)

	inner := append(slices.Clone(ancestors), node.Name)
	children, err := b.build(dir, rel, inner)
	if err != nil {
		return nil, err
	}
	node.Children = children
	return node, nil
}

func (b *Builder) newNode(entryName, source, content string, ancestors []string) *Node {
	tag, _ := ExtractCategory(entryName)
	return &Node{
		Name:          DisplayName(entryName),
		CategoryTag:   tag,
		Content:       content,
		SourcePath:    source,
		EntryName:     entryName,
		AncestorNames: slices.Clone(ancestors),
	}
}

func (b *Builder) skipDir(name string) bool {
	return slices.Contains(b.opts.SkipDirs, name)
}

// isChapterFile reports whether name is a markdown file that becomes a leaf
// chapter. The extension match is case-sensitive, and a bare ".md" is a
// hidden file without extension.
func isChapterFile(name string) bool {
	if !strings.HasSuffix(name, markdownExt) || len(name) <= len(markdownExt) {
		return false
	}
	for _, reserved := range ReservedFiles {
		if strings.EqualFold(name, reserved) {
			return false
		}
	}
	return true
}
