// Package outline builds a book outline (table of contents) from a directory
// of markdown files.
//
// # Overview
//
// The source directory is walked depth-first. Every directory becomes a
// chapter whose body is taken from its index file, and every markdown file
// becomes a leaf chapter. Siblings are ordered and grouped by the category
// tag embedded in their names, then numbered top-down.
//
// # Naming Conventions
//
//   - Category tags: the part of a name before its first underscore, as in
//     "guide_setup.md" (tag "guide"). Names without an underscore, or that
//     start with one, have no tag.
//
//   - Ordering prefixes: leading digits and dots, as in "01.Intro". They
//     steer sorting and are stripped from display names.
//
//   - Index files: INDEX.md, README.md, index.md and readme.md, tried in
//     that order, give a directory its body text.
//
// # Usage
//
//	b := outline.NewBuilder(outline.DefaultOptions())
//	items, err := b.Generate("book/src")
//
// # Architecture
//
//   - types.go: Node and Item, the outline data model
//   - names.go: category extraction and ordering prefix trimming
//   - index.go: index file resolution for directories
//   - builder.go: the recursive directory walk
//   - reorder.go: sibling sorting and group boundary insertion
//   - number.go: hierarchical position numbers
package outline
