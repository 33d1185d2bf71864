package mdbook

import (
	"slices"

	"github.com/itsmostafa/mdbook-summary-generate/internal/outline"
)

// FromOutline converts outline items into host section items, preserving
// order and the slot-based numbers already assigned.
func FromOutline(items []outline.Item) []BookItem {
	out := make([]BookItem, 0, len(items))
	for _, it := range items {
		switch it.Kind {
		case outline.KindSeparator:
			out = append(out, NewSeparator())
		case outline.KindPartTitle:
			out = append(out, NewPartTitle(it.Label))
		case outline.KindNode:
			if it.Node != nil {
				out = append(out, NewChapter(chapterFromNode(it.Node)))
			}
		}
	}
	return out
}

func chapterFromNode(n *outline.Node) *Chapter {
	path := n.SourcePath
	source := n.SourcePath
	return &Chapter{
		Name:        n.Name,
		Content:     n.Content,
		Number:      sectionNumber(n.Number),
		SubItems:    FromOutline(n.Children),
		Path:        &path,
		SourcePath:  &source,
		ParentNames: slices.Clone(n.AncestorNames),
	}
}

func sectionNumber(number []int) []uint32 {
	if number == nil {
		return nil
	}
	out := make([]uint32, len(number))
	for i, v := range number {
		out[i] = uint32(v)
	}
	return out
}
