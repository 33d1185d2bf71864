package outline

import (
	"cmp"
	"slices"
)

// compareNodes orders siblings by category tag, then by raw entry name.
// Both keys compare bytewise, so the order is case-sensitive.
func compareNodes(a, b *Node) int {
	tagA, _ := ExtractCategory(a.EntryName)
	tagB, _ := ExtractCategory(b.EntryName)
	return cmp.Or(
		cmp.Compare(tagA, tagB),
		cmp.Compare(a.EntryName, b.EntryName),
	)
}

// Reorder sorts one level of siblings and interleaves group markers. Each
// time the category tag changes along the sorted list, a Separator and a
// PartTitle naming the new category are emitted before the first node of
// that category. Untagged nodes sort first and get no markers.
//
// nodes is sorted in place.
func Reorder(nodes []*Node) []Item {
	if len(nodes) == 0 {
		return nil
	}
	slices.SortFunc(nodes, compareNodes)

	items := make([]Item, 0, len(nodes))
	current := ""
	for _, n := range nodes {
		tag, _ := ExtractCategory(n.EntryName)
		if tag != current {
			items = append(items, Separator(), PartTitle(DisplayName(tag)))
			current = tag
		}
		items = append(items, NodeItem(n))
	}
	return items
}
