package outline

// AssignNumbers stamps position numbers onto the nodes of an already
// grouped sibling list and, recursively, onto their children.
//
// The index counts every slot of items, group markers included, so a
// node's last number component is its slot in the list rather than its
// rank among the nodes. With one group "[Separator, PartTitle, a, b]"
// under an empty prefix, a gets [2] and b gets [3]. Host output depends
// on these exact values.
func AssignNumbers(prefix []int, items []Item) {
	for i, it := range items {
		if !it.IsNode() {
			continue
		}
		number := make([]int, len(prefix), len(prefix)+1)
		copy(number, prefix)
		it.Node.Number = append(number, i)
		AssignNumbers(it.Node.Number, it.Node.Children)
	}
}
