package outline

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Node is one chapter of the outline. Directories and markdown files both
// become nodes; only directories can have children.
type Node struct {
	Name          string   `json:"name"`
	CategoryTag   string   `json:"category_tag,omitempty"`
	Content       string   `json:"content,omitempty"`
	SourcePath    string   `json:"source_path"`
	EntryName     string   `json:"entry_name"`
	AncestorNames []string `json:"ancestor_names,omitempty"`
	Number        []int    `json:"number,omitempty"`
	Children      []Item   `json:"children,omitempty"`
}

// ItemKind identifies the variant held by an Item.
type ItemKind int

const (
	// KindNode is a chapter.
	KindNode ItemKind = iota
	// KindSeparator marks the end of a category group.
	KindSeparator
	// KindPartTitle labels the category group that follows it.
	KindPartTitle
)

func (k ItemKind) String() string {
	switch k {
	case KindNode:
		return "node"
	case KindSeparator:
		return "separator"
	case KindPartTitle:
		return "part_title"
	default:
		return "unknown"
	}
}

// Item is an entry of a sibling list: a Node, or one of the two synthetic
// group boundary markers. Markers carry no content and never get a number.
type Item struct {
	Kind  ItemKind `json:"kind"`
	Node  *Node    `json:"node,omitempty"`
	Label string   `json:"label,omitempty"`
}

// NodeItem wraps n as an Item.
func NodeItem(n *Node) Item {
	return Item{Kind: KindNode, Node: n}
}

// Separator returns a group separator.
func Separator() Item {
	return Item{Kind: KindSeparator}
}

// PartTitle returns a group title carrying label.
func PartTitle(label string) Item {
	return Item{Kind: KindPartTitle, Label: label}
}

// IsNode reports whether the item holds a chapter.
func (it Item) IsNode() bool {
	return it.Kind == KindNode && it.Node != nil
}

// String returns a JSON representation of the Node for debugging.
func (n *Node) String() string {
	b, _ := json.MarshalIndent(n, "", "  ")
	return string(b)
}

// NumberString formats the position number as "1.2.3", or "" when the node
// has not been numbered yet.
func (n *Node) NumberString() string {
	if len(n.Number) == 0 {
		return ""
	}
	parts := make([]string, len(n.Number))
	for i, v := range n.Number {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ".")
}

// SameChapter reports whether two nodes describe the same chapter, by
// category tag and display name. Sorting uses the raw entry name instead.
func (n *Node) SameChapter(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	return n.CategoryTag == other.CategoryTag && n.Name == other.Name
}

// Walk traverses the subtree in depth-first order, calling fn for n and
// every descendant node. Group markers are skipped.
func (n *Node) Walk(fn func(*Node)) {
	if n == nil {
		return
	}
	fn(n)
	WalkItems(n.Children, fn)
}

// WalkItems calls fn for every node in items and their descendants, in
// depth-first order.
func WalkItems(items []Item, fn func(*Node)) {
	for _, it := range items {
		if it.IsNode() {
			it.Node.Walk(fn)
		}
	}
}

// AllNodes returns every node in items as a flat slice, in walk order.
func AllNodes(items []Item) []*Node {
	var nodes []*Node
	WalkItems(items, func(n *Node) {
		nodes = append(nodes, n)
	})
	return nodes
}

// LeafNodes returns the nodes without children.
func LeafNodes(items []Item) []*Node {
	var leaves []*Node
	WalkItems(items, func(n *Node) {
		if len(n.Children) == 0 {
			leaves = append(leaves, n)
		}
	})
	return leaves
}

// Nodes returns the chapters among items, without descending.
func Nodes(items []Item) []*Node {
	var nodes []*Node
	for _, it := range items {
		if it.IsNode() {
			nodes = append(nodes, it.Node)
		}
	}
	return nodes
}
