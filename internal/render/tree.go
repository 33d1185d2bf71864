package render

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"

	"github.com/itsmostafa/mdbook-summary-generate/internal/outline"
)

var enumeratorStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("240")).
	MarginRight(1)

// Tree renders items as an indented tree under a root labelled title.
// Part titles appear as their own rows; separators are implied by them.
func Tree(title string, items []outline.Item) string {
	t := newTree(titleStyle.Render(title))
	addItems(t, items)
	return t.String()
}

func newTree(root string) *tree.Tree {
	return tree.Root(root).
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(enumeratorStyle)
}

func addItems(t *tree.Tree, items []outline.Item) {
	for _, it := range items {
		switch it.Kind {
		case outline.KindPartTitle:
			t.Child(partStyle.Render("§ " + it.Label))
		case outline.KindNode:
			if it.Node == nil {
				continue
			}
			label := nodeLabel(it.Node)
			if len(it.Node.Children) == 0 {
				t.Child(label)
				continue
			}
			sub := newTree(label)
			addItems(sub, it.Node.Children)
			t.Child(sub)
		}
	}
}

func nodeLabel(n *outline.Node) string {
	label := n.Name
	if num := n.NumberString(); num != "" {
		label = numberStyle.Render(num) + " " + label
	}
	return label + " " + dimStyle.Render("("+n.SourcePath+")")
}
