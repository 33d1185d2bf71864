package mdbook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itsmostafa/mdbook-summary-generate/internal/outline"
)

func TestFromOutline(t *testing.T) {
	child := &outline.Node{
		Name:          "deep.md",
		Content:       "deep",
		SourcePath:    "guide_advanced/deep.md",
		EntryName:     "deep.md",
		AncestorNames: []string{"guide_advanced"},
		Number:        []int{2, 0},
	}
	dir := &outline.Node{
		Name:       "guide_advanced",
		Content:    "# Advanced",
		SourcePath: "guide_advanced/README.md",
		EntryName:  "guide_advanced",
		Number:     []int{2},
		Children:   []outline.Item{outline.NodeItem(child)},
	}
	items := []outline.Item{
		outline.Separator(),
		outline.PartTitle("guide"),
		outline.NodeItem(dir),
	}

	result := FromOutline(items)

	require.Len(t, result, 3)
	assert.True(t, result[0].Separator)
	require.NotNil(t, result[1].PartTitle)
	assert.Equal(t, "guide", *result[1].PartTitle)

	chapter := result[2].Chapter
	require.NotNil(t, chapter)
	assert.Equal(t, "guide_advanced", chapter.Name)
	assert.Equal(t, "# Advanced", chapter.Content)
	assert.Equal(t, []uint32{2}, chapter.Number)
	assert.Equal(t, "guide_advanced/README.md", *chapter.Path)
	assert.Equal(t, "guide_advanced/README.md", *chapter.SourcePath)
	assert.Empty(t, chapter.ParentNames)

	require.Len(t, chapter.SubItems, 1)
	sub := chapter.SubItems[0].Chapter
	require.NotNil(t, sub)
	assert.Equal(t, []uint32{2, 0}, sub.Number)
	assert.Equal(t, []string{"guide_advanced"}, sub.ParentNames)
}

func TestFromOutline_Empty(t *testing.T) {
	result := FromOutline(nil)

	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestFromOutline_UnnumberedNode(t *testing.T) {
	result := FromOutline([]outline.Item{outline.NodeItem(&outline.Node{Name: "x"})})

	require.Len(t, result, 1)
	assert.Nil(t, result[0].Chapter.Number)
}
