package render

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/itsmostafa/mdbook-summary-generate/internal/mdbook"
	"github.com/itsmostafa/mdbook-summary-generate/internal/outline"
)

// Format selects how an outline is printed.
type Format string

const (
	FormatTree Format = "tree"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ValidateFormat checks if the given format string is valid and returns the Format
func ValidateFormat(format string) (Format, error) {
	switch Format(format) {
	case FormatTree, FormatJSON, FormatYAML:
		return Format(format), nil
	default:
		return "", fmt.Errorf("unknown format: %q (valid options: tree, json, yaml)", format)
	}
}

// yamlEntry is the YAML shape of one outline item.
type yamlEntry struct {
	Part     string      `yaml:"part,omitempty"`
	Number   string      `yaml:"number,omitempty"`
	Name     string      `yaml:"name,omitempty"`
	Category string      `yaml:"category,omitempty"`
	Source   string      `yaml:"source,omitempty"`
	Children []yamlEntry `yaml:"children,omitempty"`
}

func toYAML(items []outline.Item) []yamlEntry {
	var entries []yamlEntry
	for _, it := range items {
		switch it.Kind {
		case outline.KindPartTitle:
			entries = append(entries, yamlEntry{Part: it.Label})
		case outline.KindNode:
			if it.Node == nil {
				continue
			}
			entries = append(entries, yamlEntry{
				Number:   it.Node.NumberString(),
				Name:     it.Node.Name,
				Category: it.Node.CategoryTag,
				Source:   it.Node.SourcePath,
				Children: toYAML(it.Node.Children),
			})
		}
	}
	return entries
}

// Write prints items to w in the given format. JSON output is the host's
// section list, exactly as the preprocessor would emit it.
func Write(w io.Writer, format Format, title string, items []outline.Item) error {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(mdbook.FromOutline(items), "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode outline: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(toYAML(items)); err != nil {
			return fmt.Errorf("failed to encode outline: %w", err)
		}
		return enc.Close()
	case FormatTree:
		_, err := fmt.Fprintln(w, Tree(title, items))
		return err
	default:
		return fmt.Errorf("unknown format: %q", format)
	}
}
