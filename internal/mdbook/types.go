// Package mdbook implements the mdBook preprocessor wire format: the
// [context, book] input pair read from stdin and the book written back to
// stdout.
package mdbook

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/itsmostafa/mdbook-summary-generate/internal/config"
)

// Context is the first element of the preprocessor input.
type Context struct {
	Root          string      `json:"root"`
	Config        config.File `json:"config"`
	Renderer      string      `json:"renderer"`
	MDBookVersion string      `json:"mdbook_version"`
}

// Book is the second element of the preprocessor input. Only the sections
// are interpreted; every other field is written back exactly as received.
type Book struct {
	Sections []BookItem

	extra map[string]json.RawMessage
}

const sectionsKey = "sections"

func (b *Book) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	if raw, ok := fields[sectionsKey]; ok {
		if err := json.Unmarshal(raw, &b.Sections); err != nil {
			return fmt.Errorf("sections: %w", err)
		}
		delete(fields, sectionsKey)
	}
	b.extra = fields
	return nil
}

func (b Book) MarshalJSON() ([]byte, error) {
	fields := make(map[string]json.RawMessage, len(b.extra)+1)
	for k, v := range b.extra {
		fields[k] = v
	}
	sections := b.Sections
	if sections == nil {
		sections = []BookItem{}
	}
	raw, err := json.Marshal(sections)
	if err != nil {
		return nil, err
	}
	fields[sectionsKey] = raw
	return json.Marshal(fields)
}

// Chapter mirrors the host's chapter record.
type Chapter struct {
	Name        string     `json:"name"`
	Content     string     `json:"content"`
	Number      []uint32   `json:"number"`
	SubItems    []BookItem `json:"sub_items"`
	Path        *string    `json:"path"`
	SourcePath  *string    `json:"source_path"`
	ParentNames []string   `json:"parent_names"`
}

func (c Chapter) MarshalJSON() ([]byte, error) {
	// The host rejects null for list fields.
	type plain Chapter
	p := plain(c)
	if p.SubItems == nil {
		p.SubItems = []BookItem{}
	}
	if p.ParentNames == nil {
		p.ParentNames = []string{}
	}
	return json.Marshal(p)
}

// BookItem is one entry of a section list: exactly one of Chapter,
// Separator or PartTitle. On the wire it is externally tagged:
// {"Chapter": {...}}, "Separator" or {"PartTitle": "label"}.
type BookItem struct {
	Chapter   *Chapter
	Separator bool
	PartTitle *string
}

const (
	tagChapter   = "Chapter"
	tagSeparator = "Separator"
	tagPartTitle = "PartTitle"
)

// NewSeparator returns a separator item.
func NewSeparator() BookItem {
	return BookItem{Separator: true}
}

// NewPartTitle returns a part title item.
func NewPartTitle(label string) BookItem {
	return BookItem{PartTitle: &label}
}

// NewChapter returns a chapter item.
func NewChapter(c *Chapter) BookItem {
	return BookItem{Chapter: c}
}

func (it BookItem) MarshalJSON() ([]byte, error) {
	switch {
	case it.Chapter != nil:
		return json.Marshal(map[string]*Chapter{tagChapter: it.Chapter})
	case it.PartTitle != nil:
		return json.Marshal(map[string]string{tagPartTitle: *it.PartTitle})
	case it.Separator:
		return json.Marshal(tagSeparator)
	default:
		return nil, fmt.Errorf("empty book item")
	}
}

func (it *BookItem) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var tag string
		if err := json.Unmarshal(data, &tag); err != nil {
			return err
		}
		if tag != tagSeparator {
			return fmt.Errorf("unknown book item %q", tag)
		}
		*it = NewSeparator()
		return nil
	}

	var tagged map[string]json.RawMessage
	if err := json.Unmarshal(data, &tagged); err != nil {
		return err
	}
	if len(tagged) != 1 {
		return fmt.Errorf("book item must have exactly one variant, got %d", len(tagged))
	}
	for tag, raw := range tagged {
		switch tag {
		case tagChapter:
			var c Chapter
			if err := json.Unmarshal(raw, &c); err != nil {
				return fmt.Errorf("chapter: %w", err)
			}
			*it = NewChapter(&c)
		case tagPartTitle:
			var label string
			if err := json.Unmarshal(raw, &label); err != nil {
				return fmt.Errorf("part title: %w", err)
			}
			*it = NewPartTitle(label)
		default:
			return fmt.Errorf("unknown book item %q", tag)
		}
	}
	return nil
}
