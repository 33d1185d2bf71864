package mdbook

import (
	"encoding/json"
	"fmt"
	"io"
)

// ParseInput decodes the [context, book] pair the host writes to a
// preprocessor's stdin.
func ParseInput(r io.Reader) (*Context, *Book, error) {
	var pair []json.RawMessage
	if err := json.NewDecoder(r).Decode(&pair); err != nil {
		return nil, nil, fmt.Errorf("failed to decode preprocessor input: %w", err)
	}
	if len(pair) != 2 {
		return nil, nil, fmt.Errorf("failed to decode preprocessor input: expected [context, book], got %d elements", len(pair))
	}

	var ctx Context
	if err := json.Unmarshal(pair[0], &ctx); err != nil {
		return nil, nil, fmt.Errorf("failed to decode preprocessor context: %w", err)
	}
	var book Book
	if err := json.Unmarshal(pair[1], &book); err != nil {
		return nil, nil, fmt.Errorf("failed to decode book: %w", err)
	}
	return &ctx, &book, nil
}

// WriteBook encodes book for the host.
func WriteBook(w io.Writer, book *Book) error {
	if err := json.NewEncoder(w).Encode(book); err != nil {
		return fmt.Errorf("failed to encode book: %w", err)
	}
	return nil
}
