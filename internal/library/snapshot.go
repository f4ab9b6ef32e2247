package library

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/idilsaglam/library/internal/model"
)

// isPlaceholder reports whether a snapshot holds no books at all: blank
// text, or a JSON null, empty string, empty object or empty array.
// Such values are treated as "no snapshot".
func isPlaceholder(data []byte) bool {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return true
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return false
	}
	switch v := v.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case map[string]any:
		return len(v) == 0
	case []any:
		return len(v) == 0
	}
	return false
}

func encodeSnapshot(books []*model.Book) (string, error) {
	if books == nil {
		books = []*model.Book{}
	}
	b, err := json.Marshal(books)
	if err != nil {
		return "", fmt.Errorf("json marshal: %w", err)
	}
	return string(b), nil
}

func decodeSnapshot(data string) ([]*model.Book, error) {
	var books []*model.Book
	if err := json.Unmarshal([]byte(data), &books); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptSnapshot, err)
	}
	for i, b := range books {
		if b == nil {
			return nil, fmt.Errorf("%w: null record at %d", ErrCorruptSnapshot, i)
		}
	}
	return books, nil
}
