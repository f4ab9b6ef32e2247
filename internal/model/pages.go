package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Pages is a page count as entered by the user.
//
// It is coerced, never validated: snapshots may carry it as a JSON number
// (seed data) or a JSON string (form input), and both decode to the raw text.
// A value that arrived as a number, or whose text is a canonical integer,
// encodes as a number with its text unchanged; anything else encodes as a
// string. A persist/rehydrate cycle reproduces the same JSON.
type Pages struct {
	text   string
	number bool
}

func newPages(text string, number bool) Pages {
	if canonical(text) {
		number = true
	}
	return Pages{text: text, number: number}
}

func canonical(text string) bool {
	n, err := strconv.Atoi(text)
	return err == nil && strconv.Itoa(n) == text
}

// PagesOf returns the Pages for an integer count.
func PagesOf(n int) Pages { return Pages{text: strconv.Itoa(n), number: true} }

// ParsePages wraps raw field text.
func ParsePages(text string) Pages { return newPages(text, false) }

func (p Pages) String() string { return p.text }

// IsZero reports whether no page count was given.
func (p Pages) IsZero() bool { return p.text == "" }

// Int reports the count as an integer when the text is a canonical integer.
func (p Pages) Int() (int, bool) {
	if !canonical(p.text) {
		return 0, false
	}
	n, _ := strconv.Atoi(p.text)
	return n, true
}

func (p Pages) MarshalJSON() ([]byte, error) {
	if p.number {
		return []byte(p.text), nil
	}
	return json.Marshal(p.text)
}

func (p *Pages) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*p = Pages{}
		return nil
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return fmt.Errorf("pages: %w", err)
		}
		*p = newPages(s, false)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("pages: %w", err)
	}
	*p = newPages(n.String(), true)
	return nil
}
