package utils

import (
	"fmt"
	"io"

	json "github.com/goccy/go-json"
)

// WriteJSON encodes v as a single JSON document followed by a newline.
// HTML characters are left unescaped.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}
