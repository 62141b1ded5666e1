// Package pretty prints API responses as indented JSON.
package pretty

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

const indent = "    "

// Fprint writes v to w as JSON indented by four spaces, followed by a newline.
func Fprint(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", indent)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}
	return nil
}

// Print writes v to stdout, see Fprint.
func Print(v any) error {
	return Fprint(os.Stdout, v)
}
