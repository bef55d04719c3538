package handler

import (
	"bytes"
	"encoding/json"
)

// MarshalJSON is the app-wide fiber.Config.JSONEncoder. Unlike json.Marshal it
// leaves <, > and & unescaped so echoed values come back byte-for-byte.
func MarshalJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
