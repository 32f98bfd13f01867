package models

import (
	"bytes"
	"encoding/json"
)

// SafeURLString marshals without HTML escaping so URLs survive the round
// trip through JSON unmangled.
type SafeURLString string

func (s SafeURLString) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)

	if err := encoder.Encode(string(s)); err != nil {
		return nil, err
	}

	encoded := buf.Bytes()
	if len(encoded) > 0 && encoded[len(encoded)-1] == '\n' {
		return encoded[:len(encoded)-1], nil
	}
	return encoded, nil
}

func (s *SafeURLString) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*s = SafeURLString(str)
	return nil
}
