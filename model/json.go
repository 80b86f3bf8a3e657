package model

import "encoding/json"

// unquote decodes a single JSON string token.
func unquote(data []byte) (string, error) {
	var s string
	err := json.Unmarshal(data, &s)
	return s, err
}
