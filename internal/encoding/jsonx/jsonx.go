//go:build !ghostwritefastjson

// Package jsonx is the JSON codec seam. Builds tagged ghostwritefastjson
// swap encoding/json for sonic.
package jsonx

import "encoding/json"

func Marshal(v any) ([]byte, error)   { return json.Marshal(v) }
func Unmarshal(b []byte, v any) error { return json.Unmarshal(b, v) }
