//go:build ghostwritefastjson

// Package jsonx is the JSON codec seam. Builds tagged ghostwritefastjson
// swap encoding/json for sonic.
package jsonx

import "github.com/bytedance/sonic"

func Marshal(v any) ([]byte, error)   { return sonic.Marshal(v) }
func Unmarshal(b []byte, v any) error { return sonic.Unmarshal(b, v) }
