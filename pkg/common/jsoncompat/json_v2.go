//go:build jsonv2

package jsoncompat

import json "encoding/json/v2"

// Marshal and Unmarshal switch to encoding/json/v2 under the jsonv2 build tag.
func Marshal(v any) ([]byte, error) { return json.Marshal(v) }

func Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }
