// Package jsondoc walks decoded JSON documents along candidate key-paths.
// Page payloads move structure between releases, so callers probe an
// ordered list of paths and take the first that yields rows.
package jsondoc

import (
	"fmt"
	"strconv"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Path is an ordered sequence of object keys addressing a nested value.
type Path []string

// Doc is a decoded top-level JSON object.
type Doc map[string]interface{}

// Decode parses raw bytes into a Doc.
func Decode(raw []byte) (Doc, error) {
	var doc Doc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decoding json document: %w", err)
	}
	return doc, nil
}

// Resolve walks path through nested objects and returns the value at its
// end. Any missing key or non-object hop resolves to nil.
func (d Doc) Resolve(path Path) interface{} {
	var cur interface{} = map[string]interface{}(d)
	for _, key := range path {
		obj, ok := cur.(map[string]interface{})
		if !ok {
			return nil
		}
		cur, ok = obj[key]
		if !ok {
			return nil
		}
	}
	return cur
}

// FirstArray resolves each candidate path in order and returns the first
// non-empty array found. Candidates resolving to anything else, including
// empty arrays, are skipped. The boolean reports whether any candidate hit.
func (d Doc) FirstArray(candidates ...Path) ([]interface{}, bool) {
	for _, path := range candidates {
		if arr, ok := d.Resolve(path).([]interface{}); ok && len(arr) > 0 {
			return arr, true
		}
	}
	return nil, false
}

// Str reads the value at key in obj as a string. Numbers render in plain
// decimal form, booleans as "true"/"false". Missing and null values read
// as "".
func Str(obj map[string]interface{}, key string) string {
	switch v := obj[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}
