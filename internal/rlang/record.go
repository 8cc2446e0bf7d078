package rlang

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Record is a named record decoded from a bridge payload. R serialisers do
// not agree on how a named list crosses the boundary, so ParseRecord tries
// three shapes in order:
//
//  1. a named list whose fields are single-element arrays
//     ({"min_year":[2000]}),
//  2. a plain name/value mapping ({"min_year":2000}),
//  3. a list of {name,value} pairs ([{"name":"min_year","value":2000}]).
//
// Shapes 1 and 2 share one parse; the array unwrapping happens at field
// access. Field getters error when the field is absent in whichever shape
// matched.
type Record map[string]json.RawMessage

// ParseRecord decodes raw into a Record, trying the supported shapes in
// order until one succeeds.
func ParseRecord(raw json.RawMessage) (Record, error) {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty record payload")
	}
	if trimmed[0] == '{' {
		var rec Record
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, fmt.Errorf("decode record mapping: %w", err)
		}
		return rec, nil
	}
	var pairs []struct {
		Name  string          `json:"name"`
		Value json.RawMessage `json:"value"`
	}
	if err := json.Unmarshal(raw, &pairs); err != nil {
		return nil, fmt.Errorf("decode record pairs: %w", err)
	}
	rec := make(Record, len(pairs))
	for _, p := range pairs {
		if p.Name == "" {
			return nil, fmt.Errorf("record pair with empty name")
		}
		rec[p.Name] = p.Value
	}
	return rec, nil
}

// scalar returns the field value with a single-element array unwrapped.
func (r Record) scalar(name string) (json.RawMessage, error) {
	raw, ok := r[name]
	if !ok {
		return nil, fmt.Errorf("record field %q missing", name)
	}
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var arr []json.RawMessage
		if err := json.Unmarshal(raw, &arr); err != nil {
			return nil, fmt.Errorf("record field %q: %w", name, err)
		}
		if len(arr) != 1 {
			return nil, fmt.Errorf("record field %q: want one element, got %d", name, len(arr))
		}
		return arr[0], nil
	}
	return raw, nil
}

// Int returns the named field as an integer.
func (r Record) Int(name string) (int, error) {
	raw, err := r.scalar(name)
	if err != nil {
		return 0, err
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return 0, fmt.Errorf("record field %q: %w", name, err)
	}
	n := int(f)
	if float64(n) != f {
		return 0, fmt.Errorf("record field %q: %v is not an integer", name, f)
	}
	return n, nil
}

// String returns the named field as a string.
func (r Record) String(name string) (string, error) {
	raw, err := r.scalar(name)
	if err != nil {
		return "", err
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", fmt.Errorf("record field %q: %w", name, err)
	}
	return s, nil
}

// Ints returns the named field as an integer slice. A bare scalar counts as
// a one-element slice.
func (r Record) Ints(name string) ([]int, error) {
	raw, ok := r[name]
	if !ok {
		return nil, fmt.Errorf("record field %q missing", name)
	}
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] != '[' {
		n, err := r.Int(name)
		if err != nil {
			return nil, err
		}
		return []int{n}, nil
	}
	var fs []float64
	if err := json.Unmarshal(raw, &fs); err != nil {
		return nil, fmt.Errorf("record field %q: %w", name, err)
	}
	ns := make([]int, len(fs))
	for i, f := range fs {
		n := int(f)
		if float64(n) != f {
			return nil, fmt.Errorf("record field %q: %v is not an integer", name, f)
		}
		ns[i] = n
	}
	return ns, nil
}
