package types

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Column is one named column of a Frame. Values are JSON scalars as decoded
// by encoding/json: nil, bool, float64 or string.
type Column struct {
	Name   string
	Values []any
}

// Frame is a column-major data frame relayed from the R package. Column
// order is preserved from the foreign payload.
type Frame struct {
	Columns []Column
}

// NewFrame builds an empty frame with the given column names.
func NewFrame(names ...string) *Frame {
	f := &Frame{Columns: make([]Column, 0, len(names))}
	for _, n := range names {
		f.Columns = append(f.Columns, Column{Name: n})
	}
	return f
}

// Len returns the number of rows.
func (f *Frame) Len() int {
	if f == nil || len(f.Columns) == 0 {
		return 0
	}
	return len(f.Columns[0].Values)
}

// Empty reports whether the frame has no columns or no rows.
func (f *Frame) Empty() bool { return f.Len() == 0 }

// Names returns the column names in order.
func (f *Frame) Names() []string {
	if f == nil {
		return nil
	}
	names := make([]string, len(f.Columns))
	for i, c := range f.Columns {
		names[i] = c.Name
	}
	return names
}

// Column returns the named column, if present.
func (f *Frame) Column(name string) (*Column, bool) {
	if f == nil {
		return nil, false
	}
	for i := range f.Columns {
		if f.Columns[i].Name == name {
			return &f.Columns[i], true
		}
	}
	return nil, false
}

// Row returns the values of row i in column order.
func (f *Frame) Row(i int) []any {
	row := make([]any, len(f.Columns))
	for j, c := range f.Columns {
		if i < len(c.Values) {
			row[j] = c.Values[i]
		}
	}
	return row
}

// AppendRow appends one row. Values beyond the column count are ignored;
// missing trailing values become nil.
func (f *Frame) AppendRow(values ...any) {
	for i := range f.Columns {
		var v any
		if i < len(values) {
			v = values[i]
		}
		f.Columns[i].Values = append(f.Columns[i].Values, v)
	}
}

// MarshalJSON encodes the frame as an array of row records, the shape the R
// side reassembles into a data.frame.
func (f *Frame) MarshalJSON() ([]byte, error) {
	buf := bytes.NewBufferString("[")
	for i := 0; i < f.Len(); i++ {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('{')
		for j, c := range f.Columns {
			if j > 0 {
				buf.WriteByte(',')
			}
			name, err := json.Marshal(c.Name)
			if err != nil {
				return nil, err
			}
			var v any
			if i < len(c.Values) {
				v = c.Values[i]
			}
			val, err := json.Marshal(v)
			if err != nil {
				return nil, fmt.Errorf("column %s row %d: %w", c.Name, i, err)
			}
			buf.Write(name)
			buf.WriteByte(':')
			buf.Write(val)
		}
		buf.WriteByte('}')
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes either foreign frame encoding: an object of column
// arrays, or an array of row records. Column order follows the payload.
func (f *Frame) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 {
		return fmt.Errorf("empty frame payload")
	}
	switch trimmed[0] {
	case '{':
		return f.decodeColumns(data)
	case '[':
		return f.decodeRecords(data)
	}
	return fmt.Errorf("frame payload is neither an object of columns nor an array of records")
}

// decodeColumns parses {"col":[v,...],...} with a token decoder so column
// order survives.
func (f *Frame) decodeColumns(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	if _, err := dec.Token(); err != nil { // consume '{'
		return err
	}
	f.Columns = f.Columns[:0]
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected token %v in column object", tok)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("column %s: %w", name, err)
		}
		values, err := decodeColumnValues(raw)
		if err != nil {
			return fmt.Errorf("column %s: %w", name, err)
		}
		f.Columns = append(f.Columns, Column{Name: name, Values: values})
	}
	_, err := dec.Token() // consume '}'
	return err
}

// decodeColumnValues accepts an array of scalars or, from serialisers that
// unbox length-one vectors, a bare scalar.
func decodeColumnValues(raw json.RawMessage) ([]any, error) {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var values []any
		if err := json.Unmarshal(raw, &values); err != nil {
			return nil, err
		}
		return values, nil
	}
	var single any
	if err := json.Unmarshal(raw, &single); err != nil {
		return nil, err
	}
	return []any{single}, nil
}

// decodeRecords parses [{"col":v,...},...]; the first record fixes column
// order, later records may add columns or omit values (padded with nil).
func (f *Frame) decodeRecords(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	if _, err := dec.Token(); err != nil { // consume '['
		return err
	}
	f.Columns = f.Columns[:0]
	index := make(map[string]int)
	row := 0
	for dec.More() {
		if _, err := dec.Token(); err != nil { // consume '{'
			return err
		}
		for dec.More() {
			tok, err := dec.Token()
			if err != nil {
				return err
			}
			name, ok := tok.(string)
			if !ok {
				return fmt.Errorf("unexpected token %v in record %d", tok, row)
			}
			var v any
			if err := dec.Decode(&v); err != nil {
				return fmt.Errorf("record %d field %s: %w", row, name, err)
			}
			j, seen := index[name]
			if !seen {
				j = len(f.Columns)
				index[name] = j
				col := Column{Name: name}
				// Pad rows that predate this column.
				col.Values = make([]any, row)
				f.Columns = append(f.Columns, col)
			}
			f.Columns[j].Values = append(f.Columns[j].Values, v)
		}
		if _, err := dec.Token(); err != nil { // consume '}'
			return err
		}
		row++
		// Pad columns missing from this record.
		for j := range f.Columns {
			if len(f.Columns[j].Values) < row {
				f.Columns[j].Values = append(f.Columns[j].Values, nil)
			}
		}
	}
	_, err := dec.Token() // consume ']'
	return err
}
