package commands

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"coschooldata/internal/domain"
)

// writeFrame encodes frame as CSV or JSON row records.
func writeFrame(w io.Writer, frame *domain.Frame, format string) error {
	switch format {
	case "", "csv":
		return writeCSV(w, frame)
	case "json":
		enc := json.NewEncoder(w)
		return enc.Encode(frame)
	}
	return fmt.Errorf("unknown format %q (csv or json)", format)
}

func writeCSV(w io.Writer, frame *domain.Frame) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(frame.Names()); err != nil {
		return err
	}
	for i := 0; i < frame.Len(); i++ {
		row := frame.Row(i)
		fields := make([]string, len(row))
		for j, v := range row {
			fields[j] = formatValue(v)
		}
		if err := cw.Write(fields); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// formatValue renders a frame value for CSV. Integral floats print without a
// fraction; NA prints empty.
func formatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case bool:
		return strconv.FormatBool(x)
	case float64:
		if x == float64(int64(x)) {
			return strconv.FormatInt(int64(x), 10)
		}
		return strconv.FormatFloat(x, 'g', -1, 64)
	case string:
		return x
	}
	return fmt.Sprint(v)
}

// readFrameCSV parses a CSV table into a frame. Numeric-looking fields
// become numbers and empty fields become NA, so the R side rebuilds typed
// columns.
func readFrameCSV(r io.Reader) (*domain.Frame, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	frame := domain.NewFrame(header...)
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row: %w", err)
		}
		row := make([]any, len(rec))
		for i, field := range rec {
			row[i] = parseValue(field)
		}
		frame.AppendRow(row...)
	}
	return frame, nil
}

func parseValue(field string) any {
	if field == "" {
		return nil
	}
	if f, err := strconv.ParseFloat(field, 64); err == nil {
		return f
	}
	return field
}
