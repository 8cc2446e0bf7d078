package commands

import (
	"bytes"
	"strings"
	"testing"

	"coschooldata/internal/domain"
)

func TestWriteCSV(t *testing.T) {
	f := domain.NewFrame("district", "enrollment", "charter")
	f.AppendRow("Denver", float64(90000), true)
	f.AppendRow("Boulder", nil, false)

	var buf bytes.Buffer
	if err := writeFrame(&buf, f, "csv"); err != nil {
		t.Fatalf("writeFrame: %v", err)
	}
	want := "district,enrollment,charter\nDenver,90000,true\nBoulder,,false\n"
	if buf.String() != want {
		t.Fatalf("csv output:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestWriteJSONRecords(t *testing.T) {
	f := domain.NewFrame("district")
	f.AppendRow("Denver")

	var buf bytes.Buffer
	if err := writeFrame(&buf, f, "json"); err != nil {
		t.Fatalf("writeFrame: %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != `[{"district":"Denver"}]` {
		t.Fatalf("json output %s", got)
	}
}

func TestWriteFrame_UnknownFormat(t *testing.T) {
	if err := writeFrame(&bytes.Buffer{}, domain.NewFrame("a"), "xml"); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestReadFrameCSV_TypesAndNA(t *testing.T) {
	in := strings.NewReader("district,enrollment,rate\nDenver,90000,0.41\nBoulder,,\n")
	f, err := readFrameCSV(in)
	if err != nil {
		t.Fatalf("readFrameCSV: %v", err)
	}
	if f.Len() != 2 || len(f.Columns) != 3 {
		t.Fatalf("shape: %d rows, %d cols", f.Len(), len(f.Columns))
	}
	row := f.Row(0)
	if row[0] != "Denver" || row[1] != float64(90000) || row[2] != 0.41 {
		t.Fatalf("row 0: %v", row)
	}
	if got := f.Row(1); got[1] != nil || got[2] != nil {
		t.Fatalf("empty fields must decode as NA: %v", got)
	}
}

func TestParseYears(t *testing.T) {
	years, err := parseYears([]string{"2020", "2021"})
	if err != nil || len(years) != 2 || years[1] != 2021 {
		t.Fatalf("parseYears: %v %v", years, err)
	}
	if _, err := parseYears([]string{"twenty"}); err == nil {
		t.Fatal("expected error for non-numeric year")
	}
}
