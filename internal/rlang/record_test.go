package rlang_test

import (
	"strings"
	"testing"

	"coschooldata/internal/rlang"
)

func TestParseRecord_NamedListOfArrays(t *testing.T) {
	rec, err := rlang.ParseRecord([]byte(`{"min_year":[2000],"max_year":[2025]}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	min, err := rec.Int("min_year")
	if err != nil {
		t.Fatalf("min_year: %v", err)
	}
	max, err := rec.Int("max_year")
	if err != nil {
		t.Fatalf("max_year: %v", err)
	}
	if min != 2000 || max != 2025 {
		t.Fatalf("got %d..%d", min, max)
	}
}

func TestParseRecord_PlainMapping(t *testing.T) {
	rec, err := rlang.ParseRecord([]byte(`{"min_year":2000,"max_year":2025}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if min, _ := rec.Int("min_year"); min != 2000 {
		t.Fatalf("min_year %d", min)
	}
}

func TestParseRecord_PairList(t *testing.T) {
	payload := `[{"name":"min_year","value":2000},{"name":"max_year","value":[2025]}]`
	rec, err := rlang.ParseRecord([]byte(payload))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if max, _ := rec.Int("max_year"); max != 2025 {
		t.Fatalf("max_year %d", max)
	}
}

func TestParseRecord_AssessmentShapes(t *testing.T) {
	payload := `{"years":[2016,2017,2018,2019,2021,2022,2023,2024],"note":["No testing in 2020"],"assessment_system":"CMAS"}`
	rec, err := rlang.ParseRecord([]byte(payload))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	years, err := rec.Ints("years")
	if err != nil {
		t.Fatalf("years: %v", err)
	}
	if len(years) != 8 || years[0] != 2016 {
		t.Fatalf("years %v", years)
	}
	note, err := rec.String("note")
	if err != nil {
		t.Fatalf("note: %v", err)
	}
	if note != "No testing in 2020" {
		t.Fatalf("note %q", note)
	}
	system, err := rec.String("assessment_system")
	if err != nil {
		t.Fatalf("assessment_system: %v", err)
	}
	if system != "CMAS" {
		t.Fatalf("assessment_system %q", system)
	}
}

func TestParseRecord_ScalarYearsBecomeSlice(t *testing.T) {
	rec, err := rlang.ParseRecord([]byte(`{"years":2024}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	years, err := rec.Ints("years")
	if err != nil {
		t.Fatalf("years: %v", err)
	}
	if len(years) != 1 || years[0] != 2024 {
		t.Fatalf("years %v", years)
	}
}

func TestRecord_MissingFieldNamesField(t *testing.T) {
	rec, err := rlang.ParseRecord([]byte(`{"min_year":2000}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	_, err = rec.Int("max_year")
	if err == nil {
		t.Fatal("expected error for missing field")
	}
	if got := err.Error(); !strings.Contains(got, "max_year") {
		t.Fatalf("error should name the field: %v", got)
	}
}

func TestRecord_NonIntegerRejected(t *testing.T) {
	rec, err := rlang.ParseRecord([]byte(`{"min_year":2000.5}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if _, err := rec.Int("min_year"); err == nil {
		t.Fatal("expected error for fractional year")
	}
}

func TestParseRecord_RejectsGarbage(t *testing.T) {
	if _, err := rlang.ParseRecord([]byte(``)); err == nil {
		t.Fatal("expected error for empty payload")
	}
	if _, err := rlang.ParseRecord([]byte(`"just a string"`)); err == nil {
		t.Fatal("expected error for non-record payload")
	}
}
