package enrollment_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"coschooldata/internal/domain"
	"coschooldata/internal/services/enrollment"
)

// stubRuntime records the last call and replies with canned payloads per
// function name.
type stubRuntime struct {
	payloads map[string]string

	lastFn    string
	lastArgs  []any
	lastNamed map[string]any
}

func (s *stubRuntime) CallRaw(ctx context.Context, fn string, args []any, named map[string]any) (json.RawMessage, error) {
	s.lastFn, s.lastArgs, s.lastNamed = fn, args, named
	payload, ok := s.payloads[fn]
	if !ok {
		return nil, fmt.Errorf("unexpected call %s", fn)
	}
	return json.RawMessage(payload), nil
}

func (s *stubRuntime) CallFrame(ctx context.Context, fn string, args []any, named map[string]any) (*domain.Frame, error) {
	raw, err := s.CallRaw(ctx, fn, args, named)
	if err != nil {
		return nil, err
	}
	var f domain.Frame
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

func TestFetchYear_ForwardsYear(t *testing.T) {
	rt := &stubRuntime{payloads: map[string]string{
		"fetch_enr": `{"district":["Denver"],"enrollment":[90000]}`,
	}}
	svc := enrollment.New(rt)

	frame, err := svc.FetchYear(context.Background(), 2025)
	if err != nil {
		t.Fatalf("FetchYear: %v", err)
	}
	if rt.lastFn != "fetch_enr" {
		t.Fatalf("called %q", rt.lastFn)
	}
	if len(rt.lastArgs) != 1 || rt.lastArgs[0] != 2025 {
		t.Fatalf("args %v", rt.lastArgs)
	}
	if frame.Len() != 1 {
		t.Fatalf("want 1 row, got %d", frame.Len())
	}
}

func TestFetchYears_ForwardsYearVector(t *testing.T) {
	rt := &stubRuntime{payloads: map[string]string{
		"fetch_enr_multi": `{"district":["Denver","Denver"],"year":[2020,2021]}`,
	}}
	svc := enrollment.New(rt)

	frame, err := svc.FetchYears(context.Background(), []int{2020, 2021})
	if err != nil {
		t.Fatalf("FetchYears: %v", err)
	}
	if rt.lastFn != "fetch_enr_multi" {
		t.Fatalf("called %q", rt.lastFn)
	}
	years, ok := rt.lastArgs[0].([]int)
	if !ok || len(years) != 2 {
		t.Fatalf("args %v", rt.lastArgs)
	}
	if frame.Len() != 2 {
		t.Fatalf("want 2 rows, got %d", frame.Len())
	}
}

func TestFetchYears_EmptyRejectedBeforeCall(t *testing.T) {
	rt := &stubRuntime{payloads: map[string]string{}}
	svc := enrollment.New(rt)

	if _, err := svc.FetchYears(context.Background(), nil); err == nil {
		t.Fatal("expected error for empty year list")
	}
	if rt.lastFn != "" {
		t.Fatalf("runtime should not be invoked, called %q", rt.lastFn)
	}
}

func TestTidy_ForwardsFrame(t *testing.T) {
	rt := &stubRuntime{payloads: map[string]string{
		"tidy_enr": `{"district":["Denver","Denver"],"group":["all","female"],"count":[90000,44000]}`,
	}}
	svc := enrollment.New(rt)

	in := domain.NewFrame("district", "enrollment")
	in.AppendRow("Denver", float64(90000))

	out, err := svc.Tidy(context.Background(), in)
	if err != nil {
		t.Fatalf("Tidy: %v", err)
	}
	if rt.lastFn != "tidy_enr" {
		t.Fatalf("called %q", rt.lastFn)
	}
	if _, ok := rt.lastArgs[0].(*domain.Frame); !ok {
		t.Fatalf("frame not forwarded: %T", rt.lastArgs[0])
	}
	if out.Len() != 2 {
		t.Fatalf("want 2 tidy rows, got %d", out.Len())
	}
}

func TestTidy_EmptyFrameRejectedBeforeCall(t *testing.T) {
	svc := enrollment.New(&stubRuntime{})

	if _, err := svc.Tidy(context.Background(), nil); err == nil {
		t.Fatal("expected error for nil frame")
	}
	if _, err := svc.Tidy(context.Background(), domain.NewFrame("a")); err == nil {
		t.Fatal("expected error for empty frame")
	}
}

func TestAvailableYears_NormalisesShapes(t *testing.T) {
	shapes := []string{
		`{"min_year":[2000],"max_year":[2025]}`,
		`{"min_year":2000,"max_year":2025}`,
		`[{"name":"min_year","value":2000},{"name":"max_year","value":[2025]}]`,
	}
	for _, payload := range shapes {
		rt := &stubRuntime{payloads: map[string]string{"get_available_years": payload}}
		svc := enrollment.New(rt)

		r, err := svc.AvailableYears(context.Background())
		if err != nil {
			t.Fatalf("payload %s: %v", payload, err)
		}
		if r.MinYear != 2000 || r.MaxYear != 2025 {
			t.Fatalf("payload %s: got %+v", payload, r)
		}
	}
}

func TestAvailableYears_MissingFieldErrors(t *testing.T) {
	rt := &stubRuntime{payloads: map[string]string{
		"get_available_years": `{"min_year":2000}`,
	}}
	svc := enrollment.New(rt)

	if _, err := svc.AvailableYears(context.Background()); err == nil {
		t.Fatal("expected error when max_year is absent in every shape")
	}
}
