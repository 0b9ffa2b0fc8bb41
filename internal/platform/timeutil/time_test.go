package timeutil

import (
	"encoding/json"
	"testing"
	"time"
)

func TestMarshalJSONFixedPrecision(t *testing.T) {
	ts := NewTime(time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC))
	data, err := json.Marshal(ts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != `"2024-01-15T10:30:00.000Z"` {
		t.Errorf("unexpected output: %s", data)
	}
}

func TestUnmarshalJSONVariants(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "RFC3339", input: `"2024-01-15T10:30:00Z"`},
		{name: "RFC3339 with millis", input: `"2024-01-15T10:30:00.000Z"`},
		{name: "RFC3339 with offset", input: `"2024-01-15T12:30:00+02:00"`},
	}

	expected := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ts Time
			if err := json.Unmarshal([]byte(tt.input), &ts); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !ts.Equal(expected) {
				t.Errorf("expected %v, got %v", expected, ts.Time)
			}
		})
	}
}

func TestUnmarshalJSONNullPreservesValue(t *testing.T) {
	ts := NewTime(time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC))
	if err := json.Unmarshal([]byte("null"), &ts); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ts.IsZero() {
		t.Error("expected null to preserve existing value")
	}
}

func TestParseBreeze(t *testing.T) {
	ts, err := ParseBreeze("2024-06-02 10:00:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2024, 6, 2, 10, 0, 0, 0, time.UTC)
	if !ts.Equal(want) {
		t.Errorf("expected %v, got %v", want, ts.Time)
	}
}

func TestParseBreezeDateOnly(t *testing.T) {
	ts, err := ParseBreeze("2024-06-02")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ts.Day() != 2 || ts.Month() != time.June {
		t.Errorf("unexpected parse result: %v", ts.Time)
	}
}

func TestParseBreezeZeroValues(t *testing.T) {
	for _, input := range []string{"", "0000-00-00 00:00:00"} {
		ts, err := ParseBreeze(input)
		if err != nil {
			t.Fatalf("ParseBreeze(%q): unexpected error: %v", input, err)
		}
		if !ts.IsZero() {
			t.Errorf("ParseBreeze(%q): expected zero time, got %v", input, ts.Time)
		}
	}
}

func TestParseBreezeInvalid(t *testing.T) {
	if _, err := ParseBreeze("yesterday"); err == nil {
		t.Fatal("expected error for unparseable timestamp")
	}
}
