package models

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestGenericStockData_MarshalOptionalFields(t *testing.T) {
	data := GenericStockData{
		Symbol:             "AAPL",
		HistoricalSegments: []StockSegment{},
	}

	out, err := json.Marshal(data)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	s := string(out)

	// Absent provider/last_update serialize as explicit null, never missing.
	if !strings.Contains(s, `"provider":null`) {
		t.Fatalf("provider not null in %s", s)
	}
	if !strings.Contains(s, `"last_update":null`) {
		t.Fatalf("last_update not null in %s", s)
	}
	// Empty segments serialize as [], not null.
	if !strings.Contains(s, `"historical_segments":[]`) {
		t.Fatalf("historical_segments not [] in %s", s)
	}
	// Zero insights bundle serializes as the empty object.
	if !strings.Contains(s, `"insights":{}`) {
		t.Fatalf("insights not {} in %s", s)
	}
}

func TestStockInsights_AbsentIsNotZero(t *testing.T) {
	rsi := 42.5
	in := StockInsights{RSI14: &rsi}

	out, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(out) != `{"rsi_14":42.5}` {
		t.Fatalf("unexpected json: %s", out)
	}
}

func TestStockPoint_RoundTrip(t *testing.T) {
	raw := `{"timestamp":"2024-01-15T00:00:00Z","open":185.5,"high":188,"low":184,"close":187.5,"volume":50000000}`

	var pt StockPoint
	if err := json.Unmarshal([]byte(raw), &pt); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	want := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	if !pt.Timestamp.Equal(want) {
		t.Fatalf("timestamp=%v, want %v", pt.Timestamp, want)
	}
	if pt.Open != 185.5 || pt.High != 188 || pt.Low != 184 || pt.Close != 187.5 || pt.Volume != 50000000 {
		t.Fatalf("unexpected point: %+v", pt)
	}
}
