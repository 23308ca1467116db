package adapter

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/marketdash/marketdash/internal/domain/models"
)

// decode is a test helper turning a JSON literal into the untyped value the
// adapter receives in production.
func decode(t *testing.T, raw string) any {
	t.Helper()
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		t.Fatalf("bad test payload: %v", err)
	}
	return v
}

func TestMapToGenericStockData_NonObjectInput(t *testing.T) {
	for _, raw := range []string{`[1,2]`, `"AAPL"`, `42`, `null`} {
		if _, err := MapToGenericStockData(decode(t, raw)); err == nil {
			t.Fatalf("expected error for input %s", raw)
		}
	}
}

func TestMapToGenericStockData_MissingSegmentsDefaultsEmpty(t *testing.T) {
	data, err := MapToGenericStockData(decode(t, `{"symbol":"AAPL"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if data.Symbol != "AAPL" {
		t.Fatalf("symbol=%q", data.Symbol)
	}
	if data.HistoricalSegments == nil || len(data.HistoricalSegments) != 0 {
		t.Fatalf("expected empty non-nil segments, got %#v", data.HistoricalSegments)
	}
}

func TestMapToGenericStockData_OptionalTopLevelFields(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"omitted", `{"symbol":"AAPL"}`},
		{"null", `{"symbol":"AAPL","provider":null,"last_update":null}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			data, err := MapToGenericStockData(decode(t, tc.raw))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if data.Provider != nil || data.LastUpdate != nil {
				t.Fatalf("expected nil provider/last_update, got %+v", data)
			}
		})
	}

	data, err := MapToGenericStockData(decode(t, `{"symbol":"AAPL","provider":"yahoo","last_update":"2024-01-15"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if data.Provider == nil || *data.Provider != "yahoo" {
		t.Fatalf("provider=%v", data.Provider)
	}
	if data.LastUpdate == nil || *data.LastUpdate != "2024-01-15" {
		t.Fatalf("last_update=%v", data.LastUpdate)
	}
}

func TestMapToGenericStockData_MissingDataPointsFails(t *testing.T) {
	raw := `{"symbol":"AAPL","historical_segments":[
		{"start_date":"2024-01-01","end_date":"2024-01-31","interval":"1d"}
	]}`
	_, err := MapToGenericStockData(decode(t, raw))
	if err == nil {
		t.Fatal("expected shape error for missing data_points")
	}
	if !strings.Contains(err.Error(), "data_points") {
		t.Fatalf("error does not name data_points: %v", err)
	}

	// An empty sequence is fine: present but empty is not a violation.
	raw = `{"symbol":"AAPL","historical_segments":[
		{"start_date":"2024-01-01","end_date":"2024-01-31","interval":"1d","data_points":[]}
	]}`
	data, err := MapToGenericStockData(decode(t, raw))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(data.HistoricalSegments) != 1 || len(data.HistoricalSegments[0].DataPoints) != 0 {
		t.Fatalf("unexpected segments: %+v", data.HistoricalSegments)
	}
}

func TestMapToGenericStockData_SegmentAndPoints(t *testing.T) {
	raw := `{"symbol":"PETR4","provider":"stooq","historical_segments":[
		{"start_date":"2024-01-01T00:00:00Z","end_date":"2024-01-02T00:00:00Z","interval":"1d","data_points":[
			{"timestamp":"2024-01-01T00:00:00Z","open":10,"close":11,"high":12,"low":9,"volume":1000},
			{"timestamp":"2024-01-02T00:00:00Z","open":11,"close":10.5,"high":11.5,"low":10,"volume":900}
		]}
	]}`
	data, err := MapToGenericStockData(decode(t, raw))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	seg := data.HistoricalSegments[0]
	if seg.Interval != "1d" {
		t.Fatalf("interval=%q", seg.Interval)
	}
	if !seg.StartDate.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("start_date=%v", seg.StartDate)
	}
	if len(seg.DataPoints) != 2 {
		t.Fatalf("points=%d", len(seg.DataPoints))
	}
	first := seg.DataPoints[0]
	if first.Open != 10 || first.Close != 11 || first.High != 12 || first.Low != 9 || first.Volume != 1000 {
		t.Fatalf("unexpected first point: %+v", first)
	}
}

func TestMapToGenericStockData_InvalidDateIsSentinel(t *testing.T) {
	raw := `{"symbol":"AAPL","historical_segments":[
		{"start_date":"not-a-date","end_date":"2024-01-31","interval":"1d","data_points":[
			{"timestamp":"also-bad","open":1,"close":1,"high":1,"low":1,"volume":1}
		]}
	]}`
	data, err := MapToGenericStockData(decode(t, raw))
	if err != nil {
		t.Fatalf("invalid dates must not fail the mapping: %v", err)
	}
	seg := data.HistoricalSegments[0]
	if !seg.StartDate.IsZero() {
		t.Fatalf("expected zero-time sentinel, got %v", seg.StartDate)
	}
	if seg.EndDate.IsZero() {
		t.Fatal("valid end_date should parse")
	}
	if !seg.DataPoints[0].Timestamp.IsZero() {
		t.Fatalf("expected zero-time sentinel, got %v", seg.DataPoints[0].Timestamp)
	}
}

func TestMapToGenericStockData_NoInsightsIsEmptyBundle(t *testing.T) {
	data, err := MapToGenericStockData(decode(t, `{"symbol":"AAPL"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(data.Insights, models.StockInsights{}) {
		t.Fatalf("expected zero insights bundle, got %+v", data.Insights)
	}
}

func TestMapToGenericStockData_SingleInsightField(t *testing.T) {
	data, err := MapToGenericStockData(decode(t, `{"symbol":"AAPL","insights":{"rsi_14":42.5}}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	in := data.Insights
	if in.RSI14 == nil || *in.RSI14 != 42.5 {
		t.Fatalf("rsi_14=%v", in.RSI14)
	}

	// Every other field must remain absent: check through serialization,
	// which collapses absent pointers via omitempty.
	out, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(out) != `{"rsi_14":42.5}` {
		t.Fatalf("other fields leaked into %s", out)
	}
}

func TestMapToGenericStockData_FullInsights(t *testing.T) {
	raw := `{"symbol":"AAPL","insights":{
		"last_price":187.5,"day_change":2.5,"day_change_percent":1.35,
		"sma_7":186.1,"sma_30":180.4,"ema_7":186.8,"ema_30":181.2,
		"bollinger_upper":192.0,"bollinger_lower":178.0,
		"rsi_14":61.2,"macd":1.8,"atr_14":3.4,
		"max_drawdown_30d":-4.2,"trend":"up","cumulative_gain_30d":5.6,
		"volume_avg_30d":48000000,"volatility_30d":0.021,
		"price_vs_sector":1.08,"alert_overbought":true,"alert_oversold":false
	}}`
	data, err := MapToGenericStockData(decode(t, raw))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	in := data.Insights
	if in.LastPrice == nil || *in.LastPrice != 187.5 {
		t.Fatalf("last_price=%v", in.LastPrice)
	}
	if in.Trend == nil || *in.Trend != "up" {
		t.Fatalf("trend=%v", in.Trend)
	}
	if in.AlertOverbought == nil || !*in.AlertOverbought {
		t.Fatalf("alert_overbought=%v", in.AlertOverbought)
	}
	if in.AlertOversold == nil || *in.AlertOversold {
		t.Fatalf("alert_oversold=%v", in.AlertOversold)
	}
	if in.VolumeAvg30D == nil || *in.VolumeAvg30D != 48000000 {
		t.Fatalf("volume_avg_30d=%v", in.VolumeAvg30D)
	}
}

// Serializing a known DTO and adapting the result must reproduce its
// numeric and string content field for field.
func TestMapToGenericStockData_RoundTrip(t *testing.T) {
	provider := "yahoo"
	lastUpdate := "2024-01-15T12:00:00Z"
	price := 187.5
	original := models.GenericStockData{
		Symbol:     "AAPL",
		Provider:   &provider,
		LastUpdate: &lastUpdate,
		HistoricalSegments: []models.StockSegment{{
			StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
			Interval:  "1d",
			DataPoints: []models.StockPoint{{
				Timestamp: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
				Open:      10, High: 12, Low: 9, Close: 11, Volume: 1000,
			}},
		}},
		Insights: models.StockInsights{LastPrice: &price},
	}

	encoded, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	adapted, err := MapToGenericStockData(decode(t, string(encoded)))
	if err != nil {
		t.Fatalf("adapt failed: %v", err)
	}
	if !reflect.DeepEqual(*adapted, original) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", *adapted, original)
	}
}
