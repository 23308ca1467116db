package adapter

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/marketdash/marketdash/internal/domain/models"
)

// MapToGenericStockData normalizes an arbitrary JSON-decoded value into a
// GenericStockData. It is the single boundary between the loosely shaped
// payloads the upstream backend emits and the typed model the rest of the
// service consumes.
//
// Defaulting rules, per field:
//   - symbol: read as-is, no validation. A missing symbol yields an empty
//     string; that is a caller error, not an adapter error.
//   - provider, last_update: value when present, nil (JSON null) otherwise.
//   - historical_segments: empty slice when absent. Each segment is mapped
//     independently; a segment without a data_points sequence is a contract
//     violation and fails the whole mapping (no partial results).
//   - insights: absent object yields the zero bundle; present sub-fields
//     are copied as-is, absent sub-fields stay absent.
//
// Date strings are parsed leniently: an unparseable date never fails the
// mapping, it yields the zero time.Time as the invalid-date sentinel.
// Consumers must check IsZero() before displaying such a value.
//
// The mapping is pure: same input, same output, no side effects. Unknown
// extra fields are ignored, not rejected.
func MapToGenericStockData(raw any) (*models.GenericStockData, error) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("stock payload is %T, expected an object", raw)
	}

	data := &models.GenericStockData{
		Symbol:             asString(obj["symbol"]),
		Provider:           optString(obj["provider"]),
		LastUpdate:         optString(obj["last_update"]),
		HistoricalSegments: []models.StockSegment{},
	}

	if rawSegs, ok := obj["historical_segments"].([]any); ok {
		for i, rawSeg := range rawSegs {
			seg, err := mapSegment(rawSeg)
			if err != nil {
				return nil, fmt.Errorf("historical_segments[%d]: %w", i, err)
			}
			data.HistoricalSegments = append(data.HistoricalSegments, seg)
		}
	}

	if rawInsights, ok := obj["insights"].(map[string]any); ok {
		data.Insights = mapInsights(rawInsights)
	}

	return data, nil
}

func mapSegment(raw any) (models.StockSegment, error) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return models.StockSegment{}, fmt.Errorf("segment is %T, expected an object", raw)
	}

	// data_points is not defaulted: its absence is a contract violation,
	// unlike the optional collections at the top level.
	rawPoints, ok := obj["data_points"].([]any)
	if !ok {
		return models.StockSegment{}, fmt.Errorf("data_points is missing or not a sequence")
	}

	seg := models.StockSegment{
		StartDate:  parseInstant(asString(obj["start_date"])),
		EndDate:    parseInstant(asString(obj["end_date"])),
		Interval:   asString(obj["interval"]),
		DataPoints: make([]models.StockPoint, 0, len(rawPoints)),
	}

	for _, rawPt := range rawPoints {
		pt, _ := rawPt.(map[string]any)
		seg.DataPoints = append(seg.DataPoints, models.StockPoint{
			Timestamp: parseInstant(asString(pt["timestamp"])),
			Open:      asFloat(pt["open"]),
			Close:     asFloat(pt["close"]),
			High:      asFloat(pt["high"]),
			Low:       asFloat(pt["low"]),
			Volume:    asFloat(pt["volume"]),
		})
	}

	return seg, nil
}

func mapInsights(obj map[string]any) models.StockInsights {
	return models.StockInsights{
		LastPrice:        optFloat(obj, "last_price"),
		DayChange:        optFloat(obj, "day_change"),
		DayChangePercent: optFloat(obj, "day_change_percent"),

		SMA7:  optFloat(obj, "sma_7"),
		SMA30: optFloat(obj, "sma_30"),
		EMA7:  optFloat(obj, "ema_7"),
		EMA30: optFloat(obj, "ema_30"),

		BollingerUpper: optFloat(obj, "bollinger_upper"),
		BollingerLower: optFloat(obj, "bollinger_lower"),

		RSI14: optFloat(obj, "rsi_14"),
		MACD:  optFloat(obj, "macd"),
		ATR14: optFloat(obj, "atr_14"),

		MaxDrawdown30D:    optFloat(obj, "max_drawdown_30d"),
		Trend:             optStringField(obj, "trend"),
		CumulativeGain30D: optFloat(obj, "cumulative_gain_30d"),
		VolumeAvg30D:      optFloat(obj, "volume_avg_30d"),
		Volatility30D:     optFloat(obj, "volatility_30d"),

		PriceVsSector:   optFloat(obj, "price_vs_sector"),
		AlertOverbought: optBool(obj, "alert_overbought"),
		AlertOversold:   optBool(obj, "alert_oversold"),
	}
}

// instantLayouts are the accepted wire formats, tried in order.
var instantLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02",
}

// parseInstant parses an ISO-8601 date or datetime string. The zero
// time.Time is the invalid-date sentinel: empty or malformed input never
// raises, it produces a value for which IsZero() reports true.
func parseInstant(s string) time.Time {
	for _, layout := range instantLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

// asFloat copies a decoded JSON number verbatim. Non-numbers collapse to 0;
// the contract never sends them.
func asFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case json.Number:
		f, _ := n.Float64()
		return f
	default:
		return 0
	}
}

// optString implements the top-level null-coalescing rule: absent or null
// becomes nil (serialized as JSON null), present values are kept.
func optString(v any) *string {
	if s, ok := v.(string); ok {
		return &s
	}
	return nil
}

// optStringField / optFloat / optBool implement the insights rule: absent
// sub-fields stay absent (nil with omitempty), present values are copied.
func optStringField(obj map[string]any, key string) *string {
	if s, ok := obj[key].(string); ok {
		return &s
	}
	return nil
}

func optFloat(obj map[string]any, key string) *float64 {
	v, ok := obj[key]
	if !ok || v == nil {
		return nil
	}
	f := asFloat(v)
	return &f
}

func optBool(obj map[string]any, key string) *bool {
	if b, ok := obj[key].(bool); ok {
		return &b
	}
	return nil
}
