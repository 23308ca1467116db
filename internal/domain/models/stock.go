package models

import "time"

// StockPoint is a single OHLCV sample inside a historical segment.
//
// All five numeric fields are required by the upstream contract; the
// timestamp is exchanged as an ISO-8601 string on the wire.
type StockPoint struct {
	Timestamp time.Time `json:"timestamp" example:"2024-01-15T00:00:00Z"`
	Open      float64   `json:"open" example:"185.50"`
	High      float64   `json:"high" example:"188.00"`
	Low       float64   `json:"low" example:"184.00"`
	Close     float64   `json:"close" example:"187.50"`
	Volume    float64   `json:"volume" example:"50000000"`
}

// StockSegment is a contiguous run of StockPoint values sharing one
// sampling interval (e.g. "1d").
//
// Points are kept in chronological order as delivered by the source;
// duplicates by timestamp are not deduplicated. Each point's timestamp is
// expected to fall within [StartDate, EndDate], although that is enforced
// by the producer, not here.
type StockSegment struct {
	StartDate  time.Time    `json:"start_date" example:"2024-01-01T00:00:00Z"`
	EndDate    time.Time    `json:"end_date" example:"2024-01-31T00:00:00Z"`
	Interval   string       `json:"interval" example:"1d"`
	DataPoints []StockPoint `json:"data_points"`
}

// StockInsights bundles the precomputed technical-analysis indicators
// attached to a symbol.
//
// Every field is independently optional: the upstream computation skips any
// indicator when there is not enough history, and "absent" is not the same
// as zero. Absent fields stay absent in JSON (omitempty on pointers).
type StockInsights struct {
	LastPrice        *float64 `json:"last_price,omitempty"`
	DayChange        *float64 `json:"day_change,omitempty"`
	DayChangePercent *float64 `json:"day_change_percent,omitempty"`

	SMA7  *float64 `json:"sma_7,omitempty"`
	SMA30 *float64 `json:"sma_30,omitempty"`
	EMA7  *float64 `json:"ema_7,omitempty"`
	EMA30 *float64 `json:"ema_30,omitempty"`

	BollingerUpper *float64 `json:"bollinger_upper,omitempty"`
	BollingerLower *float64 `json:"bollinger_lower,omitempty"`

	RSI14 *float64 `json:"rsi_14,omitempty"`
	MACD  *float64 `json:"macd,omitempty"`
	ATR14 *float64 `json:"atr_14,omitempty"`

	MaxDrawdown30D    *float64 `json:"max_drawdown_30d,omitempty"`
	Trend             *string  `json:"trend,omitempty"`
	CumulativeGain30D *float64 `json:"cumulative_gain_30d,omitempty"`
	VolumeAvg30D      *float64 `json:"volume_avg_30d,omitempty"`
	Volatility30D     *float64 `json:"volatility_30d,omitempty"`

	PriceVsSector   *float64 `json:"price_vs_sector,omitempty"`
	AlertOverbought *bool    `json:"alert_overbought,omitempty"`
	AlertOversold   *bool    `json:"alert_oversold,omitempty"`
}

// GenericStockData is the top-level aggregate handed to the presentation
// layer: one symbol, its historical segments and its insights bundle.
//
// Semantics:
//   - Symbol is the stable unique identifier of the record (the backing
//     store keys its collection on it).
//   - Provider and LastUpdate are optional; when the source omits them they
//     are nil and serialize as JSON null, never missing.
//   - HistoricalSegments is always present, possibly empty.
//   - Insights is never absent at the type level; when the source provided
//     none it is the zero bundle and serializes as {}.
type GenericStockData struct {
	Symbol             string         `json:"symbol" example:"AAPL"`
	Provider           *string        `json:"provider"`
	LastUpdate         *string        `json:"last_update"`
	HistoricalSegments []StockSegment `json:"historical_segments"`
	Insights           StockInsights  `json:"insights"`
}

// StockSummary is the lightweight search-result record returned by the
// upstream symbol search. Decoded as-is; the backend shape is trusted.
type StockSummary struct {
	Symbol   string `json:"symbol" example:"AAPL"`
	Name     string `json:"name" example:"Apple Inc"`
	Provider string `json:"provider,omitempty" example:"yahoo"`
}

// PredictionPoint is one forecast sample: a central estimate plus a
// confidence band. The timestamp stays a plain ISO-8601 string because it
// is passed through to and from the prediction endpoint untouched.
type PredictionPoint struct {
	Timestamp string  `json:"timestamp" example:"2024-02-01T00:00:00Z"`
	Close     float64 `json:"close" example:"187.50"`
	Upper     float64 `json:"upper" example:"190.10"`
	Lower     float64 `json:"lower" example:"184.90"`
}
