package service

import (
	"context"
	"testing"

	"github.com/marketdash/marketdash/internal/domain/models"
)

type recordingClient struct {
	query   string
	symbol  string
	method  string
	summary []models.StockSummary
	info    *models.GenericStockData
	points  []models.PredictionPoint
	err     error
}

func (r *recordingClient) SearchStocks(_ context.Context, query string) ([]models.StockSummary, error) {
	r.query = query
	return r.summary, r.err
}

func (r *recordingClient) GetStockInfo(_ context.Context, symbol string) (*models.GenericStockData, error) {
	r.symbol = symbol
	return r.info, r.err
}

func (r *recordingClient) PredictStock(_ context.Context, _ []models.StockSegment, method string) []models.PredictionPoint {
	r.method = method
	return r.points
}

var _ StockClient = (*recordingClient)(nil)

func TestStockService_NormalizesInputs(t *testing.T) {
	rec := &recordingClient{points: []models.PredictionPoint{}}
	svc := NewStockService(rec)
	ctx := context.Background()

	if _, err := svc.SearchStocks(ctx, "  apple  "); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.query != "apple" {
		t.Fatalf("query=%q, want trimmed", rec.query)
	}

	if _, err := svc.GetStockInfo(ctx, " aapl "); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.symbol != "AAPL" {
		t.Fatalf("symbol=%q, want AAPL", rec.symbol)
	}

	svc.PredictStock(ctx, nil, " sma ")
	if rec.method != "sma" {
		t.Fatalf("method=%q, want sma", rec.method)
	}
}

func TestStockService_PassesResultsThrough(t *testing.T) {
	want := []models.StockSummary{{Symbol: "AAPL", Name: "Apple Inc"}}
	rec := &recordingClient{summary: want}
	svc := NewStockService(rec)

	got, err := svc.SearchStocks(context.Background(), "AAPL")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0] != want[0] {
		t.Fatalf("unexpected result: %+v", got)
	}
}
