package service

import (
	"context"
	"strings"

	"github.com/marketdash/marketdash/internal/domain/models"
)

// StockService defines the dashboard operations exposed to the HTTP layer.
// This decouples handlers from the upstream client and makes them testable.
type StockService interface {
	SearchStocks(ctx context.Context, query string) ([]models.StockSummary, error)
	GetStockInfo(ctx context.Context, symbol string) (*models.GenericStockData, error)
	PredictStock(ctx context.Context, segments []models.StockSegment, method string) []models.PredictionPoint
}

// StockClient is the subset of the upstream client the service depends on.
type StockClient interface {
	SearchStocks(ctx context.Context, query string) ([]models.StockSummary, error)
	GetStockInfo(ctx context.Context, symbol string) (*models.GenericStockData, error)
	PredictStock(ctx context.Context, segments []models.StockSegment, method string) []models.PredictionPoint
}

type stockService struct {
	client StockClient
}

func NewStockService(client StockClient) StockService {
	return &stockService{client: client}
}

// SearchStocks forwards a trimmed query to the backend.
func (s *stockService) SearchStocks(ctx context.Context, query string) ([]models.StockSummary, error) {
	return s.client.SearchStocks(ctx, strings.TrimSpace(query))
}

// GetStockInfo normalizes the symbol before lookup. Symbols are the primary
// key of the backing store and are stored uppercase.
func (s *stockService) GetStockInfo(ctx context.Context, symbol string) (*models.GenericStockData, error) {
	return s.client.GetStockInfo(ctx, strings.ToUpper(strings.TrimSpace(symbol)))
}

// PredictStock passes segments through untouched; the best-effort semantics
// live in the client.
func (s *stockService) PredictStock(ctx context.Context, segments []models.StockSegment, method string) []models.PredictionPoint {
	return s.client.PredictStock(ctx, segments, strings.TrimSpace(method))
}
