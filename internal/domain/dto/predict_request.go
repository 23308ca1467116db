package dto

import "github.com/marketdash/marketdash/internal/domain/models"

// PredictRequest is the JSON body accepted by POST /api/v1/stock/predict.
//
// The dashboard sends back the historical segments it received from the
// info endpoint together with the prediction method to apply (e.g. "sma",
// "ema", "naive"). Methods are interpreted upstream; this service only
// forwards them.
type PredictRequest struct {
	Method   string                `json:"method" example:"sma"`
	Segments []models.StockSegment `json:"segments"`
}
