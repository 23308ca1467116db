package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/marketdash/marketdash/internal/domain/dto"
	"github.com/marketdash/marketdash/internal/service"
	"github.com/marketdash/marketdash/internal/stockclient"
)

// Handler provides the HTTP handlers for the dashboard endpoints.
//
// Responsibilities:
//   - Validate incoming query parameters and request bodies
//   - Delegate to the stock service
//   - Translate upstream failures into structured JSON error responses
type Handler struct {
	svc service.StockService
}

// NewHandler constructs a Handler around the given service.
func NewHandler(svc service.StockService) *Handler {
	return &Handler{svc: svc}
}

// SearchStocks handles GET /api/v1/stocks/search requests.
//
// SearchStocks godoc
// @Summary      Search stock symbols
// @Description  Returns the symbols matching the given query
// @Tags         stocks
// @Produce      json
// @Param        query  query     string  true  "Search text" example(apple)
// @Success      200    {array}   models.StockSummary    "Success"
// @Failure      400    {object}  dto.ErrorResponse      "Bad Request"
// @Failure      502    {object}  dto.ErrorResponse      "Upstream Error"
// @Failure      500    {object}  dto.ErrorResponse      "Internal Error"
// @Router       /api/v1/stocks/search [get]
func (h *Handler) SearchStocks(c *gin.Context) {
	query := strings.TrimSpace(c.Query("query"))
	if query == "" {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("query is required", nil))
		return
	}

	summaries, err := h.svc.SearchStocks(c.Request.Context(), query)
	if err != nil {
		status, msg := upstreamStatus(err)
		c.JSON(status, dto.NewErrorResponse(msg, err))
		return
	}

	c.JSON(http.StatusOK, summaries)
}

// GetStockInfo handles GET /api/v1/stocks/info requests.
//
// GetStockInfo godoc
// @Summary      Get historical data and insights for a symbol
// @Description  Returns the shaped stock data, or 404 when the backend has no data for the symbol
// @Tags         stocks
// @Produce      json
// @Param        symbol  query     string  true  "Stock symbol" example(AAPL)
// @Success      200     {object}  models.GenericStockData  "Success"
// @Failure      400     {object}  dto.ErrorResponse        "Bad Request"
// @Failure      404     {object}  dto.ErrorResponse        "Not Found"
// @Failure      502     {object}  dto.ErrorResponse        "Upstream Error"
// @Failure      500     {object}  dto.ErrorResponse        "Internal Error"
// @Router       /api/v1/stocks/info [get]
func (h *Handler) GetStockInfo(c *gin.Context) {
	symbol := strings.TrimSpace(c.Query("symbol"))
	if symbol == "" {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("symbol is required", nil))
		return
	}

	data, err := h.svc.GetStockInfo(c.Request.Context(), symbol)
	if err != nil {
		status, msg := upstreamStatus(err)
		c.JSON(status, dto.NewErrorResponse(msg, err))
		return
	}
	if data == nil {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("no data found", nil))
		return
	}

	c.JSON(http.StatusOK, data)
}

// PredictStock handles POST /api/v1/stock/predict requests.
//
// The response is always a sequence of prediction points. Upstream failures
// on this path are absorbed by policy and surface as an empty sequence, so
// the dashboard never breaks on a failed forecast.
//
// PredictStock godoc
// @Summary      Request a price prediction
// @Description  Seeds the prediction with the submitted historical segments; failures yield an empty sequence
// @Tags         stocks
// @Accept       json
// @Produce      json
// @Param        request  body      dto.PredictRequest  true  "Prediction request"
// @Success      200      {array}   models.PredictionPoint  "Success (possibly empty)"
// @Failure      400      {object}  dto.ErrorResponse       "Bad Request"
// @Router       /api/v1/stock/predict [post]
func (h *Handler) PredictStock(c *gin.Context) {
	var req dto.PredictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid request body", err))
		return
	}
	if strings.TrimSpace(req.Method) == "" {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("method is required", nil))
		return
	}

	points := h.svc.PredictStock(c.Request.Context(), req.Segments, req.Method)
	c.JSON(http.StatusOK, points)
}

// upstreamStatus maps a service error onto an HTTP status for the caller:
// backend status failures become 502, everything else 500.
func upstreamStatus(err error) (int, string) {
	var reqErr *stockclient.RequestFailedError
	if errors.As(err, &reqErr) {
		return http.StatusBadGateway, "backend request failed"
	}
	return http.StatusInternalServerError, "failed to fetch stock data"
}
