package app

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/marketdash/marketdash/config"
)

func TestInitializeApp_WiresRouterAndProbes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	config.AppConfig = config.Config{
		Server:  config.ServerConfig{Port: "8080"},
		Backend: config.BackendConfig{URL: "http://localhost:3000"},
		Mongo:   config.MongoConfig{URI: "mongodb://localhost:27017", Database: "marketDB"},
	}

	router, cleanup, err := InitializeApp()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer cleanup()

	// Liveness must answer without any backend available.
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("healthz code=%d", w.Code)
	}

	// Readiness must degrade when the backend is unreachable.
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("readyz code=%d, want 503", w.Code)
	}

	// Dashboard routes must be mounted.
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/stocks/search", nil))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("search without query code=%d, want 400", w.Code)
	}
}
