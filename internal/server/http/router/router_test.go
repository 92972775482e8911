package router

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/alexh7799/coderr/internal/server/http/handlers"
	testhelpers "github.com/alexh7799/coderr/internal/test"
)

func TestSetupRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	facade := testhelpers.MarketFacadeStub{}
	engine := Setup(facade, logger)

	body, _ := json.Marshal(map[string]any{
		"username":          "exampleUsername",
		"email":             "example@mail.de",
		"password":          "examplePassword",
		"repeated_password": "examplePassword",
		"type":              "customer",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/registration/", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201 for registration, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/offers/", nil)
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for public offer list, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/base-info/", nil)
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for base info, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/orders/", nil)
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401 for orders without token, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/orders/", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for orders, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/offerdetails/1/", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for offer detail, got %d", resp.Code)
	}
}

var _ handlers.MarketFacade = (*testhelpers.MarketFacadeStub)(nil)
