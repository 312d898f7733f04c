package httpserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"solarapi/internal/api/handlers"
	"solarapi/internal/models"
	"solarapi/internal/services/mocks"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestRouter() (http.Handler, *mocks.MockSummaryService, *mocks.MockCleanService) {
	info := new(mocks.MockInfoService)
	info.On("GetInfo").Return(models.Info{ServiceName: "Solar API", Version: "test"})
	summary := new(mocks.MockSummaryService)
	clean := new(mocks.MockCleanService)
	return SetupRouter(handlers.NewHandlers(info, summary, clean)), summary, clean
}

func TestRouter_Health(t *testing.T) {
	router, summary, _ := newTestRouter()

	for _, path := range []string{"/", "/health"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set("Origin", "http://dashboard.local")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code, path)
		assert.Equal(t, "Solar API is running", rr.Body.String(), path)
		assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
		assert.NotEmpty(t, rr.Header().Get(RequestIDHeader))
	}
	summary.AssertNotCalled(t, "GetSummary", mock.Anything)
}

func TestRouter_Summary(t *testing.T) {
	router, summary, _ := newTestRouter()
	summary.On("GetSummary", mock.Anything).Return(json.RawMessage(`{"status":"ok","count":3}`), nil).Once()

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/summary", nil)
	req.Header.Set("Origin", "http://dashboard.local")
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, `{"status":"ok","count":3}`, rr.Body.String())
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
	summary.AssertExpectations(t)
}

func TestRouter_Info(t *testing.T) {
	router, _, _ := newTestRouter()

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/info", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"service_name":"Solar API"`)
}

func TestRouter_Clean(t *testing.T) {
	router, _, clean := newTestRouter()
	clean.On("RequestCleaning", mock.Anything, models.CleanRequestPayload{Method: "robot"}).
		Return(&models.CleanRequest{ID: "1", Method: "robot"}, nil).Once()

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/clean", strings.NewReader(`{"method":"robot"}`)))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, `{"status":"Cleaning request sent to robot"}`, rr.Body.String())
	clean.AssertExpectations(t)
}

func TestRouter_Errors(t *testing.T) {
	router, _, _ := newTestRouter()

	t.Run("Not Found", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/unknown", nil)
		req.Header.Set("Origin", "http://dashboard.local")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.JSONEq(t, `{"error":"Not found"}`, rr.Body.String())
		assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
		assert.NotEmpty(t, rr.Header().Get(RequestIDHeader))
	})

	t.Run("Method Not Allowed", func(t *testing.T) {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/api/summary", nil))
		assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
		assert.JSONEq(t, `{"error":"Method not allowed"}`, rr.Body.String())
		assert.NotEmpty(t, rr.Header().Get(RequestIDHeader))
	})

	t.Run("Method Not Allowed On Clean", func(t *testing.T) {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodPut, "/api/clean", nil))
		assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	})
}

func TestRouter_Preflight(t *testing.T) {
	router, summary, _ := newTestRouter()

	req := httptest.NewRequest(http.MethodOptions, "/api/clean", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", "POST")
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "Content-Type", rr.Header().Get("Access-Control-Allow-Headers"))
	assert.NotEmpty(t, rr.Header().Get(RequestIDHeader))
	summary.AssertNotCalled(t, "GetSummary", mock.Anything)
}

func TestRouter_PreflightDisallowedMethod(t *testing.T) {
	router, _, _ := newTestRouter()

	req := httptest.NewRequest(http.MethodOptions, "/api/summary", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", "DELETE")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

func TestRouter_PanicRecovered(t *testing.T) {
	router, summary, _ := newTestRouter()
	summary.On("GetSummary", mock.Anything).Run(func(args mock.Arguments) {
		panic("reader exploded")
	}).Return(nil, nil).Once()

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/summary", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.NotEmpty(t, rr.Header().Get(RequestIDHeader))
}

func TestRouter_RequestIDPropagation(t *testing.T) {
	router, _, _ := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "trace-123")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, "trace-123", rr.Header().Get(RequestIDHeader))
}
