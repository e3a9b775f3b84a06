package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupChartTestRouter(t *testing.T) *gin.Engine {
	store := setupTestStore(t)

	gin.SetMode(gin.TestMode)
	router := gin.New()

	chartHandler := NewChartHandler(store)
	router.GET("/charts/:country/:chart", chartHandler.GetChart)

	return router
}

func TestChartHandler_GetChart(t *testing.T) {
	router := setupChartTestRouter(t)

	tests := []struct {
		name           string
		path           string
		expectedStatus int
		expectPNG      bool
	}{
		{name: "views", path: "/charts/US/views.png?row=0", expectedStatus: http.StatusOK, expectPNG: true},
		{name: "totals", path: "/charts/US/totals.png?row=2&width=400&height=300", expectedStatus: http.StatusOK, expectPNG: true},
		{name: "selected", path: "/charts/US/selected.png?row=1", expectedStatus: http.StatusOK, expectPNG: true},
		{name: "row out of range", path: "/charts/US/views.png?row=9", expectedStatus: http.StatusNoContent},
		{name: "selected row without likes", path: "/charts/GB/selected.png", expectedStatus: http.StatusNoContent},
		{name: "unknown chart", path: "/charts/US/heatmap.png", expectedStatus: http.StatusNotFound},
		{name: "unknown country", path: "/charts/ZZ/views.png", expectedStatus: http.StatusNotFound},
		{name: "bad row", path: "/charts/US/views.png?row=x", expectedStatus: http.StatusBadRequest},
		{name: "oversized image", path: "/charts/US/totals.png?row=0&width=8000&height=8000", expectedStatus: http.StatusBadRequest},
		{name: "oversized height", path: "/charts/US/totals.png?height=50000", expectedStatus: http.StatusBadRequest},
		{name: "negative width", path: "/charts/US/totals.png?width=-1", expectedStatus: http.StatusBadRequest},
		{name: "non integer width", path: "/charts/US/totals.png?width=wide", expectedStatus: http.StatusBadRequest},
		{name: "largest image", path: "/charts/US/totals.png?width=2048&height=300", expectedStatus: http.StatusOK, expectPNG: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectPNG {
				assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
				assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("\x89PNG")))
			}
		})
	}
}

func TestParseDimension(t *testing.T) {
	n, err := parseDimension("")
	assert.NoError(t, err)
	assert.Equal(t, 0, n)

	n, err = parseDimension("640")
	assert.NoError(t, err)
	assert.Equal(t, 640, n)

	_, err = parseDimension("2049")
	assert.Error(t, err)
}
