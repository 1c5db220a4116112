// File: internal/stats/handler_test.go
package stats

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"sabuconnect_backend/internal/common"
	"sabuconnect_backend/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type serviceStub struct {
	stats Stats
	err   error
}

func (s *serviceStub) GetStats(_ context.Context) (Stats, error) {
	return s.stats, s.err
}

func setupStatsRouter(svc Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewHandler(svc, &config.Config{StatsCacheMaxAgeSeconds: 60}, zap.NewNop())
	h.RegisterRoutes(router.Group("/api/v1"))
	return router
}

func TestGetStats_SuccessSetsCacheHeader(t *testing.T) {
	router := setupStatsRouter(&serviceStub{
		stats: Stats{Providers: 3, ActiveListings: 12, Users: 40, Categories: 5},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/stats", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "public, max-age=60", w.Header().Get("Cache-Control"))

	var body struct {
		Data Stats `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, int64(12), body.Data.ActiveListings)
}

func TestGetStats_FailureReturnsZeroPayload(t *testing.T) {
	router := setupStatsRouter(&serviceStub{err: common.ErrInternalServer})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/stats", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Empty(t, w.Header().Get("Cache-Control"))

	var body struct {
		Code    string `json:"code"`
		Details Stats  `json:"details"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, common.ErrInternalServer.Code, body.Code)
	assert.Equal(t, Stats{}, body.Details)
}
