package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-recipes/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestHealthHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("ok", func(t *testing.T) {
		db := NewMockPinger(ctrl)
		db.EXPECT().Ping(gomock.Any()).Return(nil)

		rr := httptest.NewRecorder()
		NewHealthHandler(db)(rr, httptest.NewRequest(http.MethodGet, "/api/health", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp models.HealthResponse
		decodeBody(t, rr, &resp)
		assert.Equal(t, "ok", resp.Status)
		assert.NotEmpty(t, resp.Timestamp)
	})

	t.Run("database down", func(t *testing.T) {
		db := NewMockPinger(ctrl)
		db.EXPECT().Ping(gomock.Any()).Return(errors.New("dial tcp: connection refused"))

		rr := httptest.NewRecorder()
		NewHealthHandler(db)(rr, httptest.NewRequest(http.MethodGet, "/api/health", nil))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.JSONEq(t, `{"error":"dial tcp: connection refused"}`, rr.Body.String())
	})
}
