package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLivenessHandler(t *testing.T) {
	h := NewHandler("demostore")
	rec := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/health", nil)

	h.LivenessHandler()(rec, r)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, StatusUp, resp.Status)
	assert.Equal(t, "demostore", resp.Service)
	assert.False(t, resp.Timestamp.IsZero())
}

func TestReadinessHandler_AllUp(t *testing.T) {
	h := NewHandler("demostore")
	h.Register("store", func(ctx context.Context) error { return nil })

	rec := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/health/ready", nil)

	h.ReadinessHandler()(rec, r)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, StatusUp, resp.Status)
	assert.Equal(t, StatusUp, resp.Checks["store"].Status)
}

func TestReadinessHandler_CheckDown(t *testing.T) {
	h := NewHandler("demostore")
	h.Register("store", func(ctx context.Context) error { return errors.New("not initialized") })

	rec := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/health/ready", nil)

	h.ReadinessHandler()(rec, r)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var resp Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, StatusDown, resp.Status)
	assert.Equal(t, "not initialized", resp.Checks["store"].Error)
}

func TestReadinessHandler_NoCheckers(t *testing.T) {
	h := NewHandler("demostore")
	rec := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/health/ready", nil)

	h.ReadinessHandler()(rec, r)

	assert.Equal(t, http.StatusOK, rec.Code)
}
