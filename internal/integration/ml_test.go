package integration

import (
	"bytes"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/motix/motix/internal/dtos"
)

func TestPredictEndpoint(t *testing.T) {
	srv := newTestServer(t)

	features := dtos.MovementFeatures{
		MovementsCount:         8,
		SectorChangesLast7Days: 3,
		HoursSinceLastMove:     5,
	}
	resp := do(t, srv, http.MethodPost, "/api/v1/ml/predict", features, true)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var pred dtos.MovementPrediction
	decode(t, resp, &pred)
	assert.True(t, pred.ShouldMove)
	assert.Greater(t, pred.Score, 0.0)
	assert.Greater(t, pred.Probability, 0.5)
}

func TestPredictEndpointIdleMotorcycle(t *testing.T) {
	srv := newTestServer(t)

	features := dtos.MovementFeatures{
		MovementsCount:         0,
		SectorChangesLast7Days: 0,
		HoursSinceLastMove:     200,
	}
	resp := do(t, srv, http.MethodPost, "/api/v1/ml/predict", features, true)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var pred dtos.MovementPrediction
	decode(t, resp, &pred)
	assert.False(t, pred.ShouldMove)
	assert.Less(t, pred.Probability, 0.5)
}

func TestPredictEndpointRequiresKey(t *testing.T) {
	srv := newTestServer(t)

	resp := do(t, srv, http.MethodPost, "/api/v1/ml/predict", dtos.MovementFeatures{}, false)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "API Key missing", errorOf(t, resp))
}

func TestPredictEndpointInvalidJSON(t *testing.T) {
	srv := newTestServer(t)

	req, err := http.NewRequest(http.MethodPost, srv.URL+"/api/v1/ml/predict",
		bytes.NewBufferString("{not json"))
	require.NoError(t, err)
	req.Header.Set("X-API-KEY", testAPIKey)

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "invalid JSON payload", errorOf(t, resp))
}
