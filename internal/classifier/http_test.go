package classifier

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecotrip/backend-go/internal/models"
)

func canonicalWindow(n int) []models.CanonicalSample {
	lat, lon := 52.52, 13.405
	samples := make([]models.CanonicalSample, n)
	for i := range samples {
		samples[i] = models.CanonicalSample{
			Accelerometer: models.Accelerometer{Z: 9.8},
			Gyroscope:     models.Rotation{X: 1, Y: 2, Z: 3},
			GPS:           models.CanonicalGPS{Lat: &lat, Lon: &lon},
		}
	}
	return samples
}

func TestHTTPClientMapsRemoteResponse(t *testing.T) {
	var gotPath string
	var gotReq predictRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		json.NewEncoder(w).Encode(map[string]interface{}{
			"predicted_mode":     "tram",
			"confidence":         0.64,
			"needs_user_check":   true,
			"alternative_modes":  []string{"bus", "metro"},
			"processing_time_ms": 118,
		})
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, 30*time.Second, 3*time.Second)
	pred, err := client.Predict(context.Background(), "t1", canonicalWindow(600))
	require.NoError(t, err)

	assert.Equal(t, "/predict", gotPath)
	assert.Equal(t, "t1", gotReq.TripID)
	assert.Len(t, gotReq.Samples, 600)

	assert.Equal(t, "tram", pred.Mode)
	assert.Equal(t, 0.64, pred.Confidence)
	assert.True(t, pred.NeedsVerification)
	assert.Equal(t, []string{"bus", "metro"}, pred.Alternatives)
	assert.Equal(t, int64(118), pred.ProcessingTimeMs)
	assert.Equal(t, 600, pred.SamplesProcessed)
	assert.Equal(t, 60, pred.WindowDurationSeconds)
}

func TestHTTPClientDefaultsAlternatives(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"predicted_mode": "walk",
			"confidence":     0.9,
		})
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, time.Second, time.Second)
	pred, err := client.Predict(context.Background(), "t1", canonicalWindow(600))
	require.NoError(t, err)
	assert.NotNil(t, pred.Alternatives)
	assert.Empty(t, pred.Alternatives)
}

func TestHTTPClientConnectionRefused(t *testing.T) {
	// A server that is already closed gives a dead port
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := NewHTTPClient(srv.URL, time.Second, time.Second)
	_, err := client.Predict(context.Background(), "t1", canonicalWindow(600))
	require.ErrorIs(t, err, ErrUnavailable)

	require.ErrorIs(t, client.Health(context.Background()), ErrUnavailable)
}

func TestHTTPClientDeadlineExceeded(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer func() {
		close(release)
		srv.Close()
	}()

	client := NewHTTPClient(srv.URL, 50*time.Millisecond, 50*time.Millisecond)
	_, err := client.Predict(context.Background(), "t1", canonicalWindow(600))
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestHTTPClientRemoteRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad payload", http.StatusBadRequest)
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, time.Second, time.Second)
	_, err := client.Predict(context.Background(), "t1", canonicalWindow(600))
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestHTTPClientRemoteServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, time.Second, time.Second)
	_, err := client.Predict(context.Background(), "t1", canonicalWindow(600))
	require.ErrorIs(t, err, ErrInternal)
}

func TestHTTPClientMalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, time.Second, time.Second)
	_, err := client.Predict(context.Background(), "t1", canonicalWindow(600))
	require.ErrorIs(t, err, ErrInternal)
}

func TestHTTPClientHealthy(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/health", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, time.Second, time.Second)
	require.NoError(t, client.Health(context.Background()))
}
