package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecotrip/backend-go/internal/classifier"
	"github.com/ecotrip/backend-go/internal/models"
	"github.com/ecotrip/backend-go/internal/sensor"
	"github.com/ecotrip/backend-go/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeAuth injects a resolved identity the way the auth middleware does
func fakeAuth(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", userID)
		c.Next()
	}
}

func aiRouter(client classifier.Client) *gin.Engine {
	h := NewAIHandler(service.NewPredictionService(client, nil))
	r := gin.New()
	r.POST("/predict", fakeAuth("u1"), h.Predict)
	r.GET("/health", h.Health)
	return r
}

func deviceWindow(n int) []models.SensorSample {
	lat, lon := 52.52, 13.405
	samples := make([]models.SensorSample, n)
	for i := range samples {
		samples[i] = models.SensorSample{
			Accelerometer: &models.Accelerometer{Z: 9.8},
			Gyroscope:     &models.Gyroscope{Alpha: 1, Beta: 2, Gamma: 3},
			GPS:           &models.GPS{Lat: &lat, Lon: &lon},
		}
	}
	return samples
}

func postJSON(t *testing.T, r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPredictEndpointMockMode(t *testing.T) {
	r := aiRouter(classifier.NewMockClient())

	w := postJSON(t, r, "/predict", models.PredictRequest{
		SensorDataArray: deviceWindow(sensor.WindowSize),
		TripID:          "t1",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success    bool              `json:"success"`
		Prediction models.Prediction `json:"prediction"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, models.ModeCar, body.Prediction.Mode)
	assert.Equal(t, 0.82, body.Prediction.Confidence)
	assert.False(t, body.Prediction.NeedsVerification)
	assert.Equal(t, []string{models.ModeBus, models.ModeBike}, body.Prediction.Alternatives)
	assert.Equal(t, 600, body.Prediction.SamplesProcessed)
	assert.Equal(t, 60, body.Prediction.WindowDurationSeconds)
}

func TestPredictEndpointShortWindow(t *testing.T) {
	r := aiRouter(classifier.NewMockClient())

	w := postJSON(t, r, "/predict", models.PredictRequest{
		SensorDataArray: deviceWindow(10),
		TripID:          "t1",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Contains(t, body.Message, "600")
	assert.Contains(t, body.Message, "10")
}

func TestPredictEndpointClassifierUnavailable(t *testing.T) {
	client := classifier.NewHTTPClient("http://127.0.0.1:1", 200*time.Millisecond, 100*time.Millisecond)
	r := aiRouter(client)

	w := postJSON(t, r, "/predict", models.PredictRequest{
		SensorDataArray: deviceWindow(sensor.WindowSize),
		TripID:          "t1",
	})
	require.Equal(t, http.StatusServiceUnavailable, w.Code)

	var body struct {
		Success  bool   `json:"success"`
		Message  string `json:"message"`
		Fallback string `json:"fallback"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "manual_selection", body.Fallback)
}

func TestPredictEndpointRemoteRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad", http.StatusBadRequest)
	}))
	defer srv.Close()

	r := aiRouter(classifier.NewHTTPClient(srv.URL, time.Second, time.Second))
	w := postJSON(t, r, "/predict", models.PredictRequest{
		SensorDataArray: deviceWindow(sensor.WindowSize),
		TripID:          "t1",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid sensor data format")
}

func TestPredictEndpointMalformedBody(t *testing.T) {
	r := aiRouter(classifier.NewMockClient())

	req := httptest.NewRequest(http.MethodPost, "/predict", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealthEndpointHealthy(t *testing.T) {
	r := aiRouter(classifier.NewMockClient())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"healthy"`)
}

func TestHealthEndpointUnhealthy(t *testing.T) {
	client := classifier.NewHTTPClient("http://127.0.0.1:1", time.Second, 100*time.Millisecond)
	r := aiRouter(client)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), `"unhealthy"`)
}
