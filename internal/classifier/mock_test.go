package classifier

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecotrip/backend-go/internal/models"
)

func TestMockClientReturnsCannedPrediction(t *testing.T) {
	client := NewMockClient()

	samples := make([]models.CanonicalSample, 600)
	pred, err := client.Predict(context.Background(), "t1", samples)
	require.NoError(t, err)

	assert.Equal(t, models.ModeCar, pred.Mode)
	assert.Equal(t, 0.82, pred.Confidence)
	assert.False(t, pred.NeedsVerification)
	assert.Equal(t, []string{models.ModeBus, models.ModeBike}, pred.Alternatives)
	assert.Equal(t, 600, pred.SamplesProcessed)
	assert.Equal(t, 60, pred.WindowDurationSeconds)
}

func TestMockClientIgnoresWindowContent(t *testing.T) {
	client := NewMockClient()

	a, err := client.Predict(context.Background(), "t1", make([]models.CanonicalSample, 600))
	require.NoError(t, err)

	loaded := make([]models.CanonicalSample, 600)
	for i := range loaded {
		loaded[i].Accelerometer = models.Accelerometer{X: float64(i)}
	}
	b, err := client.Predict(context.Background(), "t2", loaded)
	require.NoError(t, err)

	assert.Equal(t, a.Mode, b.Mode)
	assert.Equal(t, a.Confidence, b.Confidence)
	assert.Equal(t, a.Alternatives, b.Alternatives)
}

func TestMockClientHealth(t *testing.T) {
	require.NoError(t, NewMockClient().Health(context.Background()))
}
