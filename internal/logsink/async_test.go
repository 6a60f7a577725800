package logsink

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecotrip/backend-go/internal/models"
)

// recordingSink captures calls and can fail either write independently
type recordingSink struct {
	mu         sync.Mutex
	rawCalls   []models.RawWindowRecord
	sampleSets [][]models.CanonicalSample
	rawErr     error
	samplesErr error
	entered    chan struct{} // signalled when LogRawWindow is entered
	block      chan struct{} // when set, LogRawWindow waits on it
}

func (s *recordingSink) LogRawWindow(rec *models.RawWindowRecord) error {
	if s.entered != nil {
		select {
		case s.entered <- struct{}{}:
		default:
		}
	}
	if s.block != nil {
		<-s.block
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rawCalls = append(s.rawCalls, *rec)
	return s.rawErr
}

func (s *recordingSink) LogSamples(tripID, userID string, samples []models.CanonicalSample) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sampleSets = append(s.sampleSets, samples)
	return s.samplesErr
}

func (s *recordingSink) counts() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.rawCalls), len(s.sampleSets)
}

func testJob(tripID string) Job {
	return Job{
		Raw: models.RawWindowRecord{
			TripID:      tripID,
			UserID:      "u1",
			SampleCount: 600,
			Payload:     []byte(`{}`),
			ReceivedAt:  time.Now(),
		},
		Samples: make([]models.CanonicalSample, 600),
	}
}

func TestAsyncSinkDeliversBothWrites(t *testing.T) {
	rec := &recordingSink{}
	sink := NewAsyncSink(rec, 4)

	require.True(t, sink.Submit(testJob("t1")))
	sink.Close()

	raw, samples := rec.counts()
	assert.Equal(t, 1, raw)
	assert.Equal(t, 1, samples)
	assert.Equal(t, "t1", rec.rawCalls[0].TripID)
	assert.Len(t, rec.sampleSets[0], 600)
}

func TestAsyncSinkWritesAreIndependent(t *testing.T) {
	// A raw-append failure must not stop the per-sample attempt
	rec := &recordingSink{rawErr: errors.New("disk full")}
	sink := NewAsyncSink(rec, 4)

	sink.Submit(testJob("t1"))
	sink.Close()

	raw, samples := rec.counts()
	assert.Equal(t, 1, raw)
	assert.Equal(t, 1, samples)
}

func TestAsyncSinkSwallowsAllFailures(t *testing.T) {
	rec := &recordingSink{
		rawErr:     errors.New("raw failed"),
		samplesErr: errors.New("samples failed"),
	}
	sink := NewAsyncSink(rec, 4)

	// Neither failure escapes the worker
	require.True(t, sink.Submit(testJob("t1")))
	require.True(t, sink.Submit(testJob("t2")))
	sink.Close()

	raw, samples := rec.counts()
	assert.Equal(t, 2, raw)
	assert.Equal(t, 2, samples)
}

func TestAsyncSinkSubmitNeverBlocks(t *testing.T) {
	block := make(chan struct{})
	rec := &recordingSink{block: block, entered: make(chan struct{}, 1)}
	sink := NewAsyncSink(rec, 1)

	// First job occupies the worker, second fills the queue
	sink.Submit(testJob("t1"))
	<-rec.entered
	sink.Submit(testJob("t2"))

	done := make(chan bool, 1)
	go func() {
		done <- sink.Submit(testJob("t3"))
	}()

	select {
	case accepted := <-done:
		assert.False(t, accepted, "overflow job should be dropped, not queued")
	case <-time.After(time.Second):
		t.Fatal("Submit blocked on a full queue")
	}

	close(block)
	sink.Close()
}

func TestAsyncSinkCloseDrainsQueue(t *testing.T) {
	rec := &recordingSink{}
	sink := NewAsyncSink(rec, 16)

	for i := 0; i < 10; i++ {
		require.True(t, sink.Submit(testJob("t1")))
	}
	sink.Close()

	raw, _ := rec.counts()
	assert.Equal(t, 10, raw)
}
