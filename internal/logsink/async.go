package logsink

import (
	"log"
	"sync"

	"github.com/ecotrip/backend-go/internal/models"
)

// Job is one window's worth of ingestion logging
type Job struct {
	Raw     models.RawWindowRecord
	Samples []models.CanonicalSample
}

// AsyncSink decouples ingestion logging from the request path: jobs go
// into a bounded queue drained by a single worker, so sink latency or
// failure never delays or fails the classification response. A full
// queue drops the job rather than block the submitter
type AsyncSink struct {
	sink Sink
	jobs chan Job

	closeOnce sync.Once
	done      chan struct{}
}

// NewAsyncSink starts the worker draining a queue of the given size
func NewAsyncSink(sink Sink, queueSize int) *AsyncSink {
	if queueSize < 1 {
		queueSize = 1
	}
	a := &AsyncSink{
		sink: sink,
		jobs: make(chan Job, queueSize),
		done: make(chan struct{}),
	}
	go a.run()
	return a
}

// Submit enqueues a job without blocking. Returns false if the queue
// was full and the job was dropped
func (a *AsyncSink) Submit(job Job) bool {
	select {
	case a.jobs <- job:
		return true
	default:
		log.Printf("logsink: queue full, dropping window for trip %s", job.Raw.TripID)
		return false
	}
}

func (a *AsyncSink) run() {
	defer close(a.done)
	for job := range a.jobs {
		a.process(job)
	}
}

// process attempts both writes independently: a raw-append failure
// must not prevent the per-sample store from being tried, and neither
// failure leaves this goroutine
func (a *AsyncSink) process(job Job) {
	if err := a.sink.LogRawWindow(&job.Raw); err != nil {
		log.Printf("logsink: failed to append raw window for trip %s: %v", job.Raw.TripID, err)
	}
	if err := a.sink.LogSamples(job.Raw.TripID, job.Raw.UserID, job.Samples); err != nil {
		log.Printf("logsink: failed to store samples for trip %s: %v", job.Raw.TripID, err)
	}
}

// Close stops accepting jobs and waits for the queue to drain
func (a *AsyncSink) Close() {
	a.closeOnce.Do(func() {
		close(a.jobs)
	})
	<-a.done
}
