package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/medroster/roster-system/internal/api/metrics"
	"github.com/medroster/roster-system/internal/core/domain"
	"github.com/medroster/roster-system/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher routes auth audit events to a fixed set of workers using
// consistent hashing on the account email, guaranteeing per-account event
// ordering in the audit trail.
type Dispatcher struct {
	workers []chan domain.AuthEvent
	service ports.AuditService
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.AuditService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan domain.AuthEvent, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.AuthEvent, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends an event to the worker responsible for its email. Recording
// an audit event must never fail the request that produced it: when the
// worker channel is full the event is dropped and logged instead.
func (d *Dispatcher) Enqueue(event domain.AuthEvent) {
	idx := d.shardIndex(event.Email)
	select {
	case d.workers[idx] <- event:
		metrics.AuditQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
	default:
		metrics.AuditEventsDroppedTotal.Inc()
		d.log.Warn().
			Str("email", event.Email).
			Str("action", string(event.Action)).
			Msg("audit queue full, event dropped")
	}
}

// shardIndex maps an email deterministically to a worker index.
func (d *Dispatcher) shardIndex(email string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(email))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.AuthEvent) {
	worker := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			metrics.AuditQueueDepth.WithLabelValues(worker).Set(float64(len(ch)))
			if err := d.service.Process(ctx, event); err != nil {
				metrics.AuditEventsErrorsTotal.Inc()
				d.log.Error().Err(err).
					Str("email", event.Email).
					Int("worker_id", id).
					Msg("audit event processing failed")
				continue
			}
			metrics.AuditEventsProcessedTotal.WithLabelValues(string(event.Action)).Inc()
		}
	}
}
