// Package audit records routing-gate decisions off the request path. Every
// navigation produces one entry; a sharded worker pool writes them as
// structured log events so denials and redirects can be traced per session.
package audit

import (
	"context"
	"hash/fnv"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/clinivet/gateway/internal/api/metrics"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Entry is one recorded navigation decision.
type Entry struct {
	SessionID string
	Role      string
	Path      string
	Decision  string // "allow" or "redirect"
	Location  string // redirect target, empty on allow
	At        time.Time
}

// Dispatcher fans entries out to a fixed set of workers, sharding on the
// session ID so one session's trail stays ordered.
type Dispatcher struct {
	workers []chan Entry
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan Entry, numWorkers),
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan Entry, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Navigation records a gate decision. Non-blocking: when the worker queue
// is full the entry is dropped and counted, never stalling a navigation.
func (d *Dispatcher) Navigation(e Entry) {
	if e.At.IsZero() {
		e.At = time.Now().UTC()
	}
	i := d.shardIndex(e.SessionID)
	select {
	case d.workers[i] <- e:
		metrics.AuditQueueDepth.WithLabelValues(strconv.Itoa(i)).Set(float64(len(d.workers[i])))
	default:
		metrics.AuditDroppedTotal.Inc()
	}
}

// shardIndex maps a session ID deterministically to a worker index.
func (d *Dispatcher) shardIndex(sessionID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(sessionID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan Entry) {
	for {
		select {
		case <-ctx.Done():
			return
		case e, ok := <-ch:
			if !ok {
				return
			}
			metrics.AuditQueueDepth.WithLabelValues(strconv.Itoa(id)).Set(float64(len(ch)))
			evt := d.log.Info().
				Str("session_id", e.SessionID).
				Str("role", e.Role).
				Str("path", e.Path).
				Str("decision", e.Decision).
				Time("at", e.At)
			if e.Location != "" {
				evt = evt.Str("location", e.Location)
			}
			evt.Msg("navigation")
		}
	}
}
