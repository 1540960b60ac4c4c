package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"sync"

	"github.com/rs/zerolog"

	"github.com/techhunt/api/internal/core/domain"
	"github.com/techhunt/api/internal/core/ports"
	"github.com/techhunt/api/internal/infrastructure/metrics"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher routes product activity to a fixed set of workers using
// consistent hashing on the product id, guaranteeing per-product ordering.
type Dispatcher struct {
	workers []chan domain.ProductActivity
	service ports.ActivityService
	log     zerolog.Logger
	wg      sync.WaitGroup

	// mu guards closed and the worker channels against a Publish racing Close.
	mu     sync.RWMutex
	closed bool
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.ActivityService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan domain.ProductActivity, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.ProductActivity, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled
// or after Close has drained their channels.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		d.wg.Add(1)
		go d.runWorker(ctx, i, ch)
	}
}

// Publish hands an activity entry to the worker responsible for its product.
// It never blocks: when the worker channel is full, or the dispatcher is
// closed, the entry is dropped.
func (d *Dispatcher) Publish(a domain.ProductActivity) {
	idx := d.shardIndex(a.ProductID)

	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		metrics.ActivityDroppedTotal.Inc()
		d.log.Warn().
			Str("product_id", a.ProductID).
			Str("kind", string(a.Kind)).
			Msg("activity dispatcher closed, entry dropped")
		return
	}
	select {
	case d.workers[idx] <- a:
		metrics.ActivityQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
	default:
		metrics.ActivityDroppedTotal.Inc()
		d.log.Warn().
			Str("product_id", a.ProductID).
			Str("kind", string(a.Kind)).
			Int("worker_id", idx).
			Msg("activity queue full, entry dropped")
	}
}

// Close stops accepting work and waits for the workers to drain. Entries
// published afterwards are dropped. Calling Close again is a no-op.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	for _, ch := range d.workers {
		close(ch)
	}
	d.mu.Unlock()
	d.wg.Wait()
}

// shardIndex maps a product id deterministically to a worker index.
func (d *Dispatcher) shardIndex(productID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(productID))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.ProductActivity) {
	defer d.wg.Done()
	depth := metrics.ActivityQueueDepth.WithLabelValues(strconv.Itoa(id))
	for {
		select {
		case <-ctx.Done():
			return
		case a, ok := <-ch:
			if !ok {
				return
			}
			depth.Set(float64(len(ch)))
			if err := d.service.Record(ctx, a); err != nil {
				d.log.Error().Err(err).
					Str("product_id", a.ProductID).
					Int("worker_id", id).
					Msg("activity recording failed")
			}
		}
	}
}
