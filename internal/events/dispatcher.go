package events

import (
	"context"
	"sync/atomic"

	"github.com/MKhiriev/sphere-sync/internal/logger"
	"github.com/MKhiriev/sphere-sync/models"
)

const defaultQueueSize = 1024

// Dispatcher is the asynchronous [Notifier]. Events go into a bounded queue
// and are handed to the publisher by [Dispatcher.Run].
type Dispatcher struct {
	queue     chan Event
	publisher Publisher
	logger    *logger.Logger
	dropped   atomic.Int64
}

// NewDispatcher returns a dispatcher with a queue of queueSize events.
// A non-positive size falls back to 1024.
func NewDispatcher(publisher Publisher, queueSize int, log *logger.Logger) *Dispatcher {
	if queueSize <= 0 {
		queueSize = defaultQueueSize
	}

	return &Dispatcher{
		queue:     make(chan Event, queueSize),
		publisher: publisher,
		logger:    log,
	}
}

func (d *Dispatcher) SphereUpdated(ctx context.Context, sphereID, userID string) {
	d.enqueue(ctx, Event{
		Kind:     KindUpdated,
		SphereID: sphereID,
		Category: models.CategorySpheres,
		ItemID:   sphereID,
		UserID:   userID,
		At:       models.Now(),
	})
}

func (d *Dispatcher) RecordCreated(ctx context.Context, sphereID string, category models.Category, record models.Record, userID string) {
	d.enqueue(ctx, recordEvent(KindCreated, sphereID, category, record, userID))
}

func (d *Dispatcher) RecordUpdated(ctx context.Context, sphereID string, category models.Category, record models.Record, userID string) {
	d.enqueue(ctx, recordEvent(KindUpdated, sphereID, category, record, userID))
}

// Dropped returns how many events were discarded because the queue was full.
func (d *Dispatcher) Dropped() int64 {
	return d.dropped.Load()
}

// Run publishes queued events until ctx is cancelled. Events still queued at
// that point are flushed with a fresh context before Run returns.
func (d *Dispatcher) Run(ctx context.Context) error {
	d.logger.Info().Int("queue_size", cap(d.queue)).Msg("event dispatcher started")

	for {
		select {
		case <-ctx.Done():
			d.flush()
			d.logger.Info().Int64("dropped", d.Dropped()).Msg("event dispatcher stopped")
			return nil
		case event := <-d.queue:
			d.publish(ctx, event)
		}
	}
}

func (d *Dispatcher) flush() {
	ctx := context.Background()
	for {
		select {
		case event := <-d.queue:
			d.publish(ctx, event)
		default:
			return
		}
	}
}

func (d *Dispatcher) publish(ctx context.Context, event Event) {
	if err := d.publisher.Publish(ctx, event); err != nil {
		d.logger.Err(err).
			Str("func", "*Dispatcher.publish").
			Str("sphere_id", event.SphereID).
			Str("category", string(event.Category)).
			Str("item_id", event.ItemID).
			Msg("failed to publish event")
	}
}

func (d *Dispatcher) enqueue(ctx context.Context, event Event) {
	select {
	case d.queue <- event:
	default:
		d.dropped.Add(1)
		logger.FromContext(ctx).Warn().
			Err(ErrQueueFull).
			Str("sphere_id", event.SphereID).
			Str("category", string(event.Category)).
			Msg("event dropped")
	}
}

func recordEvent(kind Kind, sphereID string, category models.Category, record models.Record, userID string) Event {
	return Event{
		Kind:     kind,
		SphereID: sphereID,
		Category: category,
		ItemID:   record.ID,
		UserID:   userID,
		At:       record.UpdatedAt,
	}
}
