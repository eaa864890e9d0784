package events

import (
	"context"

	"github.com/MKhiriev/sphere-sync/models"
)

//go:generate mockgen -source=notifier.go -destination=../mock/events_mock.go -package=mock

// Notifier receives the changes of a sync call. Implementations must not
// block the caller.
type Notifier interface {
	SphereUpdated(ctx context.Context, sphereID, userID string)
	RecordCreated(ctx context.Context, sphereID string, category models.Category, record models.Record, userID string)
	RecordUpdated(ctx context.Context, sphereID string, category models.Category, record models.Record, userID string)
}

// Publisher delivers one event to the outside world.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

type nopNotifier struct{}

// Nop returns a Notifier that discards everything.
func Nop() Notifier {
	return nopNotifier{}
}

func (nopNotifier) SphereUpdated(context.Context, string, string) {}

func (nopNotifier) RecordCreated(context.Context, string, models.Category, models.Record, string) {}

func (nopNotifier) RecordUpdated(context.Context, string, models.Category, models.Record, string) {}
