package events

import (
	"strings"

	"github.com/MKhiriev/sphere-sync/models"
)

// Kind is what happened to the item.
type Kind string

const (
	KindCreated Kind = "created"
	KindUpdated Kind = "updated"
)

// Event is a single change made by a sync call.
type Event struct {
	Kind     Kind             `json:"type"`
	SphereID string           `json:"sphereId"`
	Category models.Category  `json:"category"`
	ItemID   string           `json:"itemId"`
	UserID   string           `json:"userId,omitempty"`
	At       models.Timestamp `json:"at"`
}

// Topics builds the broker topics events are published on.
type Topics struct {
	Prefix string
}

// Event returns <prefix>/spheres/{sphereId}/{category}/{kind}. Sphere events
// drop the category: <prefix>/spheres/{sphereId}/{kind}.
func (t Topics) Event(e Event) string {
	parts := make([]string, 0, 5)
	if t.Prefix != "" {
		parts = append(parts, strings.Trim(t.Prefix, "/"))
	}
	parts = append(parts, "spheres", e.SphereID)
	if e.Category != models.CategorySpheres {
		parts = append(parts, string(e.Category))
	}
	parts = append(parts, string(e.Kind))

	return strings.Join(parts, "/")
}
