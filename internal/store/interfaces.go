package store

import (
	"context"

	"github.com/MKhiriev/sphere-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// FindFilter narrows a bulk record lookup. A nil slice does not restrict,
// an empty non-nil slice matches nothing.
type FindFilter struct {
	// IDs restricts the result to these record ids.
	IDs []string
	// ParentIDs restricts the result to children of these parent records.
	ParentIDs []string
	// Equals restricts the result to records whose data fields hold these
	// string values.
	Equals map[string]string
}

// RecordStore persists the records of one category.
type RecordStore interface {
	// Table describes the storage of the category.
	Table() Table
	// FindBySpheres returns every record of the category in the given spheres.
	FindBySpheres(ctx context.Context, sphereIDs []string, filter FindFilter) ([]models.Record, error)
	// FindByID returns [ErrRecordNotFound] when id is unknown.
	FindByID(ctx context.Context, id string) (models.Record, error)
	// Create stores a new record in sphereID with a server-assigned id and
	// timestamps. A unique-constraint hit returns a [*RecordConflictError].
	Create(ctx context.Context, sphereID string, record models.Record) (models.Record, error)
	// UpdateByID merges patch.Fields into the stored record. With acceptTimes
	// the patch's UpdatedAt is stored, otherwise the server stamps now.
	UpdateByID(ctx context.Context, id string, patch models.Record, acceptTimes bool) (models.Record, error)
	DeleteByID(ctx context.Context, id string) error
}

type UserRepository interface {
	FindByID(ctx context.Context, id string) (models.User, error)
	FindByIDs(ctx context.Context, ids []string) ([]models.User, error)
	UpdateByID(ctx context.Context, id string, patch models.Record, acceptTimes bool) (models.User, error)
}

type AccessRepository interface {
	// FindByUser returns the accepted grants of a user.
	FindByUser(ctx context.Context, userID string) ([]models.SphereAccess, error)
	// FindBySpheres returns every grant of the given spheres, pending invites included.
	FindBySpheres(ctx context.Context, sphereIDs []string) ([]models.SphereAccess, error)
}

type StoneRepository interface {
	// NextUID returns the lowest stone uid in 1..255 not used in the sphere.
	NextUID(ctx context.Context, sphereID string) (int, error)
}

type CatalogRepository interface {
	// FindReleases returns the releases of a kind up to a release level.
	FindReleases(ctx context.Context, kind models.ReleaseKind, maxReleaseLevel int) ([]models.Release, error)
}

type KeyRepository interface {
	FindBySpheres(ctx context.Context, sphereIDs []string) ([]models.SphereKey, error)
}

// IDGenerator hands out record ids.
type IDGenerator interface {
	Generate() string
}
