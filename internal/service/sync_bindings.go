package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/sphere-sync/internal/reconcile"
	"github.com/MKhiriev/sphere-sync/internal/store"
	"github.com/MKhiriev/sphere-sync/models"
)

const (
	fieldLocationID = "locationId"
	fieldStoneID    = "stoneId"
	fieldAbilityID  = "abilityId"
	fieldMessageID  = "messageId"
	fieldUserID     = "userId"
)

// beforeCreateFunc adjusts a record right before it is stored.
type beforeCreateFunc func(ctx context.Context, pass *spherePass, record models.Record) (models.Record, error)

// categoryBinding ties a category to its store, its role tables and the
// categories nested below its records.
type categoryBinding struct {
	category models.Category
	wireKey  string
	store    store.RecordStore
	perms    reconcile.CategoryPermissions

	// parentField links a nested record to its parent (stoneId for
	// abilities). Empty for categories that hang off the sphere.
	parentField string

	// refFields are rewritten through the creation map before a write.
	refFields []string

	// serverFields are owned by the server and dropped from client payloads
	// on create and on update.
	serverFields []string

	children     []*categoryBinding
	beforeCreate beforeCreateFunc
}

// syncBindings is the category tree of a sphere in the order each phase
// walks it.
type syncBindings struct {
	request []*categoryBinding
	reply   []*categoryBinding
}

func newSyncBindings(storages *store.Storages, perms reconcile.Permissions) *syncBindings {
	bind := func(c models.Category, refFields ...string) *categoryBinding {
		b := &categoryBinding{
			category:  c,
			wireKey:   c.WireKey(),
			store:     storages.Record(c),
			perms:     perms.For(c),
			refFields: refFields,
		}
		if b.store != nil {
			b.parentField = b.store.Table().ParentField
		}
		return b
	}

	locations := bind(models.CategoryLocations)
	fingerprints := bind(models.CategoryFingerprints, fieldLocationID)
	scenes := bind(models.CategoryScenes)
	toons := bind(models.CategoryToons)
	hubs := bind(models.CategoryHubs, fieldLocationID)

	// read and deleted markers always belong to the caller
	readBy := bind(models.CategoryMessageReadBy)
	readBy.serverFields = []string{fieldUserID}
	readBy.beforeCreate = stampCaller
	deletedBy := bind(models.CategoryMessageDeletedBy)
	deletedBy.serverFields = []string{fieldUserID}
	deletedBy.beforeCreate = stampCaller

	messages := bind(models.CategoryMessages)
	messages.children = []*categoryBinding{
		bind(models.CategoryMessageRecipients),
		readBy,
		deletedBy,
	}

	abilities := bind(models.CategoryAbilities)
	abilities.children = []*categoryBinding{bind(models.CategoryProperties)}

	stones := bind(models.CategoryStones, fieldLocationID)
	stones.serverFields = []string{store.FieldStoneUID}
	stones.beforeCreate = assignStoneUID(storages.Stones)
	stones.children = []*categoryBinding{bind(models.CategoryBehaviours), abilities}

	// sphere users are assembled from access grants and have no record store
	sphereUsers := bind(models.CategorySphereUsers)

	return &syncBindings{
		request: []*categoryBinding{locations, fingerprints, messages, scenes, toons, stones, hubs, sphereUsers},
		reply:   []*categoryBinding{locations, hubs, scenes, toons, stones, fingerprints, messages},
	}
}

// assignStoneUID gives a new stone the lowest uid still free in its sphere.
func assignStoneUID(stones store.StoneRepository) beforeCreateFunc {
	return func(ctx context.Context, pass *spherePass, record models.Record) (models.Record, error) {
		uid, err := stones.NextUID(ctx, pass.sphereID)
		if err != nil {
			return models.Record{}, fmt.Errorf("assigning stone uid: %w", err)
		}
		record.Fields[store.FieldStoneUID] = uid

		return record, nil
	}
}

// stampCaller sets userId of a per-user marker to the caller.
func stampCaller(_ context.Context, pass *spherePass, record models.Record) (models.Record, error) {
	record.Fields[fieldUserID] = pass.userID

	return record, nil
}

// stripServerFields drops the fields b owns on the server side from a
// client payload.
func (b *categoryBinding) stripServerFields(fields map[string]any) {
	for _, f := range b.serverFields {
		delete(fields, f)
	}
}
