package service

import (
	"context"
	"errors"
	"net/http"
	"slices"

	"github.com/MKhiriev/sphere-sync/internal/logger"
	"github.com/MKhiriev/sphere-sync/internal/reconcile"
	"github.com/MKhiriev/sphere-sync/internal/store"
	"github.com/MKhiriev/sphere-sync/internal/validators"
	"github.com/MKhiriev/sphere-sync/models"
)

// spherePass is the state of one sphere within one sync call. Each sphere
// gets its own pass and its own creation map.
type spherePass struct {
	syncType  models.SyncType
	userID    string
	sphereID  string
	role      models.AccessRole
	creations *reconcile.CreationMap
	state     *syncState
	ignored   reconcile.IgnoreSet
	log       *logger.Logger
}

func newSpherePass(ctx context.Context, syncType models.SyncType, state *syncState, ignored reconcile.IgnoreSet, sphereID string, role models.AccessRole) *spherePass {
	return &spherePass{
		syncType:  syncType,
		userID:    state.userID,
		sphereID:  sphereID,
		role:      role,
		creations: reconcile.NewCreationMap(),
		state:     state,
		ignored:   ignored,
		log:       logger.FromContext(ctx).WithSphere(sphereID),
	}
}

// prepareClaims stamps new on everything below a new claim and announces
// every new local id to the creation map, before any category is processed.
func prepareClaims(node *models.ClaimItem, creations *reconcile.CreationMap) {
	if node == nil {
		return
	}
	for _, items := range node.Children {
		for id, item := range items {
			if item == nil {
				continue
			}
			if item.New {
				item.MarkNew()
				creations.Expect(id)
			}
			prepareClaims(item, creations)
		}
	}
}

// processCategory reconciles the claims of one category below ownerID (the
// sphere id for top-level categories, the parent record id otherwise) and
// writes one reply node per item into reply.
func (s *syncService) processCategory(ctx context.Context, pass *spherePass, b *categoryBinding, ownerID string, claims map[string]*models.ClaimItem, reply map[string]*models.ReplyItem) {
	remaining := pass.state.children(b, ownerID).Clone()

	for _, id := range sortedKeys(claims) {
		claim := claims[id]

		if claim != nil && claim.New {
			node, serverID := s.createItem(ctx, pass, b, ownerID, id, claim)
			delete(remaining, serverID)
			reply[id] = node
			continue
		}

		var server *models.Record
		if record, ok := remaining[id]; ok {
			server = &record
			delete(remaining, id)
		}

		if pass.syncType == models.SyncTypeReply {
			reply[id] = s.replyItem(ctx, pass, b, id, claim, server)
			continue
		}

		node := models.NewReplyItem(reconcile.Reconcile(claim, server, b.perms.Edit.Allows(pass.role)))
		if node.Status() != models.StatusNotAvailable {
			s.processChildren(ctx, pass, b, id, claim, node)
		}
		reply[id] = node
	}

	if pass.syncType == models.SyncTypeReply {
		return
	}

	for _, id := range sortedKeys(remaining) {
		node := models.NewReplyItem(models.ItemReply{Status: models.StatusNewDataAvailable, Data: remaining[id]})
		s.processChildren(ctx, pass, b, id, nil, node)
		reply[id] = node
	}
}

// processChildren runs the nested categories of b below parentID. A nested
// category shows up in the reply only when it has claims or server records.
func (s *syncService) processChildren(ctx context.Context, pass *spherePass, b *categoryBinding, parentID string, claim *models.ClaimItem, node *models.ReplyItem) {
	for _, child := range b.children {
		if pass.ignored.Ignored(child.category) {
			continue
		}

		claims := claim.Category(child.wireKey)
		if len(claims) == 0 && (pass.syncType == models.SyncTypeReply || len(pass.state.children(child, parentID)) == 0) {
			continue
		}

		s.processCategory(ctx, pass, child, parentID, claims, node.Category(child.wireKey))
	}
}

// createItem stores a record the client created offline. The returned id is
// the server id the local id now resolves to, empty when nothing was stored.
func (s *syncService) createItem(ctx context.Context, pass *spherePass, b *categoryBinding, ownerID, localID string, claim *models.ClaimItem) (*models.ReplyItem, string) {
	if b.store == nil || !b.perms.Write.Allows(pass.role) {
		return models.NewReplyItem(models.ItemReply{Status: models.StatusAccessDenied}), ""
	}

	record, err := models.RecordFromPayload("", claim.Data)
	if err != nil {
		return errorReply(&validationError{err: err}), ""
	}
	record.ID = ""
	delete(record.Fields, models.FieldSphereID)
	b.stripServerFields(record.Fields)
	if b.parentField != "" {
		record.Fields[b.parentField] = ownerID
	}

	if err = s.validator.Validate(ctx, validators.RecordCreation{Category: b.category, Record: record}); err != nil {
		return errorReply(&validationError{err: err}), ""
	}

	if record.Fields, err = pass.creations.Rewrite(record.Fields, b.refFields); err != nil {
		pass.log.Debug().Err(err).Str("category", string(b.category)).Str("local_id", localID).Msg("reference to a record that was not created")
		return errorReply(err), ""
	}

	if b.beforeCreate != nil {
		if record, err = b.beforeCreate(ctx, pass, record); err != nil {
			pass.log.Err(err).Str("func", "*syncService.createItem").Str("category", string(b.category)).Msg("before create hook failed")
			return errorReply(err), ""
		}
	}

	created, err := b.store.Create(ctx, pass.sphereID, record)

	var conflict *store.RecordConflictError
	switch {
	case err == nil:
		pass.creations.Record(localID, created.ID)
		s.notifier.RecordCreated(ctx, pass.sphereID, b.category, created, pass.userID)

		node := models.NewReplyItem(models.ItemReply{Status: models.StatusCreatedInCloud, Data: created})
		s.processChildren(ctx, pass, b, created.ID, claim, node)
		return node, created.ID

	case errors.As(err, &conflict):
		existing := conflict.Existing
		pass.creations.Record(localID, existing.ID)

		node := models.NewReplyItem(models.ItemReply{Status: models.StatusAlreadyInCloud, Data: existing})
		s.processChildren(ctx, pass, b, existing.ID, claim, node)
		return node, existing.ID

	default:
		pass.log.Err(err).Str("func", "*syncService.createItem").Str("category", string(b.category)).Str("local_id", localID).Msg("failed to create record")
		return errorReply(err), ""
	}
}

// replyItem handles a claim on an existing record during REPLY: an update
// when the claim carries data, then the nested claims.
func (s *syncService) replyItem(ctx context.Context, pass *spherePass, b *categoryBinding, id string, claim *models.ClaimItem, server *models.Record) *models.ReplyItem {
	if server == nil {
		return models.NewReplyItem(models.ItemReply{Status: models.StatusNotAvailable})
	}

	node := &models.ReplyItem{}
	if claim != nil && claim.Data != nil {
		result := s.updateItem(ctx, pass, b, id, claim)
		node.Data = &result
		if result.Status == models.StatusNotAvailable {
			return node
		}
	}

	s.processChildren(ctx, pass, b, id, claim, node)
	return node
}

func (s *syncService) updateItem(ctx context.Context, pass *spherePass, b *categoryBinding, id string, claim *models.ClaimItem) models.ItemReply {
	if b.store == nil || !b.perms.Edit.Allows(pass.role) {
		return models.ItemReply{Status: models.StatusAccessDenied}
	}

	patch, err := models.RecordFromPayload(id, claim.Data)
	if err != nil {
		return *errorReply(&validationError{err: err}).Data
	}
	patch.ID = id
	delete(patch.Fields, models.FieldSphereID)
	b.stripServerFields(patch.Fields)
	if b.parentField != "" {
		delete(patch.Fields, b.parentField)
	}

	if patch.Fields, err = pass.creations.Rewrite(patch.Fields, b.refFields); err != nil {
		return *errorReply(err).Data
	}

	updated, err := b.store.UpdateByID(ctx, id, patch, true)
	switch {
	case errors.Is(err, store.ErrRecordNotFound):
		return models.ItemReply{Status: models.StatusNotAvailable}
	case err != nil:
		pass.log.Err(err).Str("func", "*syncService.updateItem").Str("category", string(b.category)).Str("id", id).Msg("failed to update record")
		return *errorReply(err).Data
	}

	s.notifier.RecordUpdated(ctx, pass.sphereID, b.category, updated, pass.userID)
	return models.ItemReply{Status: models.StatusUpdatedInCloud}
}

// viewCategory dumps the records of b below ownerID tagged VIEW.
func (s *syncService) viewCategory(pass *spherePass, b *categoryBinding, ownerID string, reply map[string]*models.ReplyItem) {
	records := pass.state.children(b, ownerID)
	for _, id := range sortedKeys(records) {
		node := models.NewReplyItem(models.ItemReply{Status: models.StatusView, Data: records[id]})
		for _, child := range b.children {
			if pass.ignored.Ignored(child.category) || len(pass.state.children(child, id)) == 0 {
				continue
			}
			s.viewCategory(pass, child, id, node.Category(child.wireKey))
		}
		reply[id] = node
	}
}

// validationError marks a payload the client has to fix before resending.
type validationError struct {
	err error
}

func (e *validationError) Error() string { return e.err.Error() }
func (e *validationError) Unwrap() error { return e.err }

// itemErrorCode maps an item-level failure to the code embedded in an
// ERROR reply.
func itemErrorCode(err error) int {
	var invalid *validationError
	switch {
	case errors.As(err, &invalid):
		return http.StatusUnprocessableEntity
	case errors.Is(err, reconcile.ErrUnresolvedReference):
		return http.StatusFailedDependency
	case errors.Is(err, store.ErrRecordNotFound):
		return http.StatusNotFound
	case errors.Is(err, store.ErrRecordConflict), errors.Is(err, store.ErrStoneUIDExhausted):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func errorReply(err error) *models.ReplyItem {
	return models.NewReplyItem(models.ItemReply{
		Status: models.StatusError,
		Error:  &models.ReplyError{Code: itemErrorCode(err), Msg: err.Error()},
	})
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	return keys
}
