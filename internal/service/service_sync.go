// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/sphere-sync/internal/events"
	"github.com/MKhiriev/sphere-sync/internal/logger"
	"github.com/MKhiriev/sphere-sync/internal/reconcile"
	"github.com/MKhiriev/sphere-sync/internal/store"
	"github.com/MKhiriev/sphere-sync/internal/validators"
	"github.com/MKhiriev/sphere-sync/models"
)

// maxParallelSpheres bounds how many spheres of one call are processed at
// the same time.
const maxParallelSpheres = 4

// syncService is the concrete implementation of SyncService.
//
// A call loads everything it needs once (see loadState), then walks the
// spheres independently of each other. Within a sphere the categories are
// processed in a fixed order so that records created earlier in the pass
// can be referenced by later ones.
type syncService struct {
	storages  *store.Storages
	bindings  *syncBindings
	perms     reconcile.Permissions
	validator validators.Validator
	notifier  events.Notifier
	logger    *logger.Logger
}

// NewSyncService constructs a SyncService over storages. perms are the role
// tables every category is checked against; notifier receives the changes
// made during REQUEST and REPLY calls.
func NewSyncService(storages *store.Storages, perms reconcile.Permissions, notifier events.Notifier, logger *logger.Logger) SyncService {
	if notifier == nil {
		notifier = events.Nop()
	}

	return &syncService{
		storages:  storages,
		bindings:  newSyncBindings(storages, perms),
		perms:     perms,
		validator: validators.NewRecordValidator(),
		notifier:  notifier,
		logger:    logger,
	}
}

func (s *syncService) Sync(ctx context.Context, userID string, req models.SyncRequest, domain *models.DomainRestriction) (models.SyncReply, error) {
	if req.Sync == nil {
		return models.SyncReply{}, ErrEmptySyncRequest
	}
	if !req.Sync.Type.Valid() {
		return models.SyncReply{}, fmt.Errorf("%w: %q", ErrUnknownSyncType, req.Sync.Type)
	}

	log := logger.FromContext(ctx)
	stats := newSyncStats(req.Sync.Type)
	ignored := reconcile.ComputeIgnored(normalizeScope(req.Sync.Scope), domain)

	state, err := s.loadState(ctx, userID, domain, ignored)
	if err != nil {
		log.Err(err).Str("func", "*syncService.Sync").Str("user_id", userID).Msg("failed to load sync state")
		return models.SyncReply{}, err
	}

	var reply models.SyncReply
	switch req.Sync.Type {
	case models.SyncTypeFull:
		reply, err = s.full(ctx, state, req, domain, ignored)
	case models.SyncTypeRequest:
		reply, err = s.request(ctx, state, req, domain, ignored)
	case models.SyncTypeReply:
		reply, err = s.reply(ctx, state, req, ignored)
	}
	if err != nil {
		log.Err(err).Str("func", "*syncService.Sync").Str("sync_type", string(req.Sync.Type)).Msg("sync failed")
		return models.SyncReply{}, err
	}

	stats.collect(reply)
	stats.log(log, userID)

	return reply, nil
}

// full dumps the accessible state tagged VIEW.
func (s *syncService) full(ctx context.Context, state *syncState, req models.SyncRequest, domain *models.DomainRestriction, ignored reconcile.IgnoreSet) (models.SyncReply, error) {
	spheres, err := s.eachSphere(ctx, state.sphereIDs, func(ctx context.Context, sphereID string) *models.ReplyItem {
		record, role, _ := state.sphere(sphereID)
		pass := newSpherePass(ctx, models.SyncTypeFull, state, ignored, sphereID, role)

		node := models.NewReplyItem(models.ItemReply{Status: models.StatusView, Data: record})
		for _, b := range s.bindings.request {
			if ignored.Active(b.category) {
				s.viewCategory(pass, b, sphereID, node.Category(b.wireKey))
			}
		}
		return node
	})
	if err != nil {
		return models.SyncReply{}, err
	}

	reply := models.SyncReply{Spheres: pruneStoneless(spheres, domain)}
	if ignored.Active(models.CategoryUser) && state.user != nil {
		reply.User = &models.ItemReply{Status: models.StatusView, Data: state.user.Record}
	}
	if err = s.globals(ctx, state, req, domain, ignored, &reply); err != nil {
		return models.SyncReply{}, err
	}

	return reply, nil
}

// request compares the client's claims with the loaded state. Spheres the
// client did not mention are sent in full as NEW_DATA_AVAILABLE.
func (s *syncService) request(ctx context.Context, state *syncState, req models.SyncRequest, domain *models.DomainRestriction, ignored reconcile.IgnoreSet) (models.SyncReply, error) {
	sphereIDs := sortedKeys(req.Spheres)
	for _, id := range state.sphereIDs {
		if _, claimed := req.Spheres[id]; !claimed {
			sphereIDs = append(sphereIDs, id)
		}
	}

	spheres, err := s.eachSphere(ctx, sphereIDs, func(ctx context.Context, sphereID string) *models.ReplyItem {
		return s.requestSphere(ctx, state, ignored, sphereID, req.Spheres[sphereID])
	})
	if err != nil {
		return models.SyncReply{}, err
	}

	reply := models.SyncReply{Spheres: pruneStoneless(spheres, domain)}
	if ignored.Active(models.CategoryUser) {
		if state.user != nil {
			result := reconcile.Reconcile(req.User, &state.user.Record, true)
			reply.User = &result
		} else {
			reply.User = &models.ItemReply{Status: models.StatusNotAvailable}
		}
	}
	if err = s.globals(ctx, state, req, domain, ignored, &reply); err != nil {
		return models.SyncReply{}, err
	}

	return reply, nil
}

func (s *syncService) requestSphere(ctx context.Context, state *syncState, ignored reconcile.IgnoreSet, sphereID string, claim *models.ClaimItem) *models.ReplyItem {
	record, role, ok := state.sphere(sphereID)
	if !ok {
		return models.NewReplyItem(models.ItemReply{Status: models.StatusNotAvailable})
	}

	pass := newSpherePass(ctx, models.SyncTypeRequest, state, ignored, sphereID, role)
	prepareClaims(claim, pass.creations)

	node := models.NewReplyItem(reconcile.Reconcile(claim, &record, s.perms.SphereEdit.Allows(role)))
	for _, b := range s.bindings.request {
		if ignored.Active(b.category) {
			s.processCategory(ctx, pass, b, sphereID, claim.Category(b.wireKey), node.Category(b.wireKey))
		}
	}

	return node
}

// reply applies the bodies the client was asked for and the records it
// created offline.
func (s *syncService) reply(ctx context.Context, state *syncState, req models.SyncRequest, ignored reconcile.IgnoreSet) (models.SyncReply, error) {
	var reply models.SyncReply

	if req.User != nil && req.User.Data != nil && ignored.Active(models.CategoryUser) {
		result := s.replyUser(ctx, state, req.User)
		reply.User = &result
	}

	spheres, err := s.eachSphere(ctx, sortedKeys(req.Spheres), func(ctx context.Context, sphereID string) *models.ReplyItem {
		return s.replySphere(ctx, state, ignored, sphereID, req.Spheres[sphereID])
	})
	if err != nil {
		return models.SyncReply{}, err
	}
	reply.Spheres = spheres

	return reply, nil
}

func (s *syncService) replyUser(ctx context.Context, state *syncState, claim *models.ClaimItem) models.ItemReply {
	if state.user == nil {
		return models.ItemReply{Status: models.StatusNotAvailable}
	}

	patch, err := models.RecordFromPayload(state.userID, claim.Data)
	if err != nil {
		return *errorReply(&validationError{err: err}).Data
	}
	// the release level is granted by the server, never by the client
	delete(patch.Fields, models.FieldEarlyAccessLevel)

	if _, err = s.storages.Users.UpdateByID(ctx, state.userID, patch, true); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.ItemReply{Status: models.StatusNotAvailable}
		}
		logger.FromContext(ctx).Err(err).Str("func", "*syncService.replyUser").Msg("failed to update user")
		return *errorReply(err).Data
	}

	return models.ItemReply{Status: models.StatusUpdatedInCloud}
}

func (s *syncService) replySphere(ctx context.Context, state *syncState, ignored reconcile.IgnoreSet, sphereID string, claim *models.ClaimItem) *models.ReplyItem {
	_, role, ok := state.sphere(sphereID)
	if !ok {
		return models.NewReplyItem(models.ItemReply{Status: models.StatusNotAvailable})
	}

	pass := newSpherePass(ctx, models.SyncTypeReply, state, ignored, sphereID, role)
	prepareClaims(claim, pass.creations)

	node := &models.ReplyItem{}
	if claim != nil && claim.Data != nil && !claim.New {
		result := s.updateSphere(ctx, pass, claim)
		node.Data = &result
	}

	for _, b := range s.bindings.reply {
		claims := claim.Category(b.wireKey)
		if ignored.Ignored(b.category) || len(claims) == 0 {
			continue
		}
		s.processCategory(ctx, pass, b, sphereID, claims, node.Category(b.wireKey))
	}

	return node
}

func (s *syncService) updateSphere(ctx context.Context, pass *spherePass, claim *models.ClaimItem) models.ItemReply {
	if !s.perms.SphereEdit.Allows(pass.role) {
		return models.ItemReply{Status: models.StatusAccessDenied}
	}

	patch, err := models.RecordFromPayload(pass.sphereID, claim.Data)
	if err != nil {
		return *errorReply(&validationError{err: err}).Data
	}

	_, err = s.storages.Record(models.CategorySpheres).UpdateByID(ctx, pass.sphereID, patch, true)
	switch {
	case errors.Is(err, store.ErrRecordNotFound):
		return models.ItemReply{Status: models.StatusNotAvailable}
	case err != nil:
		pass.log.Err(err).Str("func", "*syncService.updateSphere").Msg("failed to update sphere")
		return *errorReply(err).Data
	}

	s.notifier.SphereUpdated(ctx, pass.sphereID, pass.userID)
	return models.ItemReply{Status: models.StatusUpdatedInCloud}
}

// globals adds the catalogs and keys to FULL and REQUEST replies of the
// generic user endpoint.
func (s *syncService) globals(ctx context.Context, state *syncState, req models.SyncRequest, domain *models.DomainRestriction, ignored reconcile.IgnoreSet, reply *models.SyncReply) error {
	if domain != nil {
		return nil
	}

	var err error
	if ignored.Active(models.CategoryFirmwares) {
		if reply.Firmwares, err = s.catalog(ctx, state, models.ReleaseFirmware, req.Sync.AppVersion); err != nil {
			return err
		}
	}
	if ignored.Active(models.CategoryBootloaders) {
		if reply.Bootloaders, err = s.catalog(ctx, state, models.ReleaseBootloader, req.Sync.AppVersion); err != nil {
			return err
		}
	}
	if ignored.Active(models.CategoryKeys) {
		if reply.Keys, err = s.keys(ctx, state); err != nil {
			return err
		}
	}

	return nil
}

// eachSphere runs fn for every sphere id with bounded parallelism and
// collects the nodes by sphere id.
func (s *syncService) eachSphere(ctx context.Context, sphereIDs []string, fn func(ctx context.Context, sphereID string) *models.ReplyItem) (map[string]*models.ReplyItem, error) {
	nodes := make([]*models.ReplyItem, len(sphereIDs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelSpheres)
	for i, sphereID := range sphereIDs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			nodes[i] = fn(gctx, sphereID)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	spheres := make(map[string]*models.ReplyItem, len(sphereIDs))
	for i, sphereID := range sphereIDs {
		spheres[sphereID] = nodes[i]
	}

	return spheres, nil
}

// pruneStoneless drops, for stone scoped calls, the spheres whose reply has
// no stones.
func pruneStoneless(spheres map[string]*models.ReplyItem, domain *models.DomainRestriction) map[string]*models.ReplyItem {
	if !domain.HasStones() {
		return spheres
	}

	wireKey := models.CategoryStones.WireKey()
	for id, node := range spheres {
		if len(node.Children[wireKey]) == 0 {
			delete(spheres, id)
		}
	}

	return spheres
}

// normalizeScope maps wire keys such as "users" onto their categories.
func normalizeScope(scope []models.Category) []models.Category {
	if len(scope) == 0 {
		return nil
	}

	out := make([]models.Category, 0, len(scope))
	for _, name := range scope {
		if c, ok := models.ParseCategory(string(name)); ok {
			out = append(out, c)
		}
	}

	return out
}
