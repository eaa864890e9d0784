package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/sphere-sync/internal/reconcile"
	"github.com/MKhiriev/sphere-sync/internal/store"
	"github.com/MKhiriev/sphere-sync/models"
)

const (
	fieldRole                           = "role"
	fieldInvitePending                  = "invitePending"
	fieldEveryoneInSphere               = "everyoneInSphere"
	fieldEveryoneInSphereIncludingOwner = "everyoneInSphereIncludingOwner"
)

// sphereUserFields are the user profile fields shown to other members.
var sphereUserFields = []string{"firstName", "lastName", "email", "profilePicId", "language"}

// syncState is everything one sync call reads from storage, loaded up front
// with one query per category.
type syncState struct {
	userID    string
	user      *models.User
	sphereIDs []string
	roles     map[string]models.AccessRole
	spheres   reconcile.Index
	records   map[models.Category]reconcile.NestedIndex
}

// sphere returns the sphere record and the caller's role. ok is false when
// the caller has no accepted grant or the sphere no longer exists.
func (s *syncState) sphere(sphereID string) (models.Record, models.AccessRole, bool) {
	role, granted := s.roles[sphereID]
	record, exists := s.spheres[sphereID]

	return record, role, granted && exists
}

// children returns the records of b owned by ownerID: a sphere id for
// top-level categories, the parent record id for nested ones.
func (s *syncState) children(b *categoryBinding, ownerID string) reconcile.Index {
	return s.records[b.category].Children(ownerID)
}

// loadState resolves the caller's spheres and bulk-loads every active
// category across all of them.
func (s *syncService) loadState(ctx context.Context, userID string, domain *models.DomainRestriction, ignored reconcile.IgnoreSet) (*syncState, error) {
	state := &syncState{
		userID:  userID,
		roles:   make(map[string]models.AccessRole),
		spheres: reconcile.Index{},
		records: make(map[models.Category]reconcile.NestedIndex),
	}

	if domain == nil {
		user, err := s.storages.Users.FindByID(ctx, userID)
		switch {
		case err == nil:
			state.user = &user
		case !errors.Is(err, store.ErrUserNotFound):
			return nil, fmt.Errorf("%w: user: %w", ErrLoadingSyncState, err)
		}
	}

	grants, err := s.storages.Access.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: access: %w", ErrLoadingSyncState, err)
	}
	for _, grant := range grants {
		if domain.AllowsSphere(grant.SphereID) {
			state.roles[grant.SphereID] = grant.Role
		}
	}
	if len(state.roles) == 0 {
		return state, nil
	}

	sphereIDs := make([]string, 0, len(state.roles))
	for id := range state.roles {
		sphereIDs = append(sphereIDs, id)
	}
	slices.Sort(sphereIDs)

	sphereRecords, err := s.storages.Record(models.CategorySpheres).FindBySpheres(ctx, sphereIDs, store.FindFilter{})
	if err != nil {
		return nil, fmt.Errorf("%w: spheres: %w", ErrLoadingSyncState, err)
	}
	if state.spheres, err = reconcile.UniqueIndex(sphereRecords); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadingSyncState, err)
	}
	for _, id := range sphereIDs {
		if _, ok := state.spheres[id]; ok {
			state.sphereIDs = append(state.sphereIDs, id)
		}
	}
	if len(state.sphereIDs) == 0 {
		return state, nil
	}

	if err = s.loadRecords(ctx, state, domain, ignored); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadingSyncState, err)
	}

	return state, nil
}

func (s *syncService) loadRecords(ctx context.Context, state *syncState, domain *models.DomainRestriction, ignored reconcile.IgnoreSet) error {
	var (
		mu     sync.Mutex
		loaded = make(map[models.Category][]models.Record)
	)

	g, gctx := errgroup.WithContext(ctx)
	load := func(c models.Category, filter store.FindFilter) {
		if ignored.Ignored(c) {
			return
		}
		g.Go(func() error {
			records, err := s.storages.Record(c).FindBySpheres(gctx, state.sphereIDs, filter)
			if err != nil {
				return fmt.Errorf("%s: %w", c, err)
			}
			mu.Lock()
			loaded[c] = records
			mu.Unlock()
			return nil
		})
	}

	var stoneIDs []string
	if domain.HasStones() {
		stoneIDs = domain.Stones
	}
	mine := store.FindFilter{Equals: map[string]string{fieldUserID: state.userID}}

	load(models.CategoryLocations, store.FindFilter{})
	load(models.CategoryFingerprints, store.FindFilter{})
	load(models.CategoryHubs, store.FindFilter{})
	load(models.CategoryScenes, store.FindFilter{})
	load(models.CategoryToons, store.FindFilter{})
	load(models.CategoryStones, store.FindFilter{IDs: stoneIDs})
	load(models.CategoryBehaviours, store.FindFilter{ParentIDs: stoneIDs})
	load(models.CategoryAbilities, store.FindFilter{ParentIDs: stoneIDs})
	if stoneIDs == nil {
		load(models.CategoryProperties, store.FindFilter{})
	}
	load(models.CategoryMessages, store.FindFilter{})
	load(models.CategoryMessageReadBy, mine)
	load(models.CategoryMessageDeletedBy, mine)
	if ignored.Active(models.CategoryMessages) {
		// recipients decide which messages the caller may see
		g.Go(func() error {
			records, err := s.storages.Record(models.CategoryMessageRecipients).FindBySpheres(gctx, state.sphereIDs, store.FindFilter{})
			if err != nil {
				return fmt.Errorf("%s: %w", models.CategoryMessageRecipients, err)
			}
			mu.Lock()
			loaded[models.CategoryMessageRecipients] = records
			mu.Unlock()
			return nil
		})
	}
	if ignored.Active(models.CategorySphereUsers) {
		g.Go(func() error {
			records, err := s.loadSphereUsers(gctx, state.sphereIDs)
			if err != nil {
				return fmt.Errorf("%s: %w", models.CategorySphereUsers, err)
			}
			mu.Lock()
			loaded[models.CategorySphereUsers] = records
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	if stoneIDs != nil && ignored.Active(models.CategoryProperties) {
		abilityIDs := make([]string, 0, len(loaded[models.CategoryAbilities]))
		for _, ability := range loaded[models.CategoryAbilities] {
			abilityIDs = append(abilityIDs, ability.ID)
		}
		if len(abilityIDs) > 0 {
			records, err := s.storages.Record(models.CategoryProperties).FindBySpheres(ctx, state.sphereIDs, store.FindFilter{ParentIDs: abilityIDs})
			if err != nil {
				return fmt.Errorf("%s: %w", models.CategoryProperties, err)
			}
			loaded[models.CategoryProperties] = records
		}
	}

	if messages, ok := loaded[models.CategoryMessages]; ok {
		recipients := loaded[models.CategoryMessageRecipients]
		loaded[models.CategoryMessages] = visibleMessages(messages, recipients, state.userID)
		if ignored.Ignored(models.CategoryMessageRecipients) {
			delete(loaded, models.CategoryMessageRecipients)
		}
	}

	for c, records := range loaded {
		parentField := models.FieldSphereID
		if st := s.storages.Record(c); st != nil && st.Table().ParentField != "" {
			parentField = st.Table().ParentField
		}
		state.records[c] = reconcile.BuildNestedIndex(records, parentField)
	}

	return nil
}

// visibleMessages keeps the messages addressed to the whole sphere or to
// userID.
func visibleMessages(messages, recipients []models.Record, userID string) []models.Record {
	addressed := make(map[string]bool)
	for _, recipient := range recipients {
		if recipient.Ref(fieldUserID) == userID {
			addressed[recipient.Ref(fieldMessageID)] = true
		}
	}

	visible := make([]models.Record, 0, len(messages))
	for _, message := range messages {
		if message.Bool(fieldEveryoneInSphere) || message.Bool(fieldEveryoneInSphereIncludingOwner) || addressed[message.ID] {
			visible = append(visible, message)
		}
	}

	return visible
}

// loadSphereUsers builds one read-only record per grant of the spheres,
// keyed by user id and carrying the public part of the user profile.
func (s *syncService) loadSphereUsers(ctx context.Context, sphereIDs []string) ([]models.Record, error) {
	grants, err := s.storages.Access.FindBySpheres(ctx, sphereIDs)
	if err != nil {
		return nil, err
	}
	if len(grants) == 0 {
		return nil, nil
	}

	userIDs := make([]string, 0, len(grants))
	for _, grant := range grants {
		if !slices.Contains(userIDs, grant.UserID) {
			userIDs = append(userIDs, grant.UserID)
		}
	}

	users, err := s.storages.Users.FindByIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}
	profiles := make(map[string]models.User, len(users))
	for _, user := range users {
		profiles[user.ID] = user
	}

	records := make([]models.Record, 0, len(grants))
	for _, grant := range grants {
		record := models.Record{
			ID:        grant.UserID,
			UpdatedAt: grant.UpdatedAt,
			Fields: map[string]any{
				models.FieldSphereID: grant.SphereID,
				fieldRole:            string(grant.Role),
				fieldInvitePending:   grant.InvitePending,
			},
		}
		if profile, ok := profiles[grant.UserID]; ok {
			for _, field := range sphereUserFields {
				if value, present := profile.Fields[field]; present {
					record.Fields[field] = value
				}
			}
			if profile.UpdatedAt.After(record.UpdatedAt.Time) {
				record.UpdatedAt = profile.UpdatedAt
			}
			record.CreatedAt = profile.CreatedAt
		}
		records = append(records, record)
	}

	return records, nil
}
