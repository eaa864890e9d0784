package service

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/mod/semver"

	"github.com/MKhiriev/sphere-sync/models"
)

// keyTypesByRole lists the sphere keys a role may download. A nil entry
// allows every key type.
var keyTypesByRole = map[models.AccessRole][]models.KeyType{
	models.RoleAdmin:  nil,
	models.RoleMember: {models.KeyMember, models.KeyBasic, models.KeyServiceData, models.KeyLocalization},
	models.RoleGuest:  {models.KeyBasic, models.KeyServiceData, models.KeyLocalization},
}

func keyAllowed(role models.AccessRole, keyType models.KeyType) bool {
	allowed, known := keyTypesByRole[role]
	if !known {
		return false
	}
	if allowed == nil {
		return true
	}
	for _, t := range allowed {
		if t == keyType {
			return true
		}
	}
	return false
}

// catalog returns the highest release of kind per hardware version that the
// caller's release level and app version allow.
func (s *syncService) catalog(ctx context.Context, state *syncState, kind models.ReleaseKind, appVersion string) (*models.CatalogReply, error) {
	level := 0
	if state.user != nil {
		level = state.user.EarlyAccessLevel()
	}

	releases, err := s.storages.Catalogs.FindReleases(ctx, kind, level)
	if err != nil {
		return nil, fmt.Errorf("loading %s releases: %w", kind, err)
	}

	return &models.CatalogReply{
		Status: models.StatusView,
		Data:   highestReleases(releases, appVersion),
	}, nil
}

// highestReleases collapses releases to the highest version per supported
// hardware version. Releases requiring a newer app than appVersion are
// skipped; an unknown app version skips nothing.
func highestReleases(releases []models.Release, appVersion string) map[string]string {
	app := canonicalVersion(appVersion)

	best := make(map[string]string)
	for _, release := range releases {
		version := canonicalVersion(release.Version)
		if version == "" {
			continue
		}
		if minimum := canonicalVersion(release.MinimumAppVersion); app != "" && minimum != "" && semver.Compare(minimum, app) > 0 {
			continue
		}

		for _, hw := range release.HardwareVersions {
			current, ok := best[hw]
			if !ok || semver.Compare(version, canonicalVersion(current)) > 0 {
				best[hw] = release.Version
			}
		}
	}

	return best
}

// canonicalVersion turns "5.4.0" into "v5.4.0". Invalid versions yield "".
func canonicalVersion(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return ""
	}
	return v
}

// keys returns, per accessible sphere, the keys the caller's role allows.
func (s *syncService) keys(ctx context.Context, state *syncState) (*models.KeysReply, error) {
	reply := &models.KeysReply{Status: models.StatusView, Data: make([]models.SphereKeys, 0, len(state.sphereIDs))}
	if len(state.sphereIDs) == 0 {
		return reply, nil
	}

	keys, err := s.storages.Keys.FindBySpheres(ctx, state.sphereIDs)
	if err != nil {
		return nil, fmt.Errorf("loading sphere keys: %w", err)
	}

	bySphere := make(map[string][]models.SphereKey, len(state.sphereIDs))
	for _, key := range keys {
		if keyAllowed(state.roles[key.SphereID], key.KeyType) {
			bySphere[key.SphereID] = append(bySphere[key.SphereID], key)
		}
	}

	for _, sphereID := range state.sphereIDs {
		sphereKeys := bySphere[sphereID]
		if sphereKeys == nil {
			sphereKeys = []models.SphereKey{}
		}
		reply.Data = append(reply.Data, models.SphereKeys{SphereID: sphereID, SphereKeys: sphereKeys})
	}

	return reply, nil
}
