// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package reconcile

import (
	"fmt"
	"os"

	"github.com/MKhiriev/sphere-sync/models"
	"gopkg.in/yaml.v3"
)

// PermissionTable tells which roles hold a permission.
type PermissionTable map[models.AccessRole]bool

// Allows reports whether role holds the permission.
func (t PermissionTable) Allows(role models.AccessRole) bool {
	return t[role]
}

func roles(rs ...models.AccessRole) PermissionTable {
	table := make(PermissionTable, len(rs))
	for _, r := range rs {
		table[r] = true
	}
	return table
}

// CategoryPermissions holds the create (Write) and update (Edit) tables of
// one category.
type CategoryPermissions struct {
	Write PermissionTable
	Edit  PermissionTable
}

// Permissions is the full set of role tables handed to the sync engine.
type Permissions struct {
	Categories map[models.Category]CategoryPermissions
	// SphereEdit gates updates of the sphere record itself during REPLY.
	SphereEdit PermissionTable
}

// For returns the tables of c. Unknown categories get empty tables, which
// deny everything.
func (p Permissions) For(c models.Category) CategoryPermissions {
	return p.Categories[c]
}

// DefaultPermissions returns the stock role tables.
func DefaultPermissions() Permissions {
	all := []models.AccessRole{models.RoleAdmin, models.RoleMember, models.RoleGuest}
	adminMember := []models.AccessRole{models.RoleAdmin, models.RoleMember}

	standard := func() CategoryPermissions {
		return CategoryPermissions{Write: roles(adminMember...), Edit: roles(adminMember...)}
	}

	return Permissions{
		Categories: map[models.Category]CategoryPermissions{
			models.CategoryHubs:              {Write: roles(models.RoleAdmin), Edit: roles(adminMember...)},
			models.CategoryLocations:         standard(),
			models.CategoryScenes:            standard(),
			models.CategoryStones:            standard(),
			models.CategoryBehaviours:        standard(),
			models.CategoryAbilities:         standard(),
			models.CategoryProperties:        standard(),
			models.CategoryFingerprints:      standard(),
			models.CategoryToons:             {Write: roles(models.RoleAdmin), Edit: roles(models.RoleAdmin)},
			models.CategoryMessages:          {Write: roles(all...), Edit: roles(adminMember...)},
			models.CategoryMessageRecipients: {Write: roles(all...), Edit: roles()},
			models.CategoryMessageReadBy:     {Write: roles(all...), Edit: roles(all...)},
			models.CategoryMessageDeletedBy:  {Write: roles(all...), Edit: roles(all...)},
			models.CategorySphereUsers:       {Write: roles(), Edit: roles()},
		},
		SphereEdit: roles(adminMember...),
	}
}

type permissionsFile struct {
	Sphere     []string `yaml:"sphere"`
	Categories map[string]struct {
		Write *[]string `yaml:"write"`
		Edit  *[]string `yaml:"edit"`
	} `yaml:"categories"`
}

// LoadPermissions reads role table overrides from a YAML file and applies
// them on top of DefaultPermissions:
//
//	sphere: [admin]
//	categories:
//	  hubs:
//	    write: [admin]
//	    edit: [admin, member]
//
// A table that is not mentioned keeps its default. An empty list revokes the
// permission from every role.
func LoadPermissions(path string) (Permissions, error) {
	perms := DefaultPermissions()
	if path == "" {
		return perms, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Permissions{}, fmt.Errorf("%w: %w", ErrReadingPermissions, err)
	}

	var file permissionsFile
	if err = yaml.Unmarshal(raw, &file); err != nil {
		return Permissions{}, fmt.Errorf("%w: %w", ErrReadingPermissions, err)
	}

	if file.Sphere != nil {
		if perms.SphereEdit, err = parseRoles(file.Sphere); err != nil {
			return Permissions{}, err
		}
	}

	for name, override := range file.Categories {
		category, ok := models.ParseCategory(name)
		if !ok {
			return Permissions{}, fmt.Errorf("%w: %s", ErrUnknownCategory, name)
		}

		current := perms.Categories[category]
		if override.Write != nil {
			if current.Write, err = parseRoles(*override.Write); err != nil {
				return Permissions{}, err
			}
		}
		if override.Edit != nil {
			if current.Edit, err = parseRoles(*override.Edit); err != nil {
				return Permissions{}, err
			}
		}
		perms.Categories[category] = current
	}

	return perms, nil
}

func parseRoles(names []string) (PermissionTable, error) {
	table := make(PermissionTable, len(names))
	for _, name := range names {
		role := models.AccessRole(name)
		if !role.Valid() {
			return nil, fmt.Errorf("%w: %s", ErrUnknownRole, name)
		}
		table[role] = true
	}

	return table, nil
}
