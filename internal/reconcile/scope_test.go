package reconcile

import (
	"testing"

	"github.com/MKhiriev/sphere-sync/models"
	"github.com/stretchr/testify/assert"
)

func TestComputeIgnored_NoScope_NothingIgnored(t *testing.T) {
	ignored := ComputeIgnored(nil, nil)

	for _, c := range models.AllCategories {
		assert.False(t, ignored.Ignored(c), c)
	}
}

func TestComputeIgnored_Scope(t *testing.T) {
	tests := []struct {
		name       string
		scope      []models.Category
		wantActive []models.Category
	}{
		{
			name:  "hubs only",
			scope: []models.Category{models.CategoryHubs},
			wantActive: []models.Category{
				models.CategorySpheres, models.CategoryUser, models.CategoryHubs,
			},
		},
		{
			name:  "stones activate their nested categories",
			scope: []models.Category{models.CategoryStones},
			wantActive: []models.Category{
				models.CategorySpheres, models.CategoryUser, models.CategoryStones,
				models.CategoryBehaviours, models.CategoryAbilities, models.CategoryProperties,
			},
		},
		{
			name:  "messages activate markers",
			scope: []models.Category{models.CategoryMessages},
			wantActive: []models.Category{
				models.CategorySpheres, models.CategoryUser, models.CategoryMessages,
				models.CategoryMessageRecipients, models.CategoryMessageReadBy, models.CategoryMessageDeletedBy,
			},
		},
		{
			name:  "nested category brings its parent chain",
			scope: []models.Category{models.CategoryProperties},
			wantActive: []models.Category{
				models.CategorySpheres, models.CategoryUser, models.CategoryStones,
				models.CategoryAbilities, models.CategoryProperties,
			},
		},
		{
			name:  "marker brings its message but not its siblings",
			scope: []models.Category{models.CategoryMessageReadBy},
			wantActive: []models.Category{
				models.CategorySpheres, models.CategoryUser, models.CategoryMessages,
				models.CategoryMessageReadBy,
			},
		},
		{
			name:  "catalogs only when named",
			scope: []models.Category{models.CategoryFirmwares, models.CategoryKeys},
			wantActive: []models.Category{
				models.CategorySpheres, models.CategoryUser, models.CategoryFirmwares, models.CategoryKeys,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ignored := ComputeIgnored(tt.scope, nil)

			var active []models.Category
			for _, c := range models.AllCategories {
				if ignored.Active(c) {
					active = append(active, c)
				}
			}
			assert.ElementsMatch(t, tt.wantActive, active)
		})
	}
}

func TestComputeIgnored_StoneDomain_OverridesScope(t *testing.T) {
	domain := &models.DomainRestriction{Spheres: []string{"sp1"}, Stones: []string{"st1"}}

	ignored := ComputeIgnored([]models.Category{models.CategoryHubs}, domain)

	assert.True(t, ignored.Ignored(models.CategoryHubs))
	assert.True(t, ignored.Ignored(models.CategoryLocations))
	assert.True(t, ignored.Ignored(models.CategoryUser))
	assert.False(t, ignored.Ignored(models.CategorySpheres))
	assert.False(t, ignored.Ignored(models.CategoryStones))
	assert.False(t, ignored.Ignored(models.CategoryAbilities))
	assert.False(t, ignored.Ignored(models.CategoryProperties))
}

func TestComputeIgnored_SphereDomain_DropsUserAndCatalogs(t *testing.T) {
	domain := &models.DomainRestriction{Spheres: []string{"sp1"}}

	ignored := ComputeIgnored(nil, domain)

	for _, c := range []models.Category{
		models.CategoryUser, models.CategoryFirmwares, models.CategoryBootloaders, models.CategoryKeys,
	} {
		assert.True(t, ignored.Ignored(c), c)
	}
	assert.False(t, ignored.Ignored(models.CategoryLocations))
	assert.False(t, ignored.Ignored(models.CategoryHubs))
}
