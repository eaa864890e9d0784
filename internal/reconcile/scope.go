package reconcile

import "github.com/MKhiriev/sphere-sync/models"

// IgnoreSet tells which categories are left out of a sync call.
type IgnoreSet map[models.Category]bool

// Ignored reports whether c is left out.
func (s IgnoreSet) Ignored(c models.Category) bool {
	return s[c]
}

// Active reports whether c takes part in the call.
func (s IgnoreSet) Active(c models.Category) bool {
	return !s[c]
}

// nestedCategories lists the categories activated together with their parent.
var nestedCategories = map[models.Category][]models.Category{
	models.CategoryStones:    {models.CategoryBehaviours, models.CategoryAbilities, models.CategoryProperties},
	models.CategoryAbilities: {models.CategoryProperties},
	models.CategoryMessages: {
		models.CategoryMessageRecipients,
		models.CategoryMessageReadBy,
		models.CategoryMessageDeletedBy,
	},
}

// parentCategories maps a nested category to the category it hangs under.
var parentCategories = map[models.Category]models.Category{
	models.CategoryBehaviours:        models.CategoryStones,
	models.CategoryAbilities:         models.CategoryStones,
	models.CategoryProperties:        models.CategoryAbilities,
	models.CategoryMessageRecipients: models.CategoryMessages,
	models.CategoryMessageReadBy:     models.CategoryMessages,
	models.CategoryMessageDeletedBy:  models.CategoryMessages,
}

// stoneChain is what stays active when a call is restricted to stones.
var stoneChain = []models.Category{
	models.CategorySpheres,
	models.CategoryStones,
	models.CategoryBehaviours,
	models.CategoryAbilities,
	models.CategoryProperties,
}

// ComputeIgnored derives the ignored categories from the client scope and the
// server-side domain restriction.
//
// Without a scope nothing is ignored. A scope allow-lists the named
// categories together with the categories they hang under; spheres and user
// always stay, the global catalogs only when named. A stone domain keeps only the stone chain regardless of the scope,
// and any domain drops the user and the catalogs.
func ComputeIgnored(scope []models.Category, domain *models.DomainRestriction) IgnoreSet {
	ignored := make(IgnoreSet, len(models.AllCategories))

	if len(scope) > 0 {
		for _, c := range models.AllCategories {
			ignored[c] = true
		}
		ignored[models.CategorySpheres] = false
		ignored[models.CategoryUser] = false

		for _, c := range scope {
			activate(ignored, c)
		}
	}

	if domain.HasStones() {
		for _, c := range models.AllCategories {
			ignored[c] = true
		}
		for _, c := range stoneChain {
			ignored[c] = false
		}
	}

	if domain != nil {
		ignored[models.CategoryUser] = true
		ignored[models.CategoryFirmwares] = true
		ignored[models.CategoryBootloaders] = true
		ignored[models.CategoryKeys] = true
	}

	return ignored
}

// activate marks c, everything nested under it and the chain of categories
// it hangs under as active. Siblings of c stay as they are.
func activate(ignored IgnoreSet, c models.Category) {
	ignored[c] = false
	for _, nested := range nestedCategories[c] {
		activate(ignored, nested)
	}
	for parent, ok := parentCategories[c]; ok; parent, ok = parentCategories[parent] {
		ignored[parent] = false
	}
}
