package models

// Category names a kind of synced record. The value is the name clients use
// in sync.scope; [Category.WireKey] is the key used inside a sphere node.
type Category string

const (
	CategorySpheres           Category = "spheres"
	CategoryUser              Category = "user"
	CategoryLocations         Category = "locations"
	CategoryFingerprints      Category = "fingerprints"
	CategoryMessages          Category = "messages"
	CategoryMessageRecipients Category = "messageRecipients"
	CategoryMessageReadBy     Category = "messageReadBy"
	CategoryMessageDeletedBy  Category = "messageDeletedBy"
	CategoryHubs              Category = "hubs"
	CategoryScenes            Category = "scenes"
	CategoryToons             Category = "toons"
	CategoryStones            Category = "stones"
	CategoryBehaviours        Category = "behaviours"
	CategoryAbilities         Category = "abilities"
	CategoryProperties        Category = "properties"
	CategorySphereUsers       Category = "sphereUsers"
	CategoryFirmwares         Category = "firmwares"
	CategoryBootloaders       Category = "bootloaders"
	CategoryKeys              Category = "keys"
)

// AllCategories lists every known category in a stable order.
var AllCategories = []Category{
	CategorySpheres,
	CategoryUser,
	CategoryLocations,
	CategoryFingerprints,
	CategoryMessages,
	CategoryMessageRecipients,
	CategoryMessageReadBy,
	CategoryMessageDeletedBy,
	CategoryHubs,
	CategoryScenes,
	CategoryToons,
	CategoryStones,
	CategoryBehaviours,
	CategoryAbilities,
	CategoryProperties,
	CategorySphereUsers,
	CategoryFirmwares,
	CategoryBootloaders,
	CategoryKeys,
}

var wireKeys = map[Category]string{
	CategoryMessageRecipients: "recipients",
	CategoryMessageReadBy:     "readBy",
	CategoryMessageDeletedBy:  "deletedBy",
	CategorySphereUsers:       "users",
}

// WireKey returns the key under which the category appears in a sphere node.
func (c Category) WireKey() string {
	if key, ok := wireKeys[c]; ok {
		return key
	}
	return string(c)
}

// IsCatalog reports whether c is one of the global catalogs that are only
// returned when explicitly asked for by a scoped request.
func (c Category) IsCatalog() bool {
	return c == CategoryFirmwares || c == CategoryBootloaders || c == CategoryKeys
}

// ParseCategory resolves a category from either its name or its wire key.
func ParseCategory(s string) (Category, bool) {
	for _, c := range AllCategories {
		if string(c) == s {
			return c, true
		}
	}
	for c, key := range wireKeys {
		if key == s {
			return c, true
		}
	}

	return "", false
}
