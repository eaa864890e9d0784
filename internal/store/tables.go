package store

import "github.com/MKhiriev/sphere-sync/models"

// Table describes how the records of one category are stored. Every record
// table has the columns id, sphere_id, parent_id, created_at, updated_at and
// data; the category payload lives in data.
type Table struct {
	Name     string
	Category models.Category

	// ParentField is the payload field copied into parent_id, e.g. stoneId
	// for abilities. Empty for categories that hang off the sphere.
	ParentField string

	// Unique lists payload fields that are unique together within the
	// parent (or within the sphere when there is no parent).
	Unique []string
}

// scopeColumn is the column the unique fields are scoped by.
func (t Table) scopeColumn() string {
	if t.ParentField != "" {
		return "parent_id"
	}
	return "sphere_id"
}

// RecordTables lists the storage of every synced record category.
var RecordTables = []Table{
	{Name: "spheres", Category: models.CategorySpheres},
	{Name: "locations", Category: models.CategoryLocations},
	{Name: "fingerprints", Category: models.CategoryFingerprints},
	{Name: "messages", Category: models.CategoryMessages},
	{Name: "message_recipients", Category: models.CategoryMessageRecipients, ParentField: "messageId", Unique: []string{"userId"}},
	{Name: "message_read_by", Category: models.CategoryMessageReadBy, ParentField: "messageId", Unique: []string{"userId"}},
	{Name: "message_deleted_by", Category: models.CategoryMessageDeletedBy, ParentField: "messageId", Unique: []string{"userId"}},
	{Name: "hubs", Category: models.CategoryHubs},
	{Name: "scenes", Category: models.CategoryScenes},
	{Name: "toons", Category: models.CategoryToons},
	{Name: "stones", Category: models.CategoryStones, Unique: []string{"address"}},
	{Name: "behaviours", Category: models.CategoryBehaviours, ParentField: "stoneId"},
	{Name: "abilities", Category: models.CategoryAbilities, ParentField: "stoneId", Unique: []string{"type"}},
	{Name: "properties", Category: models.CategoryProperties, ParentField: "abilityId", Unique: []string{"type"}},
}
