package reconcile

import (
	"fmt"

	"github.com/MKhiriev/sphere-sync/models"
)

// Index is a flat id -> record lookup.
type Index map[string]models.Record

// IDs returns the ids of the index in no particular order.
func (i Index) IDs() []string {
	ids := make([]string, 0, len(i))
	for id := range i {
		ids = append(ids, id)
	}
	return ids
}

// Clone returns a shallow copy that can be consumed without touching i.
func (i Index) Clone() Index {
	out := make(Index, len(i))
	for id, record := range i {
		out[id] = record
	}
	return out
}

// NestedIndex shards records by their owning parent: parentId -> id -> record.
type NestedIndex map[string]Index

// Children returns the records owned by parentID. The result is never nil.
func (n NestedIndex) Children(parentID string) Index {
	if children, ok := n[parentID]; ok {
		return children
	}
	return Index{}
}

// UniqueIndex builds a 1:1 index and fails with ErrDuplicateID when two
// records share an id.
func UniqueIndex(records []models.Record) (Index, error) {
	index := make(Index, len(records))
	for _, record := range records {
		if _, exists := index[record.ID]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, record.ID)
		}
		index[record.ID] = record
	}

	return index, nil
}

// BuildNestedIndex groups records by the value of parentField. Records that
// do not carry the parent field are skipped.
func BuildNestedIndex(records []models.Record, parentField string) NestedIndex {
	index := make(NestedIndex)
	for _, record := range records {
		parentID := record.Ref(parentField)
		if parentID == "" {
			continue
		}

		children, ok := index[parentID]
		if !ok {
			children = make(Index)
			index[parentID] = children
		}
		children[record.ID] = record
	}

	return index
}
