// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Reserved record keys. Every other key of a record payload is kept in
// [Record.Fields] as-is.
const (
	FieldID        = "id"
	FieldUpdatedAt = "updatedAt"
	FieldCreatedAt = "createdAt"
	FieldSphereID  = "sphereId"
)

// Record is a single synced entity of any category (location, stone,
// ability property, message marker, ...).
//
// Only the identity and the timestamps are typed. Foreign keys such as
// sphereId, stoneId or locationId are ordinary entries of Fields and are read
// with [Record.Ref].
type Record struct {
	// ID is the server-assigned identifier.
	ID string

	// UpdatedAt is the sole staleness signal used during reconciliation.
	UpdatedAt Timestamp

	// CreatedAt is set once by the server when the record is stored.
	CreatedAt Timestamp

	// Fields holds the category-specific payload, foreign keys included.
	Fields map[string]any
}

// RecordFromPayload builds a Record out of a decoded client payload. The id
// and timestamp keys are lifted out of the payload; the remaining keys are
// copied into Fields.
func RecordFromPayload(id string, payload map[string]any) (Record, error) {
	record := Record{ID: id, Fields: make(map[string]any, len(payload))}

	for key, value := range payload {
		switch key {
		case FieldID:
			if record.ID == "" {
				record.ID = stringify(value)
			}
		case FieldUpdatedAt:
			ts, err := ParseTimestamp(value)
			if err != nil {
				return Record{}, fmt.Errorf("invalid %s: %w", FieldUpdatedAt, err)
			}
			record.UpdatedAt = ts
		case FieldCreatedAt:
			// server owned
		default:
			record.Fields[key] = value
		}
	}

	return record, nil
}

// Ref returns the value of a reference field (sphereId, stoneId, ...) as a
// string, or "" when the field is absent or null.
func (r Record) Ref(field string) string {
	if r.Fields == nil {
		return ""
	}
	value, ok := r.Fields[field]
	if !ok {
		return ""
	}

	return stringify(value)
}

// Int returns a numeric field as int64. Missing or non-numeric fields yield 0.
func (r Record) Int(field string) int64 {
	switch v := r.Fields[field].(type) {
	case int:
		return int64(v)
	case int64:
		return v
	case float64:
		return int64(v)
	case json.Number:
		n, _ := v.Int64()
		return n
	case string:
		n, _ := strconv.ParseInt(v, 10, 64)
		return n
	}

	return 0
}

// Bool returns a boolean field. Missing or non-boolean fields yield false.
func (r Record) Bool(field string) bool {
	b, _ := r.Fields[field].(bool)
	return b
}

// Clone returns a copy whose Fields map can be modified without affecting r.
func (r Record) Clone() Record {
	fields := make(map[string]any, len(r.Fields))
	for k, v := range r.Fields {
		fields[k] = v
	}
	r.Fields = fields

	return r
}

// MarshalJSON encodes the record as one flat object:
// {"id": ..., "updatedAt": ..., "createdAt": ..., <fields>}.
func (r Record) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(r.Fields)+3)
	for k, v := range r.Fields {
		out[k] = v
	}

	out[FieldID] = r.ID
	if !r.UpdatedAt.IsZero() {
		out[FieldUpdatedAt] = r.UpdatedAt
	}
	if !r.CreatedAt.IsZero() {
		out[FieldCreatedAt] = r.CreatedAt
	}

	return json.Marshal(out)
}

// UnmarshalJSON decodes the flat object produced by [Record.MarshalJSON].
func (r *Record) UnmarshalJSON(b []byte) error {
	var payload map[string]any
	if err := json.Unmarshal(b, &payload); err != nil {
		return err
	}

	decoded, err := RecordFromPayload("", payload)
	if err != nil {
		return err
	}
	if created, ok := payload[FieldCreatedAt]; ok {
		if decoded.CreatedAt, err = ParseTimestamp(created); err != nil {
			return fmt.Errorf("invalid %s: %w", FieldCreatedAt, err)
		}
	}

	*r = decoded
	return nil
}

func stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case json.Number:
		return v.String()
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
