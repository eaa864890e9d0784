// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"sort"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/sphere-sync/models"
)

var (
	recordColumns  = []string{"id", "sphere_id", "parent_id", "created_at", "updated_at", "data"}
	userColumns    = []string{"id", "created_at", "updated_at", "data"}
	accessColumns  = []string{"user_id", "sphere_id", "role", "invite_pending", "updated_at"}
	releaseColumns = []string{"id", "kind", "version", "hardware_versions", "minimum_app_version", "release_level", "download_url", "created_at"}
	keyColumns     = []string{"id", "sphere_id", "key_type", "key_value", "ttl", "created_at"}
)

// recordRow is the column image of a record.
type recordRow struct {
	id        string
	sphereID  string
	parentID  sql.NullString
	createdAt int64
	updatedAt int64
	data      []byte
}

// ── records ─────────────────────────────────────────────────────────────────

func buildFindRecordsQuery(ctx context.Context, d Dialect, t Table, sphereIDs []string, filter FindFilter) (string, []any, error) {
	query := d.builder().
		Select(recordColumns...).
		From(t.Name).
		Where(sq.Eq{"sphere_id": sphereIDs})

	if filter.IDs != nil {
		query = query.Where(sq.Eq{"id": filter.IDs})
	}
	if filter.ParentIDs != nil {
		query = query.Where(sq.Eq{"parent_id": filter.ParentIDs})
	}

	// stable order keeps the generated SQL deterministic
	fields := make([]string, 0, len(filter.Equals))
	for field := range filter.Equals {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	for _, field := range fields {
		query = query.Where(sq.Expr(d.jsonField(field)+" = ?", filter.Equals[field]))
	}

	return query.OrderBy("created_at", "id").ToSql()
}

func buildFindRecordByIDQuery(ctx context.Context, d Dialect, t Table, id string) (string, []any, error) {
	return d.builder().
		Select(recordColumns...).
		From(t.Name).
		Where(sq.Eq{"id": id}).
		ToSql()
}

// buildFindRecordByUniqueQuery looks up the record holding the unique values
// of t within scopeID (parent id or sphere id).
func buildFindRecordByUniqueQuery(ctx context.Context, d Dialect, t Table, scopeID string, values []string) (string, []any, error) {
	query := d.builder().
		Select(recordColumns...).
		From(t.Name).
		Where(sq.Eq{t.scopeColumn(): scopeID})

	for i, field := range t.Unique {
		query = query.Where(sq.Expr(d.jsonField(field)+" = ?", values[i]))
	}

	return query.Limit(1).ToSql()
}

func buildInsertRecordQuery(ctx context.Context, d Dialect, t Table, row recordRow) (string, []any, error) {
	return d.builder().
		Insert(t.Name).
		Columns(recordColumns...).
		Values(row.id, row.sphereID, row.parentID, row.createdAt, row.updatedAt, string(row.data)).
		ToSql()
}

func buildUpdateRecordQuery(ctx context.Context, d Dialect, t Table, row recordRow) (string, []any, error) {
	return d.builder().
		Update(t.Name).
		Set("parent_id", row.parentID).
		Set("updated_at", row.updatedAt).
		Set("data", string(row.data)).
		Where(sq.Eq{"id": row.id}).
		ToSql()
}

func buildDeleteRecordQuery(ctx context.Context, d Dialect, t Table, id string) (string, []any, error) {
	return d.builder().
		Delete(t.Name).
		Where(sq.Eq{"id": id}).
		ToSql()
}

// ── users ───────────────────────────────────────────────────────────────────

func buildFindUsersQuery(ctx context.Context, d Dialect, ids []string) (string, []any, error) {
	return d.builder().
		Select(userColumns...).
		From("users").
		Where(sq.Eq{"id": ids}).
		OrderBy("id").
		ToSql()
}

func buildUpdateUserQuery(ctx context.Context, d Dialect, id string, updatedAt int64, data []byte) (string, []any, error) {
	return d.builder().
		Update("users").
		Set("updated_at", updatedAt).
		Set("data", string(data)).
		Where(sq.Eq{"id": id}).
		ToSql()
}

// ── access ──────────────────────────────────────────────────────────────────

func buildFindAccessByUserQuery(ctx context.Context, d Dialect, userID string) (string, []any, error) {
	return d.builder().
		Select(accessColumns...).
		From("sphere_access").
		Where(sq.Eq{"user_id": userID, "invite_pending": false}).
		OrderBy("sphere_id").
		ToSql()
}

func buildFindAccessBySpheresQuery(ctx context.Context, d Dialect, sphereIDs []string) (string, []any, error) {
	return d.builder().
		Select(accessColumns...).
		From("sphere_access").
		Where(sq.Eq{"sphere_id": sphereIDs}).
		OrderBy("sphere_id", "user_id").
		ToSql()
}

// ── catalogs and keys ───────────────────────────────────────────────────────

func buildFindReleasesQuery(ctx context.Context, d Dialect, kind models.ReleaseKind, maxReleaseLevel int) (string, []any, error) {
	return d.builder().
		Select(releaseColumns...).
		From("releases").
		Where(sq.Eq{"kind": string(kind)}).
		Where(sq.LtOrEq{"release_level": maxReleaseLevel}).
		OrderBy("created_at").
		ToSql()
}

func buildFindKeysQuery(ctx context.Context, d Dialect, sphereIDs []string) (string, []any, error) {
	return d.builder().
		Select(keyColumns...).
		From("sphere_keys").
		Where(sq.Eq{"sphere_id": sphereIDs}).
		OrderBy("sphere_id", "key_type").
		ToSql()
}
