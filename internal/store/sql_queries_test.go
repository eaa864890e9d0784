// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"strings"
	"testing"

	"github.com/MKhiriev/sphere-sync/models"
	"github.com/stretchr/testify/require"
)

var stonesTable = Table{Name: "stones", Category: models.CategoryStones, Unique: []string{"address"}}

var abilitiesTable = Table{Name: "abilities", Category: models.CategoryAbilities, ParentField: "stoneId", Unique: []string{"type"}}

func Test_buildFindRecordsQuery(t *testing.T) {
	tests := []struct {
		name       string
		dialect    Dialect
		sphereIDs  []string
		filter     FindFilter
		checkQuery func(t *testing.T, query string, args []any)
	}{
		{
			name:      "success: spheres only",
			dialect:   DialectPostgres,
			sphereIDs: []string{"sp1", "sp2"},
			checkQuery: func(t *testing.T, query string, args []any) {
				q := strings.ToLower(query)

				require.Contains(t, q, "select")
				require.Contains(t, q, "from stones")
				require.Contains(t, q, "sphere_id in ($1,$2)")
				require.Contains(t, q, "order by created_at, id")
				require.NotContains(t, q, "parent_id in")

				require.Equal(t, []any{"sp1", "sp2"}, args)
			},
		},
		{
			name:      "success: ids and parents restrict the result",
			dialect:   DialectPostgres,
			sphereIDs: []string{"sp1"},
			filter:    FindFilter{IDs: []string{"st1"}, ParentIDs: []string{"p1", "p2"}},
			checkQuery: func(t *testing.T, query string, args []any) {
				q := strings.ToLower(query)

				require.Contains(t, q, "id in ($2)")
				require.Contains(t, q, "parent_id in ($3,$4)")
				require.Equal(t, []any{"sp1", "st1", "p1", "p2"}, args)
			},
		},
		{
			name:      "success: empty id list matches nothing",
			dialect:   DialectPostgres,
			sphereIDs: []string{"sp1"},
			filter:    FindFilter{IDs: []string{}},
			checkQuery: func(t *testing.T, query string, args []any) {
				require.Contains(t, query, "(1=0)")
				require.Equal(t, []any{"sp1"}, args)
			},
		},
		{
			name:      "success: data field equality on postgres",
			dialect:   DialectPostgres,
			sphereIDs: []string{"sp1"},
			filter:    FindFilter{Equals: map[string]string{"userId": "u1"}},
			checkQuery: func(t *testing.T, query string, args []any) {
				require.Contains(t, query, "data->>'userId' = $2")
				require.Equal(t, []any{"sp1", "u1"}, args)
			},
		},
		{
			name:      "success: data field equality on sqlite",
			dialect:   DialectSQLite,
			sphereIDs: []string{"sp1"},
			filter:    FindFilter{Equals: map[string]string{"userId": "u1"}},
			checkQuery: func(t *testing.T, query string, args []any) {
				require.Contains(t, query, "json_extract(data, '$.userId') = ?")
				require.Contains(t, query, "sphere_id IN (?)")
				require.NotContains(t, query, "$1")
				require.Equal(t, []any{"sp1", "u1"}, args)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildFindRecordsQuery(context.Background(), tt.dialect, stonesTable, tt.sphereIDs, tt.filter)

			require.NoError(t, err)
			tt.checkQuery(t, query, args)
		})
	}
}

func Test_buildFindRecordByUniqueQuery_ScopesByParent(t *testing.T) {
	query, args, err := buildFindRecordByUniqueQuery(context.Background(), DialectPostgres, abilitiesTable, "st1", []string{"dimming"})
	require.NoError(t, err)

	require.Contains(t, query, "parent_id = $1")
	require.Contains(t, query, "data->>'type' = $2")
	require.Contains(t, query, "LIMIT 1")
	require.Equal(t, []any{"st1", "dimming"}, args)
}

func Test_buildFindRecordByUniqueQuery_ScopesBySphere(t *testing.T) {
	query, args, err := buildFindRecordByUniqueQuery(context.Background(), DialectSQLite, stonesTable, "sp1", []string{"AA:BB"})
	require.NoError(t, err)

	require.Contains(t, query, "sphere_id = ?")
	require.Contains(t, query, "json_extract(data, '$.address') = ?")
	require.Equal(t, []any{"sp1", "AA:BB"}, args)
}

func Test_buildInsertRecordQuery(t *testing.T) {
	row := recordRow{
		id:        "ab1",
		sphereID:  "sp1",
		parentID:  sql.NullString{String: "st1", Valid: true},
		createdAt: 1000,
		updatedAt: 2000,
		data:      []byte(`{"type":"dimming"}`),
	}

	query, args, err := buildInsertRecordQuery(context.Background(), DialectPostgres, abilitiesTable, row)
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "insert into abilities")
	require.Contains(t, q, "(id,sphere_id,parent_id,created_at,updated_at,data)")
	require.Contains(t, query, "$6")
	require.Len(t, args, 6)
	require.Equal(t, "ab1", args[0])
	require.Equal(t, `{"type":"dimming"}`, args[5])
}

func Test_buildUpdateRecordQuery(t *testing.T) {
	row := recordRow{id: "st1", updatedAt: 3000, data: []byte(`{}`)}

	query, args, err := buildUpdateRecordQuery(context.Background(), DialectPostgres, stonesTable, row)
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "update stones set parent_id = $1, updated_at = $2, data = $3")
	require.Contains(t, q, "where id = $4")
	require.Equal(t, int64(3000), args[1])
	require.Equal(t, "st1", args[3])
}

func Test_buildFindAccessByUserQuery_ExcludesPendingInvites(t *testing.T) {
	query, args, err := buildFindAccessByUserQuery(context.Background(), DialectPostgres, "u1")
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "from sphere_access")
	require.Contains(t, q, "invite_pending = $1")
	require.Contains(t, q, "user_id = $2")
	require.Equal(t, []any{false, "u1"}, args)
}

func Test_buildFindReleasesQuery(t *testing.T) {
	query, args, err := buildFindReleasesQuery(context.Background(), DialectPostgres, models.ReleaseFirmware, 2)
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "from releases")
	require.Contains(t, q, "kind = $1")
	require.Contains(t, q, "release_level <= $2")
	require.Equal(t, []any{"firmware", 2}, args)
}

func Test_buildFindKeysQuery(t *testing.T) {
	query, args, err := buildFindKeysQuery(context.Background(), DialectSQLite, []string{"sp1", "sp2"})
	require.NoError(t, err)

	require.Contains(t, query, "FROM sphere_keys")
	require.Contains(t, query, "sphere_id IN (?,?)")
	require.Contains(t, query, "key_value")
	require.Equal(t, []any{"sp1", "sp2"}, args)
}
