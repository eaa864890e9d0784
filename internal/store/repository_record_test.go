package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/sphere-sync/internal/logger"
	"github.com/MKhiriev/sphere-sync/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seqIDs hands out id-1, id-2, ...
type seqIDs struct{ n int }

func (s *seqIDs) Generate() string {
	s.n++
	return fmt.Sprintf("id-%d", s.n)
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return &DB{
		DB:                 db,
		dialect:            DialectPostgres,
		errorClassificator: NewPostgresErrorClassifier(),
		logger:             logger.Nop(),
	}, mock
}

func newTestRecordRepo(t *testing.T, table Table) (RecordStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newMockDB(t)
	return NewRecordRepository(db, table, &seqIDs{}, logger.NewLogger("test")), mock
}

func recordRows() *sqlmock.Rows {
	return sqlmock.NewRows(recordColumns)
}

// ── FindBySpheres ───────────────────────────────────────────────────────────

func TestRecordRepository_FindBySpheres_Success(t *testing.T) {
	repo, mock := newTestRecordRepo(t, abilitiesTable)

	mock.ExpectQuery("SELECT (.+) FROM abilities WHERE sphere_id IN").
		WithArgs("sp1").
		WillReturnRows(recordRows().
			AddRow("ab1", "sp1", "st1", int64(1000), int64(2000), []byte(`{"type":"dimming"}`)).
			AddRow("ab2", "sp1", nil, int64(1000), int64(3000), []byte(`{}`)))

	records, err := repo.FindBySpheres(context.Background(), []string{"sp1"}, FindFilter{})

	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "ab1", records[0].ID)
	assert.Equal(t, "st1", records[0].Ref("stoneId"))
	assert.Equal(t, "sp1", records[0].Ref(models.FieldSphereID))
	assert.Equal(t, "dimming", records[0].Fields["type"])
	assert.Equal(t, int64(2000), records[0].UpdatedAt.Millis())

	assert.Equal(t, "", records[1].Ref("stoneId"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordRepository_FindBySpheres_QueryError(t *testing.T) {
	repo, mock := newTestRecordRepo(t, stonesTable)

	mock.ExpectQuery("SELECT (.+) FROM stones").WillReturnError(errors.New("connection reset"))

	_, err := repo.FindBySpheres(context.Background(), []string{"sp1"}, FindFilter{})

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrExecutingQuery))
}

func TestRecordRepository_FindBySpheres_BadData(t *testing.T) {
	repo, mock := newTestRecordRepo(t, stonesTable)

	mock.ExpectQuery("SELECT (.+) FROM stones").
		WillReturnRows(recordRows().AddRow("st1", "sp1", nil, int64(1), int64(1), []byte(`not json`)))

	_, err := repo.FindBySpheres(context.Background(), []string{"sp1"}, FindFilter{})

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEncodingData))
}

// ── FindByID ────────────────────────────────────────────────────────────────

func TestRecordRepository_FindByID_NotFound(t *testing.T) {
	repo, mock := newTestRecordRepo(t, stonesTable)

	mock.ExpectQuery("SELECT (.+) FROM stones WHERE id = \\$1").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByID(context.Background(), "missing")

	assert.True(t, errors.Is(err, ErrRecordNotFound))
}

// ── Create ──────────────────────────────────────────────────────────────────

func TestRecordRepository_Create_Success(t *testing.T) {
	repo, mock := newTestRecordRepo(t, stonesTable)

	mock.ExpectExec("INSERT INTO stones").
		WithArgs("id-1", "sp1", sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), `{"address":"AA:BB","name":"lamp"}`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	created, err := repo.Create(context.Background(), "sp1", models.Record{
		ID:     "local-1",
		Fields: map[string]any{"address": "AA:BB", "name": "lamp", "sphereId": "other-sphere"},
	})

	require.NoError(t, err)
	assert.Equal(t, "id-1", created.ID)
	assert.Equal(t, "sp1", created.Ref(models.FieldSphereID), "sphere id comes from the caller")
	assert.False(t, created.CreatedAt.IsZero())
	assert.True(t, created.CreatedAt.Equal(created.UpdatedAt))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordRepository_Create_UniqueViolation_ReturnsExisting(t *testing.T) {
	repo, mock := newTestRecordRepo(t, stonesTable)

	mock.ExpectExec("INSERT INTO stones").
		WillReturnError(pgError(pgerrcode.UniqueViolation))
	mock.ExpectQuery("SELECT (.+) FROM stones WHERE sphere_id = \\$1 AND data->>'address' = \\$2").
		WithArgs("sp1", "AA:BB").
		WillReturnRows(recordRows().AddRow("st-existing", "sp1", nil, int64(10), int64(20), []byte(`{"address":"AA:BB"}`)))

	_, err := repo.Create(context.Background(), "sp1", models.Record{Fields: map[string]any{"address": "AA:BB"}})

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRecordConflict))

	var conflict *RecordConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, "st-existing", conflict.Existing.ID)
	assert.Equal(t, "stones", conflict.Table)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordRepository_Create_UniqueViolation_WithoutUniqueFields(t *testing.T) {
	repo, mock := newTestRecordRepo(t, Table{Name: "hubs", Category: models.CategoryHubs})

	mock.ExpectExec("INSERT INTO hubs").WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.Create(context.Background(), "sp1", models.Record{Fields: map[string]any{}})

	assert.True(t, errors.Is(err, ErrRecordConflict))
	var conflict *RecordConflictError
	assert.False(t, errors.As(err, &conflict))
}

func TestRecordRepository_Create_OtherError(t *testing.T) {
	repo, mock := newTestRecordRepo(t, stonesTable)

	mock.ExpectExec("INSERT INTO stones").WillReturnError(pgError(pgerrcode.NotNullViolation))

	_, err := repo.Create(context.Background(), "sp1", models.Record{Fields: map[string]any{"address": "AA"}})

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrExecutingStatement))
	assert.False(t, errors.Is(err, ErrRecordConflict))
}

// ── UpdateByID ──────────────────────────────────────────────────────────────

func TestRecordRepository_UpdateByID(t *testing.T) {
	tests := []struct {
		name          string
		acceptTimes   bool
		patchUpdated  int64
		wantUpdatedAt func(t *testing.T, got models.Timestamp)
	}{
		{
			name:         "accepts caller timestamp",
			acceptTimes:  true,
			patchUpdated: 5000,
			wantUpdatedAt: func(t *testing.T, got models.Timestamp) {
				assert.Equal(t, int64(5000), got.Millis())
			},
		},
		{
			name:         "older caller timestamp keeps stored one",
			acceptTimes:  true,
			patchUpdated: 500,
			wantUpdatedAt: func(t *testing.T, got models.Timestamp) {
				assert.Equal(t, int64(2000), got.Millis())
			},
		},
		{
			name:         "server stamps now",
			acceptTimes:  false,
			patchUpdated: 5000,
			wantUpdatedAt: func(t *testing.T, got models.Timestamp) {
				assert.Greater(t, got.Millis(), int64(5000))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestRecordRepo(t, stonesTable)

			mock.ExpectQuery("SELECT (.+) FROM stones WHERE id = \\$1").
				WithArgs("st1").
				WillReturnRows(recordRows().AddRow("st1", "sp1", nil, int64(1000), int64(2000), []byte(`{"address":"AA","name":"old"}`)))
			mock.ExpectExec("UPDATE stones SET").
				WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), `{"address":"AA","name":"new"}`, "st1").
				WillReturnResult(sqlmock.NewResult(0, 1))

			updated, err := repo.UpdateByID(context.Background(), "st1", models.Record{
				UpdatedAt: models.TimestampFromMillis(tt.patchUpdated),
				Fields:    map[string]any{"name": "new", "sphereId": "elsewhere"},
			}, tt.acceptTimes)

			require.NoError(t, err)
			assert.Equal(t, "new", updated.Fields["name"])
			assert.Equal(t, "sp1", updated.Ref(models.FieldSphereID))
			assert.Equal(t, int64(1000), updated.CreatedAt.Millis())
			tt.wantUpdatedAt(t, updated.UpdatedAt)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRecordRepository_UpdateByID_NotFound(t *testing.T) {
	repo, mock := newTestRecordRepo(t, stonesTable)

	mock.ExpectQuery("SELECT (.+) FROM stones").WithArgs("st1").WillReturnError(sql.ErrNoRows)

	_, err := repo.UpdateByID(context.Background(), "st1", models.Record{}, true)

	assert.True(t, errors.Is(err, ErrRecordNotFound))
}

// ── DeleteByID ──────────────────────────────────────────────────────────────

func TestRecordRepository_DeleteByID(t *testing.T) {
	repo, mock := newTestRecordRepo(t, stonesTable)

	mock.ExpectExec("DELETE FROM stones WHERE id = \\$1").WithArgs("st1").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM stones WHERE id = \\$1").WithArgs("st1").WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.DeleteByID(context.Background(), "st1"))
	assert.True(t, errors.Is(repo.DeleteByID(context.Background(), "st1"), ErrRecordNotFound))
}
