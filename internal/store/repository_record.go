package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/sphere-sync/internal/logger"
	"github.com/MKhiriev/sphere-sync/models"
)

// recordRepository is the SQL implementation of [RecordStore]. One instance
// serves one [Table]; Postgres and SQLite differ only in placeholders and in
// how data fields are extracted.
type recordRepository struct {
	*DB
	table  Table
	ids    IDGenerator
	logger *logger.Logger
}

// NewRecordRepository constructs a [RecordStore] for table t.
func NewRecordRepository(db *DB, t Table, ids IDGenerator, logger *logger.Logger) RecordStore {
	return &recordRepository{
		DB:     db,
		table:  t,
		ids:    ids,
		logger: logger,
	}
}

func (r *recordRepository) Table() Table {
	return r.table
}

func (r *recordRepository) FindBySpheres(ctx context.Context, sphereIDs []string, filter FindFilter) ([]models.Record, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindRecordsQuery(ctx, r.dialect, r.table, sphereIDs, filter)
	if err != nil {
		log.Err(err).Str("func", "*recordRepository.FindBySpheres").Str("table", r.table.Name).Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*recordRepository.FindBySpheres").Str("table", r.table.Name).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.Record, 0, 16)
	for rows.Next() {
		row, scanErr := scanRecordRow(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*recordRepository.FindBySpheres").Str("table", r.table.Name).Msg("failed to scan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}

		record, decodeErr := decodeRecord(r.table, row)
		if decodeErr != nil {
			log.Err(decodeErr).Str("func", "*recordRepository.FindBySpheres").Str("id", row.id).Msg("failed to decode record data")
			return nil, decodeErr
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*recordRepository.FindBySpheres").Str("table", r.table.Name).Msg("error during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}

func (r *recordRepository) FindByID(ctx context.Context, id string) (models.Record, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindRecordByIDQuery(ctx, r.dialect, r.table, id)
	if err != nil {
		log.Err(err).Str("func", "*recordRepository.FindByID").Str("table", r.table.Name).Msg("failed to create query")
		return models.Record{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.findOne(ctx, query, args)
}

// Create stores record in sphereID. The sphere id always comes from the
// caller, never from the payload.
func (r *recordRepository) Create(ctx context.Context, sphereID string, record models.Record) (models.Record, error) {
	log := logger.FromContext(ctx)

	now := models.Now()
	record = record.Clone()
	record.ID = r.ids.Generate()
	record.CreatedAt = now
	record.UpdatedAt = now
	if r.table.Category == models.CategorySpheres {
		sphereID = record.ID
	}

	row, err := encodeRecord(r.table, sphereID, record)
	if err != nil {
		log.Err(err).Str("func", "*recordRepository.Create").Str("table", r.table.Name).Msg("failed to encode record")
		return models.Record{}, err
	}

	query, args, err := buildInsertRecordQuery(ctx, r.dialect, r.table, row)
	if err != nil {
		log.Err(err).Str("func", "*recordRepository.Create").Str("table", r.table.Name).Msg("failed to create query")
		return models.Record{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		if r.errorClassificator.IsUniqueViolation(err) {
			log.Debug().Str("func", "*recordRepository.Create").Str("table", r.table.Name).Msg("unique constraint hit, looking up existing record")
			return models.Record{}, r.conflict(ctx, sphereID, record, err)
		}

		log.Err(err).Str("func", "*recordRepository.Create").Str("table", r.table.Name).Msg("failed to insert record")
		return models.Record{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return decodeRecord(r.table, row)
}

func (r *recordRepository) UpdateByID(ctx context.Context, id string, patch models.Record, acceptTimes bool) (models.Record, error) {
	log := logger.FromContext(ctx)

	current, err := r.FindByID(ctx, id)
	if err != nil {
		return models.Record{}, err
	}

	updated := current.Clone()
	for k, v := range patch.Fields {
		updated.Fields[k] = v
	}
	updated.UpdatedAt = nextUpdatedAt(current.UpdatedAt, patch.UpdatedAt, acceptTimes)

	row, err := encodeRecord(r.table, current.Ref(models.FieldSphereID), updated)
	if err != nil {
		log.Err(err).Str("func", "*recordRepository.UpdateByID").Str("id", id).Msg("failed to encode record")
		return models.Record{}, err
	}

	query, args, err := buildUpdateRecordQuery(ctx, r.dialect, r.table, row)
	if err != nil {
		log.Err(err).Str("func", "*recordRepository.UpdateByID").Str("table", r.table.Name).Msg("failed to create query")
		return models.Record{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		if r.errorClassificator.IsUniqueViolation(err) {
			return models.Record{}, fmt.Errorf("%w: %w", ErrRecordConflict, err)
		}
		log.Err(err).Str("func", "*recordRepository.UpdateByID").Str("id", id).Msg("failed to update record")
		return models.Record{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return models.Record{}, ErrRecordNotFound
	}

	return decodeRecord(r.table, row)
}

func (r *recordRepository) DeleteByID(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteRecordQuery(ctx, r.dialect, r.table, id)
	if err != nil {
		log.Err(err).Str("func", "*recordRepository.DeleteByID").Str("table", r.table.Name).Msg("failed to create query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*recordRepository.DeleteByID").Str("id", id).Msg("failed to delete record")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return ErrRecordNotFound
	}

	return nil
}

// conflict resolves a unique-constraint hit into a [*RecordConflictError]
// carrying the record that holds the unique values.
func (r *recordRepository) conflict(ctx context.Context, sphereID string, record models.Record, cause error) error {
	log := logger.FromContext(ctx)

	scopeID := sphereID
	if r.table.ParentField != "" {
		scopeID = record.Ref(r.table.ParentField)
	}

	values := make([]string, 0, len(r.table.Unique))
	for _, field := range r.table.Unique {
		values = append(values, record.Ref(field))
	}
	if len(values) == 0 {
		return fmt.Errorf("%w: %w", ErrRecordConflict, cause)
	}

	query, args, err := buildFindRecordByUniqueQuery(ctx, r.dialect, r.table, scopeID, values)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	existing, err := r.findOne(ctx, query, args)
	if err != nil {
		log.Err(err).Str("func", "*recordRepository.conflict").Str("table", r.table.Name).Msg("failed to load conflicting record")
		return fmt.Errorf("%w: %w", ErrRecordConflict, cause)
	}

	return &RecordConflictError{Table: r.table.Name, Existing: existing}
}

func (r *recordRepository) findOne(ctx context.Context, query string, args []any) (models.Record, error) {
	log := logger.FromContext(ctx)

	row, err := scanRecordRow(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Record{}, ErrRecordNotFound
		}
		log.Err(err).Str("func", "*recordRepository.findOne").Str("table", r.table.Name).Msg("failed to scan row")
		return models.Record{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return decodeRecord(r.table, row)
}

// nextUpdatedAt is the timestamp an accepted write stores. With acceptTimes
// the caller's timestamp is kept, otherwise the server stamps now. Either
// way the result never precedes current, so updatedAt only moves forward.
func nextUpdatedAt(current, claimed models.Timestamp, acceptTimes bool) models.Timestamp {
	next := models.Now()
	if acceptTimes && !claimed.IsZero() {
		next = claimed
	}
	if next.Millis() < current.Millis() {
		return current
	}

	return next
}
