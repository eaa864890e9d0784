package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/sphere-sync/internal/logger"
	"github.com/MKhiriev/sphere-sync/models"
)

// userRepository is the SQL implementation of [UserRepository]. Users are
// global: the table has no sphere column and the payload is opaque apart
// from the timestamps.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// FindByID returns the user record, or [ErrUserNotFound].
func (r *userRepository) FindByID(ctx context.Context, id string) (models.User, error) {
	users, err := r.FindByIDs(ctx, []string{id})
	if err != nil {
		return models.User{}, err
	}
	if len(users) == 0 {
		return models.User{}, ErrUserNotFound
	}

	return users[0], nil
}

// FindByIDs returns the users found among ids; unknown ids are skipped.
func (r *userRepository) FindByIDs(ctx context.Context, ids []string) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindUsersQuery(ctx, r.db.dialect, ids)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindByIDs").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindByIDs").Int("ids count", len(ids)).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0, len(ids))
	for rows.Next() {
		var (
			id                   string
			createdAt, updatedAt int64
			data                 []byte
		)
		if err = rows.Scan(&id, &createdAt, &updatedAt, &data); err != nil {
			log.Err(err).Str("func", "*userRepository.FindByIDs").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		fields, decodeErr := decodeData(data)
		if decodeErr != nil {
			return nil, decodeErr
		}
		users = append(users, models.User{Record: models.Record{
			ID:        id,
			CreatedAt: models.TimestampFromMillis(createdAt),
			UpdatedAt: models.TimestampFromMillis(updatedAt),
			Fields:    fields,
		}})
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.FindByIDs").Msg("error during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}

// UpdateByID merges patch into the stored user. With acceptTimes the
// caller's updatedAt is kept so the client's next REQUEST reconciles IN_SYNC,
// unless it is older than the stored one.
func (r *userRepository) UpdateByID(ctx context.Context, id string, patch models.Record, acceptTimes bool) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := r.FindByID(ctx, id)
	if err != nil {
		return models.User{}, err
	}

	current := user.UpdatedAt
	user.Record = user.Clone()
	for k, v := range patch.Fields {
		user.Fields[k] = v
	}
	user.UpdatedAt = nextUpdatedAt(current, patch.UpdatedAt, acceptTimes)

	data, err := encodeData(user.Fields)
	if err != nil {
		return models.User{}, err
	}

	query, args, err := buildUpdateUserQuery(ctx, r.db.dialect, id, user.UpdatedAt.Millis(), data)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateByID").Msg("failed to create query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateByID").Str("user_id", id).Msg("failed to update user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return models.User{}, ErrUserNotFound
	}

	return user, nil
}
