package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/sphere-sync/internal/logger"
	"github.com/MKhiriev/sphere-sync/models"
)

type accessRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewAccessRepository(db *DB, logger *logger.Logger) AccessRepository {
	return &accessRepository{db: db, logger: logger}
}

func (r *accessRepository) FindByUser(ctx context.Context, userID string) ([]models.SphereAccess, error) {
	query, args, err := buildFindAccessByUserQuery(ctx, r.db.dialect, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*accessRepository.FindByUser").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.find(ctx, "*accessRepository.FindByUser", query, args)
}

func (r *accessRepository) FindBySpheres(ctx context.Context, sphereIDs []string) ([]models.SphereAccess, error) {
	query, args, err := buildFindAccessBySpheresQuery(ctx, r.db.dialect, sphereIDs)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*accessRepository.FindBySpheres").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.find(ctx, "*accessRepository.FindBySpheres", query, args)
}

func (r *accessRepository) find(ctx context.Context, funcName, query string, args []any) ([]models.SphereAccess, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	grants := make([]models.SphereAccess, 0, 8)
	for rows.Next() {
		var (
			grant     models.SphereAccess
			role      string
			updatedAt int64
		)
		if err = rows.Scan(&grant.UserID, &grant.SphereID, &role, &grant.InvitePending, &updatedAt); err != nil {
			log.Err(err).Str("func", funcName).Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		grant.Role = models.AccessRole(role)
		grant.UpdatedAt = models.TimestampFromMillis(updatedAt)
		grants = append(grants, grant)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", funcName).Msg("error during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return grants, nil
}
