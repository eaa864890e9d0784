package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/sphere-sync/internal/logger"
	"github.com/MKhiriev/sphere-sync/models"
)

type keyRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewKeyRepository(db *DB, logger *logger.Logger) KeyRepository {
	return &keyRepository{db: db, logger: logger}
}

func (r *keyRepository) FindBySpheres(ctx context.Context, sphereIDs []string) ([]models.SphereKey, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindKeysQuery(ctx, r.db.dialect, sphereIDs)
	if err != nil {
		log.Err(err).Str("func", "*keyRepository.FindBySpheres").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*keyRepository.FindBySpheres").Int("spheres", len(sphereIDs)).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	keys := make([]models.SphereKey, 0, 8*len(sphereIDs))
	for rows.Next() {
		var (
			key       models.SphereKey
			keyType   string
			createdAt int64
		)
		if err = rows.Scan(&key.ID, &key.SphereID, &keyType, &key.Key, &key.TTL, &createdAt); err != nil {
			log.Err(err).Str("func", "*keyRepository.FindBySpheres").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		key.KeyType = models.KeyType(keyType)
		key.CreatedAt = models.TimestampFromMillis(createdAt)
		keys = append(keys, key)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*keyRepository.FindBySpheres").Msg("error during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return keys, nil
}
