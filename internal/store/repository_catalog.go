package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/sphere-sync/internal/logger"
	"github.com/MKhiriev/sphere-sync/models"
)

type catalogRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewCatalogRepository(db *DB, logger *logger.Logger) CatalogRepository {
	return &catalogRepository{db: db, logger: logger}
}

func (r *catalogRepository) FindReleases(ctx context.Context, kind models.ReleaseKind, maxReleaseLevel int) ([]models.Release, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindReleasesQuery(ctx, r.db.dialect, kind, maxReleaseLevel)
	if err != nil {
		log.Err(err).Str("func", "*catalogRepository.FindReleases").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*catalogRepository.FindReleases").Str("kind", string(kind)).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	releases := make([]models.Release, 0, 16)
	for rows.Next() {
		var (
			release   models.Release
			kindValue string
			hardware  []byte
			createdAt int64
		)
		err = rows.Scan(
			&release.ID,
			&kindValue,
			&release.Version,
			&hardware,
			&release.MinimumAppVersion,
			&release.ReleaseLevel,
			&release.DownloadURL,
			&createdAt,
		)
		if err != nil {
			log.Err(err).Str("func", "*catalogRepository.FindReleases").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		release.Kind = models.ReleaseKind(kindValue)
		release.CreatedAt = models.TimestampFromMillis(createdAt)
		if len(hardware) > 0 {
			if err = json.Unmarshal(hardware, &release.HardwareVersions); err != nil {
				log.Err(err).Str("func", "*catalogRepository.FindReleases").Str("id", release.ID).Msg("invalid hardware versions")
				return nil, fmt.Errorf("%w: %w", ErrEncodingData, err)
			}
		}
		releases = append(releases, release)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*catalogRepository.FindReleases").Msg("error during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return releases, nil
}
