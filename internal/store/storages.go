package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/sphere-sync/internal/config"
	"github.com/MKhiriev/sphere-sync/internal/logger"
	"github.com/MKhiriev/sphere-sync/internal/utils"
	"github.com/MKhiriev/sphere-sync/models"
)

// Storages bundles every repository the sync engine reads and writes.
type Storages struct {
	DB       *DB
	Records  map[models.Category]RecordStore
	Users    UserRepository
	Access   AccessRepository
	Stones   StoneRepository
	Catalogs CatalogRepository
	Keys     KeyRepository
}

// NewStorages connects to the database named by cfg.DSN, runs the
// migrations of its dialect and builds the repositories.
func NewStorages(ctx context.Context, cfg config.DB, log *logger.Logger) (*Storages, error) {
	dialect, err := DialectFromDSN(cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("cannot pick database dialect")
		return nil, err
	}

	var db *DB
	switch dialect {
	case DialectPostgres:
		db, err = NewConnectPostgres(ctx, cfg, log)
	default:
		db, err = NewConnectSQLite(ctx, cfg, log)
	}
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Str("dialect", string(dialect)).Msg("error migrating database")
		db.Close()
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	return NewStoragesFromDB(db, utils.NewRecordIDGenerator(), log), nil
}

// NewStoragesFromDB builds the repositories on an open, migrated connection.
func NewStoragesFromDB(db *DB, ids IDGenerator, log *logger.Logger) *Storages {
	records := make(map[models.Category]RecordStore, len(RecordTables))
	for _, table := range RecordTables {
		records[table.Category] = NewRecordRepository(db, table, ids, log)
	}

	return &Storages{
		DB:       db,
		Records:  records,
		Users:    NewUserRepository(db, log),
		Access:   NewAccessRepository(db, log),
		Stones:   NewStoneRepository(records[models.CategoryStones]),
		Catalogs: NewCatalogRepository(db, log),
		Keys:     NewKeyRepository(db, log),
	}
}

// Record returns the store of a record category, or nil.
func (s *Storages) Record(c models.Category) RecordStore {
	return s.Records[c]
}

// Ping checks the database connection.
func (s *Storages) Ping(ctx context.Context) error {
	return s.DB.PingContext(ctx)
}

func (s *Storages) Close() error {
	return s.DB.Close()
}
