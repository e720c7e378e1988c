package storage

import (
	"encoding/json"
	"fmt"

	"team-board-backend/internal/database"
	"team-board-backend/internal/database/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// insertBatchSize bounds the rows per INSERT when a collection is rewritten
const insertBatchSize = 100

// PostgresStore keeps collections as ordered jsonb rows in Postgres through GORM
type PostgresStore struct {
	db *gorm.DB
}

var _ Store = (*PostgresStore)(nil)

// OpenPostgres connects to the database at dsn and migrates the collection table
func OpenPostgres(dsn string, opts *database.Options) (*PostgresStore, error) {
	db, err := database.Initialize(dsn, opts)
	if err != nil {
		return nil, err
	}
	return NewPostgresStore(db), nil
}

// NewPostgresStore wraps an already initialized GORM connection
func NewPostgresStore(db *gorm.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Load reads the rows of a collection in sequence order
func (s *PostgresStore) Load(collection string, out interface{}) error {
	var rows []models.CollectionRecord
	if err := s.db.Where("collection = ?", collection).Order("seq ASC").Find(&rows).Error; err != nil {
		return fmt.Errorf("load %s: %w", collection, err)
	}

	parts := make([]json.RawMessage, len(rows))
	for i, row := range rows {
		parts[i] = json.RawMessage(row.Payload)
	}
	return joinRecords(parts, out)
}

// Save replaces every row of a collection inside one transaction
func (s *PostgresStore) Save(collection string, records interface{}) error {
	parts, err := splitRecords(records)
	if err != nil {
		return fmt.Errorf("save %s: %w", collection, err)
	}

	rows := make([]models.CollectionRecord, len(parts))
	for i, part := range parts {
		rows[i] = models.CollectionRecord{
			Collection: collection,
			Seq:        i,
			Payload:    datatypes.JSON(part),
		}
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("collection = ?", collection).Delete(&models.CollectionRecord{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.CreateInBatches(rows, insertBatchSize).Error
	})
	if err != nil {
		return fmt.Errorf("save %s: %w", collection, err)
	}
	return nil
}

// Ping checks the database connection
func (s *PostgresStore) Ping() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// Close releases the database resources
func (s *PostgresStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
