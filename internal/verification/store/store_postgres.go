package store

import (
	"context"
	"database/sql"
	"fmt"
)

// PostgresRecordStore appends verification records to PostgreSQL.
type PostgresRecordStore struct {
	db *sql.DB
}

// NewPostgresRecordStore constructs a PostgreSQL-backed record store.
func NewPostgresRecordStore(db *sql.DB) *PostgresRecordStore {
	return &PostgresRecordStore{db: db}
}

const insertRecordQuery = `
	INSERT INTO verification_records (id, kind, identifier, verified, payload, verified_at, expires_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
`

func (s *PostgresRecordStore) Save(ctx context.Context, record *Record) error {
	if record == nil {
		return fmt.Errorf("verification record is required")
	}
	_, err := s.db.ExecContext(ctx, insertRecordQuery,
		record.ID,
		string(record.Kind),
		record.Identifier,
		record.Verified,
		record.Payload,
		record.VerifiedAt,
		record.ExpiresAt,
	)
	if err != nil {
		return fmt.Errorf("save verification record: %w", err)
	}
	return nil
}
