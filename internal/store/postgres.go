package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/dmitrijs2005/classhub/internal/common"
	"github.com/dmitrijs2005/classhub/internal/store/migrations"
)

// PostgresStore keeps the raw roster rows in a single append-only table
// mirroring the sheet layout one to one, so either backend can be swapped
// in without changing load semantics. Rows stay as text, duplicates and
// malformed timestamps included: cleaning them is the adapter's job, and
// the table must round-trip whatever a sheet could contain.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(ctx context.Context, dsn string) (*PostgresStore, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	s := NewPostgresStoreFromDB(db)
	if err := s.RunMigrations(ctx); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return s, nil
}

// NewPostgresStoreFromDB wraps an existing handle without running
// migrations. Used by tests.
func NewPostgresStoreFromDB(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.UpContext(ctx, s.db, "."); err != nil {
		return err
	}

	return nil
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}

func (s *PostgresStore) GetAllRecords(ctx context.Context) ([]map[string]string, error) {
	query :=
		`SELECT name, username, ts FROM directory_rows
		 ORDER BY id
		 `

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}
	defer rows.Close()

	var records []map[string]string
	for rows.Next() {
		var name, handle, ts string
		if err := rows.Scan(&name, &handle, &ts); err != nil {
			return nil, fmt.Errorf("error scanning row: %v", err)
		}
		records = append(records, map[string]string{
			common.ColumnName:      name,
			common.ColumnHandle:    handle,
			common.ColumnTimestamp: ts,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %v", err)
	}

	return records, nil
}

func (s *PostgresStore) AppendRow(ctx context.Context, values []string) error {
	// column order: name, username, timestamp
	row := make([]string, 3)
	copy(row, values)

	query :=
		`INSERT INTO directory_rows (name, username, ts)
		 VALUES ($1, $2, $3)
		 `

	if _, err := s.db.ExecContext(ctx, query, row[0], row[1], row[2]); err != nil {
		return fmt.Errorf("error performing sql request: %v", err)
	}

	return nil
}
