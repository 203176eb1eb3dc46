package store

import (
	"context"
	"errors"
	"fmt"

	"marketing-server/internal/observability"

	_ "github.com/jackc/pgx/v5/stdlib" // Import the pgx stdlib for sqlx
	"github.com/jmoiron/sqlx"
)

var ErrNotFound = errors.New("not found")

// Store runs queries either directly on the pool or, inside WithTx, on a transaction.
type Store struct {
	db     *sqlx.DB
	q      sqlx.ExtContext
	logger *observability.Logger
}

func New(connectionString string, logger *observability.Logger) (*Store, error) {
	db, err := sqlx.Open("pgx", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return NewWithDB(db, logger), nil
}

// NewWithDB wraps an already opened connection pool.
func NewWithDB(db *sqlx.DB, logger *observability.Logger) *Store {
	return &Store{db: db, q: db, logger: logger}
}

// DB returns the underlying database connection
func (s *Store) DB() *sqlx.DB {
	return s.db
}

// Ping verifies the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the connection pool.
func (s *Store) Close() error {
	return s.db.Close()
}

// WithTx runs fn against a Store bound to a single transaction. The transaction commits when fn
// returns nil and rolls back otherwise.
func (s *Store) WithTx(ctx context.Context, fn func(tx *Store) error) (err error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		s.logger.Error(ctx, "failed to begin transaction", err)
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				s.logger.Error(ctx, "failed to rollback transaction", rbErr)
			}
		}
	}()

	if err = fn(&Store{db: s.db, q: tx, logger: s.logger}); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		s.logger.Error(ctx, "failed to commit transaction", err)
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
