package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"

	"github.com/fjod/go_storefront/internal/domain"
)

// cartStateKey is the fixed key the serialized cart lives under. There is
// exactly one cart per storefront process.
const cartStateKey = "cart"

// SQLiteRepository stores the serialized cart in a local sqlite file, the
// durable-storage equivalent of the browser's localStorage record.
type SQLiteRepository struct {
	db  *sql.DB
	log *logrus.Logger
}

func NewSQLiteRepository(dbPath string, log *logrus.Logger) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &SQLiteRepository{db: db, log: log}, nil
}

func (r *SQLiteRepository) RunMigrations(migrationsPath string) error {
	driver, err := sqlite.WithInstance(r.db, &sqlite.Config{})
	if err != nil {
		return fmt.Errorf("could not create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		fmt.Sprintf("file://%s", migrationsPath),
		"sqlite",
		driver,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("could not run migrations: %w", err)
	}

	return nil
}

func (r *SQLiteRepository) Load(ctx context.Context) ([]domain.CartItem, error) {
	var payload string
	err := r.db.QueryRowContext(ctx,
		`SELECT payload FROM cart_state WHERE key = $1`, cartStateKey,
	).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	var items []domain.CartItem
	if err := json.Unmarshal([]byte(payload), &items); err != nil {
		// Malformed state is treated as absent: start over with an
		// empty cart rather than refusing to boot.
		r.log.WithError(err).Warn("persisted cart is malformed, starting empty")
		return nil, nil
	}
	return items, nil
}

func (r *SQLiteRepository) Save(ctx context.Context, items []domain.CartItem) error {
	payload, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to marshal cart: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO cart_state (key, payload, updated_at)
		VALUES ($1, $2, CURRENT_TIMESTAMP)
		ON CONFLICT (key) DO UPDATE SET
			payload = excluded.payload,
			updated_at = excluded.updated_at`,
		cartStateKey, string(payload),
	)
	if err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}
