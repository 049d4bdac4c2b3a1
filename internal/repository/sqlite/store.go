package sqlite

import (
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"lexibox/internal/domain"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/mattn/go-sqlite3"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// storeRowID is the primary key of the single store row
const storeRowID = 1

// StoreRepo implements repository.StoreRepository over a local SQLite file.
// The entire store is one JSON document in a single row, rewritten on every
// save, which gives atomic whole-record read/write semantics.
type StoreRepo struct {
	db *sql.DB
}

// NewStoreRepo creates a new store repository
func NewStoreRepo(db *sql.DB) *StoreRepo {
	return &StoreRepo{db: db}
}

// Open opens (creating if needed) the SQLite store file
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping store: %w", err)
	}

	// single mutator, single connection
	db.SetMaxOpenConns(1)

	return db, nil
}

// Migrate applies the embedded schema migrations
func Migrate(db *sql.DB) error {
	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to load embedded migrations: %w", err)
	}

	driver, err := migratesqlite.WithInstance(db, &migratesqlite.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "sqlite3", driver)
	if err != nil {
		return fmt.Errorf("failed to create migration instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

// Load reads the persisted store. A missing row (first launch) yields a fresh
// empty store.
func (r *StoreRepo) Load() (*domain.Store, error) {
	query := `
		SELECT data
		FROM progress_store
		WHERE id = ?
	`

	var data []byte
	err := r.db.QueryRow(query, storeRowID).Scan(&data)

	if errors.Is(err, sql.ErrNoRows) {
		return domain.NewStore(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read store: %w", err)
	}

	store := domain.NewStore()
	if err := json.Unmarshal(data, store); err != nil {
		return nil, fmt.Errorf("failed to decode store: %w", err)
	}

	return store, nil
}

// Save rewrites the whole store row
func (r *StoreRepo) Save(store *domain.Store) error {
	data, err := json.Marshal(store)
	if err != nil {
		return fmt.Errorf("failed to encode store: %w", err)
	}

	query := `
		INSERT INTO progress_store (id, data, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at
	`

	if _, err := r.db.Exec(query, storeRowID, data, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to write store: %w", err)
	}

	return nil
}
