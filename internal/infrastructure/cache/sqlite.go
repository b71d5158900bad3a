package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/nutrilens/backend/internal/domain"
)

// SQLiteCache is the durable tier of the additive cache: a flat code→payload
// table keyed by normalized additive code. Entries older than the TTL are
// treated as absent. Writes are last-write-wins; concurrent fetches for the
// same code may both write, which is harmless because the payload is
// idempotent.
type SQLiteCache struct {
	db  *sql.DB
	ttl time.Duration
}

// NewSQLiteCache opens (or creates) the cache database at dbPath.
func NewSQLiteCache(dbPath string, ttl time.Duration) (*SQLiteCache, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}

	c := &SQLiteCache{db: db, ttl: ttl}
	if err := c.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize cache schema: %w", err)
	}

	return c, nil
}

func (c *SQLiteCache) initSchema() error {
	schema := `
    CREATE TABLE IF NOT EXISTS additive_cache (
        code TEXT PRIMARY KEY,
        payload TEXT NOT NULL,
        cached_at DATETIME NOT NULL
    );
    `

	if _, err := c.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Get returns the cached record for a code, or ErrCacheMiss when no entry
// exists or the entry has outlived the TTL.
func (c *SQLiteCache) Get(ctx context.Context, code string) (*domain.ResolvedAdditive, error) {
	var payload string
	var cachedAtStr string

	row := c.db.QueryRowContext(ctx,
		`SELECT payload, cached_at FROM additive_cache WHERE code = ?`, code)
	if err := row.Scan(&payload, &cachedAtStr); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to read cache entry: %w", err)
	}

	cachedAt, err := time.Parse(time.RFC3339, cachedAtStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse cached_at: %w", err)
	}
	if time.Since(cachedAt) > c.ttl {
		return nil, domain.ErrCacheMiss
	}

	var record domain.ResolvedAdditive
	if err := json.Unmarshal([]byte(payload), &record); err != nil {
		return nil, fmt.Errorf("failed to decode cache payload: %w", err)
	}

	// Anything served from the durable store counts as a cached remote hit
	record.Source = domain.SourceCachedRemote
	return &record, nil
}

// Set upserts the record for a code, refreshing its cached_at timestamp.
func (c *SQLiteCache) Set(ctx context.Context, code string, value *domain.ResolvedAdditive) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode cache payload: %w", err)
	}

	_, err = c.db.ExecContext(ctx, `
        INSERT INTO additive_cache (code, payload, cached_at)
        VALUES (?, ?, ?)
        ON CONFLICT(code) DO UPDATE SET payload = excluded.payload, cached_at = excluded.cached_at
    `, code, string(payload), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to write cache entry: %w", err)
	}

	return nil
}

// Close closes the underlying database.
func (c *SQLiteCache) Close() error {
	return c.db.Close()
}
