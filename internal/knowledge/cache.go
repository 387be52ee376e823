// ABOUTME: SQLite-backed page cache so scraped knowledge survives restarts
// ABOUTME: Entries older than the TTL are treated as absent and purged on store

package knowledge

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Cache persists scraped page content with a freshness TTL.
type Cache struct {
	db  *sql.DB
	ttl time.Duration
	now func() time.Time
}

const cacheSchema = `
CREATE TABLE IF NOT EXISTS pages (
	name        TEXT PRIMARY KEY,
	content     TEXT NOT NULL,
	fetched_at  INTEGER NOT NULL
);`

// OpenCache opens or creates the cache database at path.
func OpenCache(path string, ttl time.Duration) (*Cache, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening cache db: %w", err)
	}
	if _, err := db.Exec(cacheSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating cache schema: %w", err)
	}
	return &Cache{db: db, ttl: ttl, now: time.Now}, nil
}

// LoadPages returns every cached page still within the TTL.
func (c *Cache) LoadPages() (map[string]string, error) {
	cutoff := c.now().Add(-c.ttl).Unix()

	rows, err := c.db.Query(`SELECT name, content FROM pages WHERE fetched_at > ?`, cutoff)
	if err != nil {
		return nil, fmt.Errorf("querying cache: %w", err)
	}
	defer rows.Close()

	pages := make(map[string]string)
	for rows.Next() {
		var name, content string
		if err := rows.Scan(&name, &content); err != nil {
			return nil, fmt.Errorf("scanning cache row: %w", err)
		}
		pages[name] = content
	}
	return pages, rows.Err()
}

// StorePages upserts the given pages with the current timestamp and
// drops anything that has aged out.
func (c *Cache) StorePages(pages map[string]string) error {
	now := c.now()

	tx, err := c.db.Begin()
	if err != nil {
		return fmt.Errorf("starting cache tx: %w", err)
	}
	defer tx.Rollback()

	for name, content := range pages {
		_, err := tx.Exec(
			`INSERT INTO pages (name, content, fetched_at) VALUES (?, ?, ?)
			 ON CONFLICT(name) DO UPDATE SET content = excluded.content, fetched_at = excluded.fetched_at`,
			name, content, now.Unix(),
		)
		if err != nil {
			return fmt.Errorf("storing page %s: %w", name, err)
		}
	}
	if _, err := tx.Exec(`DELETE FROM pages WHERE fetched_at <= ?`, now.Add(-c.ttl).Unix()); err != nil {
		return fmt.Errorf("purging stale pages: %w", err)
	}
	return tx.Commit()
}

func (c *Cache) Close() error { return c.db.Close() }
