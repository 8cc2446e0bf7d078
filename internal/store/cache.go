package store

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"coschooldata/internal/domain"
)

// ErrCacheMiss reports that no fresh payload exists for a key.
var ErrCacheMiss = errors.New("cache miss")

const schema = `
CREATE TABLE IF NOT EXISTS frames (
    key        TEXT PRIMARY KEY,
    fn         TEXT NOT NULL,
    payload    BLOB NOT NULL,
    fetched_at INTEGER NOT NULL
);
`

// Cache persists raw bridge payloads in SQLite, keyed by call signature.
// Entries older than the TTL count as misses and are overwritten on the
// next Put.
type Cache struct {
	db  *sql.DB
	ttl time.Duration
	now func() time.Time
}

// Open opens (and if needed creates) the cache database at path.
// A non-positive ttl means entries never expire.
func Open(path string, ttl time.Duration) (*Cache, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("cache path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open cache db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping cache db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ensure cache schema: %w", err)
	}
	return &Cache{db: db, ttl: ttl, now: time.Now}, nil
}

// Close closes the SQLite handle.
func (c *Cache) Close() error {
	if c == nil || c.db == nil {
		return nil
	}
	return c.db.Close()
}

// Get returns the cached payload for key, or ErrCacheMiss when absent or
// stale.
func (c *Cache) Get(ctx context.Context, key string) (json.RawMessage, error) {
	var payload []byte
	var fetchedAt int64
	err := c.db.QueryRowContext(ctx,
		`SELECT payload, fetched_at FROM frames WHERE key = ?`, key,
	).Scan(&payload, &fetchedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("read cache: %w", err)
	}
	if c.ttl > 0 && c.now().Sub(time.UnixMilli(fetchedAt)) > c.ttl {
		return nil, ErrCacheMiss
	}
	return json.RawMessage(payload), nil
}

// Put stores the payload for key, replacing any previous entry.
func (c *Cache) Put(ctx context.Context, key string, payload []byte) error {
	fn, _, _ := strings.Cut(key, ":")
	_, err := c.db.ExecContext(ctx,
		`INSERT INTO frames (key, fn, payload, fetched_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET payload = excluded.payload, fetched_at = excluded.fetched_at`,
		key, fn, payload, c.now().UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("write cache: %w", err)
	}
	return nil
}

// Prune deletes expired entries and reports how many went away.
func (c *Cache) Prune(ctx context.Context) (int64, error) {
	if c.ttl <= 0 {
		return 0, nil
	}
	cutoff := c.now().Add(-c.ttl).UTC().UnixMilli()
	res, err := c.db.ExecContext(ctx, `DELETE FROM frames WHERE fetched_at < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("prune cache: %w", err)
	}
	return res.RowsAffected()
}

// Key derives a stable cache key for one call signature. The function name
// stays readable as a prefix; arguments collapse into a digest.
func Key(fn string, args []any, named map[string]any) string {
	sig, err := json.Marshal(struct {
		Args  []any          `json:"args"`
		Named map[string]any `json:"named"`
	}{Args: args, Named: named})
	if err != nil {
		// Unmarshalable arguments still need a stable key.
		sig = []byte(fmt.Sprintf("%#v/%#v", args, named))
	}
	sum := sha256.Sum256(sig)
	return fn + ":" + hex.EncodeToString(sum[:16])
}

// Compile-time assertion that Cache implements domain.FrameCache.
var _ domain.FrameCache = (*Cache)(nil)
