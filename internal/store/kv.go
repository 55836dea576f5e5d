package store

import (
	"database/sql"
	"encoding/json"
	"sync"
)

// Storage slot keys. These are the durable names of each persisted record;
// changing one orphans existing data.
const (
	UsersKey         = "auth_users"
	SessionKey       = "auth_session"
	RememberEmailKey = "auth_remember_email"
	SearchHistoryKey = "movie_search_history"
	WishlistKey      = "movie_wishlist"
)

// schemaVersion tags every persisted blob so the format can evolve safely.
const schemaVersion = 1

// KV is the persistence port all stores depend on. Get reports absence via
// the boolean rather than an error; backends are expected to be synchronous.
type KV interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte) error
	Remove(key string) error
}

// envelope wraps a persisted value with its schema version.
type envelope struct {
	Version int             `json:"version"`
	Data    json.RawMessage `json:"data"`
}

// getJSON decodes the value at key into out. Missing keys, malformed JSON and
// unknown versions all leave out untouched and report false; persisted state
// is advisory, never authoritative.
func getJSON(kv KV, key string, out any) bool {
	raw, ok := kv.Get(key)
	if !ok {
		return false
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil || env.Version != schemaVersion {
		return false
	}

	if err := json.Unmarshal(env.Data, out); err != nil {
		return false
	}

	return true
}

// setJSON encodes v under the current schema version and writes it to key.
func setJSON(kv KV, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}

	raw, err := json.Marshal(envelope{Version: schemaVersion, Data: data})
	if err != nil {
		return err
	}

	return kv.Set(key, raw)
}

// SQLiteKV is the durable KV backend: one row per slot in the kv table
// created by the embedded migrations.
type SQLiteKV struct {
	db *sql.DB
}

// NewSQLiteKV creates a SQLiteKV over an open database connection.
func NewSQLiteKV(db *sql.DB) *SQLiteKV {
	return &SQLiteKV{db: db}
}

// Get returns the value stored at key, reporting absence via the boolean.
func (s *SQLiteKV) Get(key string) ([]byte, bool) {
	var value string
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if err != nil {
		return nil, false
	}
	return []byte(value), true
}

// Set upserts the value at key.
func (s *SQLiteKV) Set(key string, value []byte) error {
	_, err := s.db.Exec(`
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`, key, string(value))
	return err
}

// Remove deletes the value at key. Removing an absent key is not an error.
func (s *SQLiteKV) Remove(key string) error {
	_, err := s.db.Exec("DELETE FROM kv WHERE key = ?", key)
	return err
}

// MemoryKV is an in-memory KV backend for tests.
type MemoryKV struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

// NewMemoryKV creates an empty MemoryKV.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{slots: make(map[string][]byte)}
}

func (m *MemoryKV) Get(key string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.slots[key]
	return value, ok
}

func (m *MemoryKV) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slots[key] = value
	return nil
}

func (m *MemoryKV) Remove(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.slots, key)
	return nil
}
