// Package store implements the local persistence layer: a key-value port with
// SQLite and in-memory backends, and the stores built on it (credentials,
// session, search history, wishlist).
//
// Persisted values are versioned JSON blobs. Corrupt or missing data is never
// an error: every store hydrates to its empty state and keeps going. The
// in-memory copy is the source of truth during a run; every mutation writes
// through to the backend.
package store
