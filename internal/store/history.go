package store

import (
	"strings"

	"github.com/charmbracelet/log"
)

// MaxHistory caps the recent-queries list; older entries are silently evicted.
const MaxHistory = 8

// SearchHistory keeps the bounded recent-queries list, most recent first.
// The in-memory copy is the source of truth for a run; it hydrates once at
// construction and writes through on every mutation.
type SearchHistory struct {
	kv      KV
	logger  *log.Logger
	queries []string
}

// NewSearchHistory creates a SearchHistory hydrated from the given backend.
func NewSearchHistory(kv KV, logger *log.Logger) *SearchHistory {
	h := &SearchHistory{kv: kv, logger: logger}
	getJSON(kv, SearchHistoryKey, &h.queries)
	return h
}

func (h *SearchHistory) persist() {
	if err := setJSON(h.kv, SearchHistoryKey, h.queries); err != nil && h.logger != nil {
		h.logger.Warn("failed to persist search history", "error", err)
	}
}

// Add records a query at the front of the history. Blank input is a no-op;
// an existing equal entry moves to the front instead of duplicating.
func (h *SearchHistory) Add(query string) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return
	}

	next := make([]string, 0, len(h.queries)+1)
	next = append(next, trimmed)
	for _, q := range h.queries {
		if q != trimmed {
			next = append(next, q)
		}
	}

	if len(next) > MaxHistory {
		next = next[:MaxHistory]
	}

	h.queries = next
	h.persist()
}

// Remove deletes all entries equal to query.
func (h *SearchHistory) Remove(query string) {
	next := h.queries[:0]
	for _, q := range h.queries {
		if q != query {
			next = append(next, q)
		}
	}
	h.queries = next
	h.persist()
}

// Clear empties the history.
func (h *SearchHistory) Clear() {
	h.queries = nil
	h.persist()
}

// Queries returns a copy of the history, most recent first.
func (h *SearchHistory) Queries() []string {
	out := make([]string, len(h.queries))
	copy(out, h.queries)
	return out
}
