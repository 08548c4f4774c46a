// Package stats loads the per-region statistics document and serves
// defaulted lookups from it.
package stats

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"sort"
	"strings"
	"sync"
)

// Store holds the statistics document. It is loaded once and read-only
// afterwards; Get is safe for concurrent use.
type Store struct {
	mu          sync.RWMutex
	blobs       map[string]*Blob
	totalEvents int
	logger      *slog.Logger
}

// NewStore returns an empty store. A nil logger falls back to slog.Default.
func NewStore(logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{blobs: make(map[string]*Blob), logger: logger}
}

// Load reads the document from source, a file path or an http(s) URL. On
// any failure the store is left empty and the error is returned; callers
// treat it as a warning and carry on with defaults.
func (s *Store) Load(ctx context.Context, source string) error {
	data, err := readSource(ctx, source)
	if err != nil {
		s.reset()
		return fmt.Errorf("reading stats %s: %w", source, err)
	}
	if err := s.LoadBytes(data); err != nil {
		return fmt.Errorf("parsing stats %s: %w", source, err)
	}
	return nil
}

// LoadBytes parses a JSON document mapping region id to blob. A region
// whose blob cannot be decoded is skipped with a warning; a document that
// is not a JSON object empties the store and returns an error.
func (s *Store) LoadBytes(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		s.reset()
		return err
	}

	blobs := make(map[string]*Blob, len(raw))
	total := 0
	for id, msg := range raw {
		var b Blob
		if err := json.Unmarshal(msg, &b); err != nil {
			s.logger.Warn("skipping malformed region stats", "region", id, "error", err)
			continue
		}
		b.normalize()
		blobs[id] = &b
		total += len(b.Events)
	}

	s.mu.Lock()
	s.blobs = blobs
	s.totalEvents = total
	s.mu.Unlock()
	return nil
}

func (s *Store) reset() {
	s.mu.Lock()
	s.blobs = make(map[string]*Blob)
	s.totalEvents = 0
	s.mu.Unlock()
}

// Get returns the blob for regionID, or a defaulted empty blob when the
// region is absent. The returned value must not be modified.
func (s *Store) Get(regionID string) *Blob {
	s.mu.RLock()
	b, ok := s.blobs[regionID]
	s.mu.RUnlock()
	if !ok {
		return Empty()
	}
	return b
}

// Has reports whether the document carried an entry for regionID.
func (s *Store) Has(regionID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.blobs[regionID]
	return ok
}

// Regions returns the region ids present in the document, sorted.
func (s *Store) Regions() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.blobs))
	for id := range s.blobs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// TotalEvents is the number of events across all regions.
func (s *Store) TotalEvents() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.totalEvents
}

func readSource(ctx context.Context, source string) ([]byte, error) {
	if source == "" {
		return nil, fmt.Errorf("no source configured")
	}
	if !strings.HasPrefix(source, "http://") && !strings.HasPrefix(source, "https://") {
		return os.ReadFile(source)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	return io.ReadAll(resp.Body)
}
