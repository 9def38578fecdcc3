// Package storage holds generated PDFs in memory for a short window so
// HTTP clients can fetch them by ID. Artifacts expire after a TTL and are
// reclaimed both lazily on lookup and by a periodic sweeper.
package storage

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/docfoundry/docgen-mcp/logger"
)

// Defaults applied when the configuration leaves them unset
const (
	DefaultTTL           = time.Hour
	DefaultSweepInterval = 5 * time.Minute
)

// StoredArtifact is a generated PDF plus its delivery metadata
type StoredArtifact struct {
	ID        uuid.UUID
	Data      []byte
	Filename  string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// expired reports whether the artifact's lifetime has passed. Expiry is
// inclusive: an artifact at exactly ExpiresAt is gone.
func (a StoredArtifact) expired(now time.Time) bool {
	return !now.Before(a.ExpiresAt)
}

// ArtifactStore is a concurrency-safe in-memory artifact cache keyed by
// random UUID. An expired artifact is indistinguishable from one that
// never existed.
type ArtifactStore struct {
	mu        sync.RWMutex
	artifacts map[uuid.UUID]StoredArtifact
	ttl       time.Duration
	now       func() time.Time
}

// NewArtifactStore creates an empty store. A non-positive ttl falls back
// to DefaultTTL.
func NewArtifactStore(ttl time.Duration) *ArtifactStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &ArtifactStore{
		artifacts: make(map[uuid.UUID]StoredArtifact),
		ttl:       ttl,
		now:       time.Now,
	}
}

// TTL returns the artifact lifetime
func (s *ArtifactStore) TTL() time.Duration {
	return s.ttl
}

// Store copies the data into the store under a fresh ID and returns it
func (s *ArtifactStore) Store(data []byte, filename string) uuid.UUID {
	id := uuid.New()
	now := s.now()

	owned := make([]byte, len(data))
	copy(owned, data)

	s.mu.Lock()
	s.artifacts[id] = StoredArtifact{
		ID:        id,
		Data:      owned,
		Filename:  filename,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}
	s.mu.Unlock()

	logger.Debugw("artifact stored", "id", id, "filename", filename, "bytes", len(data))
	return id
}

// Retrieve returns a copy of the artifact for id if it exists and has not
// expired. The data is copied out so callers cannot write through to the
// stored bytes; reads stay repeatable until expiry. An expired entry found
// during lookup is evicted on the spot.
func (s *ArtifactStore) Retrieve(id uuid.UUID) (StoredArtifact, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	artifact, ok := s.artifacts[id]
	if !ok {
		return StoredArtifact{}, false
	}
	if artifact.expired(s.now()) {
		delete(s.artifacts, id)
		return StoredArtifact{}, false
	}

	out := artifact
	out.Data = make([]byte, len(artifact.Data))
	copy(out.Data, artifact.Data)
	return out, true
}

// Sweep removes every expired artifact and returns how many were removed
func (s *ArtifactStore) Sweep() int {
	now := s.now()

	s.mu.Lock()
	removed := 0
	for id, artifact := range s.artifacts {
		if artifact.expired(now) {
			delete(s.artifacts, id)
			removed++
		}
	}
	s.mu.Unlock()

	if removed > 0 {
		logger.Debugw("artifact sweep completed", "removed", removed)
	}
	return removed
}

// Count returns the number of stored artifacts, expired or not
func (s *ArtifactStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.artifacts)
}

// StartSweeper runs Sweep every interval until ctx is cancelled. A
// non-positive interval falls back to DefaultSweepInterval.
func (s *ArtifactStore) StartSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				logger.Debugw("artifact sweeper stopped")
				return
			case <-ticker.C:
				s.Sweep()
			}
		}
	}()
}
