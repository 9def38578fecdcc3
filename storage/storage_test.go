package storage

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreAndRetrieve(t *testing.T) {
	s := NewArtifactStore(time.Hour)

	data := []byte("%PDF-1.7 fake")
	id := s.Store(data, "resume.pdf")

	artifact, ok := s.Retrieve(id)
	require.True(t, ok)
	assert.Equal(t, data, artifact.Data)
	assert.Equal(t, "resume.pdf", artifact.Filename)
	assert.Equal(t, id, artifact.ID)
	assert.Equal(t, time.Hour, artifact.ExpiresAt.Sub(artifact.CreatedAt))
}

func TestStoreCopiesData(t *testing.T) {
	s := NewArtifactStore(time.Hour)

	data := []byte("original")
	id := s.Store(data, "x.pdf")
	data[0] = 'X'

	artifact, ok := s.Retrieve(id)
	require.True(t, ok)
	assert.Equal(t, []byte("original"), artifact.Data)
}

func TestRetrieveCopiesData(t *testing.T) {
	s := NewArtifactStore(time.Hour)
	id := s.Store([]byte("original"), "x.pdf")

	first, ok := s.Retrieve(id)
	require.True(t, ok)
	first.Data[0] = 'X'

	// A caller's write through the returned slice must not reach the store
	second, ok := s.Retrieve(id)
	require.True(t, ok)
	assert.Equal(t, []byte("original"), second.Data)
}

func TestRetrieveUnknownID(t *testing.T) {
	s := NewArtifactStore(time.Hour)

	_, ok := s.Retrieve(uuid.New())
	assert.False(t, ok)
}

func TestRetrieveExpiredEvicts(t *testing.T) {
	s := NewArtifactStore(time.Hour)
	id := s.Store([]byte("data"), "x.pdf")

	// Advance the clock past expiry
	s.now = func() time.Time { return time.Now().Add(2 * time.Hour) }

	_, ok := s.Retrieve(id)
	assert.False(t, ok)
	assert.Equal(t, 0, s.Count())
}

func TestExpiryIsInclusive(t *testing.T) {
	s := NewArtifactStore(time.Hour)
	base := time.Now()
	s.now = func() time.Time { return base }
	id := s.Store([]byte("data"), "x.pdf")

	s.now = func() time.Time { return base.Add(time.Hour) }
	_, ok := s.Retrieve(id)
	assert.False(t, ok, "artifact at exactly ExpiresAt should be gone")
}

func TestSweepRemovesOnlyExpired(t *testing.T) {
	s := NewArtifactStore(time.Hour)
	base := time.Now()

	s.now = func() time.Time { return base.Add(-2 * time.Hour) }
	s.Store([]byte("old"), "old.pdf")
	s.Store([]byte("old2"), "old2.pdf")

	s.now = func() time.Time { return base }
	fresh := s.Store([]byte("fresh"), "fresh.pdf")

	removed := s.Sweep()
	assert.Equal(t, 2, removed)
	assert.Equal(t, 1, s.Count())

	_, ok := s.Retrieve(fresh)
	assert.True(t, ok)
}

func TestConcurrentStoresGetDistinctIDs(t *testing.T) {
	s := NewArtifactStore(time.Hour)

	const n = 100
	ids := make(chan uuid.UUID, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids <- s.Store([]byte("data"), "x.pdf")
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[uuid.UUID]bool)
	for id := range ids {
		require.False(t, seen[id], "duplicate artifact ID %s", id)
		seen[id] = true
	}
	assert.Equal(t, n, s.Count())
}

func TestStartSweeper(t *testing.T) {
	s := NewArtifactStore(time.Hour)
	base := time.Now()
	s.now = func() time.Time { return base.Add(-2 * time.Hour) }
	s.Store([]byte("old"), "old.pdf")
	s.now = func() time.Time { return base }

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s.StartSweeper(ctx, 10*time.Millisecond)

	assert.Eventually(t, func() bool { return s.Count() == 0 },
		time.Second, 5*time.Millisecond)
}
