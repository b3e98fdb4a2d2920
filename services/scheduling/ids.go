package scheduling

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// maxMintAttempts bounds uuid collision retries before the timestamp
// fallback kicks in.
const maxMintAttempts = 10

// ExistsFunc reports whether an appointment id already exists in the store.
type ExistsFunc func(ctx context.Context, id string) (bool, error)

// IDMinter produces unique appointment ids. Each id is checked against the
// ids already minted in the current batch and against the external store;
// after maxMintAttempts collisions a timestamp-and-random suffix is appended
// to force uniqueness. Not safe for concurrent use: batch saves run
// strictly sequentially, so the memo is only ever touched by one caller.
type IDMinter struct {
	exists ExistsFunc
	minted map[string]struct{}
}

// NewIDMinter returns a minter backed by the given store existence check.
// A nil exists func skips the store lookup (ids are still unique within
// the batch).
func NewIDMinter(exists ExistsFunc) *IDMinter {
	return &IDMinter{
		exists: exists,
		minted: make(map[string]struct{}),
	}
}

// Reset clears the memo so a minter can be reused for an unrelated batch.
func (m *IDMinter) Reset() {
	m.minted = make(map[string]struct{})
}

// Mint returns a fresh unique appointment id.
func (m *IDMinter) Mint(ctx context.Context) string {
	for attempt := 0; attempt < maxMintAttempts; attempt++ {
		id := uuid.New().String()
		if _, taken := m.minted[id]; taken {
			continue
		}
		if m.exists != nil {
			inStore, err := m.exists(ctx, id)
			if err == nil && inStore {
				continue
			}
		}
		m.minted[id] = struct{}{}
		return id
	}

	// All attempts collided. Practically unreachable, but the fallback
	// guarantees uniqueness regardless.
	id := fmt.Sprintf("%s-%d-%04d", uuid.New().String(), time.Now().UnixNano(), rand.Intn(10000))
	m.minted[id] = struct{}{}
	return id
}
