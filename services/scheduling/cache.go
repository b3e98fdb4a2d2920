package scheduling

import (
	"context"
	"sync"
	"time"

	"salonbook/models"
)

// defaultRefreshInterval is the minimum age before a non-forced read goes
// back to the store.
const defaultRefreshInterval = 5000 * time.Millisecond

// Mutation ops accepted by ApplyLocalMutation.
const (
	MutationAdd    = "add"
	MutationUpdate = "update"
	MutationDelete = "delete"
)

// FetchFunc loads the full appointment list from the external store.
type FetchFunc func(ctx context.Context) ([]models.Appointment, error)

// ReadResult is the outcome of a cache read. Data may be populated even
// when Success is false: a failed refresh falls back to stale cached data
// rather than surfacing a hard failure.
type ReadResult struct {
	Success bool                 `json:"success"`
	Data    []models.Appointment `json:"data,omitempty"`
	Err     string               `json:"error,omitempty"`
}

// SyncCache is a time-windowed read-through cache over the appointment
// store. It is explicitly constructed and injected by the composition root;
// all state lives behind one mutex, so local mutations never interleave
// with an in-flight refresh replacing the whole list.
type SyncCache struct {
	mu       sync.Mutex
	fetch    FetchFunc
	interval time.Duration
	now      func() time.Time

	data     []models.Appointment
	lastSync time.Time
}

// NewSyncCache builds a cache around the given store fetch. A non-positive
// interval selects the 5000ms default.
func NewSyncCache(fetch FetchFunc, interval time.Duration) *SyncCache {
	if interval <= 0 {
		interval = defaultRefreshInterval
	}
	return &SyncCache{
		fetch:    fetch,
		interval: interval,
		now:      time.Now,
	}
}

// Read returns the appointment list. Without force, a non-empty cache
// younger than the refresh interval is returned as-is with no store call.
// Otherwise the store is consulted; on failure stale data is returned when
// available, annotated with the error.
func (c *SyncCache) Read(ctx context.Context, force bool) ReadResult {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !force && len(c.data) > 0 && c.now().Sub(c.lastSync) < c.interval {
		return ReadResult{Success: true, Data: c.snapshot()}
	}

	fresh, err := c.fetch(ctx)
	if err != nil {
		if len(c.data) > 0 {
			return ReadResult{
				Success: false,
				Data:    c.snapshot(),
				Err:     "appointment refresh failed, serving cached data: " + err.Error(),
			}
		}
		return ReadResult{Success: false, Err: err.Error()}
	}

	c.data = fresh
	c.lastSync = c.now()
	return ReadResult{Success: true, Data: c.snapshot()}
}

// ApplyLocalMutation updates the cached list optimistically after a write,
// so callers see their own change before the next refresh. Add is a no-op
// when the id is already present, update when it is absent.
func (c *SyncCache) ApplyLocalMutation(op string, a models.Appointment) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch op {
	case MutationAdd:
		for _, cur := range c.data {
			if cur.ID == a.ID {
				return
			}
		}
		c.data = append(c.data, a)
	case MutationUpdate:
		for i, cur := range c.data {
			if cur.ID == a.ID {
				c.data[i] = a
				return
			}
		}
	case MutationDelete:
		for i, cur := range c.data {
			if cur.ID == a.ID {
				c.data = append(c.data[:i], c.data[i+1:]...)
				return
			}
		}
	}
}

// Invalidate clears the cache and its timestamp entirely.
func (c *SyncCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = nil
	c.lastSync = time.Time{}
}

func (c *SyncCache) snapshot() []models.Appointment {
	out := make([]models.Appointment, len(c.data))
	copy(out, c.data)
	return out
}

// CheckConsistency is a lightweight corruption detector over an appointment
// list: all ids unique, every record structurally populated. Not enforced
// automatically; callers invoke it opportunistically.
func CheckConsistency(list []models.Appointment) bool {
	seen := make(map[string]struct{}, len(list))
	for _, a := range list {
		if a.ID == "" || a.EmployeeID == 0 || a.Date == "" || a.Time == "" || a.Client == "" {
			return false
		}
		if _, dup := seen[a.ID]; dup {
			return false
		}
		seen[a.ID] = struct{}{}
	}
	return true
}
