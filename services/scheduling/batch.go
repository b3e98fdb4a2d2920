package scheduling

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"salonbook/models"
)

// defaultSavePause spaces out sequential store writes to reduce contention.
// A pacing knob, not a correctness requirement.
const defaultSavePause = 800 * time.Millisecond

// PersistFunc writes one appointment to the external store.
type PersistFunc func(ctx context.Context, a models.Appointment) error

// ProgressFunc is invoked after every save attempt with the running count.
type ProgressFunc func(saved, total int)

// FailedSave describes one record that could not be persisted.
type FailedSave struct {
	Date   string `json:"date"`
	Time   string `json:"time"`
	Client string `json:"client"`
	Reason string `json:"reason"`
}

// BatchResult aggregates a batch save.
type BatchResult struct {
	SavedCount  int          `json:"savedCount"`
	FailedSaves []FailedSave `json:"failedSaves,omitempty"`
}

// Summary renders the user-facing outcome, e.g. "3 appointments saved, 1 failed".
func (r BatchResult) Summary() string {
	if len(r.FailedSaves) == 0 {
		return fmt.Sprintf("%d appointments saved", r.SavedCount)
	}
	return fmt.Sprintf("%d appointments saved, %d failed", r.SavedCount, len(r.FailedSaves))
}

// BatchSaver persists a set of generated appointments strictly sequentially.
// One bad record never aborts the batch: failures are recorded and the next
// record is attempted. Sequential execution is deliberate - the id memo and
// the per-save pacing are not safe or meaningful under parallel saves.
// Id minting happens before SaveAll, against a minter created fresh for the
// batch; its memo lives and dies with that one operation.
type BatchSaver struct {
	Pause    time.Duration // delay between attempts; <0 disables, 0 selects the default
	Progress ProgressFunc
	Logger   *zap.Logger
}

// SaveAll attempts every appointment in input order. Cancellation is
// checked between iterations: the in-flight save completes and the
// remaining records are recorded as failed with the context error.
func (s *BatchSaver) SaveAll(ctx context.Context, appointments []models.Appointment, persistOne PersistFunc) BatchResult {
	pause := s.Pause
	if pause == 0 {
		pause = defaultSavePause
	}

	var result BatchResult
	total := len(appointments)

	for i, a := range appointments {
		if err := ctx.Err(); err != nil {
			for _, rest := range appointments[i:] {
				result.FailedSaves = append(result.FailedSaves, FailedSave{
					Date: rest.Date, Time: rest.Time, Client: rest.Client, Reason: err.Error(),
				})
			}
			break
		}

		if err := persistOne(ctx, a); err != nil {
			if s.Logger != nil {
				s.Logger.Warn("batch save: record failed",
					zap.String("appointmentID", a.ID),
					zap.String("date", a.Date),
					zap.Error(err))
			}
			result.FailedSaves = append(result.FailedSaves, FailedSave{
				Date: a.Date, Time: a.Time, Client: a.Client, Reason: err.Error(),
			})
		} else {
			result.SavedCount++
		}

		if s.Progress != nil {
			s.Progress(result.SavedCount, total)
		}

		if pause > 0 && i < total-1 {
			select {
			case <-time.After(pause):
			case <-ctx.Done():
			}
		}
	}
	return result
}
