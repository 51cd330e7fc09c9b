package repo

import (
	"context"

	"github.com/rodyd137/loteria-push/internal/biz/domain"
)

// StateRepo persists the identity-key to last-seen-date map between runs.
type StateRepo interface {
	// Load reads the previous run's map. Absent or corrupt state loads as an
	// empty map, never an error: losing state only risks re-notification.
	Load(ctx context.Context) domain.StateMap

	// Save overwrites the persisted state with m.
	Save(ctx context.Context, m domain.StateMap) error
}
