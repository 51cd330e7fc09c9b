package data

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/rodyd137/loteria-push/internal/biz/domain"
	"github.com/rodyd137/loteria-push/internal/biz/repo"
)

// stateRepo persists the identity-key to date map as a JSON object file
type stateRepo struct {
	path string
	log  *logrus.Logger
}

// NewStateRepo creates a new state repository
func NewStateRepo(path string, log *logrus.Logger) repo.StateRepo {
	return &stateRepo{path: path, log: log}
}

// Load reads the previous run's map. A missing file is a normal first run;
// an unreadable or corrupt file is logged at a higher level but handled the
// same way. Both load as an empty map so the run proceeds, at worst
// re-notifying for today.
func (r *stateRepo) Load(ctx context.Context) domain.StateMap {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			r.log.WithField("path", r.path).Debug("no previous state, starting empty")
		} else {
			r.log.WithError(err).WithField("path", r.path).Warn("state file unreadable, starting empty")
		}
		return domain.StateMap{}
	}

	var m domain.StateMap
	if err := json.Unmarshal(data, &m); err != nil {
		r.log.WithError(err).WithField("path", r.path).Warn("state file corrupt, starting empty")
		return domain.StateMap{}
	}
	if m == nil {
		m = domain.StateMap{}
	}
	return m
}

// Save overwrites the state file, creating the containing directory on the
// first run. The map is written indented with sorted keys so diffs between
// runs stay readable.
func (r *stateRepo) Save(ctx context.Context, m domain.StateMap) error {
	if err := os.MkdirAll(filepath.Dir(r.path), 0755); err != nil {
		return fmt.Errorf("create state directory: %w", err)
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}

	if err := os.WriteFile(r.path, data, 0644); err != nil {
		return fmt.Errorf("write state file: %w", err)
	}
	return nil
}
