package usecase

import (
	"github.com/rodyd137/loteria-push/internal/biz/domain"
)

// Detector computes which draw series produced a new result today.
type Detector struct {
	keys *domain.Normalizer
	cal  *domain.Calendar
}

// NewDetector creates a new Detector
func NewDetector(keys *domain.Normalizer, cal *domain.Calendar) *Detector {
	return &Detector{keys: keys, cal: cal}
}

// Detect builds the current key-to-date map from the feed snapshot and
// returns it together with the series whose date moved to today and differs
// from the previously persisted date.
//
// Draws are visited in feed order. When several records collapse onto one
// identity key the last record's date wins, while the representative draw
// attached to a change is the first record carrying that key. Clients of the
// original pipeline depend on the first record's display fields, so the
// asymmetry is kept.
func (d *Detector) Detect(draws []domain.Draw, prev domain.StateMap) (domain.StateMap, []domain.Change) {
	current := make(domain.StateMap, len(draws))
	order := make([]string, 0, len(draws))
	for _, draw := range draws {
		ymd, ok := d.cal.CanonicalDate(draw.Date)
		if !ok {
			continue
		}
		key := d.keys.FavKey(draw)
		if _, seen := current[key]; !seen {
			order = append(order, key)
		}
		current[key] = ymd
	}

	today := d.cal.Today()
	var changes []domain.Change
	for _, key := range order {
		ymd := current[key]
		if ymd != today || prev[key] == ymd {
			continue
		}
		for _, draw := range draws {
			if d.keys.FavKey(draw) == key {
				changes = append(changes, domain.Change{FavKey: key, Date: ymd, Draw: draw})
				break
			}
		}
	}
	return current, changes
}
