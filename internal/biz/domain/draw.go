package domain

import (
	"encoding/json"
	"strings"
)

// Draw is one lottery result record from the upstream feed.
// Only Provider, Game, Edition and Date participate in identity; the
// remaining fields ride along into the notification payload unchanged.
type Draw struct {
	Provider string  `json:"provider"`
	Game     string  `json:"game"`
	Edition  string  `json:"edition,omitempty"`
	Date     string  `json:"date"`
	Numbers  Numbers `json:"numbers,omitempty"`

	// Slugs and draw times published by the scraper. Carried through for
	// clients; never consulted by change detection.
	ProviderID string `json:"provider_id,omitempty"`
	GameID     string `json:"game_id,omitempty"`
	Time       string `json:"time,omitempty"`
	DateTime   string `json:"date_time,omitempty"`
}

// StateMap maps an identity key to the last canonical date seen for it.
type StateMap map[string]string

// Change is one draw series whose result date moved to today.
type Change struct {
	FavKey string
	Date   string
	Draw   Draw
}

// Numbers holds drawn numbers as strings. The live feed emits zero-padded
// strings ("06"), older snapshots bare integers; both decode here and values
// are kept exactly as received.
type Numbers []string

// UnmarshalJSON accepts an array mixing JSON strings and numbers.
func (n *Numbers) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(Numbers, 0, len(raw))
	for _, item := range raw {
		var s string
		if err := json.Unmarshal(item, &s); err == nil {
			out = append(out, s)
			continue
		}
		var num json.Number
		if err := json.Unmarshal(item, &num); err != nil {
			return err
		}
		out = append(out, num.String())
	}
	*n = out
	return nil
}

// Join renders the numbers for a notification body, two spaces apart.
func (n Numbers) Join() string {
	return strings.Join(n, "  ")
}
