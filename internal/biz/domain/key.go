package domain

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes to NFD and drops combining marks, so "Lotería"
// reduces to "Loteria". The transformer chain buffers internally, so a fresh
// one is built per call instead of shared.
func stripMarks(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// GameSubstitution is one literal replacement applied to a normalized game
// name. Substitutions run in table order.
type GameSubstitution struct {
	From string
	To   string
}

// EditionAlias maps recognized edition spellings onto one canonical edition.
type EditionAlias struct {
	Canonical string
	Aliases   []string
}

// KeyRules is the synonym rule table backing a Normalizer (value object).
type KeyRules struct {
	Games    []GameSubstitution
	Editions []EditionAlias
}

// Normalizer canonicalizes raw provider/game/edition strings into stable
// identity keys. All methods are pure and total.
type Normalizer struct {
	games    []GameSubstitution
	editions map[string]string
}

// NewNormalizer compiles the rule table into a Normalizer. When the same
// alias appears under two canonical editions, the first table entry wins.
func NewNormalizer(rules KeyRules) *Normalizer {
	editions := make(map[string]string)
	for _, rule := range rules.Editions {
		for _, alias := range rule.Aliases {
			if _, ok := editions[alias]; !ok {
				editions[alias] = rule.Canonical
			}
		}
	}
	return &Normalizer{games: rules.Games, editions: editions}
}

// Normalize strips diacritics, lowercases and trims surrounding whitespace.
func (n *Normalizer) Normalize(s string) string {
	return strings.TrimSpace(strings.ToLower(stripMarks(s)))
}

// GameKey normalizes a game name and collapses known synonym phrases, so
// "Quiniela Leidsa" and "Quiniela Loteka" both key as "quiniela".
func (n *Normalizer) GameKey(raw string) string {
	g := n.Normalize(raw)
	for _, sub := range n.games {
		g = strings.ReplaceAll(g, sub.From, sub.To)
	}
	return g
}

// CanonEdition maps recognized edition spellings onto one canonical form
// ("mediodia", "medio dia", "d" all become "dia"). Unrecognized editions pass
// through normalized but otherwise unchanged, so they stay distinguishable
// without being merged into a known edition.
func (n *Normalizer) CanonEdition(raw string) string {
	t := n.Normalize(raw)
	if t == "" {
		return ""
	}
	if canonical, ok := n.editions[t]; ok {
		return canonical
	}
	return t
}

// FavKey returns the identity key for a draw: provider, game and edition
// canonicalized and joined with "|". Two records naming the same series with
// different formatting produce the same key.
func (n *Normalizer) FavKey(d Draw) string {
	return n.Normalize(d.Provider) + "|" + n.GameKey(d.Game) + "|" + n.CanonEdition(d.Edition)
}

// TagKey derives the provider-side audience tag for an identity key: "fav_"
// plus the key with every run of non-alphanumerics collapsed to a single
// underscore, capped at 40 characters after the prefix. Truncation can merge
// very long keys; the subscribing client derives tags the same way, so both
// sides collide together.
func TagKey(favKey string) string {
	s := strings.ToLower(stripMarks(favKey))

	var b strings.Builder
	pendingSep := false
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingSep && b.Len() > 0 {
				b.WriteByte('_')
			}
			pendingSep = false
			b.WriteRune(r)
		} else {
			pendingSep = true
		}
	}

	base := b.String()
	if len(base) > 40 {
		base = strings.TrimRight(base[:40], "_")
	}
	return "fav_" + base
}
