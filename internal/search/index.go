// Package search answers autocomplete queries over gene names.
package search

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// Index matches queries against a fixed list of names. A nil *Index behaves
// like an index over an unloaded dataset and matches nothing.
type Index struct {
	names []string
	lower []string
}

// New builds an Index; names keep their given order in every result.
func New(names []string) *Index {
	ix := &Index{
		names: append([]string(nil), names...),
		lower: make([]string, len(names)),
	}
	for i, n := range names {
		ix.lower[i] = strings.ToLower(n)
	}
	return ix
}

// Query returns every name containing text, ignoring case. Surrounding
// whitespace is trimmed first, so " a" matches like "a" and a padded query
// never requires the name itself to contain the spaces. An empty query
// returns all names.
func (ix *Index) Query(text string) []string {
	if ix == nil {
		return nil
	}
	q := strings.ToLower(strings.TrimSpace(text))
	if q == "" {
		return append([]string(nil), ix.names...)
	}

	var matches []string
	for i, l := range ix.lower {
		if strings.Contains(l, q) {
			matches = append(matches, ix.names[i])
		}
	}
	return matches
}

// Fuzzy ranks names by fuzzy similarity to text, best first. It tolerates
// gaps between the query characters, so "brc" finds "BRCA1".
func (ix *Index) Fuzzy(text string) []string {
	if ix == nil {
		return nil
	}
	q := strings.TrimSpace(text)
	if q == "" {
		return append([]string(nil), ix.names...)
	}

	matches := fuzzy.Find(q, ix.names)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.Str)
	}
	return out
}

func (ix *Index) Len() int {
	if ix == nil {
		return 0
	}
	return len(ix.names)
}
