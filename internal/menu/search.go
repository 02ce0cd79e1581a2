package menu

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Match is a quick-open search hit.
type Match struct {
	Name     string
	Group    string
	Distance int
	// Substring hits always rank ahead of fuzzy ones.
	Substring bool
}

// Search ranks the openable names against query. Names containing the
// query come first, in menu order; the rest follow by edit distance to the
// closest same-length window of the name. limit <= 0 means no limit. An
// empty query returns nothing.
func (t Tree) Search(query string, limit int) []Match {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	maxDist := len([]rune(q)) / 2
	if maxDist < 1 {
		maxDist = 1
	}

	var matches []Match
	for _, item := range t.Items {
		names := item.Children
		if !item.HasChildren() {
			names = []string{item.Name}
		}
		for _, name := range names {
			lower := strings.ToLower(name)
			if strings.Contains(lower, q) {
				matches = append(matches, Match{Name: name, Group: item.Name, Substring: true})
				continue
			}
			if d := windowDistance(lower, q); d <= maxDist {
				matches = append(matches, Match{Name: name, Group: item.Name, Distance: d})
			}
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Substring != matches[j].Substring {
			return matches[i].Substring
		}
		return matches[i].Distance < matches[j].Distance
	})
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}

// windowDistance is the smallest edit distance between q and any run of
// len(q) runes in s, so short queries are not penalised for long names.
func windowDistance(s, q string) int {
	sr := []rune(s)
	n := len([]rune(q))
	if len(sr) <= n {
		return levenshtein.ComputeDistance(s, q)
	}
	best := n
	for i := 0; i+n <= len(sr); i++ {
		if d := levenshtein.ComputeDistance(string(sr[i:i+n]), q); d < best {
			best = d
			if best == 0 {
				break
			}
		}
	}
	return best
}
