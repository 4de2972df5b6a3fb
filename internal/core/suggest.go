package core

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// DefaultSuggestLimit is how many target names Suggest returns by default.
const DefaultSuggestLimit = 5

// suggestion is one fuzzy-matchable string and the target it points to.
type suggestion struct {
	text   string
	target string
}

// suggestSource implements fuzzy.Source over target names and gene symbols.
type suggestSource []suggestion

func (s suggestSource) String(i int) string { return s[i].text }
func (s suggestSource) Len() int            { return len(s) }

// Suggest returns up to limit target names that fuzzily match query,
// best match first. Gene symbols match too and resolve to their target.
// Used to offer "did you mean" links when a search finds nothing.
func Suggest(records []Record, query string, limit int) []string {
	q := strings.TrimSpace(query)
	if q == "" || limit <= 0 {
		return nil
	}

	var src suggestSource
	seen := make(map[string]struct{})
	for _, r := range records {
		for _, text := range []string{r.TargetName, r.GeneSymbol} {
			if text == "" {
				continue
			}
			key := text + "\x00" + r.TargetName
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			src = append(src, suggestion{text: text, target: r.TargetName})
		}
	}

	var out []string
	picked := make(map[string]struct{})
	for _, m := range fuzzy.FindFrom(q, src) {
		target := src[m.Index].target
		if _, ok := picked[target]; ok {
			continue
		}
		picked[target] = struct{}{}
		out = append(out, target)
		if len(out) == limit {
			break
		}
	}
	return out
}
