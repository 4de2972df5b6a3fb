package templates

import (
	"context"
	"io"
	"strconv"

	"github.com/JonMunkholm/aptadb/internal/core"
	"github.com/a-h/templ"
)

// SearchParams holds the data for the search results page.
type SearchParams struct {
	Query       string
	Groups      []core.TargetGroup
	Suggestions []string // Offered only when Groups is empty
}

// SearchResults renders one card per matching target.
func SearchResults(p SearchParams) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &html{w: w}

		if p.Query == "" {
			h.raw(`<section class="results-empty"><p>Enter a target name, gene symbol, or sequence to search.</p></section>`)
			return h.err
		}

		h.raw(`<section class="results"><h1>Results for "`)
		h.text(p.Query)
		h.raw(`"</h1>`)

		if len(p.Groups) == 0 {
			h.raw(`<p class="results-count">No targets match.</p>`)
			if len(p.Suggestions) > 0 {
				h.raw(`<p class="suggestions">Did you mean: `)
				for i, name := range p.Suggestions {
					if i > 0 {
						h.raw(", ")
					}
					h.link(SearchURL(name), name, "")
				}
				h.raw(`?</p>`)
			}
			h.raw(`</section>`)
			return h.err
		}

		h.raw(`<p class="results-count">`)
		h.text(strconv.Itoa(len(p.Groups)) + " target(s)")
		h.raw(`</p>`)
		for _, g := range p.Groups {
			h.render(ctx, TargetCard(g))
		}
		h.raw(`</section>`)
		return h.err
	})
	return Layout("Search", p.Query, body)
}

// TargetCard summarizes one target group with its preview records.
func TargetCard(g core.TargetGroup) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &html{w: w}
		h.raw(`<article class="card"><header><h2>`)
		h.link(TargetURL(g.TargetName, ""), g.TargetName, "")
		h.raw(`</h2><p class="meta">`)
		h.text(g.TargetType)
		if g.GeneSymbol != "" {
			h.text(" | " + g.GeneSymbol)
		}
		h.text(" | " + yearRange(g.YearMin, g.YearMax))
		h.raw(`</p></header>`)

		h.render(ctx, LevelCounts(g))

		if len(g.PreviewRecords) > 0 {
			h.tag("h3", "preview-title", previewTitle(g.PreviewType))
			h.render(ctx, RecordTable(g.PreviewRecords, g.PreviewType != core.PreviewBC))
		}

		h.raw(`<p class="card-more">`)
		h.link(TargetURL(g.TargetName, ""), "View all "+strconv.Itoa(g.TotalAptamers)+" aptamers", "")
		h.raw(`</p></article>`)
		return h.err
	})
}

// LevelCounts renders the total and per-level counts of a group.
func LevelCounts(g core.TargetGroup) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &html{w: w}
		h.raw(`<ul class="counts"><li>`)
		h.text("Total " + strconv.Itoa(g.TotalAptamers))
		h.raw(`</li>`)
		for _, l := range core.Levels {
			if n := g.Count(l); n > 0 {
				h.raw(`<li>`)
				h.tag("span", levelClass(l), string(l))
				h.text(" " + strconv.Itoa(n))
				h.raw(`</li>`)
			}
		}
		h.raw(`</ul>`)
		return h.err
	})
}

func previewTitle(t core.PreviewTier) string {
	switch t {
	case core.PreviewP:
		return "Top P-level aptamers by pKd"
	case core.PreviewA:
		return "Top A-level aptamers by pKd"
	default:
		return "Most recent B/C-level aptamers"
	}
}

// RecordTable lists records; quantitative tables lead with pKd.
func RecordTable(recs []core.Record, quantitative bool) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &html{w: w}
		h.raw(`<table class="records"><thead><tr><th>Level</th><th>Sequence ID</th><th>Sequence</th>`)
		if quantitative {
			h.raw(`<th>pKd</th>`)
		}
		h.raw(`<th>Affinity</th><th>Year</th></tr></thead><tbody>`)
		for _, r := range recs {
			h.raw(`<tr><td>`)
			h.tag("span", levelClass(r.Level), string(r.Level))
			h.raw(`</td><td>`)
			h.link(RecordURL(r.ID), r.SequenceID, "")
			if r.Best {
				h.tag("span", "badge best", "best")
			}
			h.raw(`</td>`)
			h.tag("td", "sequence", r.Sequence)
			if quantitative {
				h.tag("td", "num", formatPKd(r.PKd))
			}
			h.tag("td", "", orNA(r.Affinity))
			h.tag("td", "num", formatYear(r.Year))
			h.raw(`</tr>`)
		}
		h.raw(`</tbody></table>`)
		return h.err
	})
}
