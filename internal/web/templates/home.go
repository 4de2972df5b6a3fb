package templates

import (
	"context"
	"io"
	"strconv"

	"github.com/JonMunkholm/aptadb/internal/core"
	"github.com/a-h/templ"
)

// HomeParams holds the data for the landing page.
type HomeParams struct {
	Stats    core.DatasetStats
	Info     core.LoadInfo
	Examples []string // Target names offered as example searches
}

// Home renders the landing page: search box and dataset statistics.
func Home(p HomeParams) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &html{w: w}
		h.raw(`<section class="hero"><h1>Aptamer Database</h1>`)
		h.raw(`<p>Search curated aptamer-target binding records by target name, gene symbol, or sequence.</p>`)
		h.render(ctx, SearchForm("", true))

		if len(p.Examples) > 0 {
			h.raw(`<p class="examples">Try: `)
			for i, name := range p.Examples {
				if i > 0 {
					h.raw(", ")
				}
				h.link(SearchURL(name), name, "")
			}
			h.raw(`</p>`)
		}
		h.raw(`</section>`)

		if p.Info.Fallback {
			h.render(ctx, Notice("The configured data source could not be read. Showing built-in sample records."))
		}

		h.raw(`<section class="stats">`)
		stat(h, "Sequences", strconv.Itoa(p.Stats.Sequences))
		stat(h, "Targets", strconv.Itoa(p.Stats.Targets))
		stat(h, "Affinity-validated", strconv.Itoa(p.Stats.AffinityValidated))
		stat(h, "Curated records", strconv.Itoa(p.Stats.Records))
		stat(h, "Years covered", yearRange(p.Stats.YearMin, p.Stats.YearMax))
		h.raw(`</section>`)

		h.raw(`<section class="levels"><h2>Records by level</h2><ul>`)
		for _, l := range core.Levels {
			h.raw(`<li>`)
			h.tag("span", levelClass(l), string(l))
			h.text(" " + strconv.Itoa(p.Stats.ByLevel[l]))
			h.raw(`</li>`)
		}
		h.raw(`</ul></section>`)
		return h.err
	})
	return Layout("Home", "", body)
}

func stat(h *html, label, value string) {
	h.raw(`<div class="stat">`)
	h.tag("span", "stat-value", value)
	h.tag("span", "stat-label", label)
	h.raw(`</div>`)
}

// Notice renders an informational banner.
func Notice(message string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &html{w: w}
		h.raw(`<div class="notice" role="status">`)
		h.text(message)
		h.raw(`</div>`)
		return h.err
	})
}
