package templates

import (
	"context"
	"io"
	"strconv"

	"github.com/JonMunkholm/aptadb/internal/core"
	"github.com/a-h/templ"
)

// TargetParams holds the data for a target detail page.
type TargetParams struct {
	Group   core.TargetGroup
	Tab     core.Tab
	Tabs    []core.Tab
	Records []core.Record // Records of the active tab
}

// TargetDetail renders all aptamers of one target, filtered by tab.
func TargetDetail(p TargetParams) templ.Component {
	g := p.Group
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &html{w: w}
		h.raw(`<section class="target"><h1>`)
		h.text(g.TargetName)
		h.raw(`</h1><dl class="facts">`)
		fact(h, "Type", g.TargetType)
		fact(h, "Gene symbol", orNA(g.GeneSymbol))
		fact(h, "Years", yearRange(g.YearMin, g.YearMax))
		h.raw(`</dl>`)
		h.render(ctx, LevelCounts(g))

		h.raw(`<nav class="tabs">`)
		for _, t := range p.Tabs {
			label := string(t)
			if l, ok := t.Level(); ok {
				label += " (" + strconv.Itoa(g.Count(l)) + ")"
			} else {
				label += " (" + strconv.Itoa(g.TotalAptamers) + ")"
			}
			class := "tab"
			if t == p.Tab {
				class = "tab active"
			}
			h.link(TargetURL(g.TargetName, t), label, class)
		}
		h.raw(`</nav>`)

		if len(p.Records) == 0 {
			h.tag("p", "empty", "No aptamers at this level.")
		} else {
			h.render(ctx, RecordTable(p.Records, true))
		}
		h.raw(`</section>`)
		return h.err
	})
	return Layout(g.TargetName, "", body)
}

func fact(h *html, label, value string) {
	h.tag("dt", "", label)
	h.tag("dd", "", value)
}
