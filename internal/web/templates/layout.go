package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Layout wraps page content in the shared document shell.
func Layout(title string, query string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &html{w: w}
		h.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.raw(`<title>`)
		h.text(title)
		h.raw(` | AptaDB</title><link rel="stylesheet" href="/static/app.css"></head><body>`)

		h.raw(`<header class="site-header">`)
		h.link("/", "AptaDB", "brand")
		h.render(ctx, SearchForm(query, false))
		h.raw(`</header><main>`)
		h.render(ctx, body)
		h.raw(`</main><footer class="site-footer">Curated aptamer-target binding data</footer></body></html>`)
		return h.err
	})
}

// SearchForm renders the search box. large selects the landing-page variant.
func SearchForm(query string, large bool) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &html{w: w}
		class := "search"
		if large {
			class = "search search-large"
		}
		h.raw(`<form class="` + class + `" action="/search" method="get" role="search">`)
		h.raw(`<input type="search" name="q" placeholder="Target, gene symbol, or sequence" value="`)
		h.text(query)
		h.raw(`" aria-label="Search"><button type="submit">Search</button></form>`)
		return h.err
	})
}
