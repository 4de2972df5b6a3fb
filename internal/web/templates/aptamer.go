package templates

import (
	"context"
	"io"
	"strconv"

	"github.com/JonMunkholm/aptadb/internal/core"
	"github.com/a-h/templ"
)

// AptamerDetail renders every field of one record.
func AptamerDetail(r core.Record) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &html{w: w}
		h.raw(`<section class="aptamer"><h1>`)
		h.text(r.SequenceID)
		h.raw(` `)
		h.tag("span", levelClass(r.Level), string(r.Level))
		if r.Best {
			h.tag("span", "badge best", "best")
		}
		h.raw(`</h1>`)

		h.raw(`<h2>Aptamer</h2><pre class="sequence">`)
		h.text(orNA(r.Sequence))
		h.raw(`</pre><dl class="facts">`)
		fact(h, "pKd", formatPKd(r.PKd))
		fact(h, "Affinity", orNA(r.Affinity))
		fact(h, "Buffer condition", orNA(r.BufferCondition))
		h.raw(`</dl>`)

		h.raw(`<h2>Target</h2><dl class="facts"><dt>Name</dt><dd>`)
		h.link(TargetURL(r.TargetName, ""), r.TargetName, "")
		h.raw(`</dd>`)
		fact(h, "Type", r.TargetType)
		fact(h, "Gene symbol", orNA(r.GeneSymbol))
		if r.ExternalID != "" {
			fact(h, "External ID", r.ExternalID+" ("+orNA(r.IDType)+")")
		}
		if r.ExternalName != "" {
			fact(h, "External name", r.ExternalName)
		}
		h.raw(`</dl>`)

		h.raw(`<h2>Publication</h2><dl class="facts">`)
		fact(h, "Title", r.ArticleTitle)
		fact(h, "Journal", orNA(r.Journal))
		fact(h, "Year", formatYear(r.Year))
		h.raw(`<dt>DOI</dt><dd>`)
		if r.DOI != "" {
			h.link(DOIURL(r.DOI), r.DOI, "external")
		} else {
			h.text("n/a")
		}
		h.raw(`</dd></dl></section>`)
		return h.err
	})
	return Layout(r.SequenceID+" ("+r.TargetName+")", "", body)
}

// ErrorPage renders a full-page error with its support code.
func ErrorPage(status int, message, action, code string) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &html{w: w}
		h.raw(`<section class="error-page">`)
		h.tag("p", "status", strconv.Itoa(status))
		h.render(ctx, ErrorAlert(message, action, code))
		h.raw(`<p>`)
		h.link("/", "Back to search", "")
		h.raw(`</p></section>`)
		return h.err
	})
	return Layout(message, "", body)
}

// ErrorAlert renders a user-facing error with its action and code.
func ErrorAlert(message, action, code string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &html{w: w}
		h.raw(`<div class="alert alert-error" role="alert">`)
		h.tag("strong", "", message)
		if action != "" {
			h.tag("p", "", action)
		}
		if code != "" {
			h.tag("small", "code", "Code: "+code)
		}
		h.raw(`</div>`)
		return h.err
	})
}
