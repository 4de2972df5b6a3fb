// Package templates holds the server-rendered page components.
//
// Components are plain templ.Component values built with templ.ComponentFunc.
// All dynamic text goes through templ.EscapeString and all dynamic links
// through templ.URL.
package templates

import (
	"context"
	"io"
	"net/url"
	"strconv"

	"github.com/JonMunkholm/aptadb/internal/core"
	"github.com/a-h/templ"
)

// html writes markup to w and remembers the first write error.
type html struct {
	w   io.Writer
	err error
}

// raw writes trusted markup.
func (h *html) raw(s string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, s)
}

// text writes escaped text.
func (h *html) text(s string) {
	h.raw(templ.EscapeString(s))
}

// link writes an anchor with a sanitized href and escaped label.
func (h *html) link(href string, label string, class string) {
	h.raw(`<a href="`)
	h.raw(templ.EscapeString(string(templ.URL(href))))
	h.raw(`"`)
	if class != "" {
		h.raw(` class="`)
		h.raw(class)
		h.raw(`"`)
	}
	h.raw(`>`)
	h.text(label)
	h.raw(`</a>`)
}

// tag writes <name class="...">text</name>.
func (h *html) tag(name, class, content string) {
	h.raw("<" + name)
	if class != "" {
		h.raw(` class="` + class + `"`)
	}
	h.raw(">")
	h.text(content)
	h.raw("</" + name + ">")
}

// render writes a nested component.
func (h *html) render(ctx context.Context, c templ.Component) {
	if h.err != nil || c == nil {
		return
	}
	h.err = c.Render(ctx, h.w)
}

// SearchURL links to the search page for q.
func SearchURL(q string) string {
	return "/search?q=" + url.QueryEscape(q)
}

// TargetURL links to a target's detail page, optionally on a tab.
func TargetURL(name string, tab core.Tab) string {
	v := url.Values{"name": {name}}
	if tab != "" {
		v.Set("tab", string(tab))
	}
	return "/target?" + v.Encode()
}

// RecordURL links to one record's detail page.
func RecordURL(id string) string {
	return "/aptamer/" + url.PathEscape(id)
}

// DOIURL resolves a DOI through doi.org.
func DOIURL(doi string) string {
	return "https://doi.org/" + doi
}

// formatPKd renders a pKd with two decimals, or "n/a" when missing.
func formatPKd(p *float64) string {
	if p == nil {
		return "n/a"
	}
	return strconv.FormatFloat(*p, 'f', 2, 64)
}

// formatYear renders a year, or "n/a" for the unknown sentinel.
func formatYear(y int) string {
	if y <= 0 {
		return "n/a"
	}
	return strconv.Itoa(y)
}

// yearRange renders "min-max", a single year, or "n/a".
func yearRange(lo, hi int) string {
	switch {
	case lo <= 0:
		return "n/a"
	case lo == hi:
		return strconv.Itoa(lo)
	default:
		return strconv.Itoa(lo) + "-" + strconv.Itoa(hi)
	}
}

func orNA(s string) string {
	if s == "" {
		return "n/a"
	}
	return s
}

func levelClass(l core.Level) string {
	return "badge level-" + string(l)
}
