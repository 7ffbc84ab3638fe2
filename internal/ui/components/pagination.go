package components

import (
	"github.com/a-h/templ"

	"github.com/artshowcase/showcase/internal/listing"
)

// Pagination renders previous/next buttons around the page window. Links
// fetch the page into target through htmx and fall back to plain navigation.
func Pagination(v listing.View, path, target string) templ.Component {
	if !v.ShowPagination() {
		return nil
	}
	link := func(n int) string {
		q := v.State.PageQuery(n).Encode()
		if q == "" {
			return path
		}
		return path + "?" + q
	}
	pageLink := func(n int, label templ.Component, current bool) templ.Component {
		class := "rounded-md px-3 py-1.5 text-sm ring-1 ring-inset ring-gray-300 hover:bg-gray-50"
		attrs := Attrs{"hx-get": link(n), "hx-target": target, "hx-swap": "outerHTML", "hx-push-url": "true"}
		if current {
			class = Classes(class, "bg-indigo-600 text-white ring-indigo-600 hover:bg-indigo-600")
			attrs["aria-current"] = "page"
		}
		attrs["class"] = class
		return A(link(n), attrs, label)
	}
	disabled := func(label string) templ.Component {
		return Span(Class("rounded-md px-3 py-1.5 text-sm text-gray-300 ring-1 ring-inset ring-gray-200"), Text(label))
	}

	var items []templ.Component
	if v.HasPrev() {
		items = append(items, pageLink(v.Page-1, Text("Previous"), false))
	} else {
		items = append(items, disabled("Previous"))
	}
	for _, it := range v.Window {
		if it.Ellipsis {
			items = append(items, Span(Class("px-2 text-sm text-gray-400"), Text("…")))
			continue
		}
		items = append(items, pageLink(it.Number, Textf("%d", it.Number), it.Current))
	}
	if v.HasNext() {
		items = append(items, pageLink(v.Page+1, Text("Next"), false))
	} else {
		items = append(items, disabled("Next"))
	}
	return El("nav", Attrs{"class": "mt-8 flex flex-wrap items-center justify-center gap-2", "aria-label": "Pagination"}, items...)
}

// ResultSummary renders "Showing a-b of n artworks".
func ResultSummary(v listing.View) templ.Component {
	if v.Total == 0 {
		return nil
	}
	noun := "artworks"
	if v.Total == 1 {
		noun = "artwork"
	}
	return P(Class("text-sm text-gray-500"), Textf("Showing %d-%d of %d %s", v.Start, v.End, v.Total, noun))
}
