package components

import (
	"fmt"
	"time"

	"github.com/a-h/templ"

	"github.com/artshowcase/showcase/internal/listing"
	"github.com/artshowcase/showcase/internal/model"
)

type FilterBarProps struct {
	Path     string // list endpoint, also used for the no-JS submit
	Target   string // element replaced with the refreshed results
	State    listing.State
	Sortable bool
	Debounce time.Duration
}

// FilterBar is the search, category and sort form above a listing. Typing is
// debounced client side; hx-sync replaces an in-flight request with the newer
// one so a stale response never lands.
func FilterBar(p FilterBarProps) templ.Component {
	debounce := p.Debounce
	if debounce <= 0 {
		debounce = listing.DefaultDebounce
	}
	trigger := fmt.Sprintf("input changed delay:%dms from:#q, change from:#category, submit", debounce.Milliseconds())
	if p.Sortable {
		trigger += ", change from:#sort"
	}

	categories := make([]Option, len(model.FilterCategories))
	for i, c := range model.FilterCategories {
		label := string(c)
		if c == model.CategoryAll {
			label = "All categories"
		}
		categories[i] = Option{Value: string(c), Label: label}
	}
	selected := string(p.State.Category)
	if p.State.Category.IsAll() {
		selected = string(model.CategoryAll)
	}

	return El("form", Attrs{
		"id":           "filters",
		"action":       p.Path,
		"method":       "get",
		"role":         "search",
		"class":        "flex flex-col gap-3 sm:flex-row sm:items-center",
		"hx-get":       p.Path,
		"hx-trigger":   trigger,
		"hx-target":    p.Target,
		"hx-swap":      "outerHTML",
		"hx-push-url":  "true",
		"hx-sync":      "this:replace",
		"hx-indicator": "#results-skeleton",
	},
		Div(Class("flex-1"),
			Input(InputProps{
				Type:        "search",
				Name:        "q",
				Value:       p.State.Search,
				Placeholder: "Search by title, artist or medium",
				Attrs:       Attrs{"aria-label": "Search artworks", "autocomplete": "off"},
			}),
		),
		Div(Class("sm:w-48"), Select("category", selected, categories, Attrs{"aria-label": "Category"})),
		If(p.Sortable, Div(Class("sm:w-48"), Select("sort", string(p.State.Sort), sortOptions(), Attrs{"aria-label": "Sort by"}))),
	)
}

func sortOptions() []Option {
	opts := make([]Option, len(listing.SortKeys))
	for i, k := range listing.SortKeys {
		opts[i] = Option{Value: string(k), Label: k.Label()}
	}
	return opts
}

// ClearFiltersButton resets search and category, keeping the sort order.
func ClearFiltersButton(path, target string, s listing.State) templ.Component {
	s.ClearFilters()
	s.Page = 1
	href := path
	if q := s.Query().Encode(); q != "" {
		href += "?" + q
	}
	return Button(ButtonProps{
		Variant: ButtonSecondary,
		Href:    href,
		Attrs: Attrs{
			"hx-get":      href,
			"hx-target":   target,
			"hx-swap":     "outerHTML",
			"hx-push-url": "true",
		},
	}, Text("Clear filters"))
}
