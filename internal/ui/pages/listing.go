package pages

import (
	"time"

	"github.com/a-h/templ"

	"github.com/artshowcase/showcase/internal/listing"
	c "github.com/artshowcase/showcase/internal/ui/components"
)

// Fragment ids a listing screen can be partially rendered by.
const (
	FragmentListing = "listing"
	FragmentResults = "results"
)

type listingProps struct {
	Path        string
	View        listing.View
	Debounce    time.Duration
	Card        c.CardProps
	Filters     bool
	EmptyTitle  string
	EmptyBody   string
	EmptyAction templ.Component
}

func listingSection(p listingProps) templ.Component {
	skeletons := p.View.Options.PageSize
	if skeletons <= 0 {
		skeletons = 8
	}
	return c.Fragment(FragmentListing, c.Div(c.Attrs{"id": "listing", "class": "space-y-6"},
		c.If(p.Filters, c.FilterBar(c.FilterBarProps{
			Path:     p.Path,
			Target:   "#results",
			State:    p.View.State,
			Sortable: p.View.Options.Sortable,
			Debounce: p.Debounce,
		})),
		c.SkeletonGrid("results-skeleton", skeletons),
		c.Fragment(FragmentResults, results(p)),
	))
}

func results(p listingProps) templ.Component {
	v := p.View
	var body templ.Component
	switch {
	case v.Err != nil && v.Total == 0:
		body = c.EmptyState("Could not load artworks", "Something went wrong while loading. Please try again.",
			c.Button(c.ButtonProps{
				Variant: c.ButtonSecondary,
				Attrs:   c.Attrs{"hx-get": currentURL(p.Path, v.State), "hx-target": "#results", "hx-swap": "outerHTML"},
			}, c.Text("Retry")))
	case v.Empty() && v.State.HasFilters():
		body = c.EmptyState("No artworks match your filters", "Try a different search or category.",
			c.ClearFiltersButton(p.Path, "#listing", v.State))
	case v.Empty():
		body = c.EmptyState(p.EmptyTitle, p.EmptyBody, p.EmptyAction)
	default:
		body = c.Group(
			c.If(v.Options.PageSize > 0, c.ResultSummary(v)),
			c.ArtworkGrid(v.Items, p.Card),
			c.Pagination(v, p.Path, "#results"),
		)
	}
	return c.Div(c.Attrs{"id": "results", "class": "space-y-6"}, body)
}

func currentURL(path string, s listing.State) string {
	if q := s.Query().Encode(); q != "" {
		return path + "?" + q
	}
	return path
}
