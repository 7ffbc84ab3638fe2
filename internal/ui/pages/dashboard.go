package pages

import (
	"strconv"

	"github.com/a-h/templ"

	"github.com/artshowcase/showcase/internal/model"
	c "github.com/artshowcase/showcase/internal/ui/components"
)

func Dashboard(name string, s *model.DashboardStats) templ.Component {
	return Layout("Dashboard", c.Group(
		heading("Welcome back, "+name, "An overview of your artworks."),
		c.Div(c.Class("grid gap-4 sm:grid-cols-2 lg:grid-cols-4"),
			statCard("Total artworks", s.Summary.TotalArtworks),
			statCard("Total likes", s.Summary.TotalLikes),
			statCard("Public", s.Summary.PublicArtworks),
			statCard("Private", s.Summary.PrivateArtworks),
		),
		c.Div(c.Class("mt-8 grid gap-6 lg:grid-cols-2"),
			chart("Visibility", s.Charts.Pie),
			chart("By category", s.Charts.Bar),
		),
		el("section", "mt-8 rounded-lg bg-white p-6 shadow-sm ring-1 ring-gray-200",
			el("h2", "mb-4 text-base font-semibold text-gray-900", c.Text("Recent artworks")),
			recentTable(s.Recent),
		),
	))
}

func statCard(label string, value int) templ.Component {
	return c.Div(c.Class("rounded-lg bg-white p-5 shadow-sm ring-1 ring-gray-200"),
		c.P(c.Class("text-sm text-gray-500"), c.Text(label)),
		c.P(c.Class("mt-1 text-3xl font-semibold tabular-nums text-gray-900"), c.Textf("%d", value)),
	)
}

// chart draws a series as labelled percentage bars.
func chart(title string, series []model.ChartPoint) templ.Component {
	var body templ.Component
	if len(series) == 0 {
		body = c.P(c.Class("text-sm text-gray-500"), c.Text("No data yet."))
	} else {
		body = el("ul", "space-y-3", c.Map(series, func(p model.ChartPoint) templ.Component {
			pct := model.Percent(p, series)
			return el("li", "space-y-1",
				c.Div(c.Class("flex justify-between text-sm"),
					c.Span(c.Class("text-gray-700"), c.Text(p.Name)),
					c.Span(c.Class("tabular-nums text-gray-500"), c.Textf("%d (%d%%)", p.Value, pct)),
				),
				c.Div(c.Attrs{"class": "h-2 rounded-full bg-gray-100", "role": "presentation"},
					c.Div(c.Attrs{"class": "h-2 rounded-full bg-indigo-500", "style": "width: " + strconv.Itoa(pct) + "%"}),
				),
			)
		}))
	}
	return el("section", "rounded-lg bg-white p-6 shadow-sm ring-1 ring-gray-200",
		el("h2", "mb-4 text-base font-semibold text-gray-900", c.Text(title)),
		body,
	)
}

func recentTable(items []model.Artwork) templ.Component {
	if len(items) == 0 {
		return c.EmptyState("No artworks yet", "Add your first artwork to see it here.",
			c.Button(c.ButtonProps{Href: "/app/artworks/new"}, c.Text("Add artwork")))
	}
	th := func(s string) templ.Component {
		return el("th", "px-3 py-2 text-left font-medium text-gray-500", c.Text(s))
	}
	td := func(child templ.Component) templ.Component {
		return el("td", "px-3 py-2", child)
	}
	return c.Div(c.Class("overflow-x-auto"),
		el("table", "min-w-full divide-y divide-gray-200 text-sm",
			el("thead", "", el("tr", "", th("Title"), th("Category"), th("Visibility"), th("Likes"), th("Added"))),
			el("tbody", "divide-y divide-gray-100", c.Map(items, func(a model.Artwork) templ.Component {
				return el("tr", "",
					td(c.A(c.ArtworkPath(a.ID), c.Class("font-medium text-indigo-600 hover:underline"), c.Text(a.Title))),
					td(c.Text(string(a.Category))),
					td(c.Text(string(a.Visibility))),
					td(c.Textf("%d", a.Likes)),
					td(c.Text(addedOn(&a))),
				)
			})),
		),
	)
}
