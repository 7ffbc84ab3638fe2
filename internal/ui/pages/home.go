package pages

import (
	"time"

	"github.com/a-h/templ"

	"github.com/artshowcase/showcase/internal/listing"
	"github.com/artshowcase/showcase/internal/model"
	c "github.com/artshowcase/showcase/internal/ui/components"
)

type HomeProps struct {
	AppName  string
	Tagline  string
	Featured []model.Artwork
	SignedIn bool
}

func Home(p HomeProps) templ.Component {
	cta := c.Button(c.ButtonProps{Href: "/register"}, c.Text("Share your art"))
	if p.SignedIn {
		cta = c.Button(c.ButtonProps{Href: "/app/artworks/new"}, c.Text("Add artwork"))
	}

	featured := c.EmptyState("No featured artworks yet", "Check back soon.", nil)
	if len(p.Featured) > 0 {
		featured = c.ArtworkGrid(p.Featured, c.CardProps{})
	}

	return Layout("", c.Group(
		el("section", "py-12 text-center sm:py-20",
			el("h1", "text-4xl font-bold tracking-tight text-gray-900 sm:text-5xl", c.Text(p.AppName)),
			c.P(c.Class("mx-auto mt-4 max-w-2xl text-lg text-gray-600"), c.Text(p.Tagline)),
			c.Div(c.Class("mt-8 flex justify-center gap-3"),
				c.Button(c.ButtonProps{Variant: c.ButtonSecondary, Href: "/explore"}, c.Text("Explore artworks")),
				cta,
			),
		),
		el("section", "space-y-6",
			c.Div(c.Class("flex items-end justify-between"),
				el("h2", "text-xl font-semibold text-gray-900", c.Text("Featured artworks")),
				c.A("/explore", c.Class("text-sm font-medium text-indigo-600 hover:text-indigo-500"), c.Text("View all →")),
			),
			featured,
		),
	))
}

// Explore is the public browsing screen.
func Explore(v listing.View, debounce time.Duration) templ.Component {
	return Layout("Explore", c.Group(
		heading("Explore Artworks", "Discover work from artists around the world."),
		listingSection(listingProps{
			Path:       "/explore",
			View:       v,
			Debounce:   debounce,
			Filters:    true,
			EmptyTitle: "No artworks yet",
			EmptyBody:  "Be the first to share your work.",
		}),
	))
}

func NotFound() templ.Component {
	return Layout("Not found", c.Div(c.Class("py-24 text-center"),
		c.P(c.Class("text-sm font-semibold text-indigo-600"), c.Text("404")),
		el("h1", "mt-2 text-3xl font-bold text-gray-900", c.Text("Page not found")),
		c.P(c.Class("mt-4 text-gray-600"), c.Text("The page you are looking for does not exist or is not available.")),
		c.Div(c.Class("mt-8"), c.Button(c.ButtonProps{Href: "/"}, c.Text("Go home"))),
	))
}

// Error is the full-page fallback when a screen cannot be loaded at all.
func Error(message string) templ.Component {
	return Layout("Error", c.Div(c.Class("py-24 text-center"),
		el("h1", "text-3xl font-bold text-gray-900", c.Text("Something went wrong")),
		c.P(c.Class("mt-4 text-gray-600"), c.Text(message)),
		c.Div(c.Class("mt-8"), c.Button(c.ButtonProps{Href: "/"}, c.Text("Go home"))),
	))
}
