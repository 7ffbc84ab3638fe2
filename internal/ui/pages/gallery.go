package pages

import (
	"time"

	"github.com/a-h/templ"

	"github.com/artshowcase/showcase/internal/listing"
	"github.com/artshowcase/showcase/internal/model"
	c "github.com/artshowcase/showcase/internal/ui/components"
)

func Gallery(v listing.View, debounce time.Duration) templ.Component {
	return Layout("My gallery", c.Group(
		c.Div(c.Class("flex items-start justify-between gap-4"),
			heading("My Gallery", "Manage the artworks you have shared."),
			c.Button(c.ButtonProps{Href: "/app/artworks/new"}, c.Text("Add artwork")),
		),
		gallerySection(v, debounce),
	))
}

func gallerySection(v listing.View, debounce time.Duration) templ.Component {
	return listingSection(listingProps{
		Path:        "/app/gallery",
		View:        v,
		Debounce:    debounce,
		Filters:     true,
		Card:        c.CardProps{OwnerActions: v.Options.ShowOwnerActions},
		EmptyTitle:  "Your gallery is empty",
		EmptyBody:   "Add your first artwork to get started.",
		EmptyAction: c.Button(c.ButtonProps{Href: "/app/artworks/new"}, c.Text("Add artwork")),
	})
}

// GalleryResults is the results block alone, sent after an edit or delete.
func GalleryResults(v listing.View) templ.Component {
	return results(listingProps{
		Path:        "/app/gallery",
		View:        v,
		Card:        c.CardProps{OwnerActions: v.Options.ShowOwnerActions},
		EmptyTitle:  "Your gallery is empty",
		EmptyBody:   "Add your first artwork to get started.",
		EmptyAction: c.Button(c.ButtonProps{Href: "/app/artworks/new"}, c.Text("Add artwork")),
	})
}

func Favorites(v listing.View) templ.Component {
	return Layout("Favorites", c.Group(
		heading("My Favorites", "Artworks you have saved."),
		c.Fragment(FragmentResults, FavoritesResults(v)),
	))
}

func FavoritesResults(v listing.View) templ.Component {
	return results(listingProps{
		Path:        "/app/favorites",
		View:        v,
		Card:        c.CardProps{RemoveFavorite: true},
		EmptyTitle:  "No favorites yet",
		EmptyBody:   "Save artworks you love and they will show up here.",
		EmptyAction: c.Button(c.ButtonProps{Variant: c.ButtonSecondary, Href: "/explore"}, c.Text("Explore artworks")),
	})
}

type ArtistProps struct {
	Artist   *model.Artist
	BioHTML  string
	View     listing.View
	Debounce time.Duration
}

func Artist(p ArtistProps) templ.Component {
	a := p.Artist
	return Layout(a.Name, c.Group(
		c.Div(c.Class("mb-10 flex flex-col items-center gap-4 text-center sm:flex-row sm:text-left"),
			avatar(a.PhotoURL, a.Name, "h-20 w-20 text-2xl"),
			c.Div(c.Class("space-y-1"),
				el("h1", "text-2xl font-bold text-gray-900", c.Text(a.Name)),
				c.If(a.Location != "", c.P(c.Class("text-sm text-gray-500"), c.Text(a.Location))),
				c.P(c.Class("text-sm text-gray-500"), c.Textf("%d public artworks", a.TotalArtworks)),
				c.If(p.BioHTML != "", c.Div(c.Class("prose prose-sm max-w-2xl text-gray-700"), c.Raw(p.BioHTML))),
			),
		),
		listingSection(listingProps{
			Path:       c.ArtistPath(a.Email),
			View:       p.View,
			Debounce:   p.Debounce,
			Filters:    true,
			EmptyTitle: "No public artworks yet",
		}),
	))
}
