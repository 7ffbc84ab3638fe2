package pages

import (
	"github.com/a-h/templ"

	"github.com/artshowcase/showcase/internal/model"
	"github.com/artshowcase/showcase/internal/reaction"
	c "github.com/artshowcase/showcase/internal/ui/components"
)

type ArtworkDetailProps struct {
	Artwork         *model.Artwork
	Artist          *model.Artist // nil when the lookup failed
	DescriptionHTML string        // sanitised markdown
	Like            reaction.Toggle
	Favorite        reaction.Toggle
	IsOwner         bool
}

func ArtworkDetail(p ArtworkDetailProps) templ.Component {
	a := p.Artwork
	return Layout(a.Title, c.Div(c.Class("grid gap-10 lg:grid-cols-2"),
		c.Div(c.Class("overflow-hidden rounded-lg bg-gray-100 shadow-sm"),
			c.Void("img", c.Attrs{"src": c.URL(a.ImageURL), "alt": a.Title, "class": "w-full object-contain"}),
		),
		c.Div(c.Class("space-y-6"),
			c.Div(c.Class("space-y-2"),
				c.Div(c.Class("flex gap-2"),
					c.Badge(string(a.Category), c.BadgeAccent),
					c.If(!a.IsPublic(), c.Badge("Private", c.BadgeWarning)),
				),
				el("h1", "text-3xl font-bold tracking-tight text-gray-900", c.Text(a.Title)),
				c.If(c.Price(a.Price) != "", c.P(c.Class("text-xl text-gray-700"), c.Text(c.Price(a.Price)))),
			),
			artistSummary(a, p.Artist),
			el("dl", "grid grid-cols-2 gap-4 text-sm",
				detail("Medium", a.Medium),
				detail("Dimensions", a.Dimensions),
				detail("Likes", c.Textf("%d", a.Likes)),
				detail("Added", addedOn(a)),
			),
			c.Div(c.Class("flex flex-wrap gap-3"),
				c.LikeButton(a.ID, p.Like),
				c.FavoriteButton(a.ID, p.Favorite),
				c.If(p.IsOwner, c.Button(c.ButtonProps{Variant: c.ButtonGhost, Href: "/app/gallery"}, c.Text("Manage in gallery"))),
			),
			c.If(p.DescriptionHTML != "", c.Div(c.Class("prose prose-sm max-w-none"), c.Raw(p.DescriptionHTML))),
		),
	))
}

// detail renders a definition pair; value is a string or a component.
func detail(label string, value any) templ.Component {
	var v templ.Component
	switch x := value.(type) {
	case string:
		if x == "" {
			return nil
		}
		v = c.Text(x)
	case templ.Component:
		v = x
	}
	return c.Div(nil,
		el("dt", "text-gray-500", c.Text(label)),
		el("dd", "font-medium text-gray-900", v),
	)
}

func artistSummary(a *model.Artwork, artist *model.Artist) templ.Component {
	name, photo := a.ArtistName, a.ArtistPhoto
	if artist != nil {
		name, photo = artist.Name, artist.PhotoURL
	}
	if name == "" {
		name = a.UserEmail
	}
	return c.A(c.ArtistPath(a.UserEmail), c.Class("flex items-center gap-3 hover:opacity-80"),
		avatar(photo, name, "h-10 w-10"),
		c.Div(nil,
			c.P(c.Class("text-sm font-medium text-gray-900"), c.Text(name)),
			c.If(artist != nil && artist.TotalArtworks > 0, c.P(c.Class("text-xs text-gray-500"), c.Textf("%d artworks", artistTotal(artist)))),
		),
	)
}

func artistTotal(a *model.Artist) int {
	if a == nil {
		return 0
	}
	return a.TotalArtworks
}

func addedOn(a *model.Artwork) string {
	if a.CreatedAt.IsZero() {
		return ""
	}
	return a.CreatedAt.Format("Jan 2, 2006")
}
