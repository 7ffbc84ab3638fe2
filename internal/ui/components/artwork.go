package components

import (
	"net/url"

	"github.com/a-h/templ"

	"github.com/artshowcase/showcase/internal/model"
)

// ArtworkPath is the detail page of an artwork.
func ArtworkPath(id string) string {
	return "/artworks/" + url.PathEscape(id)
}

// ArtistPath is the public gallery of the artist with the given email.
func ArtistPath(email string) string {
	return "/artists/" + url.PathEscape(email)
}

// Price formats an optional price; nil means the artwork is not for sale.
func Price(p *float64) string {
	return model.FormatPrice(p)
}

type CardProps struct {
	OwnerActions bool
	// RemoveFavorite adds a remove button posting to the favorites endpoint.
	RemoveFavorite bool
}

func ArtworkCard(a model.Artwork, p CardProps) templ.Component {
	return El("article", Attrs{
		"id":    "artwork-" + a.ID,
		"class": "group flex flex-col overflow-hidden rounded-lg bg-white shadow-sm ring-1 ring-gray-200",
	},
		A(ArtworkPath(a.ID), Class("block aspect-[4/3] overflow-hidden bg-gray-100"),
			Void("img", Attrs{
				"src":     URL(a.ImageURL),
				"alt":     a.Title,
				"loading": "lazy",
				"class":   "h-full w-full object-cover transition group-hover:scale-105",
			}),
		),
		Div(Class("flex flex-1 flex-col gap-2 p-4"),
			Div(Class("flex items-start justify-between gap-2"),
				El("h3", Class("text-sm font-semibold text-gray-900 line-clamp-1"),
					A(ArtworkPath(a.ID), nil, Text(a.Title)),
				),
				If(Price(a.Price) != "", Span(Class("text-sm font-medium text-gray-700"), Text(Price(a.Price)))),
			),
			If(a.ArtistName != "", P(Class("text-xs text-gray-500"),
				Text("by "),
				A(ArtistPath(a.UserEmail), Class("hover:underline"), Text(a.ArtistName)),
			)),
			Div(Class("mt-auto flex items-center gap-2"),
				Badge(string(a.Category), BadgeAccent),
				If(!a.IsPublic(), Badge("Private", BadgeWarning)),
				Span(Class("ml-auto text-xs text-gray-500"), Textf("♥ %d", a.Likes)),
			),
			If(p.OwnerActions, ownerActions(a)),
			If(p.RemoveFavorite, Button(ButtonProps{
				Variant: ButtonSecondary,
				Small:   true,
				Attrs: Attrs{
					"hx-delete":  "/app/favorites/" + url.PathEscape(a.ID),
					"hx-target":  "#results",
					"hx-swap":    "outerHTML",
					"hx-confirm": "Remove from favorites?",
				},
			}, Text("Remove"))),
		),
	)
}

func ownerActions(a model.Artwork) templ.Component {
	id := url.PathEscape(a.ID)
	return Div(Class("flex gap-2 pt-2"),
		Button(ButtonProps{
			Variant: ButtonSecondary,
			Small:   true,
			Attrs:   Attrs{"hx-get": "/app/artworks/" + id + "/edit", "hx-target": "#dialog"},
		}, Text("Edit")),
		Button(ButtonProps{
			Variant: ButtonDestructive,
			Small:   true,
			Attrs:   Attrs{"hx-get": "/app/artworks/" + id + "/delete", "hx-target": "#dialog"},
		}, Text("Delete")),
	)
}

// SkeletonCard is the placeholder shown while a list is loading.
func SkeletonCard() templ.Component {
	return Div(Attrs{"class": "animate-pulse overflow-hidden rounded-lg bg-white ring-1 ring-gray-200", "aria-hidden": "true"},
		Div(Class("aspect-[4/3] bg-gray-200")),
		Div(Class("space-y-2 p-4"),
			Div(Class("h-3 w-2/3 rounded bg-gray-200")),
			Div(Class("h-3 w-1/3 rounded bg-gray-200")),
		),
	)
}

// SkeletonGrid renders n skeleton cards. It is hidden unless an htmx request
// targeting the list is in flight.
func SkeletonGrid(id string, n int) templ.Component {
	cards := make([]templ.Component, n)
	for i := range cards {
		cards[i] = SkeletonCard()
	}
	return Div(Attrs{"id": id, "class": "htmx-indicator " + gridClass}, cards...)
}

const gridClass = "grid grid-cols-1 gap-6 sm:grid-cols-2 lg:grid-cols-3 xl:grid-cols-4"

func ArtworkGrid(items []model.Artwork, p CardProps) templ.Component {
	return Div(Class(gridClass), Map(items, func(a model.Artwork) templ.Component {
		return ArtworkCard(a, p)
	}))
}

// EmptyState is shown when a list has nothing to display. With filters active
// it offers to clear them.
func EmptyState(title, body string, action templ.Component) templ.Component {
	return Div(Class("rounded-lg border-2 border-dashed border-gray-200 px-6 py-16 text-center"),
		El("h3", Class("text-base font-semibold text-gray-900"), Text(title)),
		If(body != "", P(Class("mt-1 text-sm text-gray-500"), Text(body))),
		If(action != nil, Div(Class("mt-6"), action)),
	)
}
