package components

import (
	"net/url"
	"strconv"

	"github.com/a-h/templ"

	"github.com/artshowcase/showcase/internal/reaction"
)

// LikeButton posts the current state so the server can apply the toggle
// optimistically and answer with the committed (or rolled back) button.
func LikeButton(artworkID string, t reaction.Toggle) templ.Component {
	label := "♡ Like"
	variant := ButtonSecondary
	if t.Active {
		label = "♥ Liked"
		variant = ButtonPrimary
	}
	return Button(ButtonProps{
		Variant: variant,
		Attrs: Attrs{
			"id":              "like-button",
			"hx-post":         "/artworks/" + url.PathEscape(artworkID) + "/like",
			"hx-vals":         `{"liked":"` + strconv.FormatBool(t.Active) + `","likes":"` + strconv.Itoa(t.Count) + `"}`,
			"hx-target":       "this",
			"hx-swap":         "outerHTML",
			"hx-disabled-elt": "this",
			"aria-pressed":    strconv.FormatBool(t.Active),
		},
	}, Text(label), Span(Class("tabular-nums"), Text(strconv.Itoa(t.Count))))
}

func FavoriteButton(artworkID string, t reaction.Toggle) templ.Component {
	label := "☆ Add to favorites"
	if t.Active {
		label = "★ In favorites"
	}
	return Button(ButtonProps{
		Variant: ButtonSecondary,
		Attrs: Attrs{
			"id":              "favorite-button",
			"hx-post":         "/artworks/" + url.PathEscape(artworkID) + "/favorite",
			"hx-vals":         `{"favorite":"` + strconv.FormatBool(t.Active) + `"}`,
			"hx-target":       "this",
			"hx-swap":         "outerHTML",
			"hx-disabled-elt": "this",
			"aria-pressed":    strconv.FormatBool(t.Active),
		},
	}, Text(label))
}
