package pages

import (
	"net/url"

	"github.com/a-h/templ"

	"github.com/artshowcase/showcase/internal/model"
	"github.com/artshowcase/showcase/internal/validation"
	c "github.com/artshowcase/showcase/internal/ui/components"
)

// ArtworkFormProps drives both the create page and the edit dialog.
type ArtworkFormProps struct {
	Form           validation.ArtworkForm
	Errors         validation.FieldErrors
	Message        string // form-level error, e.g. from the backend
	UploadsEnabled bool
	MaxUploadMB    int64
}

// FormFromArtwork pre-fills the edit form.
func FormFromArtwork(a *model.Artwork) validation.ArtworkForm {
	f := validation.ArtworkForm{
		ImageURL:    a.ImageURL,
		Title:       a.Title,
		Category:    string(a.Category),
		Medium:      a.Medium,
		Description: a.Description,
		Dimensions:  a.Dimensions,
		Visibility:  string(a.Visibility),
	}
	if p := c.Price(a.Price); p != "" {
		f.Price = p[1:]
	}
	return f
}

func NewArtwork(p ArtworkFormProps) templ.Component {
	return Layout("Add artwork", c.Div(c.Class("mx-auto max-w-2xl"),
		heading("Add Artwork", "Share a new piece with the community."),
		NewArtworkForm(p),
	))
}

// NewArtworkForm is re-rendered in place when validation fails.
func NewArtworkForm(p ArtworkFormProps) templ.Component {
	attrs := c.Attrs{
		"id":              "artwork-form",
		"method":          "post",
		"action":          "/app/artworks",
		"class":           "space-y-5 rounded-lg bg-white p-6 shadow-sm ring-1 ring-gray-200",
		"hx-post":         "/app/artworks",
		"hx-target":       "this",
		"hx-swap":         "outerHTML",
		"hx-disabled-elt": "find button[type='submit']",
	}
	if p.UploadsEnabled {
		attrs["enctype"] = "multipart/form-data"
		attrs["hx-encoding"] = "multipart/form-data"
	}
	return c.El("form", attrs,
		c.Alert(p.Message),
		artworkFields(p),
		c.Div(c.Class("flex justify-end gap-3"),
			c.Button(c.ButtonProps{Variant: c.ButtonSecondary, Href: "/app/gallery"}, c.Text("Cancel")),
			c.Button(c.ButtonProps{Type: "submit"}, c.Text("Add artwork")),
		),
	)
}

// EditArtworkDialog saves with PUT and, on success, replaces the gallery
// results behind the dialog.
func EditArtworkDialog(artworkID string, p ArtworkFormProps) templ.Component {
	action := "/app/artworks/" + url.PathEscape(artworkID)
	attrs := c.Attrs{
		"id":              "artwork-form",
		"class":           "space-y-5",
		"hx-put":          action,
		"hx-target":       "#results",
		"hx-swap":         "outerHTML",
		"hx-disabled-elt": "find button[type='submit']",
	}
	if p.UploadsEnabled {
		attrs["hx-encoding"] = "multipart/form-data"
	}
	return c.Dialog("Edit artwork", c.El("form", attrs,
		c.Alert(p.Message),
		artworkFields(p),
		c.Div(c.Class("flex justify-end gap-3"),
			c.CloseButton("Cancel"),
			c.Button(c.ButtonProps{Type: "submit"}, c.Text("Save changes")),
		),
	))
}

func DeleteArtworkDialog(a *model.Artwork) templ.Component {
	return c.Dialog("Delete artwork", c.Div(c.Class("space-y-6"),
		c.P(c.Class("text-sm text-gray-600"),
			c.Text("Delete "), el("strong", "font-semibold", c.Text(a.Title)), c.Text("? This cannot be undone."),
		),
		c.Div(c.Class("flex justify-end gap-3"),
			c.CloseButton("Cancel"),
			c.Button(c.ButtonProps{
				Variant: c.ButtonDestructive,
				Attrs: c.Attrs{
					"hx-delete":       "/app/artworks/" + url.PathEscape(a.ID),
					"hx-target":       "#results",
					"hx-swap":         "outerHTML",
					"hx-disabled-elt": "this",
				},
			}, c.Text("Delete")),
		),
	))
}

func artworkFields(p ArtworkFormProps) templ.Component {
	f, errs := p.Form, p.Errors
	categories := []c.Option{{Value: "", Label: "Select a category"}}
	for _, cat := range model.Categories {
		categories = append(categories, c.Option{Value: string(cat), Label: string(cat)})
	}
	visibility := f.Visibility
	if visibility == "" {
		visibility = string(model.VisibilityPublic)
	}

	image := c.Field("Image URL", "imageURL", errs["imageURL"], c.Input(c.InputProps{
		Type:        "url",
		Name:        "imageURL",
		Value:       f.ImageURL,
		Placeholder: "https://…",
		Required:    !p.UploadsEnabled,
		Invalid:     errs["imageURL"] != "",
	}))
	if p.UploadsEnabled {
		image = c.Group(image,
			c.Field("Or upload an image", "image", errs["image"], c.Void("input", c.Attrs{
				"type":   "file",
				"id":     "image",
				"name":   "image",
				"accept": "image/jpeg,image/png,image/webp,image/gif",
				"class":  "block w-full text-sm text-gray-600 file:mr-3 file:rounded-md file:border-0 file:bg-indigo-50 file:px-3 file:py-2 file:text-indigo-700",
			})),
			c.If(p.MaxUploadMB > 0, c.P(c.Class("text-xs text-gray-500"), c.Textf("JPEG, PNG, WebP or GIF up to %d MB.", p.MaxUploadMB))),
		)
	}

	return c.Group(
		image,
		c.Field("Title", "title", errs["title"], c.Input(c.InputProps{Name: "title", Value: f.Title, Required: true, Invalid: errs["title"] != ""})),
		c.Div(c.Class("grid gap-5 sm:grid-cols-2"),
			c.Field("Category", "category", errs["category"], c.Select("category", f.Category, categories, c.Attrs{"required": true})),
			c.Field("Medium", "medium", errs["medium"], c.Input(c.InputProps{Name: "medium", Value: f.Medium, Placeholder: "Oil on canvas", Required: true, Invalid: errs["medium"] != ""})),
		),
		c.Field("Description", "description", errs["description"], c.Textarea("description", f.Description, 5, true)),
		c.Div(c.Class("grid gap-5 sm:grid-cols-3"),
			c.Field("Dimensions", "dimensions", errs["dimensions"], c.Input(c.InputProps{Name: "dimensions", Value: f.Dimensions, Placeholder: "24 x 36 in"})),
			c.Field("Price (USD)", "price", errs["price"], c.Input(c.InputProps{
				Type:  "number",
				Name:  "price",
				Value: f.Price,
				Attrs: c.Attrs{"min": "0", "step": "0.01"},
			})),
			c.Field("Visibility", "visibility", errs["visibility"], c.Select("visibility", visibility, []c.Option{
				{Value: string(model.VisibilityPublic), Label: "Public"},
				{Value: string(model.VisibilityPrivate), Label: "Private"},
			}, nil)),
		),
	)
}
