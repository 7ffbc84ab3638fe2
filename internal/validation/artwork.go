package validation

import (
	"errors"
	"fmt"
	"html"
	"net/url"
	"strconv"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/artshowcase/showcase/internal/model"
)

// FieldErrors maps form field names to a message shown next to the field.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	return fmt.Sprintf("%d invalid field(s)", len(e))
}

// First returns one message, preferring the order fields appear on the form.
func (e FieldErrors) First() string {
	for _, k := range artworkFieldOrder {
		if msg, ok := e[k]; ok {
			return msg
		}
	}
	return ""
}

var artworkFieldOrder = []string{"imageURL", "title", "category", "medium", "description", "dimensions", "price", "visibility"}

var stripTags = bluemonday.StrictPolicy()

// plain removes markup from a text field. Templates escape on output, so
// entities produced by the policy are decoded again.
func plain(s string) string {
	return strings.TrimSpace(html.UnescapeString(stripTags.Sanitize(s)))
}

// ArtworkForm is the raw create/update form as posted by the browser.
type ArtworkForm struct {
	ImageURL    string
	Title       string
	Category    string
	Medium      string
	Description string
	Dimensions  string
	Price       string
	Visibility  string
}

// Artwork validates the form and builds the payload sent to the backend.
// Description is kept as markdown; it is sanitised when rendered.
func Artwork(f ArtworkForm) (model.ArtworkInput, error) {
	errs := FieldErrors{}
	in := model.ArtworkInput{
		ImageURL:    strings.TrimSpace(f.ImageURL),
		Title:       plain(f.Title),
		Medium:      plain(f.Medium),
		Description: strings.TrimSpace(f.Description),
		Dimensions:  plain(f.Dimensions),
		Visibility:  model.VisibilityPublic,
	}

	if err := ValidateImageURL(in.ImageURL); err != nil {
		errs["imageURL"] = err.Error()
	}

	if err := ValidateText("title", in.Title, MaxTitleLength); err != nil {
		errs["title"] = err.Error()
	}

	cat, ok := model.ParseCategory(f.Category)
	if !ok || cat.IsAll() {
		errs["category"] = "choose a category"
	} else {
		in.Category = cat
	}

	if err := ValidateText("medium", in.Medium, MaxMediumLength); err != nil {
		errs["medium"] = err.Error()
	}
	if in.Description == "" {
		errs["description"] = "description is required"
	}

	if p := strings.TrimSpace(f.Price); p != "" {
		v, err := strconv.ParseFloat(p, 64)
		switch {
		case err != nil:
			errs["price"] = "price must be a number"
		case v < 0:
			errs["price"] = "price cannot be negative"
		default:
			in.Price = &v
		}
	}

	if f.Visibility != "" {
		v := model.Visibility(f.Visibility)
		if !v.Valid() {
			errs["visibility"] = "visibility must be Public or Private"
		} else {
			in.Visibility = v
		}
	}

	if len(errs) > 0 {
		return in, errs
	}
	return in, nil
}

// ValidateImageURL requires an absolute http(s) URL.
func ValidateImageURL(raw string) error {
	if raw == "" {
		return errors.New("image URL is required")
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return errors.New("image URL must be an http(s) link")
	}
	return nil
}
