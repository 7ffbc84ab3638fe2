package model

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type Category string

const (
	CategoryAll         Category = "All"
	CategoryPainting    Category = "Painting"
	CategoryDigitalArt  Category = "Digital Art"
	CategorySculpture   Category = "Sculpture"
	CategoryPhotography Category = "Photography"
	CategoryDrawing     Category = "Drawing"
	CategoryMixedMedia  Category = "Mixed Media"
	CategoryOther       Category = "Other"
)

// Categories is the closed set an artwork can belong to, in display order.
var Categories = []Category{
	CategoryPainting,
	CategoryDigitalArt,
	CategorySculpture,
	CategoryPhotography,
	CategoryDrawing,
	CategoryMixedMedia,
	CategoryOther,
}

// FilterCategories is Categories prefixed with the "All" filter value.
var FilterCategories = append([]Category{CategoryAll}, Categories...)

// ParseCategory normalises user input ("digital art", "DIGITAL ART") to a
// known category. The second result is false for unknown values.
func ParseCategory(s string) (Category, bool) {
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return "", false
	}
	// Casers are stateful, so one is built per call.
	c := Category(cases.Title(language.English).String(s))
	if c == CategoryAll {
		return c, true
	}
	for _, known := range Categories {
		if c == known {
			return c, true
		}
	}
	return "", false
}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// IsAll reports whether c means "no category filter".
func (c Category) IsAll() bool {
	return c == "" || c == CategoryAll
}
