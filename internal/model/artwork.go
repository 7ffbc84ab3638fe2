package model

import (
	"fmt"
	"strconv"
	"time"
)

type Visibility string

const (
	VisibilityPublic  Visibility = "Public"
	VisibilityPrivate Visibility = "Private"
)

func (v Visibility) Valid() bool {
	return v == VisibilityPublic || v == VisibilityPrivate
}

type Artwork struct {
	ID          string     `json:"_id"`
	Title       string     `json:"title"`
	Category    Category   `json:"category"`
	ArtistName  string     `json:"artistName,omitempty"`
	ArtistPhoto string     `json:"artistPhoto,omitempty"`
	UserEmail   string     `json:"userEmail,omitempty"`
	ImageURL    string     `json:"imageURL"`
	Description string     `json:"description"`
	Medium      string     `json:"medium"`
	Dimensions  string     `json:"dimensions,omitempty"`
	Price       *float64   `json:"price,omitempty"`
	Visibility  Visibility `json:"visibility"`
	Likes       int        `json:"likes"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// IsPublic reports whether non-owners may see the artwork.
func (a *Artwork) IsPublic() bool {
	return a.Visibility == VisibilityPublic
}

// OwnedBy reports whether the artwork belongs to the account with the given email.
func (a *Artwork) OwnedBy(email string) bool {
	return email != "" && a.UserEmail == email
}

// VisibleTo reports whether the artwork may be shown to the viewer identified
// by email (empty for guests).
func (a *Artwork) VisibleTo(email string) bool {
	return a.IsPublic() || a.OwnedBy(email)
}

// ArtworkInput carries the mutable fields of an artwork for create and update.
// Owner fields are filled from the session, never from the form.
type ArtworkInput struct {
	ImageURL    string     `json:"imageURL"`
	Title       string     `json:"title"`
	Category    Category   `json:"category"`
	Medium      string     `json:"medium"`
	Description string     `json:"description"`
	Dimensions  string     `json:"dimensions"`
	Price       *float64   `json:"price,omitempty"`
	Visibility  Visibility `json:"visibility"`
	ArtistName  string     `json:"artistName,omitempty"`
	ArtistPhoto string     `json:"artistPhoto,omitempty"`
	UserEmail   string     `json:"userEmail,omitempty"`
}

// InputFrom copies the editable fields of a into a form input.
func InputFrom(a *Artwork) ArtworkInput {
	return ArtworkInput{
		ImageURL:    a.ImageURL,
		Title:       a.Title,
		Category:    a.Category,
		Medium:      a.Medium,
		Description: a.Description,
		Dimensions:  a.Dimensions,
		Price:       a.Price,
		Visibility:  a.Visibility,
		ArtistName:  a.ArtistName,
		ArtistPhoto: a.ArtistPhoto,
		UserEmail:   a.UserEmail,
	}
}

// FormatPrice renders an optional price as "$120" or "$12.50". Empty means
// not for sale.
func FormatPrice(p *float64) string {
	if p == nil {
		return ""
	}
	if *p == float64(int64(*p)) {
		return "$" + strconv.FormatInt(int64(*p), 10)
	}
	return fmt.Sprintf("$%.2f", *p)
}
