package model

type Artist struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	PhotoURL      string `json:"photoURL,omitempty"`
	Bio           string `json:"bio,omitempty"`
	Tagline       string `json:"tagline,omitempty"`
	Location      string `json:"location,omitempty"`
	TotalArtworks int    `json:"totalArtworks"`
}

// About returns the bio, falling back to the tagline.
func (a *Artist) About() string {
	if a.Bio != "" {
		return a.Bio
	}
	return a.Tagline
}
