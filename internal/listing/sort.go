package listing

import (
	"slices"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/artshowcase/showcase/internal/model"
)

type SortKey string

const (
	SortRecent SortKey = "recent"
	SortLikes  SortKey = "likes"
	SortTitle  SortKey = "title"
)

// SortKeys lists the supported keys in menu order.
var SortKeys = []SortKey{SortRecent, SortLikes, SortTitle}

func (k SortKey) Label() string {
	switch k {
	case SortLikes:
		return "Most Liked"
	case SortTitle:
		return "Title (A-Z)"
	default:
		return "Most Recent"
	}
}

// ParseSortKey maps unknown or empty input to SortRecent.
func ParseSortKey(s string) SortKey {
	switch SortKey(strings.ToLower(strings.TrimSpace(s))) {
	case SortLikes:
		return SortLikes
	case SortTitle:
		return SortTitle
	default:
		return SortRecent
	}
}

var epoch = time.Unix(0, 0).UTC()

func createdAt(a *model.Artwork) time.Time {
	if a.CreatedAt.IsZero() {
		return epoch
	}
	return a.CreatedAt
}

// SortArtworks returns a sorted copy of items; the input is left untouched.
//
//   - recent: creation time descending, missing time counts as the Unix epoch
//   - likes: like count descending
//   - title: locale-aware ascending
//
// Equal keys are ordered by ID ascending so the result never depends on the
// order the backend happened to return.
func SortArtworks(items []model.Artwork, key SortKey) []model.Artwork {
	out := slices.Clone(items)

	var cmp func(a, b *model.Artwork) int
	switch key {
	case SortLikes:
		cmp = func(a, b *model.Artwork) int {
			return b.Likes - a.Likes
		}
	case SortTitle:
		// Collators keep internal buffers and are not safe to share.
		col := collate.New(language.English, collate.IgnoreCase)
		cmp = func(a, b *model.Artwork) int {
			return col.CompareString(a.Title, b.Title)
		}
	default:
		cmp = func(a, b *model.Artwork) int {
			return createdAt(b).Compare(createdAt(a))
		}
	}

	slices.SortStableFunc(out, func(a, b model.Artwork) int {
		if c := cmp(&a, &b); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	return out
}

// VisibleTo drops artworks the viewer (empty email for guests) may not see.
// The backend filters too; this only guards against it returning private work.
func VisibleTo(items []model.Artwork, email string) []model.Artwork {
	out := items[:0:0]
	for i := range items {
		if items[i].VisibleTo(email) {
			out = append(out, items[i])
		}
	}
	return out
}

// Match applies a filter locally, for collections whose endpoint takes no
// query. Search matches title, artist, medium and category, ignoring case.
func Match(items []model.Artwork, f Filter) []model.Artwork {
	q := strings.ToLower(strings.TrimSpace(f.Search))
	out := items[:0:0]
	for _, a := range items {
		if !f.Category.IsAll() && a.Category != f.Category {
			continue
		}
		if q != "" && !matches(a, q) {
			continue
		}
		out = append(out, a)
	}
	return out
}

func matches(a model.Artwork, q string) bool {
	for _, field := range []string{a.Title, a.ArtistName, a.Medium, string(a.Category)} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}
