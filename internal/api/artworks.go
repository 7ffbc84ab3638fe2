package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/artshowcase/showcase/internal/model"
)

// ArtworkQuery holds the server-side filters of the artwork collection.
// Sorting and paging are not sent; they happen in memory.
type ArtworkQuery struct {
	Search     string
	Category   model.Category
	UserEmail  string
	Visibility model.Visibility
}

func (q ArtworkQuery) values() url.Values {
	v := url.Values{}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	if !q.Category.IsAll() {
		v.Set("category", string(q.Category))
	}
	if q.UserEmail != "" {
		v.Set("userEmail", q.UserEmail)
	}
	if q.Visibility != "" {
		v.Set("visibility", string(q.Visibility))
	}
	return v
}

type LikeAction string

const (
	ActionLike   LikeAction = "like"
	ActionUnlike LikeAction = "unlike"
)

// Artworks lists artworks matching q.
func (c *Client) Artworks(ctx context.Context, q ArtworkQuery) ([]model.Artwork, error) {
	var out []model.Artwork
	err := c.do(ctx, http.MethodGet, "/api/artworks", q.values(), nil, &out)
	return out, err
}

// Featured lists the backend's small featured set.
func (c *Client) Featured(ctx context.Context) ([]model.Artwork, error) {
	var out []model.Artwork
	err := c.do(ctx, http.MethodGet, "/api/artworks/featured", nil, nil, &out)
	return out, err
}

func (c *Client) Artwork(ctx context.Context, id string) (*model.Artwork, error) {
	out := &model.Artwork{}
	err := c.do(ctx, http.MethodGet, "/api/artworks/"+url.PathEscape(id), nil, nil, out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// MyArtworks lists the caller's own artworks, private ones included.
func (c *Client) MyArtworks(ctx context.Context) ([]model.Artwork, error) {
	var out []model.Artwork
	err := c.do(ctx, http.MethodGet, "/api/my-artworks", nil, nil, &out)
	return out, err
}

func (c *Client) CreateArtwork(ctx context.Context, in model.ArtworkInput) error {
	return c.do(ctx, http.MethodPost, "/api/artworks", nil, in, nil)
}

func (c *Client) UpdateArtwork(ctx context.Context, id string, in model.ArtworkInput) error {
	return c.do(ctx, http.MethodPut, "/api/artworks/"+url.PathEscape(id), nil, in, nil)
}

func (c *Client) DeleteArtwork(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/artworks/"+url.PathEscape(id), nil, nil, nil)
}

// LikeArtwork applies action and returns the like count the backend reports.
func (c *Client) LikeArtwork(ctx context.Context, id string, action LikeAction) (int, error) {
	var out struct {
		Likes int `json:"likes"`
	}
	body := map[string]LikeAction{"action": action}
	err := c.do(ctx, http.MethodPatch, "/api/artworks/"+url.PathEscape(id)+"/like", nil, body, &out)
	if err != nil {
		return 0, err
	}
	return out.Likes, nil
}
