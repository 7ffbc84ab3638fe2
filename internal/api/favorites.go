package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/artshowcase/showcase/internal/model"
)

// Favorites lists the artworks the caller has favorited.
func (c *Client) Favorites(ctx context.Context) ([]model.Artwork, error) {
	var out []model.Artwork
	err := c.do(ctx, http.MethodGet, "/api/favorites", nil, nil, &out)
	return out, err
}

func (c *Client) AddFavorite(ctx context.Context, artworkID string) error {
	body := map[string]string{"artworkId": artworkID}
	return c.do(ctx, http.MethodPost, "/api/favorites", nil, body, nil)
}

func (c *Client) RemoveFavorite(ctx context.Context, artworkID string) error {
	return c.do(ctx, http.MethodDelete, "/api/favorites/"+url.PathEscape(artworkID), nil, nil, nil)
}

func (c *Client) Artist(ctx context.Context, email string) (*model.Artist, error) {
	out := &model.Artist{}
	err := c.do(ctx, http.MethodGet, "/api/artists/"+url.PathEscape(email), nil, nil, out)
	if err != nil {
		return nil, err
	}
	if out.Email == "" {
		out.Email = email
	}
	return out, nil
}

func (c *Client) DashboardStats(ctx context.Context) (*model.DashboardStats, error) {
	out := &model.DashboardStats{}
	err := c.do(ctx, http.MethodGet, "/api/dashboard/stats", nil, nil, out)
	if err != nil {
		return nil, err
	}
	return out, nil
}
