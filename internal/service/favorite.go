package service

import (
	"context"
	"fmt"
	"slices"

	"github.com/artshowcase/showcase/internal/api"
	"github.com/artshowcase/showcase/internal/model"
	"github.com/artshowcase/showcase/internal/reaction"
)

type FavoriteService struct {
	api *api.Client
}

func NewFavoriteService(client *api.Client) *FavoriteService {
	return &FavoriteService{api: client}
}

func (s *FavoriteService) List(ctx context.Context, sess *model.Session) ([]model.Artwork, error) {
	if sess == nil {
		return nil, ErrLoginRequired
	}
	items, err := s.api.WithToken(sess.Token).Favorites(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get favorites: %w", err)
	}
	return items, nil
}

// IsFavorite reports whether the artwork is in the viewer's favorites.
// Guests never have favorites.
func (s *FavoriteService) IsFavorite(ctx context.Context, sess *model.Session, artworkID string) (bool, error) {
	if sess == nil {
		return false, nil
	}
	items, err := s.List(ctx, sess)
	if err != nil {
		return false, err
	}
	return slices.ContainsFunc(items, func(a model.Artwork) bool { return a.ID == artworkID }), nil
}

// Toggle adds or removes the artwork depending on the state the viewer sees.
// The returned toggle is the state after the call, rolled back on failure.
func (s *FavoriteService) Toggle(ctx context.Context, sess *model.Session, artworkID string, favorite bool) (reaction.Toggle, error) {
	t := reaction.Toggle{Active: favorite}
	if sess == nil {
		return t, ErrLoginRequired
	}

	client := s.api.WithToken(sess.Token)
	err := t.Run(ctx, func(ctx context.Context, active bool) (int, error) {
		if active {
			return 0, client.AddFavorite(ctx, artworkID)
		}
		return 0, client.RemoveFavorite(ctx, artworkID)
	})
	if err != nil {
		return t, fmt.Errorf("failed to update favorites: %w", err)
	}
	return t, nil
}

func (s *FavoriteService) Remove(ctx context.Context, sess *model.Session, artworkID string) error {
	_, err := s.Toggle(ctx, sess, artworkID, true)
	return err
}
