package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/artshowcase/showcase/internal/api"
	"github.com/artshowcase/showcase/internal/listing"
	"github.com/artshowcase/showcase/internal/model"
	"github.com/artshowcase/showcase/internal/reaction"
)

var (
	ErrLoginRequired   = errors.New("please login to continue")
	ErrArtworkNotFound = errors.New("artwork not found")
	ErrNotOwner        = errors.New("only the owner can change this artwork")
)

type ArtworkService struct {
	api           *api.Client
	images        *ImageService
	featuredLimit int
}

// NewArtworkService creates the artwork service. images may be nil when
// uploads are disabled.
func NewArtworkService(client *api.Client, images *ImageService, featuredLimit int) *ArtworkService {
	return &ArtworkService{
		api:           client,
		images:        images,
		featuredLimit: featuredLimit,
	}
}

// as returns an API client acting for sess (anonymous when sess is nil).
func as(c *api.Client, sess *model.Session) *api.Client {
	if sess == nil {
		return c
	}
	return c.WithToken(sess.Token)
}

func viewer(sess *model.Session) string {
	if sess == nil {
		return ""
	}
	return sess.Email
}

// Search returns the server-filtered collection for f. Private artworks of
// other users are dropped even if the backend returned them.
func (s *ArtworkService) Search(ctx context.Context, sess *model.Session, f listing.Filter) ([]model.Artwork, error) {
	items, err := as(s.api, sess).Artworks(ctx, api.ArtworkQuery{
		Search:   f.Search,
		Category: f.Category,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search artworks: %w", err)
	}
	return listing.VisibleTo(items, viewer(sess)), nil
}

// ByArtist returns the public artworks of one artist.
func (s *ArtworkService) ByArtist(ctx context.Context, sess *model.Session, email string, f listing.Filter) ([]model.Artwork, error) {
	items, err := as(s.api, sess).Artworks(ctx, api.ArtworkQuery{
		Search:     f.Search,
		Category:   f.Category,
		UserEmail:  email,
		Visibility: model.VisibilityPublic,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get artist artworks: %w", err)
	}
	return listing.VisibleTo(items, ""), nil
}

func (s *ArtworkService) Featured(ctx context.Context) ([]model.Artwork, error) {
	items, err := s.api.Featured(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get featured artworks: %w", err)
	}
	items = listing.VisibleTo(items, "")
	if s.featuredLimit > 0 && len(items) > s.featuredLimit {
		items = items[:s.featuredLimit]
	}
	return items, nil
}

// ByID returns one artwork. A private artwork is reported as not found to
// anyone but its owner.
func (s *ArtworkService) ByID(ctx context.Context, sess *model.Session, id string) (*model.Artwork, error) {
	a, err := as(s.api, sess).Artwork(ctx, id)
	if err != nil {
		if errors.Is(err, api.ErrNotFound) {
			return nil, ErrArtworkNotFound
		}
		return nil, fmt.Errorf("failed to get artwork: %w", err)
	}
	if !a.VisibleTo(viewer(sess)) {
		return nil, ErrArtworkNotFound
	}
	return a, nil
}

// Mine returns every artwork of the signed-in user, public and private.
func (s *ArtworkService) Mine(ctx context.Context, sess *model.Session) ([]model.Artwork, error) {
	if sess == nil {
		return nil, ErrLoginRequired
	}
	items, err := s.api.WithToken(sess.Token).MyArtworks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get my artworks: %w", err)
	}
	return items, nil
}

// MineFiltered applies the gallery's search and category filter locally;
// the my-artworks endpoint takes no query.
func (s *ArtworkService) MineFiltered(ctx context.Context, sess *model.Session, f listing.Filter) ([]model.Artwork, error) {
	items, err := s.Mine(ctx, sess)
	if err != nil {
		return nil, err
	}
	return listing.Match(items, f), nil
}

func (s *ArtworkService) Create(ctx context.Context, sess *model.Session, in model.ArtworkInput) error {
	if sess == nil {
		return ErrLoginRequired
	}
	in.UserEmail = sess.Email
	in.ArtistName = sess.DisplayName()
	in.ArtistPhoto = sess.PhotoURL

	err := s.api.WithToken(sess.Token).CreateArtwork(ctx, in)
	if err != nil {
		return fmt.Errorf("failed to create artwork: %w", err)
	}
	slog.Info("artwork created", "email", sess.Email, "title", in.Title)
	return nil
}

func (s *ArtworkService) Update(ctx context.Context, sess *model.Session, id string, in model.ArtworkInput) error {
	current, err := s.owned(ctx, sess, id)
	if err != nil {
		return err
	}
	in.UserEmail = current.UserEmail
	in.ArtistName = current.ArtistName
	in.ArtistPhoto = current.ArtistPhoto

	err = s.api.WithToken(sess.Token).UpdateArtwork(ctx, id, in)
	if err != nil {
		return fmt.Errorf("failed to update artwork: %w", err)
	}

	if current.ImageURL != in.ImageURL {
		s.removeImage(ctx, current.ImageURL)
	}
	slog.Info("artwork updated", "artwork_id", id, "email", sess.Email)
	return nil
}

func (s *ArtworkService) Delete(ctx context.Context, sess *model.Session, id string) error {
	current, err := s.owned(ctx, sess, id)
	if err != nil {
		return err
	}

	err = s.api.WithToken(sess.Token).DeleteArtwork(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete artwork: %w", err)
	}

	s.removeImage(ctx, current.ImageURL)
	slog.Info("artwork deleted", "artwork_id", id, "email", sess.Email)
	return nil
}

func (s *ArtworkService) owned(ctx context.Context, sess *model.Session, id string) (*model.Artwork, error) {
	if sess == nil {
		return nil, ErrLoginRequired
	}
	a, err := s.ByID(ctx, sess, id)
	if err != nil {
		return nil, err
	}
	if !a.OwnedBy(sess.Email) {
		return nil, ErrNotOwner
	}
	return a, nil
}

// removeImage deletes an uploaded image that is no longer referenced
// (best effort).
func (s *ArtworkService) removeImage(ctx context.Context, imageURL string) {
	if s.images == nil {
		return
	}
	if err := s.images.Remove(ctx, imageURL); err != nil {
		slog.Warn("failed to remove artwork image", "error", err, "image_url", imageURL)
	}
}

// ToggleLike flips the like state of an artwork. liked is the state the
// viewer currently sees and likes the count shown; the returned toggle
// carries the count the server reported.
func (s *ArtworkService) ToggleLike(ctx context.Context, sess *model.Session, id string, liked bool, likes int) (reaction.Toggle, error) {
	t := reaction.Toggle{Active: liked, Count: likes}
	if sess == nil {
		return t, ErrLoginRequired
	}

	client := s.api.WithToken(sess.Token)
	err := t.Run(ctx, func(ctx context.Context, active bool) (int, error) {
		action := api.ActionUnlike
		if active {
			action = api.ActionLike
		}
		return client.LikeArtwork(ctx, id, action)
	})
	if err != nil {
		return t, fmt.Errorf("failed to like artwork: %w", err)
	}
	return t, nil
}
