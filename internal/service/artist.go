package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/artshowcase/showcase/internal/api"
	"github.com/artshowcase/showcase/internal/listing"
	"github.com/artshowcase/showcase/internal/model"
)

var ErrArtistNotFound = errors.New("artist not found")

type ArtistService struct {
	api      *api.Client
	artworks *ArtworkService
}

func NewArtistService(client *api.Client, artworks *ArtworkService) *ArtistService {
	return &ArtistService{api: client, artworks: artworks}
}

func (s *ArtistService) ByEmail(ctx context.Context, sess *model.Session, email string) (*model.Artist, error) {
	artist, err := as(s.api, sess).Artist(ctx, email)
	if err != nil {
		if errors.Is(err, api.ErrNotFound) {
			return nil, ErrArtistNotFound
		}
		return nil, fmt.Errorf("failed to get artist: %w", err)
	}
	return artist, nil
}

// Gallery loads the artist and their public artworks concurrently.
// A failed artwork fetch leaves the list empty; a missing artist fails the
// whole page.
func (s *ArtistService) Gallery(ctx context.Context, sess *model.Session, email string, f listing.Filter) (*model.Artist, []model.Artwork, error) {
	var (
		wg       sync.WaitGroup
		artist   *model.Artist
		items    []model.Artwork
		artErr   error
		itemsErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		artist, artErr = s.ByEmail(ctx, sess, email)
	}()
	go func() {
		defer wg.Done()
		items, itemsErr = s.artworks.ByArtist(ctx, sess, email, f)
	}()
	wg.Wait()

	if artErr != nil {
		return nil, nil, artErr
	}
	if itemsErr != nil {
		return artist, nil, itemsErr
	}
	return artist, items, nil
}
