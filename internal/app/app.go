package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/artshowcase/showcase/internal/api"
	"github.com/artshowcase/showcase/internal/config"
	"github.com/artshowcase/showcase/internal/markdown"
	"github.com/artshowcase/showcase/internal/service"
	"github.com/artshowcase/showcase/internal/storage"
)

type App struct {
	Cfg              *config.Config
	API              *api.Client
	Markdown         *markdown.Renderer
	AuthService      *service.AuthService
	ArtworkService   *service.ArtworkService
	FavoriteService  *service.FavoriteService
	ArtistService    *service.ArtistService
	DashboardService *service.DashboardService
	ImageService     *service.ImageService // nil when uploads are disabled
	SitemapService   *service.SitemapService
}

func New(ctx context.Context, cfg *config.Config) (*App, error) {
	client, err := api.New(cfg.APIBaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize api client: %w", err)
	}

	// Storage (optional)
	var images *service.ImageService
	store, err := storage.New(ctx, cfg)
	switch {
	case errors.Is(err, storage.ErrDisabled):
		slog.Info("image uploads disabled, artworks reference image URLs only")
	case err != nil:
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	default:
		images = service.NewImageService(store, cfg.UploadMaxBytes)
	}

	// Services
	artworkService := service.NewArtworkService(client, images, cfg.FeaturedLimit)

	return &App{
		Cfg:              cfg,
		API:              client,
		Markdown:         markdown.NewRenderer(),
		AuthService:      service.NewAuthService(client, cfg),
		ArtworkService:   artworkService,
		FavoriteService:  service.NewFavoriteService(client),
		ArtistService:    service.NewArtistService(client, artworkService),
		DashboardService: service.NewDashboardService(client),
		ImageService:     images,
		SitemapService:   service.NewSitemapService(artworkService, cfg.AppURL),
	}, nil
}
