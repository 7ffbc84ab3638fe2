package service

import (
	"context"
	"encoding/xml"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/artshowcase/showcase/internal/model"
)

// publicRoutes defines all static public routes that should be included in the sitemap
// Add new public pages here (but not auth-protected pages like /app/dashboard)
var publicRoutes = []struct {
	Path       string
	Priority   string
	ChangeFreq string
}{
	{"/", "1.0", "daily"},
	{"/explore", "0.9", "daily"},
	{"/login", "0.3", "monthly"},
	{"/register", "0.3", "monthly"},
}

type SitemapService struct {
	artworks *ArtworkService
	baseURL  string
	now      func() time.Time
}

func NewSitemapService(artworks *ArtworkService, baseURL string) *SitemapService {
	return &SitemapService{
		artworks: artworks,
		baseURL:  strings.TrimSuffix(baseURL, "/"),
		now:      time.Now,
	}
}

// GenerateSitemap lists the static pages plus the featured artworks and
// their artists.
func (s *SitemapService) GenerateSitemap(ctx context.Context) ([]byte, error) {
	sitemap := model.Sitemap{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  s.staticURLs(),
	}

	featured, err := s.artworks.Featured(ctx)
	if err != nil {
		// The static part is still useful
		slog.Warn("failed to get featured artworks for sitemap", "error", err)
	} else {
		sitemap.URLs = append(sitemap.URLs, s.artworkURLs(featured)...)
	}

	output, err := xml.MarshalIndent(sitemap, "", "  ")
	if err != nil {
		return nil, err
	}

	return []byte(xml.Header + string(output)), nil
}

func (s *SitemapService) staticURLs() []model.SitemapURL {
	today := s.now().Format("2006-01-02")
	urls := make([]model.SitemapURL, 0, len(publicRoutes))

	for _, route := range publicRoutes {
		urls = append(urls, model.SitemapURL{
			Loc:        s.baseURL + route.Path,
			LastMod:    today,
			ChangeFreq: route.ChangeFreq,
			Priority:   route.Priority,
		})
	}

	return urls
}

func (s *SitemapService) artworkURLs(items []model.Artwork) []model.SitemapURL {
	today := s.now().Format("2006-01-02")
	urls := make([]model.SitemapURL, 0, len(items)*2)
	artists := make(map[string]bool)

	for _, a := range items {
		lastMod := today
		if !a.CreatedAt.IsZero() {
			lastMod = a.CreatedAt.Format("2006-01-02")
		}
		urls = append(urls, model.SitemapURL{
			Loc:        s.baseURL + "/artworks/" + url.PathEscape(a.ID),
			LastMod:    lastMod,
			ChangeFreq: "weekly",
			Priority:   "0.7",
		})

		if a.UserEmail != "" && !artists[a.UserEmail] {
			artists[a.UserEmail] = true
			urls = append(urls, model.SitemapURL{
				Loc:        s.baseURL + "/artists/" + url.PathEscape(a.UserEmail),
				LastMod:    today,
				ChangeFreq: "weekly",
				Priority:   "0.6",
			})
		}
	}

	return urls
}
