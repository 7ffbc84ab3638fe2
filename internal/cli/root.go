// Package cli is the terminal client: sign in, browse and search the public
// gallery, and look at a single artwork, all against the same backend API the
// web front end uses.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/artshowcase/showcase/internal/api"
	"github.com/artshowcase/showcase/internal/config"
	"github.com/artshowcase/showcase/internal/listing"
	"github.com/artshowcase/showcase/internal/logger"
	"github.com/artshowcase/showcase/internal/markdown"
	"github.com/artshowcase/showcase/internal/model"
	"github.com/artshowcase/showcase/internal/service"
)

const (
	envAPIURL     = "GALLERY_API_URL"
	defaultAPIURL = "http://localhost:5000"
)

// app carries the global flags shared by every command.
type app struct {
	apiURL    string
	tokenPath string
	debug     bool
	debounce  time.Duration
}

// services is what a command needs to talk to the backend.
type services struct {
	auth     *service.AuthService
	artworks *service.ArtworkService
	artists  *service.ArtistService
	md       *markdown.Renderer
	tokens   *TokenStore
}

func NewRootCmd() *cobra.Command {
	a := &app{}

	apiURL := os.Getenv(envAPIURL)
	if apiURL == "" {
		apiURL = defaultAPIURL
	}

	root := &cobra.Command{
		Use:           "gallery",
		Short:         "Browse the art showcase from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.initLogging(cmd.ErrOrStderr())
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.apiURL, "api", apiURL, "backend API base URL (env "+envAPIURL+")")
	flags.StringVar(&a.tokenPath, "token-file", "", "auth token location (default $XDG_CONFIG_HOME/artshowcase/token)")
	flags.BoolVar(&a.debug, "debug", false, "log every backend request")
	flags.DurationVar(&a.debounce, "debounce", listing.DefaultDebounce, "delay between typing and searching")

	root.AddCommand(loginCmd(a))
	root.AddCommand(logoutCmd(a))
	root.AddCommand(exploreCmd(a))
	root.AddCommand(showCmd(a))
	return root
}

// initLogging keeps the terminal quiet unless --debug is set.
func (a *app) initLogging(w io.Writer) {
	if a.debug {
		slog.SetDefault(logger.New(w, true, "", "cli"))
		return
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelWarn})))
}

func (a *app) services() (*services, error) {
	client, err := api.New(a.apiURL)
	if err != nil {
		return nil, err
	}
	tokens, err := NewTokenStore(a.tokenPath)
	if err != nil {
		return nil, err
	}

	artworks := service.NewArtworkService(client, nil, 0)
	return &services{
		auth:     service.NewAuthService(client, &config.Config{}),
		artworks: artworks,
		artists:  service.NewArtistService(client, artworks),
		md:       markdown.NewRenderer(),
		tokens:   tokens,
	}, nil
}

// session returns the signed-in session, or nil for guests. A token that no
// longer decodes or has expired is removed.
func (s *services) session(w io.Writer) *model.Session {
	token, err := s.tokens.Load()
	if err != nil {
		slog.Warn("failed to load token", "error", err, "path", s.tokens.Path())
		return nil
	}
	if token == "" {
		return nil
	}

	sess, err := s.auth.Session(token)
	if err != nil {
		if errors.Is(err, service.ErrSessionExpired) {
			fmt.Fprintln(w, "Your session has expired. Run `gallery login` to sign in again.")
		}
		_ = s.tokens.Clear()
		return nil
	}
	return sess
}
