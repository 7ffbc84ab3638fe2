package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/artshowcase/showcase/internal/api"
	"github.com/artshowcase/showcase/internal/model"
	"github.com/artshowcase/showcase/internal/service"
)

func showCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one artwork",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.services()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			sess := s.session(cmd.ErrOrStderr())

			art, err := s.artworks.ByID(ctx, sess, args[0])
			if errors.Is(err, service.ErrArtworkNotFound) {
				return fmt.Errorf("artwork %s not found", args[0])
			}
			if err != nil {
				return errors.New(api.Message(err, "failed to load artwork"))
			}

			var artist *model.Artist
			if art.UserEmail != "" {
				artist, err = s.artists.ByEmail(ctx, sess, art.UserEmail)
				if err != nil {
					slog.Warn("failed to get artist", "error", err, "email", art.UserEmail)
				}
			}

			return printArtwork(cmd.OutOrStdout(), art, artist, s.md.Excerpt(art.Description, 0))
		},
	}
}

func printArtwork(w io.Writer, a *model.Artwork, artist *model.Artist, description string) error {
	name := a.ArtistName
	if artist != nil && artist.Name != "" {
		name = artist.Name
	}
	if name == "" {
		name = a.UserEmail
	}

	fmt.Fprintln(w, a.Title)
	fmt.Fprintf(w, "by %s\n\n", name)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	row := func(label, value string) {
		if value != "" {
			fmt.Fprintf(tw, "%s\t%s\n", label, value)
		}
	}
	row("Category", string(a.Category))
	row("Medium", a.Medium)
	row("Dimensions", a.Dimensions)
	row("Price", model.FormatPrice(a.Price))
	row("Likes", fmt.Sprint(a.Likes))
	if !a.IsPublic() {
		row("Visibility", string(a.Visibility))
	}
	if !a.CreatedAt.IsZero() {
		row("Added", a.CreatedAt.Format("Jan 2, 2006"))
	}
	row("Image", a.ImageURL)
	if err := tw.Flush(); err != nil {
		return err
	}

	if description != "" {
		fmt.Fprintf(w, "\n%s\n", description)
	}
	return nil
}
