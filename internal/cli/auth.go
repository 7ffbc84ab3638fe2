package cli

import (
	"bufio"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/artshowcase/showcase/internal/api"
	"github.com/artshowcase/showcase/internal/service"
	"github.com/artshowcase/showcase/internal/validation"
)

func loginCmd(a *app) *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and remember the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.services()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if email == "" {
				email, err = GetSimpleText(bufio.NewReader(cmd.InOrStdin()), "Email", out)
				if err != nil {
					return err
				}
			}
			if err := validation.ValidateEmail(email); err != nil {
				return err
			}

			pw, err := GetPassword(out)
			if err != nil {
				return fmt.Errorf("failed to read password: %w", err)
			}
			defer clear(pw)

			sess, err := s.auth.Login(cmd.Context(), email, string(pw))
			if errors.Is(err, service.ErrInvalidCredentials) {
				return errors.New("invalid email or password")
			}
			if err != nil {
				return errors.New(api.Message(err, "login failed, please try again"))
			}

			if err := s.tokens.Save(sess.Token); err != nil {
				return err
			}
			fmt.Fprintf(out, "Logged in as %s\n", sess.DisplayName())
			return nil
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "account email (prompted when empty)")
	return cmd
}

func logoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tokens, err := NewTokenStore(a.tokenPath)
			if err != nil {
				return err
			}
			if err := tokens.Clear(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}
