package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-daily-diary/models"
	"github.com/spf13/cobra"
)

var errEmptyCredentials = errors.New("login and password are required")

type credentials struct {
	login    string
	name     string
	password string
}

func (c *credentials) bind(cmd *cobra.Command, withName bool) {
	cmd.Flags().StringVarP(&c.login, "login", "l", "", "account login")
	cmd.Flags().StringVarP(&c.password, "password", "p", "", "account password (read from stdin when empty)")
	if withName {
		cmd.Flags().StringVarP(&c.name, "name", "n", "", "display name")
	}
}

// user reads a missing password from in.
func (c *credentials) user(in io.Reader) (models.User, error) {
	password := c.password
	if password == "" {
		line, err := bufio.NewReader(in).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return models.User{}, fmt.Errorf("read password: %w", err)
		}
		password = strings.TrimRight(line, "\r\n")
	}

	login := strings.TrimSpace(c.login)
	if login == "" || password == "" {
		return models.User{}, errEmptyCredentials
	}
	return models.User{Login: login, Name: strings.TrimSpace(c.name), Password: password}, nil
}

func (a *App) registerCommand() *cobra.Command {
	var creds credentials
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account on the server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			user, err := creds.user(cmd.InOrStdin())
			if err != nil {
				return err
			}
			token, err := a.adapter.Register(cmd.Context(), user)
			if err != nil {
				return err
			}
			return a.startSession(cmd, token, "registered as "+user.Login)
		},
	}
	creds.bind(cmd, true)
	return cmd
}

func (a *App) loginCommand() *cobra.Command {
	var creds credentials
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and remember the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			user, err := creds.user(cmd.InOrStdin())
			if err != nil {
				return err
			}
			token, err := a.adapter.Login(cmd.Context(), user)
			if err != nil {
				return err
			}
			return a.startSession(cmd, token, "logged in as "+user.Login)
		},
	}
	creds.bind(cmd, false)
	return cmd
}

func (a *App) logoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the saved session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.session.Clear(); err != nil {
				return err
			}
			a.adapter.SetToken("")

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, newStyles(out).ok("logged out"))
			return nil
		},
	}
}

func (a *App) startSession(cmd *cobra.Command, token models.Token, msg string) error {
	if err := a.session.Save(token.SignedString); err != nil {
		return err
	}
	a.logger.Info().Str("func", "*App.startSession").Int64("user_id", token.UserID).Msg("session saved")

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, newStyles(out).ok(msg))
	return nil
}
