package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"family-care/internal/platform/httpclient"

	"github.com/spf13/cobra"
)

const defaultServer = "http://localhost:5000"

type globalFlags struct {
	server  string
	token   string
	timeout time.Duration
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}

	root := &cobra.Command{
		Use:           "adminctl",
		Short:         "Admin client for the family-care API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&g.server, "server", envOr("ADMINCTL_SERVER", defaultServer), "API base url")
	root.PersistentFlags().StringVar(&g.token, "token", os.Getenv("ADMINCTL_TOKEN"), "bearer token (admin)")
	root.PersistentFlags().DurationVar(&g.timeout, "timeout", httpclient.DefaultTimeout, "request timeout")

	root.AddCommand(
		newLoginCmd(g),
		newUsersCmd(g),
		newReportCmd(g),
		newDeleteUserCmd(g),
	)
	return root
}

func (g *globalFlags) client(needToken bool) (*httpclient.Client, error) {
	if needToken && strings.TrimSpace(g.token) == "" {
		return nil, errors.New("missing --token (or ADMINCTL_TOKEN)")
	}
	c, err := httpclient.New(g.server, g.timeout)
	if err != nil {
		return nil, err
	}
	c.Token = g.token
	return c, nil
}

func newLoginCmd(g *globalFlags) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and print the bearer token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := g.client(false)
			if err != nil {
				return err
			}

			var resp struct {
				Token string `json:"token"`
			}
			err = c.DoJSON(cmd.Context(), "POST", "/auth/login", map[string]string{
				"email":    email,
				"password": password,
			}, &resp)
			if err != nil {
				return err
			}
			if resp.Token == "" {
				return errors.New("server did not issue a token")
			}

			fmt.Fprintln(cmd.OutOrStdout(), resp.Token)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newUsersCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "users",
		Short: "List registered users",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := g.client(true)
			if err != nil {
				return err
			}

			var users []json.RawMessage
			if err := c.DoJSON(cmd.Context(), "GET", "/admin/users", nil, &users); err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), users)
		},
	}
}

func newReportCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Print the admin report",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := g.client(true)
			if err != nil {
				return err
			}

			var rep map[string]any
			if err := c.DoJSON(cmd.Context(), "GET", "/admin/reports", nil, &rep); err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), rep)
		},
	}
}

func newDeleteUserCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "delete-user <id>",
		Short: "Delete a user by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil || id <= 0 {
				return fmt.Errorf("invalid user id %q", args[0])
			}

			c, err := g.client(true)
			if err != nil {
				return err
			}

			var resp struct {
				Message string `json:"message"`
			}
			if err := c.DoJSON(cmd.Context(), "DELETE", fmt.Sprintf("/admin/users/%d", id), nil, &resp); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), resp.Message)
			return nil
		},
	}
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
