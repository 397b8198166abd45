package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/conorfennell/memora/internal/auth"
)

func newTokenCommand(a *app) *cobra.Command {
	var ttl time.Duration
	command := &cobra.Command{
		Use:   "token",
		Short: "Print a bearer token for --user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.cfg.Auth.JWTSecret == "" {
				return errors.New("auth.jwt_secret must be set to mint tokens")
			}
			tok, err := auth.MintToken([]byte(a.cfg.Auth.JWTSecret), a.userID, time.Now(), ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tok)
			return nil
		},
	}
	command.Flags().DurationVar(&ttl, "ttl", 30*24*time.Hour, "token lifetime, 0 for no expiry")
	return command
}
