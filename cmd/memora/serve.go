package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/conorfennell/memora/internal/content"
	"github.com/conorfennell/memora/internal/web"
)

func newServeCommand(a *app) *cobra.Command {
	command := &cobra.Command{
		Use:   "serve",
		Short: "Serve the JSON API",
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.cfg.Auth.JWTSecret == "" {
				return errors.New("auth.jwt_secret must be set to serve the API")
			}
			ctx := cmd.Context()
			svc, store, err := a.openService(ctx)
			if err != nil {
				return err
			}
			defer store.Close()
			syncer, err := a.newSyncer(store)
			if err != nil {
				return err
			}

			srv := web.NewServer(svc, syncer, content.NewRenderer(), []byte(a.cfg.Auth.JWTSecret))
			return web.Serve(ctx, a.cfg.HTTP.Addr, srv)
		},
	}
	command.Flags().String("addr", "localhost:8080", "address to listen on")
	command.Flags().String("repos-dir", "repos", "directory git sources are cloned into")
	return command
}
