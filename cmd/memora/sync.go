package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newSyncCommand(a *app) *cobra.Command {
	syncCommand := &cobra.Command{
		Use:   "sync",
		Short: "Sync decks from local directories and git repositories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := a.userContext(cmd.Context())
			store, err := a.openStore(ctx)
			if err != nil {
				return err
			}
			defer store.Close()
			syncer, err := a.newSyncer(store)
			if err != nil {
				return err
			}

			report, err := syncer.Run(ctx, a.userID)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if report.Sources == 0 {
				fmt.Fprintln(w, `No sources configured. Add one with "memora sync add <path/or/url.git>".`)
				return nil
			}
			color.New(color.FgGreen).Fprintf(w, "Synced %d sources, %d files: %d added, %d deleted\n",
				report.Sources, report.Files, report.Added, report.Deleted)
			for _, e := range report.Errors {
				color.New(color.FgRed).Fprintf(w, "  %v\n", e)
			}
			return nil
		},
	}
	syncCommand.PersistentFlags().String("repos-dir", "repos", "directory git sources are cloned into")
	syncCommand.AddCommand(
		newSyncAddCommand(a),
		newSyncRemoveCommand(a),
		newSyncListCommand(a),
	)
	return syncCommand
}

func newSyncAddCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add <path/or/url.git>",
		Short: "Add a source",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := a.userContext(cmd.Context())
			store, err := a.openStore(ctx)
			if err != nil {
				return err
			}
			defer store.Close()
			syncer, err := a.newSyncer(store)
			if err != nil {
				return err
			}

			src, err := syncer.AddSource(ctx, a.userID, args[0])
			if err != nil {
				return err
			}
			color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "Added %s source %s\n", src.Type, src.Path)
			return nil
		},
	}
}

func newSyncRemoveCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <path/or/url.git>",
		Short: "Remove a source; its decks are kept",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := a.userContext(cmd.Context())
			store, err := a.openStore(ctx)
			if err != nil {
				return err
			}
			defer store.Close()
			syncer, err := a.newSyncer(store)
			if err != nil {
				return err
			}
			if err := syncer.RemoveSource(ctx, a.userID, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", args[0])
			return nil
		},
	}
}

func newSyncListCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List sources",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := a.userContext(cmd.Context())
			store, err := a.openStore(ctx)
			if err != nil {
				return err
			}
			defer store.Close()
			syncer, err := a.newSyncer(store)
			if err != nil {
				return err
			}
			sources, err := syncer.Sources(ctx, a.userID)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, src := range sources {
				scanned := "never"
				if src.LastScanned != nil {
					scanned = src.LastScanned.Local().Format("2006-01-02 15:04")
				}
				fmt.Fprintf(w, "%-6s %-50s last scanned %s\n", src.Type, src.Path, scanned)
			}
			return nil
		},
	}
}
