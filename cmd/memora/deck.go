package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newDeckCommand(a *app) *cobra.Command {
	deckCommand := &cobra.Command{
		Use:   "deck",
		Short: "Deck commands",
	}
	deckCommand.AddCommand(
		newDeckListCommand(a),
		newDeckCreateCommand(a),
		newDeckRenameCommand(a),
		newDeckDeleteCommand(a),
	)
	return deckCommand
}

func newDeckListCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List decks with their due counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := a.userContext(cmd.Context())
			svc, store, err := a.openService(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			decks, err := svc.ListDecks(ctx)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if len(decks) == 0 {
				fmt.Fprintln(w, "No decks yet. Create one with \"memora deck create <name>\".")
				return nil
			}
			dueColor := color.New(color.FgYellow)
			for _, d := range decks {
				due, err := svc.DueCardCount(ctx, d.ID)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%-30s %4d cards  ", d.Name, d.CardCount)
				dueColor.Fprintf(w, "%4d due\n", due)
			}
			return nil
		},
	}
}

func newDeckCreateCommand(a *app) *cobra.Command {
	var unique bool
	command := &cobra.Command{
		Use:   "create <name>",
		Short: "Create an empty deck",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := a.userContext(cmd.Context())
			svc, store, err := a.openService(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			name := args[0]
			if unique {
				if name, err = svc.UniqueDeckName(ctx, name); err != nil {
					return err
				}
			}
			deck, err := svc.CreateDeck(ctx, name)
			if err != nil {
				return err
			}
			color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "Created deck %q\n", deck.Name)
			return nil
		},
	}
	command.Flags().BoolVar(&unique, "unique", false, `pick "name (n)" if the name is taken`)
	return command
}

func newDeckRenameCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <deck> <new name>",
		Short: "Rename a deck",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := a.userContext(cmd.Context())
			svc, store, err := a.openService(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			deck, err := findDeck(ctx, svc, args[0])
			if err != nil {
				return err
			}
			deck, err = svc.RenameDeck(ctx, deck.ID, args[1])
			if err != nil {
				return err
			}
			color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "Renamed to %q\n", deck.Name)
			return nil
		},
	}
}

func newDeckDeleteCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <deck>",
		Short: "Delete a deck and all of its cards",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := a.userContext(cmd.Context())
			svc, store, err := a.openService(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			deck, err := findDeck(ctx, svc, args[0])
			if err != nil {
				return err
			}
			if err := svc.DeleteDeck(ctx, deck.ID); err != nil {
				return err
			}
			color.New(color.FgRed).Fprintf(cmd.OutOrStdout(), "Deleted %q and %d cards\n", deck.Name, deck.CardCount)
			return nil
		},
	}
}
