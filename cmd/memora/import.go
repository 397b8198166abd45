package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/conorfennell/memora/internal/parser"
	"github.com/conorfennell/memora/internal/study"
)

func newImportCommand(a *app) *cobra.Command {
	var (
		name  string
		merge bool
	)
	command := &cobra.Command{
		Use:   "import <file>",
		Short: "Create a deck from a .tsv, .csv or Q:/A: markdown file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cards, err := parser.ParseFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to parse %s: %w", args[0], err)
			}
			if name == "" {
				base := filepath.Base(args[0])
				name = strings.TrimSuffix(base, filepath.Ext(base))
			}

			ctx := a.userContext(cmd.Context())
			svc, store, err := a.openService(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if merge {
				existing, err := findDeck(ctx, svc, name)
				switch {
				case err == nil:
					deck, err := svc.MergeIntoDeck(ctx, existing.ID, cards)
					if err != nil {
						return err
					}
					color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "Merged %d cards into %q, now %d cards\n",
						len(cards), deck.Name, deck.CardCount)
					return nil
				case !errors.Is(err, study.ErrDeckNotFound):
					return err
				}
			}

			deck, err := svc.ImportDeck(ctx, name, cards)
			if err != nil {
				return err
			}
			color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "Imported %d cards into %q\n", deck.CardCount, deck.Name)
			return nil
		},
	}
	command.Flags().StringVar(&name, "name", "", "deck name (defaults to the file name)")
	command.Flags().BoolVar(&merge, "merge", false, "add the cards to an existing deck of that name instead of creating \"name (n)\"")
	return command
}
