package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/conorfennell/memora/internal/domain"
	"github.com/conorfennell/memora/internal/srs"
)

func newDueCommand(a *app) *cobra.Command {
	var overLearn bool
	command := &cobra.Command{
		Use:   "due <deck>",
		Short: "List the cards of a deck that are due now",
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
			var cards []domain.Card
			if overLearn {
				cards, err = svc.OverLearnCards(ctx, deck.ID)
			} else {
				cards, err = svc.DueCards(ctx, deck.ID)
			}
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			bold := color.New(color.Bold)
			bold.Fprintf(w, "%s: %d of %d cards\n", deck.Name, len(cards), deck.CardCount)
			now := time.Now()
			for _, c := range cards {
				when := "now"
				if c.NextReview.After(now) {
					when = "in " + srs.FormatInterval(c.NextReview.Sub(now).Hours()/24)
				}
				fmt.Fprintf(w, "  %-40s %6s  %s\n", truncate(c.Front, 40), srs.FormatInterval(c.Interval), when)
			}
			return nil
		},
	}
	command.Flags().BoolVar(&overLearn, "over-learn", false, "list cards that are not due yet instead")
	return command
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
