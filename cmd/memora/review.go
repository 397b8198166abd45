package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conorfennell/memora/internal/session"
	"github.com/conorfennell/memora/internal/tui"
)

func newReviewCommand(a *app) *cobra.Command {
	var overLearn bool
	command := &cobra.Command{
		Use:   "review <deck>",
		Short: "Review a deck's due cards in the terminal",
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
			sess, err := session.New(ctx, svc, deck.ID)
			if err != nil {
				return fmt.Errorf("failed to start session: %w", err)
			}
			if overLearn && sess.Done() {
				if err := sess.SwitchToOverLearn(ctx); err != nil {
					return err
				}
			}
			return tui.Run(ctx, sess, deck.Name)
		},
	}
	command.Flags().BoolVar(&overLearn, "over-learn", false, "study cards that are not due yet when nothing is due")
	return command
}
