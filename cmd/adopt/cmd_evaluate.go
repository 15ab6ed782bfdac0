package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"pet-adoption/internal/workflow"
)

func newEvaluateCmd(s *session, decision workflow.Status) *cobra.Command {
	var (
		yes      bool
		animalID string
	)

	verb, past := "approve", "approved"
	if decision == workflow.StatusRejected {
		verb, past = "reject", "rejected"
	}

	cmd := &cobra.Command{
		Use:   verb + " <interest-id>",
		Short: strings.ToUpper(verb[:1]) + verb[1:] + " a pending candidate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := s.open(cmd, true); err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			var view *workflow.QueueView
			if animalID != "" {
				view = workflow.NewQueueView(s.client, s.actor, animalID)
				defer view.Close()
				if err := view.Load(cmd.Context()); err != nil {
					return err
				}
			}

			confirm := workflow.AlwaysConfirm
			if !yes {
				confirm = promptConfirmer(cmd.InOrStdin(), out)
			}

			updated, err := workflow.NewEvaluator(s.client, confirm).
				Evaluate(cmd.Context(), s.actor, view, args[0], decision)
			if errors.Is(err, workflow.ErrNotConfirmed) {
				fmt.Fprintln(out, "Cancelled, nothing was sent.")
				return nil
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "Interest %s %s.\n", updated.ID, past)
			if view != nil {
				printQueue(cmd, s, view.Snapshot())
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	cmd.Flags().StringVar(&animalID, "animal", "", "Animal id, to show the candidate's name and the remaining queue")
	return cmd
}
