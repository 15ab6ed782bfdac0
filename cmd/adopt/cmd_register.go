package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"pet-adoption/internal/workflow"
)

func newRegisterCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "register <animal-id>",
		Short: "Join an animal's waiting queue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := s.open(cmd, true); err != nil {
				return err
			}

			reg, err := workflow.NewRegistrar(s.client).Register(cmd.Context(), s.actor, args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if reg.AlreadyRegistered {
				if reg.Interest.ID != "" {
					fmt.Fprintf(out, "You are already in the queue for animal %s (since %s, %s).\n",
						args[0], formatTime(reg.Interest.CreatedAt), workflow.StatusLabel(reg.Interest.Status))
					return nil
				}
				fmt.Fprintf(out, "You are already in the queue for animal %s.\n", args[0])
				return nil
			}
			fmt.Fprintf(out, "Interest sent for animal %s (id %s). The organization will review it.\n", args[0], reg.Interest.ID)
			return nil
		},
	}
}
