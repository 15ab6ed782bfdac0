package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"pet-adoption/internal/workflow"
)

func newMineCmd(s *session) *cobra.Command {
	var parallel int

	cmd := &cobra.Command{
		Use:   "mine",
		Short: "List your adoption interests",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := s.open(cmd, true); err != nil {
				return err
			}

			items, err := workflow.NewMyInterests(s.client, parallel).Load(cmd.Context(), s.actor)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(items) == 0 {
				fmt.Fprintln(out, "You have not registered interest in any animal yet.")
				return nil
			}

			rows := make([]table.Row, 0, len(items))
			for _, it := range items {
				if !it.Enriched {
					s.log.Warn("animal details unavailable", map[string]any{"animal_id": it.Pet.ID, "interest_id": it.Interest.ID})
				}
				rows = append(rows, table.Row{it.Pet.Name, it.Label(), formatTime(it.Interest.CreatedAt), it.Image()})
			}
			renderTable(out, s.format(), table.Row{"Animal", "Status", "Since", "Photo"}, rows)
			return nil
		},
	}

	cmd.Flags().IntVar(&parallel, "parallel", 0, "Concurrent animal lookups (0 = default)")
	return cmd
}
