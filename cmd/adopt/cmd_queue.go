package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"pet-adoption/internal/workflow"
)

func newQueueCmd(s *session) *cobra.Command {
	var (
		all   bool
		watch time.Duration
		times int
	)

	cmd := &cobra.Command{
		Use:   "queue [animal-id]",
		Short: "Show your animals, or one animal's pending candidates",
		Long: "Without arguments lists the organization's animals (--all also prints each queue).\n" +
			"With an animal id shows its pending candidates in order of arrival; --watch re-queries\n" +
			"the queue every interval until interrupted.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := s.open(cmd, true); err != nil {
				return err
			}

			ctx := cmd.Context()
			board := workflow.NewQueueBoard(s.client, s.actor)
			defer board.Close()
			out := cmd.OutOrStdout()

			if len(args) == 0 {
				pets, err := board.LoadPets(ctx)
				if err != nil {
					return err
				}
				if len(pets) == 0 {
					fmt.Fprintln(out, "No animals published yet.")
					return nil
				}
				rows := make([]table.Row, 0, len(pets))
				for _, p := range pets {
					rows = append(rows, table.Row{p.ID, p.Name, p.Species, p.Status})
				}
				renderTable(out, s.format(), table.Row{"ID", "Name", "Species", "Status"}, rows)

				if !all {
					return nil
				}
				for _, p := range board.Pets() {
					view, err := board.Expand(ctx, p.ID)
					if err != nil {
						return err
					}
					fmt.Fprintf(out, "\n%s (%s)\n", p.Name, p.ID)
					printQueue(cmd, s, view.Snapshot())
					board.Collapse(p.ID)
				}
				return nil
			}

			petID := args[0]
			view, err := board.Expand(ctx, petID)
			if err != nil {
				return err
			}
			printQueue(cmd, s, view.Snapshot())

			// times=0 => hasta Ctrl-C.
			for n := 1; watch > 0 && (times == 0 || n < times); n++ {
				select {
				case <-ctx.Done():
					return nil
				case <-time.After(watch):
				}
				if err := board.Refresh(ctx, petID); err != nil {
					return err
				}
				fmt.Fprintf(out, "\n[%s]\n", time.Now().Format("15:04:05"))
				printQueue(cmd, s, view.Snapshot())
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.BoolVar(&all, "all", false, "Also print the queue of every animal")
	f.DurationVar(&watch, "watch", 0, "Re-query the queue every interval, e.g. 10s")
	f.IntVar(&times, "times", 0, "With --watch, stop after this many queries (0 = until interrupted)")
	return cmd
}

func printQueue(cmd *cobra.Command, s *session, snap workflow.QueueSnapshot) {
	out := cmd.OutOrStdout()
	if snap.Empty() {
		fmt.Fprintf(out, "No pending candidates for animal %s.\n", snap.AnimalID)
		return
	}

	rows := make([]table.Row, 0, len(snap.Items))
	for n, i := range snap.Items {
		rows = append(rows, table.Row{strconv.Itoa(n + 1), i.ID, i.AdopterName, i.AdopterEmail, formatTime(i.CreatedAt)})
	}
	renderTable(out, s.format(), table.Row{"#", "Interest", "Candidate", "Email", "Since"}, rows)
}
