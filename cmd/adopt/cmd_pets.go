package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"pet-adoption/internal/adapters/adoptionapi"
	"pet-adoption/internal/workflow"
)

func newPetsCmd(s *session) *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "pets",
		Short: "Browse the animal catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := s.open(cmd, false); err != nil {
				return err
			}
			pets, err := s.client.ListPets(cmd.Context(), s.actor, status)
			if err != nil {
				return err
			}
			printPets(cmd, s, pets)
			return nil
		},
	}
	cmd.Flags().StringVar(&status, "status", "", "DISPONIVEL | ADOTADO")

	cmd.AddCommand(newPetsCreateCmd(s), newPetsStatusCmd(s))
	return cmd
}

func newPetsCreateCmd(s *session) *cobra.Command {
	var in adoptionapi.CreatePetInput

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Publish an animal (organizations)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := s.open(cmd, true); err != nil {
				return err
			}
			in.Name = args[0]
			p, err := s.client.CreatePet(cmd.Context(), s.actor, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Published %s (id %s).\n", p.Name, p.ID)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&in.Species, "species", "", "Species")
	f.StringVar(&in.Size, "size", "", "Size")
	f.IntVar(&in.AgeYears, "age", 0, "Age in years")
	f.StringVar(&in.Breed, "breed", "", "Breed")
	f.StringVar(&in.Description, "description", "", "Description")
	f.StringVar(&in.ImageURL, "image", "", "Cover image URL")
	f.StringSliceVar(&in.PhotoURLs, "photo", nil, "Photo URL (repeatable)")
	_ = cmd.MarkFlagRequired("species")
	return cmd
}

func newPetsStatusCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "status <animal-id> <DISPONIVEL|ADOTADO>",
		Short: "Mark an animal available or adopted (organizations)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := s.open(cmd, true); err != nil {
				return err
			}
			p, err := s.client.SetPetStatus(cmd.Context(), s.actor, args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is now %s.\n", p.Name, p.Status)
			return nil
		},
	}
}

func printPets(cmd *cobra.Command, s *session, pets []workflow.Pet) {
	out := cmd.OutOrStdout()
	if len(pets) == 0 {
		fmt.Fprintln(out, "No animals found.")
		return
	}
	rows := make([]table.Row, 0, len(pets))
	for _, p := range pets {
		rows = append(rows, table.Row{p.ID, p.Name, p.Species, p.AgeYears, p.Status, workflow.ResolveImage(p)})
	}
	renderTable(out, s.format(), table.Row{"ID", "Name", "Species", "Age", "Status", "Photo"}, rows)
}
