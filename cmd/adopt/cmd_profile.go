package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newProfileCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show the effective profile (file + flags)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := s.open(cmd, false); err != nil {
				return err
			}
			shown := s.profile
			if shown.Token != "" {
				shown.Token = "********"
			}
			raw, err := yaml.Marshal(shown)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), string(raw))
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "save",
		Short: "Write the current flags into the profile file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			base, err := loadProfile(s.profilePath)
			if err != nil {
				return err
			}
			path := s.profilePath
			if path == "" {
				path = defaultProfilePath()
			}
			if err := saveProfile(path, base.merge(s.flags)); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Profile saved to %s.\n", path)
			return nil
		},
	})
	return cmd
}
