package main

import (
	"github.com/spf13/cobra"

	"pet-adoption/internal/adapters/adoptionapi"
	"pet-adoption/internal/platform/logger"
	"pet-adoption/internal/workflow"
)

// session es lo que comparten los subcomandos una vez leído el perfil.
type session struct {
	profilePath string
	flags       Profile

	profile Profile
	actor   workflow.Actor
	client  *adoptionapi.Client
	log     logger.Logger
}

func newRootCmd() *cobra.Command {
	s := &session{}

	root := &cobra.Command{
		Use:   "adopt",
		Short: "Pet adoption interests from the terminal",
		Long: "adopt registers interest in animals, shows each animal's waiting queue to its\n" +
			"organization, approves or rejects candidates and lists an adopter's interests.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
	}

	f := root.PersistentFlags()
	f.StringVar(&s.profilePath, "profile", "", "Profile file (default ~/.adopt.yaml or $ADOPT_PROFILE)")
	f.StringVar(&s.flags.APIURL, "api", "", "API base URL")
	f.StringVar(&s.flags.UserID, "user", "", "User id (dev mode)")
	f.StringVar(&s.flags.Role, "role", "", "Role: ADOPTER | ORGANIZATION (dev mode)")
	f.StringVar(&s.flags.Name, "name", "", "Display name (dev mode)")
	f.StringVar(&s.flags.Email, "email", "", "Email (dev mode)")
	f.StringVar(&s.flags.Token, "token", "", "Bearer token")
	f.StringVar(&s.flags.Timeout, "timeout", "", "Request timeout, e.g. 5s")
	f.StringVar(&s.flags.Format, "format", "", "Output: table | markdown")
	f.StringVar(&s.flags.LogLevel, "log-level", "", "debug | info | warn | error")

	root.AddCommand(
		newRegisterCmd(s),
		newQueueCmd(s),
		newEvaluateCmd(s, workflow.StatusApproved),
		newEvaluateCmd(s, workflow.StatusRejected),
		newMineCmd(s),
		newPetsCmd(s),
		newProfileCmd(s),
	)
	return root
}

// open lee perfil + flags y arma cliente y actor. needActor=false para comandos sin identidad.
func (s *session) open(cmd *cobra.Command, needActor bool) error {
	base, err := loadProfile(s.profilePath)
	if err != nil {
		return err
	}
	s.profile = base.merge(s.flags)

	lvl := logger.Warn
	if s.profile.LogLevel != "" {
		lvl = logger.ParseLevel(s.profile.LogLevel)
	}
	s.log = logger.New(logger.Options{
		Level:  lvl,
		Format: logger.FormatText,
		App:    "adopt",
		Writer: cmd.ErrOrStderr(),
	})

	timeout, err := s.profile.timeout()
	if err != nil {
		return err
	}
	s.client, err = adoptionapi.New(adoptionapi.Config{BaseURL: s.profile.apiURL(), Timeout: timeout})
	if err != nil {
		return err
	}

	if needActor {
		s.actor, err = s.profile.actor()
		if err != nil {
			return err
		}
	}
	s.log.Debug("session ready", map[string]any{"api": s.profile.apiURL(), "user_id": s.actor.ID})
	return nil
}

func (s *session) format() outputFormat {
	return parseFormat(s.profile.Format)
}
