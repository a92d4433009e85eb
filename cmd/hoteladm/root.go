package main

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Alp4ka/hotelpager/internal/config"
)

type app struct {
	cfg *config.Config
}

func newRootCommand() *cobra.Command {
	a := new(app)

	cmd := &cobra.Command{
		Use:          "hoteladm",
		Short:        "hotel administration dashboard tooling",
		Long:         `hoteladm lists hotel entities page by page, renders pagination windows and serves the backend API.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadFromEnv()
			if err != nil {
				log.Error().Err(err).Msg("could not load the configuration")
				return err
			}
			zerolog.SetGlobalLevel(cfg.ZerologLevel())
			a.cfg = cfg
			return nil
		},
	}

	cmd.AddCommand(a.list(), window(), a.serve())

	return cmd
}
