package main

import (
	"github.com/at-ishikawa/gsmic/internal/cli"
	"github.com/spf13/cobra"
)

func newProbeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "probe",
		Short: "Send one trivial question to check the API key and model",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			openaiClient, err := newOpenAIClient(cfg.OpenAI)
			if err != nil {
				return err
			}
			defer func() {
				_ = openaiClient.Close()
			}()

			return cli.RunProbe(cmd.Context(), cmd.OutOrStdout(), openaiClient, openaiClient.GetModel())
		},
	}
}
