package main

import (
	"fmt"
	"time"

	"github.com/at-ishikawa/gsmic/internal/cli"
	"github.com/at-ishikawa/gsmic/internal/dataset"
	"github.com/spf13/cobra"
)

func newQueryCommand() *cobra.Command {
	var datasetFile, outputFile string
	var delaySeconds int
	var seed uint64

	command := &cobra.Command{
		Use:   "query",
		Short: "Ask the model the original and the perturbed version of sampled questions",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("dataset") {
				cfg.Query.DatasetFile = datasetFile
			}
			if cmd.Flags().Changed("output") {
				cfg.Query.OutputFile = outputFile
			}
			if cmd.Flags().Changed("delay") {
				if delaySeconds < 0 {
					return fmt.Errorf("--delay must be 0 or greater")
				}
				cfg.Query.DelaySeconds = delaySeconds
			}

			openaiClient, err := newOpenAIClient(cfg.OpenAI)
			if err != nil {
				return err
			}
			defer func() {
				_ = openaiClient.Close()
			}()
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Using OpenAI provider (model: %s)\n", openaiClient.GetModel())

			return cli.RunQuery(cmd.Context(), cmd.OutOrStdout(), openaiClient, cli.QueryOptions{
				DatasetFile: cfg.Query.DatasetFile,
				OutputFile:  cfg.Query.OutputFile,
				Delay:       time.Duration(cfg.Query.DelaySeconds) * time.Second,
				Rand:        dataset.NewRand(seed),
			})
		},
	}

	command.Flags().StringVar(&datasetFile, "dataset", "data/gsm_ic_prompts.json", "Path to the input dataset JSON file")
	command.Flags().StringVar(&outputFile, "output", "results/model_responses.json", "Path to the output JSON file for responses")
	command.Flags().IntVar(&delaySeconds, "delay", 1, "Delay (in seconds) after each question pair")
	command.Flags().Uint64Var(&seed, "seed", 0, "Seed for sampling questions; 0 draws a different sample on every run")

	return command
}
