package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/at-ishikawa/gsmic/internal/dataset"
	"github.com/at-ishikawa/gsmic/internal/inference"
	"github.com/at-ishikawa/gsmic/internal/results"
	"github.com/at-ishikawa/gsmic/internal/runner"
)

type QueryOptions struct {
	DatasetFile string
	OutputFile  string
	Delay       time.Duration
	Rand        *rand.Rand

	// Sleep overrides the pause between questions; nil uses a real timer
	Sleep runner.SleepFunc
}

// RunQuery samples the dataset, asks the model both variants of every sampled question
// and saves all responses once the whole sample has been processed.
func RunQuery(ctx context.Context, stdout io.Writer, client inference.Client, options QueryOptions) error {
	questions, err := dataset.Load(options.DatasetFile)
	if err != nil {
		return fmt.Errorf("failed to load dataset: %w", err)
	}

	rng := options.Rand
	if rng == nil {
		rng = dataset.NewRand(0)
	}
	sample := dataset.SelectSample(questions, rng)
	_, _ = fmt.Fprintf(stdout, "Loaded %d entries from %s.\n", len(sample), options.DatasetFile)

	logger := slog.Default().With("run_id", uuid.NewString())
	runnerOptions := []runner.Option{
		runner.WithOutput(stdout),
		runner.WithLogger(logger),
	}
	if options.Sleep != nil {
		runnerOptions = append(runnerOptions, runner.WithSleep(options.Sleep))
	}

	records, err := runner.New(client, options.Delay, runnerOptions...).Run(ctx, sample)
	if err != nil {
		return fmt.Errorf("runner.Run > %w", err)
	}

	if err := results.Save(options.OutputFile, records); err != nil {
		return fmt.Errorf("failed to save responses: %w", err)
	}
	logger.Debug("query run finished", "records", len(records), "output", options.OutputFile)
	_, _ = fmt.Fprintf(stdout, "Saved %d responses to %s.\n", len(records), options.OutputFile)
	return nil
}
