// Package runner asks the model both variants of every sampled question and collects the responses.
package runner

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/at-ishikawa/gsmic/internal/dataset"
	"github.com/at-ishikawa/gsmic/internal/inference"
	"github.com/at-ishikawa/gsmic/internal/results"
)

const DefaultDelay = time.Second

// SleepFunc pauses between questions. It must return early with ctx.Err() when ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

type Runner struct {
	client       inference.Client
	delay        time.Duration
	sleep        SleepFunc
	stdoutWriter io.Writer
	logger       *slog.Logger
}

type Option func(*Runner)

func WithOutput(w io.Writer) Option {
	return func(r *Runner) {
		r.stdoutWriter = w
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

func WithSleep(sleep SleepFunc) Option {
	return func(r *Runner) {
		r.sleep = sleep
	}
}

func New(client inference.Client, delay time.Duration, opts ...Option) *Runner {
	r := &Runner{
		client:       client,
		delay:        delay,
		sleep:        sleepContext,
		stdoutWriter: os.Stdout,
		logger:       slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run queries the original and the new question of each record one after another,
// pausing for the configured delay after every record.
// A failed query does not stop the run; only a cancelled context does.
func (r *Runner) Run(ctx context.Context, questions []dataset.Question) ([]results.Record, error) {
	records := make([]results.Record, 0, len(questions))
	for idx, question := range questions {
		_, _ = fmt.Fprintf(r.stdoutWriter, "Querying model for entry %d/%d...\n", idx+1, len(questions))

		original := r.query(ctx, idx, "original", question.OriginalQuestion)
		_, _ = fmt.Fprintf(r.stdoutWriter, "Original Response: %s\n", formatOutcome(original))

		perturbed := r.query(ctx, idx, "new", question.NewQuestion)
		_, _ = fmt.Fprintf(r.stdoutWriter, "New Response: %s\n", formatOutcome(perturbed))

		records = append(records, results.Record{
			ID:               idx,
			OriginalQuestion: question.OriginalQuestion,
			OriginalResponse: original.ResponsePtr(),
			OriginalError:    original.ErrorMessage(),
			NewQuestion:      question.NewQuestion,
			NewResponse:      perturbed.ResponsePtr(),
			NewError:         perturbed.ErrorMessage(),
			Metadata:         question.Metadata,
		})

		if err := r.sleep(ctx, r.delay); err != nil {
			return records, fmt.Errorf("interrupted after %d of %d entries: %w", idx+1, len(questions), err)
		}
	}
	return records, nil
}

func (r *Runner) query(ctx context.Context, idx int, variant string, question string) Outcome {
	outcome := Query(ctx, r.client, question)
	if !outcome.Succeeded() {
		r.logger.Error("Error querying the model",
			"entry", idx,
			"variant", variant,
			"error", outcome.Err)
	}
	return outcome
}

func formatOutcome(outcome Outcome) string {
	if !outcome.Succeeded() {
		return "<none>"
	}
	return outcome.Response
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
