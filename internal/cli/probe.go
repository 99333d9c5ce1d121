package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/at-ishikawa/gsmic/internal/inference"
)

// RunProbe sends one trivial question to check that the credentials and model work.
func RunProbe(ctx context.Context, stdout io.Writer, client inference.Client, model string) error {
	response, err := client.Complete(ctx, inference.NewProbeRequest())
	if err != nil {
		return fmt.Errorf("failed to query the model: %w", err)
	}
	_, _ = fmt.Fprintf(stdout, "Model: %s\n", model)
	_, _ = fmt.Fprintf(stdout, "Question: %s\n", inference.ProbeQuestion)
	_, _ = fmt.Fprintf(stdout, "Response: %s\n", response)
	return nil
}
