package runner

import (
	"context"

	"github.com/at-ishikawa/gsmic/internal/inference"
)

// Outcome is the result of asking one question: either the response text or the reason the query failed.
type Outcome struct {
	Response string
	Err      error
}

func (o Outcome) Succeeded() bool {
	return o.Err == nil
}

// ResponsePtr returns nil for a failed query so that it is stored as null.
func (o Outcome) ResponsePtr() *string {
	if !o.Succeeded() {
		return nil
	}
	response := o.Response
	return &response
}

func (o Outcome) ErrorMessage() string {
	if o.Succeeded() {
		return ""
	}
	return o.Err.Error()
}

// Query asks the model a single question with the fixed question settings.
func Query(ctx context.Context, client inference.Client, question string) Outcome {
	response, err := client.Complete(ctx, inference.NewQuestionRequest(question))
	if err != nil {
		return Outcome{Err: err}
	}
	return Outcome{Response: response}
}
