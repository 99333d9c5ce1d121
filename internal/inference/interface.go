package inference

import (
	"context"
)

//go:generate mockgen -source=interface.go -destination=../mocks/inference/mock_client.go -package=mock_inference

// Client sends a single completion request to a language model service
// and returns the generated text.
type Client interface {
	Complete(ctx context.Context, request CompletionRequest) (string, error)
}

type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is a single role-tagged chat message
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// CompletionRequest holds the parameters of one completion call.
// The model identifier is owned by the client.
type CompletionRequest struct {
	Messages    []Message
	Temperature float32
	MaxTokens   int
}

const (
	AnswerOnlyInstruction = "Just response the answer"
	StepByStepInstruction = "Let's break down the problem"

	QuestionTemperature float32 = 0.7
	QuestionMaxTokens           = 150
)

// NewQuestionRequest builds the fixed request used to ask a math word problem.
func NewQuestionRequest(question string) CompletionRequest {
	return CompletionRequest{
		Messages: []Message{
			{Role: RoleUser, Content: question},
			{Role: RoleSystem, Content: AnswerOnlyInstruction},
			{Role: RoleSystem, Content: StepByStepInstruction},
		},
		Temperature: QuestionTemperature,
		MaxTokens:   QuestionMaxTokens,
	}
}

const ProbeQuestion = "What is 3+2"

// NewProbeRequest builds the minimal request used to check connectivity and credentials.
func NewProbeRequest() CompletionRequest {
	return CompletionRequest{
		Messages: []Message{
			{Role: RoleSystem, Content: AnswerOnlyInstruction},
			{Role: RoleUser, Content: ProbeQuestion},
		},
	}
}
