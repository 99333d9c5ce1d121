// Package dataset reads GSM-IC style question pairs and selects the sample sent to the model.
package dataset

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

const (
	LabelRelevant = "relevant"
	LabelInRange  = "in_range"
	LabelOnTopic  = "on_topic"

	// LabelInTopic marks the records eligible for querying.
	LabelInTopic = "in_topic"
)

// Answer is the ground-truth value as it appears in the dataset.
// It accepts both JSON strings and JSON numbers and is parsed only when scored.
type Answer string

func (a *Answer) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*a = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("json.Unmarshal answer > %w", err)
		}
		*a = Answer(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("answer must be a string or a number: %w", err)
	}
	*a = Answer(n.String())
	return nil
}

// Int parses the answer as an integer. There is no fallback for absent or non-numeric answers.
func (a Answer) Int() (int, error) {
	s := strings.TrimSpace(string(a))
	if s == "" {
		return 0, fmt.Errorf("answer is required")
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("answer %q is not an integer: %w", string(a), err)
	}
	return n, nil
}

// Labels are the categorical tags describing how a question was perturbed
type Labels struct {
	RoleLabel     string `json:"role_label"`
	NumberLabel   string `json:"number_label"`
	SentenceLabel string `json:"sentence_label"`
}

// Metadata is carried unchanged from a Question to its response record.
// The descriptive fields keep their raw JSON so numbers are never rounded through float64;
// an absent field is nil and is written back as null.
type Metadata struct {
	Answer           Answer          `json:"answer"`
	NSteps           json.RawMessage `json:"n_steps"`
	Role             json.RawMessage `json:"role"`
	Number           json.RawMessage `json:"number"`
	SentenceTemplate json.RawMessage `json:"sentence_template"`
	Labels
}

// Question is a pair of prompts: the original word problem and the one with irrelevant context added
type Question struct {
	OriginalQuestion string `json:"original_question"`
	NewQuestion      string `json:"new_question"`
	Metadata
}
