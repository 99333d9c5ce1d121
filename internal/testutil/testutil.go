// Package testutil provides shared test helpers for creating config files, datasets and response files.
package testutil

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/at-ishikawa/gsmic/internal/dataset"
	"github.com/at-ishikawa/gsmic/internal/results"
	"github.com/stretchr/testify/require"
)

// SetupTestConfig creates a minimal config file and the data and results directories for testing.
// Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string) string {
	t.Helper()

	for _, d := range []string{"data", "results"} {
		require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, d), 0755))
	}

	configContent := fmt.Sprintf(`query:
  dataset_file: %s
  output_file: %s
  delay_seconds: 0
reports:
  format: csv
`,
		filepath.Join(tmpDir, "data", "gsm_ic_prompts.json"),
		filepath.Join(tmpDir, "results", "model_responses.json"),
	)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// SetupTestConfigWithAPIKey sets a fake OpenAI API key for tests
// that require API key validation to pass. The key can only come from the environment.
func SetupTestConfigWithAPIKey(t *testing.T, tmpDir string) string {
	t.Helper()
	t.Setenv("OPENAI_API_KEY", "fake-key-for-testing")
	return SetupTestConfig(t, tmpDir)
}

// NewQuestion returns an eligible question whose answer is answer.
func NewQuestion(id int, answer string, labels dataset.Labels) dataset.Question {
	return dataset.Question{
		OriginalQuestion: fmt.Sprintf("Question %d: how many?", id),
		NewQuestion:      fmt.Sprintf("Question %d with an irrelevant sentence: how many?", id),
		Metadata: dataset.Metadata{
			Answer:           dataset.Answer(answer),
			NSteps:           json.RawMessage(`2`),
			Role:             json.RawMessage(`"Her brother"`),
			Number:           json.RawMessage(`"12"`),
			SentenceTemplate: json.RawMessage(`"{role} is {number} years old."`),
			Labels:           labels,
		},
	}
}

// WriteDataset writes questions as a JSON array and returns the file path.
func WriteDataset(t *testing.T, path string, questions []dataset.Question) string {
	t.Helper()

	contents, err := json.MarshalIndent(questions, "", "  ")
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, contents, 0644))
	return path
}

// WriteResponses writes response records the way a query run does and returns the file path.
func WriteResponses(t *testing.T, path string, records []results.Record) string {
	t.Helper()

	require.NoError(t, results.Save(path, records))
	return path
}
