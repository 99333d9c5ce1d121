package dataset

import (
	"encoding/json"
	"fmt"
	"os"
)

// Load reads a JSON array of questions
func Load(path string) ([]Question, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile(%s) > %w", path, err)
	}

	var questions []Question
	if err := json.Unmarshal(contents, &questions); err != nil {
		return nil, fmt.Errorf("json.Unmarshal(%s) > %w", path, err)
	}
	return questions, nil
}
