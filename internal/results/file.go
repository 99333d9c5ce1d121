package results

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const indent = "    "

// Save writes all records to path as a pretty-printed JSON array, replacing any existing file.
func Save(path string, records []Record) error {
	if records == nil {
		records = []Record{}
	}
	contents, err := json.MarshalIndent(records, "", indent)
	if err != nil {
		return fmt.Errorf("json.MarshalIndent > %w", err)
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("os.MkdirAll(%s) > %w", dir, err)
		}
	}
	if err := os.WriteFile(path, contents, 0644); err != nil {
		return fmt.Errorf("os.WriteFile(%s) > %w", path, err)
	}
	return nil
}

// Load reads records written by Save
func Load(path string) ([]Record, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile(%s) > %w", path, err)
	}

	var records []Record
	if err := json.Unmarshal(contents, &records); err != nil {
		return nil, fmt.Errorf("json.Unmarshal(%s) > %w", path, err)
	}
	return records, nil
}
