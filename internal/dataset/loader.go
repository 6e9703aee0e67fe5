package dataset

import (
	"encoding/json"
	"fmt"
	"os"
)

// Load reads and parses the dataset file at path.
// A missing/unreadable file or invalid JSON is a startup-fatal condition
// for the caller; no partial document is ever returned.
func Load(path string) (*Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRead, err)
	}
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return &doc, nil
}
