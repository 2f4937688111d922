// Package sink persists accumulated lookup batches: either to a JSON review
// file for human inspection, or into the PostgreSQL lookups table via a
// single bulk copy.
package sink

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/paddyodab/lookup-import/internal/lookup"
)

// WriteJSON writes the full record sequence as one indented JSON document,
// preserving order. An empty batch writes an empty array, not an error. The
// file is intended for review before committing to the store.
func WriteJSON(path string, records []lookup.Record) error {
	if records == nil {
		records = []lookup.Record{}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %d records: %w", len(records), err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// ReadJSON reads a review file back into records, in file order.
func ReadJSON(path string) ([]lookup.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var records []lookup.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return records, nil
}
