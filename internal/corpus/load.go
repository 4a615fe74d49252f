// Package corpus loads source corpus documents and writes the consolidated
// artifact. Implements: prd001-corpus-loading (R1-R4);
//
//	docs/ARCHITECTURE § Corpus I/O.
package corpus

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/pdiddy/corpus-engine/pkg/types"
)

// patentIDPattern matches US patent identifiers with an optional kind code:
// "US7654321", "us10466266b2", "US20230012345A1".
var patentIDPattern = regexp.MustCompile(`^(?i)us\d{6,11}(?:[a-z]\d{0,2})?$`)

// NormalizeID trims an identifier and uppercases it when it is a US patent
// number, so duplicates differing only in case collapse during dedup (R2.1).
func NormalizeID(id string) string {
	id = strings.TrimSpace(id)
	if patentIDPattern.MatchString(id) {
		return strings.ToUpper(id)
	}
	return id
}

// LoadPatents reads the patents source document: a JSON object whose
// "patents" field holds an ordered record sequence (R1.1). A missing or
// null field is a schema error (R1.3).
func LoadPatents(path string) ([]types.Record, error) {
	var doc struct {
		Patents *[]types.Record `json:"patents"`
	}
	if err := readJSON(path, &doc); err != nil {
		return nil, err
	}
	if doc.Patents == nil {
		return nil, fmt.Errorf("%s: missing required field %q", path, "patents")
	}
	records := *doc.Patents
	for i := range records {
		records[i].ID = NormalizeID(records[i].ID)
	}
	return records, nil
}

// LoadPapers reads the papers source document: a JSON object whose
// "papers" field holds an ordered record sequence (R1.2).
func LoadPapers(path string) ([]types.Record, error) {
	var doc struct {
		Papers *[]types.Record `json:"papers"`
	}
	if err := readJSON(path, &doc); err != nil {
		return nil, err
	}
	if doc.Papers == nil {
		return nil, fmt.Errorf("%s: missing required field %q", path, "papers")
	}
	records := *doc.Papers
	for i := range records {
		records[i].ID = NormalizeID(records[i].ID)
	}
	return records, nil
}

// DedupRecords collapses records sharing a non-empty identifier, keeping
// the first occurrence (R2.2). Source order is preserved; records without
// an identifier are never collapsed.
func DedupRecords(records []types.Record) ([]types.Record, int) {
	seen := make(map[string]bool, len(records))
	unique := make([]types.Record, 0, len(records))
	removed := 0

	for _, r := range records {
		if r.ID != "" {
			if seen[r.ID] {
				removed++
				continue
			}
			seen[r.ID] = true
		}
		unique = append(unique, r)
	}
	return unique, removed
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}
