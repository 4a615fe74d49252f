// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package corpus

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/corpus-engine/pkg/types"
)

// WriteConsolidated encodes doc as JSON or YAML and writes it to path
// through a temporary file renamed into place, so a failed write never
// truncates an existing artifact (R3.1).
func WriteConsolidated(doc *types.ConsolidatedDocument, path string, format types.OutputFormat) error {
	if path == "" {
		return fmt.Errorf("output path is empty")
	}

	var data []byte
	var err error
	switch format {
	case types.OutputJSON, "":
		data, err = json.MarshalIndent(doc, "", "  ")
	case types.OutputYAML:
		data, err = yaml.Marshal(doc)
	default:
		return fmt.Errorf("unsupported format %q: use json or yaml", format)
	}
	if err != nil {
		return fmt.Errorf("marshaling consolidated document: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory %s: %w", dir, err)
	}

	tmpFile, err := os.CreateTemp(dir, ".consolidated-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	_, writeErr := tmpFile.Write(data)
	closeErr := tmpFile.Close()
	if writeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("writing consolidated document: %w", writeErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", closeErr)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

// ReadConsolidated reads a consolidated document written by
// WriteConsolidated, selecting the codec by file extension (R4.1).
func ReadConsolidated(path string) (*types.ConsolidatedDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading consolidated document %s: %w", path, err)
	}

	var doc types.ConsolidatedDocument
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing consolidated document %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing consolidated document %s: %w", path, err)
		}
	}
	return &doc, nil
}
