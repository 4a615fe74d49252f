// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package corpusstate tracks which consolidated corpus file is active.
// The pointer lives outside the corpus documents, so producing a new
// corpus never rewrites an existing file in place.
// Implements: prd005-corpus-state (R1-R3);
//
//	docs/ARCHITECTURE § Corpus state.
package corpusstate

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.yaml.in/yaml/v3"
)

// pointerFile is the single state file kept under the corpus directory.
const pointerFile = "active.yaml"

// ErrNoActive reports that no corpus has been activated yet.
var ErrNoActive = errors.New("no active corpus file")

// Pointer is the persisted state: one slot naming the active corpus file.
type Pointer struct {
	ActiveCorpusFile string    `yaml:"active_corpus_file"`
	UpdatedAt        time.Time `yaml:"updated_at"`
}

// Path returns the pointer file location under dir.
func Path(dir string) string {
	return filepath.Join(dir, pointerFile)
}

// Load reads the active pointer from dir. A missing pointer file or an
// empty slot returns ErrNoActive.
func Load(dir string) (Pointer, error) {
	data, err := os.ReadFile(Path(dir))
	if errors.Is(err, os.ErrNotExist) {
		return Pointer{}, ErrNoActive
	}
	if err != nil {
		return Pointer{}, fmt.Errorf("reading %s: %w", Path(dir), err)
	}

	var p Pointer
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Pointer{}, fmt.Errorf("parsing %s: %w", Path(dir), err)
	}
	if p.ActiveCorpusFile == "" {
		return Pointer{}, ErrNoActive
	}
	return p, nil
}

// Set updates the slot to corpusPath. The pointer file is replaced
// atomically via a temp file and rename, never edited in place.
func Set(dir, corpusPath string) error {
	if corpusPath == "" {
		return errors.New("corpus path is empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating state directory %s: %w", dir, err)
	}

	data, err := yaml.Marshal(Pointer{
		ActiveCorpusFile: corpusPath,
		UpdatedAt:        time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("encoding corpus pointer: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".active-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp pointer file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("writing %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("closing %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), Path(dir)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replacing %s: %w", Path(dir), err)
	}
	return nil
}
