// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package corpusstate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetThenLoad(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, Set(dir, "corpus/consolidated.json"))

	p, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "corpus/consolidated.json", p.ActiveCorpusFile)
	assert.False(t, p.UpdatedAt.IsZero(), "UpdatedAt should be stamped")
}

func TestLoadWithoutPointer(t *testing.T) {
	_, err := Load(t.TempDir())
	assert.ErrorIs(t, err, ErrNoActive)

	_, err = Load(filepath.Join(t.TempDir(), "never-created"))
	assert.ErrorIs(t, err, ErrNoActive)
}

func TestLoadEmptySlot(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(Path(dir), []byte("active_corpus_file: \"\"\n"), 0o644))

	_, err := Load(dir)
	assert.ErrorIs(t, err, ErrNoActive)
}

func TestLoadMalformedPointer(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(Path(dir), []byte(":\n\t-"), 0o644))

	_, err := Load(dir)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoActive)
	assert.Contains(t, err.Error(), Path(dir))
}

func TestSetRejectsEmptyPath(t *testing.T) {
	assert.Error(t, Set(t.TempDir(), ""))
}

func TestSetCreatesStateDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "corpus")

	require.NoError(t, Set(dir, "corpus/snapshot.yaml"))

	p, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "corpus/snapshot.yaml", p.ActiveCorpusFile)
}

func TestSetReplacesSlot(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, Set(dir, "corpus/run-1.json"))
	first, err := Load(dir)
	require.NoError(t, err)

	require.NoError(t, Set(dir, "corpus/run-2.json"))

	p, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "corpus/run-2.json", p.ActiveCorpusFile)
	assert.False(t, p.UpdatedAt.Before(first.UpdatedAt), "timestamp should refresh on Set")

	// The swap leaves no temp debris behind.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, pointerFile, entries[0].Name())
}
