// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package corpus

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSource(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadPatents(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(t *testing.T) string
		wantIDs []string
		errMsg  string
	}{
		{
			name: "valid document",
			setup: func(t *testing.T) string {
				return writeSource(t, "patents.json", `{
					"patents": [
						{"id": "US10466266B2", "title": "Pitot probe", "abstract": "a", "assignees": ["Acme"], "publication_date": "2019-11-05"},
						{"id": "us9891306b2", "title": "Lidar unit", "abstract": "b"}
					]
				}`)
			},
			wantIDs: []string{"US10466266B2", "US9891306B2"},
		},
		{
			name: "empty sequence is valid",
			setup: func(t *testing.T) string {
				return writeSource(t, "patents.json", `{"patents": []}`)
			},
			wantIDs: []string{},
		},
		{
			name: "missing field is a schema error",
			setup: func(t *testing.T) string {
				return writeSource(t, "patents.json", `{"documents": []}`)
			},
			errMsg: `missing required field "patents"`,
		},
		{
			name: "null field is a schema error",
			setup: func(t *testing.T) string {
				return writeSource(t, "patents.json", `{"patents": null}`)
			},
			errMsg: `missing required field "patents"`,
		},
		{
			name: "missing file is a load error",
			setup: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "absent.json")
			},
			errMsg: "reading",
		},
		{
			name: "malformed JSON",
			setup: func(t *testing.T) string {
				return writeSource(t, "patents.json", `{"patents": [`)
			},
			errMsg: "parsing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := tt.setup(t)
			records, err := LoadPatents(path)
			if tt.errMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				assert.Contains(t, err.Error(), path, "errors must name the input file")
				return
			}
			require.NoError(t, err)
			ids := make([]string, len(records))
			for i, r := range records {
				ids[i] = r.ID
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestLoadPapers(t *testing.T) {
	path := writeSource(t, "papers.json", `{
		"papers": [
			{"id": " 2301.00001 ", "title": "Wind estimation survey", "assignees": ["A. Author", "B. Author"]}
		]
	}`)

	records, err := LoadPapers(path)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "2301.00001", records[0].ID, "identifiers are trimmed on load")
	assert.Equal(t, "A. Author; B. Author", records[0].Attribution())

	_, err = LoadPapers(writeSource(t, "papers.json", `{"patents": []}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `missing required field "papers"`)
}

func TestNormalizeID(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"us10466266b2", "US10466266B2"},
		{"  US7654321  ", "US7654321"},
		{"US20230012345A1", "US20230012345A1"},
		{"2301.07041", "2301.07041"},
		{"10.1234/foo.bar", "10.1234/foo.bar"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeID(tt.input))
		})
	}
}

func TestDedupRecords(t *testing.T) {
	records, err := LoadPatents(writeSource(t, "patents.json", `{
		"patents": [
			{"id": "US7654321", "title": "first", "abstract": "kept"},
			{"id": "US9891306B2", "title": "second"},
			{"id": "us7654321", "title": "first again", "abstract": "dropped"},
			{"id": "", "title": "anonymous one"},
			{"id": "", "title": "anonymous two"}
		]
	}`))
	require.NoError(t, err)

	unique, removed := DedupRecords(records)
	assert.Equal(t, 1, removed)
	require.Len(t, unique, 4)

	// First occurrence wins and source order is preserved; the lowercase
	// duplicate collapses because identifiers are normalized on load.
	assert.Equal(t, "first", unique[0].Title)
	assert.Equal(t, "kept", unique[0].Abstract)
	assert.Equal(t, "US9891306B2", unique[1].ID)

	// Records without identifiers are never collapsed.
	assert.Equal(t, "anonymous one", unique[2].Title)
	assert.Equal(t, "anonymous two", unique[3].Title)
}
