// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package aggregate

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pdiddy/corpus-engine/internal/taxonomy"
	"github.com/pdiddy/corpus-engine/pkg/types"
)

// BuildInfo carries loading provenance into the consolidated document.
// Raw counts are the entry counts in each source document before dedup;
// the correction report pairs them with the reconciled counts (R4.2).
type BuildInfo struct {
	PatentsPath       string
	PapersPath        string
	PatentsRaw        int
	PapersRaw         int
	DuplicatesRemoved int

	// RunID and GeneratedAt default to a fresh UUID and the current UTC
	// time when zero.
	RunID       string
	GeneratedAt time.Time
}

// BuildConsolidated partitions the patents, verifies conservation, and
// assembles the write-once consolidated document (R4). Papers pass through
// untouched in source order (R4.3). Both inputs must already be fully
// loaded; Build performs no I/O.
func BuildConsolidated(patents, papers []types.Record, tax *taxonomy.Taxonomy, info BuildInfo) (*types.ConsolidatedDocument, error) {
	buckets, dist := Partition(patents, tax)
	if err := Reconcile(buckets, len(patents)); err != nil {
		return nil, fmt.Errorf("reconciling patent buckets: %w", err)
	}

	if info.RunID == "" {
		info.RunID = uuid.NewString()
	}
	if info.GeneratedAt.IsZero() {
		info.GeneratedAt = time.Now().UTC()
	}

	doc := &types.ConsolidatedDocument{
		CollectionMetadata: types.CollectionMetadata{
			RunID:       info.RunID,
			GeneratedAt: info.GeneratedAt,
			PatentCount: len(patents),
			PaperCount:  len(papers),
			Categories:  tax.Names(),
			Sources:     []string{info.PatentsPath, info.PapersPath},
		},
		TechnologyDistribution: dist,
		PatentsByTechnology:    buckets,
		Papers:                 papers,
		CorrectionReport: types.CorrectionReport{
			PatentsBefore:     info.PatentsRaw,
			PatentsAfter:      len(patents),
			PapersBefore:      info.PapersRaw,
			PapersAfter:       len(papers),
			DuplicatesRemoved: info.DuplicatesRemoved,
			Note: fmt.Sprintf("identifier dedup over %s and %s removed %d duplicate(s)",
				info.PatentsPath, info.PapersPath, info.DuplicatesRemoved),
		},
	}
	return doc, nil
}
