// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package aggregate partitions corpus records into category buckets and
// builds the consolidated document.
// Implements: prd003-consolidation (R1-R4);
//
//	docs/ARCHITECTURE § Consolidation.
package aggregate

import (
	"fmt"

	"github.com/pdiddy/corpus-engine/internal/classify"
	"github.com/pdiddy/corpus-engine/internal/taxonomy"
	"github.com/pdiddy/corpus-engine/pkg/types"
)

// Partition classifies every record independently and groups them into
// per-category buckets. Unclassified records land in the reserved "other"
// bucket. Every category key is present in both return values even when
// empty, and records keep their input order within each bucket (R1, R2).
//
// Partition performs no I/O; writing the artifact is the corpus package's
// job.
func Partition(records []types.Record, tax *taxonomy.Taxonomy) (types.Buckets, types.Distribution) {
	buckets := make(types.Buckets, tax.Len()+1)
	for _, name := range tax.Names() {
		buckets[name] = []types.Record{}
	}
	buckets[taxonomy.BucketOther] = []types.Record{}

	for _, r := range records {
		result := classify.ClassifyRecord(r, tax)
		name := result.Category
		if name == classify.Unclassified {
			name = taxonomy.BucketOther
		}
		buckets[name] = append(buckets[name], r)
	}

	dist := make(types.Distribution, len(buckets))
	for name, bucket := range buckets {
		dist[name] = len(bucket)
	}
	return buckets, dist
}

// Reconcile verifies the conservation invariant: bucket sizes must sum
// exactly to the input record count (R3.1). A failure here means records
// were lost or duplicated and the artifact must not be written.
func Reconcile(buckets types.Buckets, want int) error {
	got := 0
	for _, bucket := range buckets {
		got += len(bucket)
	}
	if got != want {
		return fmt.Errorf("bucket sizes sum to %d, want %d records", got, want)
	}
	return nil
}
