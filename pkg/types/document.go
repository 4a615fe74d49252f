// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// Distribution maps category name to bucket size. Every taxonomy category
// is present, including zero-count ones, plus the reserved "other" key.
// Per prd003-consolidation R2.1.
type Distribution map[string]int

// Buckets maps category name to the records assigned to it. Every input
// record appears in exactly one bucket; the reserved "other" bucket is
// always present, even when empty (R1.1, R1.2).
type Buckets map[string][]Record

// CollectionMetadata describes one consolidation run.
type CollectionMetadata struct {
	// RunID uniquely identifies the consolidation run.
	RunID string `json:"run_id" yaml:"run_id"`

	// GeneratedAt is the artifact generation timestamp (UTC).
	GeneratedAt time.Time `json:"generated_at" yaml:"generated_at"`

	// PatentCount and PaperCount are the reconciled record counts that
	// entered the artifact.
	PatentCount int `json:"patent_count" yaml:"patent_count"`
	PaperCount  int `json:"paper_count" yaml:"paper_count"`

	// Categories lists the taxonomy category names in declaration order.
	// Order is part of the classification contract (prd002 R1.1).
	Categories []string `json:"categories" yaml:"categories"`

	// Sources names the input documents the artifact was built from.
	Sources []string `json:"sources" yaml:"sources"`
}

// CorrectionReport accounts for records corrected during loading: the raw
// entry counts in each source document versus the reconciled counts that
// entered the aggregation. Per prd001-corpus-loading R2.3.
type CorrectionReport struct {
	PatentsBefore int `json:"patents_before" yaml:"patents_before"`
	PatentsAfter  int `json:"patents_after" yaml:"patents_after"`
	PapersBefore  int `json:"papers_before" yaml:"papers_before"`
	PapersAfter   int `json:"papers_after" yaml:"papers_after"`

	// DuplicatesRemoved is the number of records collapsed by identifier
	// dedup across both sources.
	DuplicatesRemoved int `json:"duplicates_removed" yaml:"duplicates_removed"`

	// Note records source provenance for the correction.
	Note string `json:"note" yaml:"note"`
}

// ConsolidatedDocument is the single write-once artifact produced by a
// consolidation run. Per prd003-consolidation R4.
type ConsolidatedDocument struct {
	CollectionMetadata     CollectionMetadata `json:"collection_metadata" yaml:"collection_metadata"`
	TechnologyDistribution Distribution       `json:"technology_distribution" yaml:"technology_distribution"`
	PatentsByTechnology    Buckets            `json:"patents_by_technology" yaml:"patents_by_technology"`

	// Papers is the paper sequence passed through in source order (R4.3).
	Papers []Record `json:"papers" yaml:"papers"`

	CorrectionReport CorrectionReport `json:"correction_report" yaml:"correction_report"`
}
