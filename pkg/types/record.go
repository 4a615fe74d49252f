// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "strings"

// Record is one corpus entry: a patent or a paper. Records are immutable
// once loaded; the consolidation pipeline owns them for the duration of a
// single run. Per prd001-corpus-loading R1.1.
type Record struct {
	// ID is the source identifier (e.g. "US10466266B2" or "2301.07041").
	ID string `json:"id" yaml:"id"`

	// Title is the document title.
	Title string `json:"title" yaml:"title"`

	// Abstract is the descriptive text used for classification and excerpts.
	Abstract string `json:"abstract" yaml:"abstract"`

	// Assignees lists patent assignees or paper authors in source order.
	Assignees []string `json:"assignees" yaml:"assignees"`

	// PublicationDate is the publication date exactly as it appears in the
	// source document (e.g. "2023-05-01").
	PublicationDate string `json:"publication_date" yaml:"publication_date"`
}

// Attribution renders the assignee list for display.
func (r Record) Attribution() string {
	if len(r.Assignees) == 0 {
		return "unattributed"
	}
	return strings.Join(r.Assignees, "; ")
}

// Year returns the four-digit publication year, or 0 if the date does not
// start with one.
func (r Record) Year() int {
	if len(r.PublicationDate) < 4 {
		return 0
	}
	year := 0
	for _, c := range r.PublicationDate[:4] {
		if c < '0' || c > '9' {
			return 0
		}
		year = year*10 + int(c-'0')
	}
	return year
}

// ClassificationResult holds the outcome of classifying one text.
// Constructed fresh per call; never shared between classifications.
// Per prd002-classification R3.1.
type ClassificationResult struct {
	// Category is the winning category name, or "unclassified".
	Category string `json:"category" yaml:"category"`

	// Score is the winning category's keyword-occurrence score (0 when
	// unclassified).
	Score int `json:"score" yaml:"score"`
}
