// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package classify scores text against the keyword taxonomy and assigns a
// single category. Implements: prd002-classification (R2, R3);
//
//	docs/ARCHITECTURE § Classification.
package classify

import (
	"strings"

	"github.com/pdiddy/corpus-engine/internal/taxonomy"
	"github.com/pdiddy/corpus-engine/pkg/types"
)

// Unclassified is returned when no category keyword occurs in the text
// (R2.5). Records classified this way land in the reserved "other" bucket.
const Unclassified = "unclassified"

// Classify scores text against every category and returns the winner.
// The input is case-folded once; a category's score is the sum of substring
// occurrence counts of its keywords, so a keyword present three times
// contributes 3 (R2.1, R2.2). The winner is the first category in
// declaration order holding the maximum score (R2.4); a maximum of 0 means
// the text is unclassified.
//
// All scoring state is local to the call (R3.1). Classify never fails on
// valid input.
func Classify(text string, tax *taxonomy.Taxonomy) types.ClassificationResult {
	folded := strings.ToLower(text)

	best := types.ClassificationResult{Category: Unclassified}
	for _, c := range tax.Categories() {
		score := 0
		for _, kw := range c.Keywords {
			score += strings.Count(folded, kw)
		}
		// Strictly greater keeps the earliest declared category on ties.
		if score > best.Score {
			best = types.ClassificationResult{Category: c.Name, Score: score}
		}
	}
	return best
}

// ClassifyRecord classifies a corpus record over its title and abstract.
func ClassifyRecord(r types.Record, tax *taxonomy.Taxonomy) types.ClassificationResult {
	return Classify(r.Title+" "+r.Abstract, tax)
}

// CategoryScore pairs a category with its score for one text.
type CategoryScore struct {
	Category string `json:"category" yaml:"category"`
	Score    int    `json:"score" yaml:"score"`
}

// Scores returns the full per-category score table in declaration order.
// Used by the classify command to make tie-breaks auditable; the table is
// built fresh per call.
func Scores(text string, tax *taxonomy.Taxonomy) []CategoryScore {
	folded := strings.ToLower(text)

	scores := make([]CategoryScore, 0, tax.Len())
	for _, c := range tax.Categories() {
		score := 0
		for _, kw := range c.Keywords {
			score += strings.Count(folded, kw)
		}
		scores = append(scores, CategoryScore{Category: c.Name, Score: score})
	}
	return scores
}
