// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package answer routes free-text questions to template generators and
// renders deterministic answers from the consolidated corpus.
// Implements: prd004-answering (R1-R4);
//
//	docs/ARCHITECTURE § Answering.
package answer

import "strings"

// Cross-cutting category tags. Technology tags reuse the taxonomy
// category names directly.
const (
	TagToolQualification = "tool_qualification"
	TagComparison        = "comparison"
	TagCertification     = "certification"
	TagDistribution      = "distribution"
	TagMarket            = "market"
	TagPapers            = "papers"
	TagTrends            = "trends"

	// TagOverview is the default tag for queries no rule matches (R1.3).
	TagOverview = "overview"
)

// Rule is one precedence rule. Its predicate holds when every All term
// occurs in the query, at least one Any term occurs (when Any is
// non-empty), and no None term occurs. Terms match as case-folded
// substrings, the same primitive classification uses.
type Rule struct {
	Name string
	All  []string
	Any  []string
	None []string
	Tag  string
}

// Matches reports whether the rule's predicate holds for the folded query.
func (r Rule) Matches(folded string) bool {
	for _, term := range r.All {
		if !strings.Contains(folded, term) {
			return false
		}
	}
	if len(r.Any) > 0 {
		found := false
		for _, term := range r.Any {
			if strings.Contains(folded, term) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	for _, term := range r.None {
		if strings.Contains(folded, term) {
			return false
		}
	}
	return true
}

// rules is the fixed, hand-ordered precedence list; evaluation is
// first-match-wins (R1.1). Specific rules sit above the general rules
// their queries would also match: tool qualification outranks
// certification, and comparison outranks every single-technology rule.
// Exclusion terms keep a rule from stealing queries that belong further
// down the list (R1.2). Precedence is data here, not branching logic.
var rules = []Rule{
	{
		Name: "tool-qualification",
		All:  []string{"qualification"},
		Any:  []string{"tool", "do-330"},
		Tag:  TagToolQualification,
	},
	{
		Name: "comparison",
		Any: []string{
			"compare", "comparison", "versus", " vs ", "vs.",
			"difference between", "trade-off", "tradeoff",
		},
		Tag: TagComparison,
	},
	{
		Name: "certification",
		Any:  []string{"do-254", "do-178", "certif", "airworthiness", "faa", "easa"},
		Tag:  TagCertification,
	},
	{
		Name: "distribution",
		Any:  []string{"how many", "count", "distribution", "breakdown", "statistics"},
		Tag:  TagDistribution,
	},
	{
		// "academic" hands the query to the papers rule below.
		Name: "market",
		Any:  []string{"market", "industry", "commercial", "vendor", "assignee", "companies", "players"},
		None: []string{"academic"},
		Tag:  TagMarket,
	},
	{
		// "patent" keeps patent-focused queries with the technology rules.
		Name: "papers",
		Any:  []string{"paper", "academic", "journal", "literature", "thesis", "publication"},
		None: []string{"patent"},
		Tag:  TagPapers,
	},
	{
		Name: "trends",
		Any:  []string{"trend", "recent", "latest", "emerging", "future", "growth"},
		Tag:  TagTrends,
	},
	{
		Name: "mems-pressure",
		Any:  []string{"mems", "pressure"},
		Tag:  "mems_pressure",
	},
	{
		Name: "pitot-probes",
		Any:  []string{"pitot", "probe", "vane"},
		Tag:  "pitot_probes",
	},
	{
		Name: "flush-air-data",
		Any:  []string{"flush", "fads", "port"},
		Tag:  "flush_air_data",
	},
	{
		Name: "lidar-optical",
		Any:  []string{"lidar", "laser", "optical", "doppler"},
		Tag:  "lidar_optical",
	},
	{
		Name: "acoustic-ultrasonic",
		Any:  []string{"acoustic", "ultrasonic", "sound"},
		Tag:  "acoustic_ultrasonic",
	},
	{
		Name: "thermal-flow",
		Any:  []string{"thermal", "hot-wire", "hot wire", "anemometer"},
		Tag:  "thermal_flow",
	},
	{
		Name: "ai-estimation",
		Any:  []string{"neural", "machine learning", "kalman", "estimation", "fusion"},
		Tag:  "ai_estimation",
	},
}

// Rules returns the precedence list in evaluation order.
func Rules() []Rule {
	return rules
}

// Match returns the first rule whose predicate holds for the query. ok is
// false when no rule matches and the router falls back to the overview tag.
func Match(query string) (Rule, bool) {
	folded := strings.ToLower(query)
	for _, r := range rules {
		if r.Matches(folded) {
			return r, true
		}
	}
	return Rule{}, false
}

// Route selects the category tag for a query. Routing never fails on valid
// input: an unmatched query degrades to the overview tag (R1.3).
func Route(query string) string {
	if r, ok := Match(query); ok {
		return r.Tag
	}
	return TagOverview
}
