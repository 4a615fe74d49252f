// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package answer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pdiddy/corpus-engine/internal/taxonomy"
	"github.com/pdiddy/corpus-engine/pkg/types"
)

const (
	// MaxExamples caps the exemplar records per answer (R3.1).
	MaxExamples = 3

	// excerptLen caps abstract excerpts, in runes.
	excerptLen = 240

	// delimiter closes each exemplar section (R3.3).
	delimiter = "----"
)

// generator renders one category tag's answer from the consolidated corpus.
type generator func(doc *types.ConsolidatedDocument, query string) string

// generatorTable maps every routable tag to its generator. The mapping is
// total over the router's tags, overview included (R2.1); a package test
// holds that property against Rules().
var generatorTable = buildGenerators()

func buildGenerators() map[string]generator {
	g := map[string]generator{
		TagToolQualification: renderToolQualification,
		TagComparison:        renderComparison,
		TagCertification:     renderCertification,
		TagDistribution:      renderDistribution,
		TagMarket:            renderMarket,
		TagPapers:            renderPapers,
		TagTrends:            renderTrends,
		TagOverview:          renderOverview,
	}
	for _, name := range taxonomy.Default().Names() {
		g[name] = technologyGenerator(name)
	}
	return g
}

// Render produces the answer for a category tag. Unknown tags (possible
// under a custom taxonomy) render as that tag's bucket when present, and
// as the overview otherwise, so rendering never returns an empty string.
func Render(tag string, doc *types.ConsolidatedDocument, query string) string {
	if g, ok := generatorTable[tag]; ok {
		return g(doc, query)
	}
	if _, ok := doc.PatentsByTechnology[tag]; ok {
		return renderTechnology(tag, doc)
	}
	return renderOverview(doc, query)
}

// --- generators ---

func technologyGenerator(name string) generator {
	return func(doc *types.ConsolidatedDocument, _ string) string {
		return renderTechnology(name, doc)
	}
}

func renderTechnology(name string, doc *types.ConsolidatedDocument) string {
	var b strings.Builder
	heading(&b, displayName(name))
	writeExamplesOrNotice(&b, doc.PatentsByTechnology[name], name)
	writeFacts(&b, name)
	return b.String()
}

func renderOverview(doc *types.ConsolidatedDocument, _ string) string {
	var b strings.Builder
	heading(&b, "UAV airflow sensing corpus overview")

	meta := doc.CollectionMetadata
	fmt.Fprintf(&b, "%d patents and %d papers across %d technology categories.\n\n",
		meta.PatentCount, meta.PaperCount, len(meta.Categories))

	writeExamplesOrNotice(&b, allPatents(doc), TagOverview)
	writeFacts(&b, TagOverview)
	return b.String()
}

func renderComparison(doc *types.ConsolidatedDocument, _ string) string {
	var b strings.Builder
	heading(&b, "Technology comparison")

	for _, name := range doc.CollectionMetadata.Categories {
		fmt.Fprintf(&b, "%-24s %d patent(s)\n", displayName(name), doc.TechnologyDistribution[name])
	}
	fmt.Fprintln(&b)

	// One representative exemplar per non-empty bucket, in taxonomy order.
	var exemplars []types.Record
	for _, name := range doc.CollectionMetadata.Categories {
		if bucket := doc.PatentsByTechnology[name]; len(bucket) > 0 {
			exemplars = append(exemplars, bucket[0])
		}
	}
	writeExamplesOrNotice(&b, exemplars, TagComparison)
	writeFacts(&b, TagComparison)
	return b.String()
}

func renderCertification(doc *types.ConsolidatedDocument, _ string) string {
	var b strings.Builder
	heading(&b, "Certification of airflow sensing equipment")
	matched := SelectExamples(allPatents(doc), []string{"do-254", "do-178", "certif", "airworthiness"})
	writeExamplesOrNotice(&b, matched, TagCertification)
	writeFacts(&b, TagCertification)
	return b.String()
}

func renderToolQualification(doc *types.ConsolidatedDocument, _ string) string {
	var b strings.Builder
	heading(&b, "Tool qualification for airborne systems")
	matched := SelectExamples(allPatents(doc), []string{"tool qual", "do-330", "qualification kit"})
	writeExamplesOrNotice(&b, matched, TagToolQualification)
	writeFacts(&b, TagToolQualification)
	return b.String()
}

func renderDistribution(doc *types.ConsolidatedDocument, _ string) string {
	var b strings.Builder
	heading(&b, "Corpus distribution by technology")

	total := 0
	for _, name := range doc.CollectionMetadata.Categories {
		count := doc.TechnologyDistribution[name]
		fmt.Fprintf(&b, "%-24s %d\n", displayName(name), count)
		total += count
	}
	otherCount := doc.TechnologyDistribution[taxonomy.BucketOther]
	fmt.Fprintf(&b, "%-24s %d\n", "other", otherCount)
	total += otherCount
	fmt.Fprintf(&b, "%-24s %d\n", "total", total)

	if total == 0 {
		fmt.Fprintln(&b)
		b.WriteString(noContent(TagDistribution))
	}
	writeFacts(&b, TagDistribution)
	return b.String()
}

func renderMarket(doc *types.ConsolidatedDocument, _ string) string {
	var b strings.Builder
	heading(&b, "Market landscape")

	all := allPatents(doc)
	leaders := topAssignees(all, MaxExamples)
	if len(leaders) > 0 {
		fmt.Fprintln(&b, "Most active assignees:")
		for i, l := range leaders {
			fmt.Fprintf(&b, "%d. %s (%d patent(s))\n", i+1, l.name, l.count)
		}
		fmt.Fprintln(&b)
	}

	var attributed []types.Record
	for _, r := range all {
		if len(r.Assignees) > 0 {
			attributed = append(attributed, r)
		}
	}
	writeExamplesOrNotice(&b, attributed, TagMarket)
	writeFacts(&b, TagMarket)
	return b.String()
}

func renderPapers(doc *types.ConsolidatedDocument, _ string) string {
	var b strings.Builder
	heading(&b, "Academic literature")
	writeExamplesOrNotice(&b, doc.Papers, TagPapers)
	writeFacts(&b, TagPapers)
	return b.String()
}

func renderTrends(doc *types.ConsolidatedDocument, _ string) string {
	var b strings.Builder
	heading(&b, "Recent activity")

	all := allPatents(doc)
	latest := 0
	for _, r := range all {
		if y := r.Year(); y > latest {
			latest = y
		}
	}

	// Records from the two most recent publication years, source order kept.
	var recent []types.Record
	for _, r := range all {
		if y := r.Year(); latest > 0 && y >= latest-1 {
			recent = append(recent, r)
		}
	}
	if latest > 0 {
		fmt.Fprintf(&b, "Filings from %d-%d:\n\n", latest-1, latest)
	}
	writeExamplesOrNotice(&b, recent, TagTrends)
	writeFacts(&b, TagTrends)
	return b.String()
}

// --- selection helpers ---

// SelectExamples filters records whose title or abstract contains any of
// the case-folded terms. Selection is stable: records keep their given
// order and are never re-sorted (R3.2).
func SelectExamples(records []types.Record, terms []string) []types.Record {
	var matched []types.Record
	for _, r := range records {
		folded := strings.ToLower(r.Title + " " + r.Abstract)
		for _, term := range terms {
			if strings.Contains(folded, term) {
				matched = append(matched, r)
				break
			}
		}
	}
	return matched
}

// allPatents concatenates the buckets in taxonomy order, then "other", so
// cross-cutting selections stay deterministic.
func allPatents(doc *types.ConsolidatedDocument) []types.Record {
	var all []types.Record
	for _, name := range doc.CollectionMetadata.Categories {
		all = append(all, doc.PatentsByTechnology[name]...)
	}
	return append(all, doc.PatentsByTechnology[taxonomy.BucketOther]...)
}

type assigneeCount struct {
	name  string
	count int
}

// topAssignees counts assignee appearances and returns the n most frequent.
// Ties keep first-appearance order, so the result is stable.
func topAssignees(records []types.Record, n int) []assigneeCount {
	counts := make(map[string]int)
	var order []string
	for _, r := range records {
		for _, a := range r.Assignees {
			if counts[a] == 0 {
				order = append(order, a)
			}
			counts[a]++
		}
	}
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > n {
		order = order[:n]
	}
	leaders := make([]assigneeCount, len(order))
	for i, name := range order {
		leaders[i] = assigneeCount{name: name, count: counts[name]}
	}
	return leaders
}

// --- layout helpers ---

func heading(b *strings.Builder, title string) {
	fmt.Fprintf(b, "=== %s ===\n\n", title)
}

// writeExamplesOrNotice writes up to MaxExamples exemplar sections, or the
// defined no-content message when none match (R3.4) — never an empty
// section.
func writeExamplesOrNotice(b *strings.Builder, records []types.Record, category string) {
	if len(records) == 0 {
		b.WriteString(noContent(category))
		return
	}
	n := len(records)
	if n > MaxExamples {
		n = MaxExamples
	}
	for i := 0; i < n; i++ {
		r := records[i]
		fmt.Fprintf(b, "%d. %s\n", i+1, r.Title)
		if r.PublicationDate != "" {
			fmt.Fprintf(b, "   %s (%s)\n", r.Attribution(), r.PublicationDate)
		} else {
			fmt.Fprintf(b, "   %s\n", r.Attribution())
		}
		if r.Abstract != "" {
			fmt.Fprintf(b, "   %s\n", excerpt(r.Abstract))
		}
		fmt.Fprintln(b, delimiter)
	}
}

// noContent is the defined zero-record message (R3.4).
func noContent(category string) string {
	return fmt.Sprintf("No content found for %s.\n", category)
}

// excerpt truncates text at excerptLen runes.
func excerpt(text string) string {
	runes := []rune(text)
	if len(runes) <= excerptLen {
		return text
	}
	return string(runes[:excerptLen-3]) + "..."
}
