// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/corpus-engine/internal/aggregate"
	"github.com/pdiddy/corpus-engine/internal/corpus"
	"github.com/pdiddy/corpus-engine/internal/corpusstate"
	"github.com/pdiddy/corpus-engine/internal/taxonomy"
	"github.com/pdiddy/corpus-engine/pkg/types"
)

var consolidateCmd = &cobra.Command{
	Use:   "consolidate",
	Short: "Build a consolidated corpus from patent and paper sources",
	Long: `Consolidate loads the patent and paper source files, classifies every
patent into a technology category by keyword scoring, and writes a
consolidated corpus document with distribution counts and a correction
report.

Source files are never modified. Each run writes a fresh corpus file and
repoints the active-corpus slot that ask reads.`,
	RunE: runConsolidate,
}

func init() {
	consolidateCmd.Flags().String("patents", "sources/patents.json", "patent source file")
	consolidateCmd.Flags().String("papers", "sources/papers.json", "paper source file")
	consolidateCmd.Flags().String("taxonomy", "", "taxonomy YAML file (default: built-in technology taxonomy)")
	consolidateCmd.Flags().String("out", "", "output path (default: <corpus-dir>/consolidated-<timestamp>.<format>)")
	consolidateCmd.Flags().String("format", "json", "output format: json or yaml")
	consolidateCmd.Flags().String("corpus-dir", "corpus", "directory for corpus files and the active-corpus slot")
	consolidateCmd.Flags().Bool("no-activate", false, "write the corpus file without repointing the active slot")

	rootCmd.AddCommand(consolidateCmd)
}

func runConsolidate(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	outPath, _ := cmd.Flags().GetString("out")
	noActivate, _ := cmd.Flags().GetBool("no-activate")

	cfg := types.ConsolidateConfig{
		SourceConfig: types.SourceConfig{
			PatentsPath:  stringSetting(cmd, "patents", "sources.patents"),
			PapersPath:   stringSetting(cmd, "papers", "sources.papers"),
			TaxonomyPath: stringSetting(cmd, "taxonomy", "taxonomy"),
		},
		OutputPath: outPath,
		Format:     types.OutputFormat(format),
		CorpusDir:  stringSetting(cmd, "corpus-dir", "corpus.dir"),
	}

	switch cfg.Format {
	case types.OutputJSON, types.OutputYAML:
	default:
		return fmt.Errorf("unsupported format %q: use json or yaml", format)
	}
	if cfg.OutputPath == "" {
		stamp := time.Now().UTC().Format("20060102-150405")
		cfg.OutputPath = filepath.Join(cfg.CorpusDir, fmt.Sprintf("consolidated-%s.%s", stamp, format))
	}
	if err := checkOutPath(cfg); err != nil {
		return err
	}

	tax := taxonomy.Default()
	if cfg.TaxonomyPath != "" {
		var err error
		tax, err = taxonomy.Load(cfg.TaxonomyPath)
		if err != nil {
			return err
		}
	}

	patents, err := corpus.LoadPatents(cfg.PatentsPath)
	if err != nil {
		return err
	}
	papers, err := corpus.LoadPapers(cfg.PapersPath)
	if err != nil {
		return err
	}

	info := aggregate.BuildInfo{
		PatentsPath: cfg.PatentsPath,
		PapersPath:  cfg.PapersPath,
		PatentsRaw:  len(patents),
		PapersRaw:   len(papers),
	}
	patents, removedPatents := corpus.DedupRecords(patents)
	papers, removedPapers := corpus.DedupRecords(papers)
	info.DuplicatesRemoved = removedPatents + removedPapers

	doc, err := aggregate.BuildConsolidated(patents, papers, tax, info)
	if err != nil {
		return err
	}

	if err := corpus.WriteConsolidated(doc, cfg.OutputPath, cfg.Format); err != nil {
		return err
	}

	printConsolidateSummary(doc, removedPatents, removedPapers)
	fmt.Fprintf(os.Stdout, "\nConsolidated corpus: %s (run %s)\n", cfg.OutputPath, doc.CollectionMetadata.RunID)

	if noActivate {
		return nil
	}
	if err := corpusstate.Set(cfg.CorpusDir, cfg.OutputPath); err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, "Active corpus updated.")
	return nil
}

// checkOutPath refuses output paths that would rewrite a canonical file —
// a source document or the corpus ask currently reads — and catches
// extension/format mismatches that would make the corpus unreadable later.
func checkOutPath(cfg types.ConsolidateConfig) error {
	for _, src := range []string{cfg.PatentsPath, cfg.PapersPath, cfg.TaxonomyPath} {
		if src == "" {
			continue
		}
		if filepath.Clean(cfg.OutputPath) == filepath.Clean(src) {
			return fmt.Errorf("refusing to overwrite source file %s: consolidation always writes a new corpus file", src)
		}
	}
	if p, err := corpusstate.Load(cfg.CorpusDir); err == nil {
		if filepath.Clean(cfg.OutputPath) == filepath.Clean(p.ActiveCorpusFile) {
			return fmt.Errorf("refusing to overwrite the active corpus %s: write a new file and it becomes active", p.ActiveCorpusFile)
		}
	}

	ext := filepath.Ext(cfg.OutputPath)
	wantYAML := cfg.Format == types.OutputYAML
	isYAML := ext == ".yaml" || ext == ".yml"
	if wantYAML != isYAML {
		return fmt.Errorf("output extension %q does not match format %q", ext, cfg.Format)
	}
	return nil
}

func printConsolidateSummary(doc *types.ConsolidatedDocument, removedPatents, removedPapers int) {
	fmt.Fprintf(os.Stdout, "%-24s  %s\n", "Technology", "Patents")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 33))

	total := 0
	for _, name := range doc.CollectionMetadata.Categories {
		fmt.Fprintf(os.Stdout, "%-24s  %d\n", name, doc.TechnologyDistribution[name])
		total += doc.TechnologyDistribution[name]
	}
	otherCount := doc.TechnologyDistribution[taxonomy.BucketOther]
	fmt.Fprintf(os.Stdout, "%-24s  %d\n", taxonomy.BucketOther, otherCount)
	total += otherCount

	fmt.Fprintln(os.Stdout, strings.Repeat("-", 33))
	fmt.Fprintf(os.Stdout, "%-24s  %d\n", "total", total)

	r := doc.CorrectionReport
	fmt.Fprintf(os.Stdout, "\nPatents: %d -> %d (%d duplicate(s) removed)\n",
		r.PatentsBefore, r.PatentsAfter, removedPatents)
	fmt.Fprintf(os.Stdout, "Papers:  %d -> %d (%d duplicate(s) removed)\n",
		r.PapersBefore, r.PapersAfter, removedPapers)
}
