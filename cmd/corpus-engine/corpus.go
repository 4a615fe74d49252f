package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/corpus-engine/internal/corpus"
	"github.com/pdiddy/corpus-engine/internal/corpusstate"
)

var corpusCmd = &cobra.Command{
	Use:   "corpus",
	Short: "Inspect and switch the active corpus file",
	Long: `Corpus manages the single active-corpus slot that ask reads. Use show to
print the current slot, and use to point it at a different consolidated
corpus file.`,
}

// --- show subcommand ---

var corpusShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the active corpus file",
	RunE:  runCorpusShow,
}

func runCorpusShow(cmd *cobra.Command, args []string) error {
	corpusDir := stringSetting(cmd, "corpus-dir", "corpus.dir")

	p, err := corpusstate.Load(corpusDir)
	if errors.Is(err, corpusstate.ErrNoActive) {
		fmt.Fprintln(os.Stdout, "No active corpus. Run consolidate to produce one.")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Active corpus: %s\n", p.ActiveCorpusFile)
	fmt.Fprintf(os.Stdout, "Updated:       %s\n", p.UpdatedAt.Format(time.RFC3339))
	fmt.Fprintf(os.Stdout, "Slot file:     %s\n", corpusstate.Path(corpusDir))

	if _, err := os.Stat(p.ActiveCorpusFile); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: active corpus file is unreadable: %v\n", err)
	}
	return nil
}

// --- use subcommand ---

var corpusUseCmd = &cobra.Command{
	Use:   "use [file]",
	Short: "Point the active-corpus slot at a consolidated corpus file",
	Args:  cobra.ExactArgs(1),
	RunE:  runCorpusUse,
}

func runCorpusUse(cmd *cobra.Command, args []string) error {
	path := args[0]
	corpusDir := stringSetting(cmd, "corpus-dir", "corpus.dir")

	// The slot only ever names a corpus that actually parses.
	doc, err := corpus.ReadConsolidated(path)
	if err != nil {
		return err
	}

	if err := corpusstate.Set(corpusDir, path); err != nil {
		return err
	}

	meta := doc.CollectionMetadata
	fmt.Fprintf(os.Stdout, "Active corpus: %s (%d patents, %d papers, run %s)\n",
		path, meta.PatentCount, meta.PaperCount, meta.RunID)
	return nil
}

func init() {
	corpusCmd.PersistentFlags().String("corpus-dir", "corpus", "directory holding the active-corpus slot")

	corpusCmd.AddCommand(corpusShowCmd)
	corpusCmd.AddCommand(corpusUseCmd)

	rootCmd.AddCommand(corpusCmd)
}
