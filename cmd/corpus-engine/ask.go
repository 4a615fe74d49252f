package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/corpus-engine/internal/answer"
	"github.com/pdiddy/corpus-engine/internal/corpus"
	"github.com/pdiddy/corpus-engine/internal/corpusstate"
	"github.com/pdiddy/corpus-engine/pkg/types"
)

var askCmd = &cobra.Command{
	Use:   "ask [question...]",
	Short: "Answer a question from the active corpus",
	Long: `Ask routes a free-text question to a category through a fixed list of
precedence rules and renders a templated answer from the consolidated corpus.
Answers quote up to three exemplar records verbatim; no text is synthesized.`,
	RunE: runAsk,
}

func init() {
	askCmd.Flags().String("corpus", "", "corpus file to answer from (default: the active corpus)")
	askCmd.Flags().String("corpus-dir", "corpus", "directory holding the active-corpus slot")
	askCmd.Flags().Bool("show-route", false, "print the matched routing rule to stderr")

	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	question := strings.TrimSpace(strings.Join(args, " "))
	if question == "" {
		return fmt.Errorf("provide a question to answer")
	}

	explicit, _ := cmd.Flags().GetString("corpus")
	cfg := types.AnswerConfig{
		CorpusDir:  stringSetting(cmd, "corpus-dir", "corpus.dir"),
		CorpusPath: explicit,
	}
	if cfg.CorpusPath == "" {
		p, err := corpusstate.Load(cfg.CorpusDir)
		if errors.Is(err, corpusstate.ErrNoActive) {
			return fmt.Errorf("no active corpus: run consolidate first")
		}
		if err != nil {
			return err
		}
		cfg.CorpusPath = p.ActiveCorpusFile
	}

	doc, err := corpus.ReadConsolidated(cfg.CorpusPath)
	if err != nil {
		return err
	}

	tag := answer.TagOverview
	ruleName := "(default)"
	if rule, ok := answer.Match(question); ok {
		tag = rule.Tag
		ruleName = rule.Name
	}

	showRoute, _ := cmd.Flags().GetBool("show-route")
	if showRoute {
		fmt.Fprintf(os.Stderr, "Route: %s -> %s\n", ruleName, tag)
	}

	fmt.Fprint(os.Stdout, answer.Render(tag, doc, question))
	return nil
}
