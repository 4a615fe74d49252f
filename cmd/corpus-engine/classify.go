package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/corpus-engine/internal/classify"
	"github.com/pdiddy/corpus-engine/internal/taxonomy"
)

var classifyCmd = &cobra.Command{
	Use:   "classify [text...]",
	Short: "Score text against the technology taxonomy",
	Long: `Classify scores free text against every taxonomy category and prints the
per-category keyword counts alongside the winning category. Useful for
checking why a record landed in a bucket.`,
	RunE: runClassify,
}

func init() {
	classifyCmd.Flags().String("file", "", "read the text to classify from a file")
	classifyCmd.Flags().String("taxonomy", "", "taxonomy YAML file (default: built-in technology taxonomy)")
	classifyCmd.Flags().Bool("json", false, "output scores as JSON")

	rootCmd.AddCommand(classifyCmd)
}

func runClassify(cmd *cobra.Command, args []string) error {
	text := strings.Join(args, " ")
	if file, _ := cmd.Flags().GetString("file"); file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("reading %s: %w", file, err)
		}
		text = string(data)
	}
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("provide text to classify, as arguments or via --file")
	}

	tax := taxonomy.Default()
	if taxonomyPath := stringSetting(cmd, "taxonomy", "taxonomy"); taxonomyPath != "" {
		var err error
		tax, err = taxonomy.Load(taxonomyPath)
		if err != nil {
			return err
		}
	}

	result := classify.Classify(text, tax)
	scores := classify.Scores(text, tax)

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Category string                   `json:"category"`
			Score    int                      `json:"score"`
			Scores   []classify.CategoryScore `json:"scores"`
		}{result.Category, result.Score, scores})
	}

	fmt.Fprintf(os.Stdout, "   %-24s  %s\n", "Category", "Score")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 34))
	for _, s := range scores {
		marker := "  "
		if s.Score > 0 && s.Category == result.Category {
			marker = "->"
		}
		fmt.Fprintf(os.Stdout, "%s %-24s  %d\n", marker, s.Category, s.Score)
	}

	if result.Category == classify.Unclassified {
		fmt.Fprintln(os.Stdout, "\nNo keyword occurrences: unclassified.")
		return nil
	}
	fmt.Fprintf(os.Stdout, "\nClassified as %s (score %d).\n", result.Category, result.Score)
	return nil
}
