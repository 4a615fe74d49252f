package types

// OutputFormat selects the consolidated artifact encoding.
// Per prd001-corpus-loading R3.3.
type OutputFormat string

const (
	OutputJSON OutputFormat = "json"
	OutputYAML OutputFormat = "yaml"
)

// SourceConfig holds paths to the input corpus documents.
type SourceConfig struct {
	// PatentsPath is the patents source document (field "patents").
	PatentsPath string `json:"patents_path" yaml:"patents_path"`

	// PapersPath is the papers source document (field "papers").
	PapersPath string `json:"papers_path" yaml:"papers_path"`

	// TaxonomyPath optionally overrides the built-in taxonomy with a YAML
	// category list. Empty means use the default taxonomy.
	TaxonomyPath string `json:"taxonomy_path,omitempty" yaml:"taxonomy_path,omitempty"`
}

// ConsolidateConfig holds settings for the consolidation pipeline.
// Per prd003-consolidation R4.1.
type ConsolidateConfig struct {
	SourceConfig `yaml:",inline"`

	// OutputPath is where the consolidated document is written. Must not
	// name the currently active corpus file (prd001 R3.2).
	OutputPath string `json:"output_path" yaml:"output_path"`

	// Format selects json or yaml output (default json).
	Format OutputFormat `json:"format" yaml:"format"`

	// CorpusDir is the directory holding the active-corpus pointer file.
	CorpusDir string `json:"corpus_dir" yaml:"corpus_dir"`
}

// AnswerConfig holds settings for the question-answering pipeline.
// Per prd004-answering R3.1.
type AnswerConfig struct {
	// CorpusDir is the directory holding the active-corpus pointer file.
	CorpusDir string `json:"corpus_dir" yaml:"corpus_dir"`

	// CorpusPath explicitly names a consolidated document to answer from,
	// bypassing the active-corpus pointer.
	CorpusPath string `json:"corpus_path,omitempty" yaml:"corpus_path,omitempty"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	Consolidate ConsolidateConfig `json:"consolidate" yaml:"consolidate"`
	Answer      AnswerConfig      `json:"answer" yaml:"answer"`
}
