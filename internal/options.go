package internal

import (
	"errors"
	"os"
)

// DefaultOutputName is the artifact written at the project root. A .txt
// extension is kept on purpose: the content is YAML, but plain .txt files
// are handled better by the tools this output is usually fed into.
const DefaultOutputName = "project_structure.txt"

// IgnoreSpecName is the conventional ignore-spec file looked up at the root.
const IgnoreSpecName = ".gitignore"

// ScanOptions - public options for one export run.
type ScanOptions struct {
	Root       string
	OutputName string

	rules []string
}

// Validate checks invariants.
func (o *ScanOptions) Validate() error {
	if o.Root == "" {
		return errors.New("project root is required")
	}
	st, err := os.Stat(o.Root)
	if err != nil {
		return errors.New("project root does not exist or is not accessible: " + o.Root)
	}
	if !st.IsDir() {
		return errors.New("project root is not a directory: " + o.Root)
	}
	if o.OutputName == "" {
		return errors.New("output name must not be empty")
	}
	return nil
}

// Prepare collects the ignore rules for the run: .gitignore lines first,
// then the built-in defaults, then the output artifact itself so a
// previous run's export is never re-ingested.
func (o *ScanOptions) Prepare() {
	o.rules = LoadIgnoreRules(o.Root, o.OutputName)
}

// Rules returns the rule list built by Prepare.
func (o *ScanOptions) Rules() []string { return o.rules }
