package internal

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

// FileEntry is one scanned file: its root-relative path (forward slashes)
// and its content. A nil Content marks a file that passed all filters but
// could not be read.
type FileEntry struct {
	Path    string
	Content *string
}

// ScanResult is the ordered path -> content mapping produced by one
// traversal. Entry order is traversal order, which filepath.WalkDir keeps
// lexical and therefore reproducible for an unchanged tree.
type ScanResult struct {
	Entries []FileEntry
}

// Paths returns the relative paths in insertion order.
func (r *ScanResult) Paths() []string {
	out := make([]string, len(r.Entries))
	for i, e := range r.Entries {
		out[i] = e.Path
	}
	return out
}

// readTextFile is a seam so read failures can be exercised in tests.
var readTextFile = ReadTextFile

// Scan walks the project tree and collects the content of every file that
// survives, in order, the ignore rules, the allow-list and the binary
// sniff. Ignored directories are pruned before descent, so nothing inside
// them is ever visited. Individual unreadable files never abort the scan:
// they are recorded with nil content and the walk continues. Only an
// inaccessible root (or context cancellation) fails the whole call.
func Scan(ctx context.Context, opts ScanOptions, stats *AppStats) (*ScanResult, error) {
	rules := opts.Rules()
	result := &ScanResult{}

	err := filepath.WalkDir(opts.Root, func(p string, d fs.DirEntry, err error) error {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err != nil {
			if p == opts.Root {
				return fmt.Errorf("cannot access project root: %w", err)
			}
			stats.Errors.Add(1)
			logrus.WithError(err).Warnf("Skipping inaccessible entry: %s", p)
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			if p != opts.Root && ShouldIgnore(p, opts.Root, rules) {
				return fs.SkipDir
			}
			return nil
		}

		if ShouldIgnore(p, opts.Root, rules) {
			return nil
		}
		if !IsProjectFile(d.Name()) {
			logrus.Debugf("Skipping non-programming file: %s", p)
			return nil
		}
		if LooksBinary(p) {
			stats.BinarySkipped.Add(1)
			logrus.Infof("Skipping binary file: %s", p)
			return nil
		}

		rel, relErr := filepath.Rel(opts.Root, p)
		if relErr != nil {
			rel = p
		}
		rel = strings.ReplaceAll(rel, string(os.PathSeparator), "/")

		content, readErr := readTextFile(p)
		if readErr != nil {
			stats.Unreadable.Add(1)
			stats.Errors.Add(1)
			logrus.WithError(readErr).Errorf("Error reading file %s", rel)
			result.Entries = append(result.Entries, FileEntry{Path: rel})
			return nil
		}

		logrus.Infof("Read file: %s", rel)
		stats.FilesIncluded.Add(1)
		result.Entries = append(result.Entries, FileEntry{Path: rel, Content: &content})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
