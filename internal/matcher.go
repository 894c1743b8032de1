package internal

import (
	"bufio"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

// defaultIgnore lists files and folders excluded on every run,
// regardless of the project's own ignore spec.
var defaultIgnore = []string{
	".git",         // version control metadata
	".*",           // hidden files/folders (.env, .vscode, ...)
	"node_modules", // Node dependencies
	"bower_components",
	"vendor", // PHP, Ruby, Go or other vendored libraries
	"dist",
	"build",
	"venv",
	"env",
	"__pycache__",
	"target",
	"out",
	"logs",
	"tmp",
}

// LoadIgnoreRules reads the ignore spec at the project root and returns the
// full rule list for the run: spec lines first, then the built-in defaults,
// then any extras (typically the output artifact name). A missing or
// unreadable spec file is not an error; the built-ins still apply.
func LoadIgnoreRules(root string, extra ...string) []string {
	var rules []string

	specPath := filepath.Join(root, IgnoreSpecName)
	f, err := os.Open(specPath)
	if err != nil {
		if os.IsNotExist(err) {
			logrus.Infof("%s not found. Proceeding without ignoring files", IgnoreSpecName)
		} else {
			logrus.WithError(err).Errorf("Error reading %s", IgnoreSpecName)
		}
	} else {
		logrus.Infof("Found %s at %s. Parsing...", IgnoreSpecName, specPath)
		sc := bufio.NewScanner(f)
		for sc.Scan() {
			line := strings.TrimSpace(sc.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			rules = append(rules, line)
		}
		if err := sc.Err(); err != nil {
			logrus.WithError(err).Errorf("Error reading %s", IgnoreSpecName)
		}
		_ = f.Close()
	}

	rules = append(rules, defaultIgnore...)
	rules = append(rules, extra...)
	return rules
}

// ShouldIgnore reports whether path is excluded by the rule list.
//
// The path is made relative to root and normalized to forward slashes.
// A rule without glob metacharacters (*?[]) is a segment rule: it matches
// if any single path component equals it, so a bare directory name excludes
// that directory anywhere in the tree. Every rule is additionally tried as
// a shell-style glob against the whole relative path, and once more against
// the path with a trailing slash so a directory-style rule like "build/"
// still hits the directory entry itself.
//
// Known limitation: negation rules (!pattern) and directory-only semantics
// beyond the trailing-slash retry are not supported. This is a deliberate
// simplification, not full .gitignore fidelity.
func ShouldIgnore(p, root string, rules []string) bool {
	rel, err := filepath.Rel(root, p)
	if err != nil {
		rel = p
	}
	rel = strings.ReplaceAll(rel, "\\", "/")
	segments := strings.Split(rel, "/")

	for _, rule := range rules {
		if !strings.ContainsAny(rule, "*?[]") {
			for _, seg := range segments {
				if seg == rule {
					logrus.Debugf("Ignored: %s (segment match: %s)", rel, rule)
					return true
				}
			}
		}

		// Malformed globs simply never match.
		if ok, err := path.Match(rule, rel); err == nil && ok {
			logrus.Debugf("Ignored: %s (matches pattern: %s)", rel, rule)
			return true
		}
		if ok, err := path.Match(rule, rel+"/"); err == nil && ok {
			logrus.Debugf("Ignored: %s (matches pattern: %s)", rel, rule)
			return true
		}
	}
	return false
}
