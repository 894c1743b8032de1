package internal

import (
	"path/filepath"
	"strings"
)

// allowedExtensions holds the file extensions recognized as common
// programming or project files. Lookups are lower-cased.
var allowedExtensions = map[string]struct{}{
	// Scripting and dynamic languages
	".py": {}, ".pyw": {}, ".rb": {}, ".pl": {}, ".pm": {},
	".php": {}, ".phtml": {}, ".js": {}, ".mjs": {}, ".jsx": {},
	".ts": {}, ".tsx": {},
	// Markup languages and documentation
	".html": {}, ".htm": {}, ".xml": {}, ".xhtml": {}, ".md": {}, ".markdown": {},
	// Stylesheets
	".css": {}, ".scss": {}, ".sass": {}, ".less": {},
	// Compiled languages and header files
	".c": {}, ".cpp": {}, ".cxx": {}, ".cc": {},
	".h": {}, ".hpp": {}, ".hxx": {}, ".hh": {},
	".cs": {}, ".java": {}, ".kt": {}, ".kts": {}, ".rs": {},
	// Configuration and data files
	".json": {}, ".yml": {}, ".yaml": {}, ".ini": {}, ".toml": {}, ".properties": {},
	// Shell and batch scripts
	".sh": {}, ".bash": {}, ".zsh": {}, ".ksh": {}, ".bat": {}, ".cmd": {},
	// R language
	".r": {},
	// Swift, Dart, Go, Lua, Haskell
	".swift": {}, ".dart": {}, ".go": {}, ".lua": {}, ".hs": {},
	// Scala
	".scala": {}, ".sbt": {},
	// Objective-C / Objective-C++
	".m": {}, ".mm": {},
	// Gradle and Groovy
	".gradle": {}, ".groovy": {},
	// Elixir
	".ex": {}, ".exs": {},
}

// allowedFilenames holds extension-less project files recognized by their
// exact (lower-cased) name.
var allowedFilenames = map[string]struct{}{
	"dockerfile":     {}, // Docker configuration
	"makefile":       {}, // Make build scripts
	"cmakelists.txt": {}, // CMake configuration
	"rakefile":       {}, // Ruby Rake build file
	"gemfile":        {}, // Ruby Gem dependencies
	"vagrantfile":    {}, // Vagrant configuration
	"procfile":       {}, // Heroku/process management
	"go.mod":         {}, // Go module definition
	"go.sum":         {}, // Go module checksums
	"gradlew":        {}, // Gradle wrapper script (Unix)
	"gradlew.bat":    {}, // Gradle wrapper script (Windows)
	"readme":         {},
	"license":        {},
	"changelog":      {},
}

// IsProjectFile reports whether a filename is recognized as a common
// programming or project file, by exact name or by extension. Matching is
// case-insensitive and purely syntactic.
func IsProjectFile(name string) bool {
	lower := strings.ToLower(name)
	if _, ok := allowedFilenames[lower]; ok {
		return true
	}
	_, ok := allowedExtensions[strings.ToLower(filepath.Ext(name))]
	return ok
}
