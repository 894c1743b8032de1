package internal

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func prepOpts(t *testing.T, root string) ScanOptions {
	t.Helper()
	opts := ScanOptions{Root: root, OutputName: DefaultOutputName}
	if err := opts.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	opts.Prepare()
	return opts
}

func writeTree(t *testing.T, root string, files map[string][]byte) {
	t.Helper()
	for rel, content := range files {
		fp := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(fp), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(fp, content, 0644); err != nil {
			t.Fatal(err)
		}
	}
}

// .gitignore lists build; build/out.bin and .git/config must both vanish,
// only src/main.py survives.
func TestScan_IgnoreBinaryAndVCS(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string][]byte{
		"src/main.py":   []byte("print('hi')\n"),
		"build/out.bin": {0, 1, 2, 3},
		".git/config":   []byte("[core]\n"),
		".gitignore":    []byte("build\n"),
	})

	var stats AppStats
	res, err := Scan(context.Background(), prepOpts(t, dir), &stats)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if got := res.Paths(); !reflect.DeepEqual(got, []string{"src/main.py"}) {
		t.Fatalf("expected only src/main.py, got %v", got)
	}
	if *res.Entries[0].Content != "print('hi')\n" {
		t.Errorf("wrong content: %q", *res.Entries[0].Content)
	}
}

// Extension-less Dockerfile is in, notes.txt is out.
func TestScan_AllowList(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string][]byte{
		"Dockerfile": []byte("FROM scratch\n"),
		"notes.txt":  []byte("todo\n"),
	})

	var stats AppStats
	res, err := Scan(context.Background(), prepOpts(t, dir), &stats)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if got := res.Paths(); !reflect.DeepEqual(got, []string{"Dockerfile"}) {
		t.Fatalf("expected only Dockerfile, got %v", got)
	}
}

// A read failure after the binary sniff records the path with no content
// and does not abort the scan.
func TestScan_UnreadableFileKeepsPath(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string][]byte{
		"a.py": []byte("broken\n"),
		"b.py": []byte("fine\n"),
	})

	orig := readTextFile
	readTextFile = func(path string) (string, error) {
		if filepath.Base(path) == "a.py" {
			return "", errors.New("simulated read failure")
		}
		return orig(path)
	}
	defer func() { readTextFile = orig }()

	var stats AppStats
	res, err := Scan(context.Background(), prepOpts(t, dir), &stats)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if got := res.Paths(); !reflect.DeepEqual(got, []string{"a.py", "b.py"}) {
		t.Fatalf("expected both paths listed, got %v", got)
	}
	if res.Entries[0].Content != nil {
		t.Error("unreadable file must carry the absent-content marker")
	}
	if res.Entries[1].Content == nil || *res.Entries[1].Content != "fine\n" {
		t.Error("readable file must keep its content")
	}
	if stats.Unreadable.Load() != 1 {
		t.Errorf("expected 1 unreadable, got %d", stats.Unreadable.Load())
	}
}

// An ignored directory is pruned before descent: nothing inside it shows
// up, even files that would pass the allow-list on their own.
func TestScan_PrunedDirectoryIsHardExclusion(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string][]byte{
		"app.py":              []byte("ok\n"),
		"node_modules/mod.js": []byte("module.exports = {}\n"),
		"deep/vendor/lib.go":  []byte("package lib\n"),
		"deep/keep.go":        []byte("package deep\n"),
	})

	var stats AppStats
	res, err := Scan(context.Background(), prepOpts(t, dir), &stats)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	want := []string{"app.py", "deep/keep.go"}
	if got := res.Paths(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

// Hidden entries are excluded at the root by the built-in ".*" rule.
func TestScan_HiddenEntriesSkipped(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string][]byte{
		".env.yaml": []byte("secret: 1\n"),
		"ok.yaml":   []byte("fine: 1\n"),
	})

	var stats AppStats
	res, err := Scan(context.Background(), prepOpts(t, dir), &stats)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if got := res.Paths(); !reflect.DeepEqual(got, []string{"ok.yaml"}) {
		t.Fatalf("expected only ok.yaml, got %v", got)
	}
}

// Two scans over an unchanged tree must produce identical results.
func TestScan_Deterministic(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string][]byte{
		"b.py":       []byte("b\n"),
		"a.py":       []byte("a\n"),
		"sub/c.go":   []byte("package sub\n"),
		"sub/d.rs":   []byte("fn main() {}\n"),
		"Dockerfile": []byte("FROM scratch\n"),
	})

	var s1, s2 AppStats
	r1, err := Scan(context.Background(), prepOpts(t, dir), &s1)
	if err != nil {
		t.Fatalf("scan 1: %v", err)
	}
	r2, err := Scan(context.Background(), prepOpts(t, dir), &s2)
	if err != nil {
		t.Fatalf("scan 2: %v", err)
	}
	if !reflect.DeepEqual(r1, r2) {
		t.Fatal("repeated scans over an unchanged tree must match")
	}
}

func TestScan_MissingRootFails(t *testing.T) {
	dir := t.TempDir()
	opts := ScanOptions{Root: filepath.Join(dir, "nope"), OutputName: DefaultOutputName}
	if err := opts.Validate(); err == nil {
		t.Fatal("expected validation error for missing root")
	}

	// even past validation, the walk itself must fail on a vanished root
	opts.Prepare()
	var stats AppStats
	if _, err := Scan(context.Background(), opts, &stats); err == nil {
		t.Fatal("expected scan error for missing root")
	}
}

func TestScan_CancelledContext(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string][]byte{"a.py": []byte("a\n")})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var stats AppStats
	if _, err := Scan(ctx, prepOpts(t, dir), &stats); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
