package internal

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// WriteStructure serializes the scan result to a YAML document at outPath.
//
// The document has three fixed top-level sections, always in this order:
// a placeholder task list, the ordered list of included paths, and one
// {name, content} record per file. The document is built as an explicit
// node tree so that key order never depends on map iteration and
// multi-line contents are emitted as literal block scalars with embedded
// newlines kept verbatim.
func WriteStructure(result *ScanResult, outPath string) error {
	doc := buildDocument(result)

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", outPath, err)
	}

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		_ = enc.Close()
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", outPath, err)
	}
	if err := enc.Close(); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", outPath, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}
	return nil
}

func buildDocument(result *ScanResult) *yaml.Node {
	tasks := seqNode()
	task := mapNode()
	appendPair(task, "message", strNode("Example task 1"))
	tasks.Content = append(tasks.Content, task)

	structure := seqNode()
	for _, e := range result.Entries {
		structure.Content = append(structure.Content, strNode(e.Path))
	}

	files := seqNode()
	for _, e := range result.Entries {
		rec := mapNode()
		appendPair(rec, "name", strNode(e.Path))
		appendPair(rec, "content", contentNode(e.Content))
		files.Content = append(files.Content, rec)
	}

	root := mapNode()
	appendPair(root, "tasks", tasks)
	appendPair(root, "project_structure", structure)
	appendPair(root, "files", files)
	return root
}

// contentNode renders file content: nil becomes an explicit null (the
// unreadable marker), multi-line text becomes a literal block scalar.
func contentNode(content *string) *yaml.Node {
	if content == nil {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	}
	n := strNode(*content)
	if strings.Contains(*content, "\n") {
		n.Style = yaml.LiteralStyle
	}
	return n
}

func strNode(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

func mapNode() *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
}

func seqNode() *yaml.Node {
	return &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
}

func appendPair(mapping *yaml.Node, key string, value *yaml.Node) {
	mapping.Content = append(mapping.Content, strNode(key), value)
}
