// Package content reads and annotates YAML content records.
package content

import (
	"strings"

	"go.trai.ch/assetimport/internal/core/domain"
	"go.trai.ch/assetimport/internal/core/ports"
	"gopkg.in/yaml.v3"
)

const (
	// ContentTypeKey is the top-level key naming the record's content type.
	ContentTypeKey = "contentType"
	// AnnotationsKey is the key under which a field collects its transformed files.
	AnnotationsKey = "transformations"
)

var (
	_ ports.ContentDocument = (*Document)(nil)
	_ ports.ContentField    = (*Field)(nil)
)

// Document is a content record held as a YAML node tree.
type Document struct {
	root *yaml.Node
}

// Parse decodes a content record.
func Parse(data []byte) (*Document, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, err
	}
	root := &node
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	if root.Kind == 0 {
		root = &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	}
	return &Document{root: root}, nil
}

// Marshal encodes the record, annotations included.
func (d *Document) Marshal() ([]byte, error) {
	var sb strings.Builder
	enc := yaml.NewEncoder(&sb)
	enc.SetIndent(2)
	if err := enc.Encode(d.root); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return []byte(sb.String()), nil
}

// ContentType returns the value of the top-level contentType key.
func (d *Document) ContentType() string {
	if n := child(d.root, ContentTypeKey); n != nil && n.Kind == yaml.ScalarNode {
		return n.Value
	}
	return ""
}

// Select returns the fields at a slash-separated location.
// Sequences met along the way fan out to every item.
func (d *Document) Select(location string) []ports.ContentField {
	nodes := walk([]*yaml.Node{d.root}, segments(location))
	fields := make([]ports.ContentField, 0, len(nodes))
	for _, n := range nodes {
		fields = append(fields, &Field{node: n})
	}
	return fields
}

// Field is one selected node of a content record.
type Field struct {
	node *yaml.Node
}

// Value returns the scalar at a location relative to the field.
// An empty location or "." names the field itself.
func (f *Field) Value(location string) string {
	nodes := walk([]*yaml.Node{f.node}, segments(location))
	if len(nodes) == 0 || nodes[0].Kind != yaml.ScalarNode {
		return ""
	}
	return strings.TrimSpace(nodes[0].Value)
}

// Annotate records the URL and readiness of the transformed file called name.
// Annotating the same name again replaces the previous entry.
func (f *Field) Annotate(name, url string, ready bool) {
	if f.node.Kind != yaml.MappingNode {
		return
	}

	annotations := child(f.node, AnnotationsKey)
	if annotations == nil || annotations.Kind != yaml.MappingNode {
		annotations = &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		setChild(f.node, AnnotationsKey, annotations)
	}

	readiness := "no"
	if ready {
		readiness = "yes"
	}
	entry := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	setChild(entry, "url", scalar(url))
	setChild(entry, domain.ReadyAttribute, scalar(readiness))
	setChild(annotations, name, entry)
}

func segments(location string) []string {
	var out []string
	for _, s := range strings.Split(location, "/") {
		if s != "" && s != "." {
			out = append(out, s)
		}
	}
	return out
}

func walk(nodes []*yaml.Node, path []string) []*yaml.Node {
	for _, key := range path {
		var next []*yaml.Node
		for _, n := range nodes {
			for _, item := range items(n) {
				if c := child(item, key); c != nil {
					next = append(next, items(c)...)
				}
			}
		}
		nodes = next
	}

	var out []*yaml.Node
	for _, n := range nodes {
		out = append(out, items(n)...)
	}
	return out
}

func items(n *yaml.Node) []*yaml.Node {
	if n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	if n.Kind == yaml.SequenceNode {
		return n.Content
	}
	return []*yaml.Node{n}
}

func child(n *yaml.Node, key string) *yaml.Node {
	if n == nil || n.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == key {
			return n.Content[i+1]
		}
	}
	return nil
}

func setChild(n *yaml.Node, key string, value *yaml.Node) {
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == key {
			n.Content[i+1] = value
			return
		}
	}
	n.Content = append(n.Content, scalar(key), value)
}

func scalar(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
}
