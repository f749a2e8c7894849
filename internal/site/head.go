package site

import (
	"encoding/json"
	"fmt"
	"slices"
	"sort"
	"strings"

	"golang.org/x/net/html"
	"gopkg.in/yaml.v3"
)

// HeadTag is an extra element injected into every page's <head>, such as a
// favicon link. In YAML it is written as a [tag, attrs, content] tuple; the
// mapping form {tag, attrs, content} is accepted on input.
type HeadTag struct {
	Tag     string
	Attrs   map[string]string
	Content string
}

// Attr returns the attribute value or "".
func (h HeadTag) Attr(name string) string { return h.Attrs[name] }

// IsIcon reports whether the tag references a site icon.
func (h HeadTag) IsIcon() bool {
	if h.Tag != "link" {
		return false
	}
	for _, rel := range strings.Fields(h.Attr("rel")) {
		if rel == "icon" || rel == "apple-touch-icon" || rel == "mask-icon" {
			return true
		}
	}
	return false
}

func (h HeadTag) sortedAttrKeys() []string {
	keys := make([]string, 0, len(h.Attrs))
	for k := range h.Attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Render returns the tag as an HTML fragment. Attributes are written in
// name order so output is stable.
func (h HeadTag) Render() (string, error) {
	if h.Tag == "" {
		return "", fmt.Errorf("head tag has no element name")
	}
	node := &html.Node{Type: html.ElementNode, Data: h.Tag}
	for _, k := range h.sortedAttrKeys() {
		node.Attr = append(node.Attr, html.Attribute{Key: k, Val: h.Attrs[k]})
	}
	if h.Content != "" {
		node.AppendChild(&html.Node{Type: html.TextNode, Data: h.Content})
	}
	var b strings.Builder
	if err := html.Render(&b, node); err != nil {
		return "", err
	}
	return b.String(), nil
}

// RenderHead renders all tags, one per line, in declaration order.
func RenderHead(tags []HeadTag) (string, error) {
	var b strings.Builder
	for i, t := range tags {
		s, err := t.Render()
		if err != nil {
			return "", fmt.Errorf("head[%d]: %w", i, err)
		}
		b.WriteString(s)
		b.WriteByte('\n')
	}
	return b.String(), nil
}

type headTagMapping struct {
	Tag     string            `yaml:"tag"`
	Attrs   map[string]string `yaml:"attrs"`
	Content string            `yaml:"content"`
}

// UnmarshalYAML decodes the tuple or mapping form.
func (h *HeadTag) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.SequenceNode:
		n := len(value.Content)
		if n < 1 || n > 3 {
			return fmt.Errorf("line %d: head entry must be [tag, attrs, content?], got %d elements", value.Line, n)
		}
		var out HeadTag
		if err := value.Content[0].Decode(&out.Tag); err != nil {
			return err
		}
		if n > 1 {
			if err := value.Content[1].Decode(&out.Attrs); err != nil {
				return err
			}
		}
		if n > 2 {
			if err := value.Content[2].Decode(&out.Content); err != nil {
				return err
			}
		}
		*h = out.compact()
		return nil
	case yaml.MappingNode:
		if err := knownKeys(value, "head entry", "tag", "attrs", "content"); err != nil {
			return err
		}
		var m headTagMapping
		if err := value.Decode(&m); err != nil {
			return err
		}
		*h = HeadTag(m).compact()
		return nil
	default:
		return fmt.Errorf("line %d: head entry must be a sequence or mapping", value.Line)
	}
}

func (h HeadTag) compact() HeadTag {
	if len(h.Attrs) == 0 {
		h.Attrs = nil
	}
	return h
}

// MarshalYAML writes the tuple form in flow style.
func (h HeadTag) MarshalYAML() (any, error) {
	attrs := &yaml.Node{Kind: yaml.MappingNode, Style: yaml.FlowStyle}
	for _, k := range h.sortedAttrKeys() {
		attrs.Content = append(attrs.Content,
			strNode(k),
			strNode(h.Attrs[k]),
		)
	}
	seq := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	seq.Content = append(seq.Content, strNode(h.Tag), attrs)
	if h.Content != "" {
		seq.Content = append(seq.Content, strNode(h.Content))
	}
	return seq, nil
}

// MarshalJSON writes the tuple form expected by the generator.
func (h HeadTag) MarshalJSON() ([]byte, error) {
	attrs := h.Attrs
	if attrs == nil {
		attrs = map[string]string{}
	}
	tuple := []any{h.Tag, attrs}
	if h.Content != "" {
		tuple = append(tuple, h.Content)
	}
	return json.Marshal(tuple)
}

// strNode forces string typing so values such as "true" survive a round trip.
// knownKeys rejects mapping keys outside allowed. Node.Decode does not honor
// the decoder's KnownFields setting, so custom unmarshalers check themselves.
func knownKeys(value *yaml.Node, what string, allowed ...string) error {
	for i := 0; i+1 < len(value.Content); i += 2 {
		k := value.Content[i]
		if !slices.Contains(allowed, k.Value) {
			return fmt.Errorf("line %d: field %s not found in %s", k.Line, k.Value, what)
		}
	}
	return nil
}

func strNode(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
}
