package content

import (
	"bytes"
	"errors"

	"gopkg.in/yaml.v3"
)

// ErrMissingClosingDelimiter is returned when a document opens a YAML
// frontmatter block but never closes it.
var ErrMissingClosingDelimiter = errors.New("frontmatter: missing closing delimiter")

// frontMatter holds the keys the index reads from a page.
type frontMatter struct {
	Title string `yaml:"title"`
	Draft bool   `yaml:"draft"`
}

// splitFrontmatter separates `---` delimited YAML frontmatter from the body.
// If the document has no frontmatter, fm is nil and body is the full input.
func splitFrontmatter(content []byte) (fm []byte, body []byte, err error) {
	nl := "\n"
	if bytes.Contains(content, []byte("\r\n")) {
		nl = "\r\n"
	}
	open := []byte("---" + nl)
	if !bytes.HasPrefix(content, open) {
		return nil, content, nil
	}

	start := len(open)
	if bytes.HasPrefix(content[start:], open) {
		return []byte{}, content[start+len(open):], nil
	}
	if bytes.Equal(content[start:], []byte("---")) {
		return []byte{}, []byte{}, nil
	}

	closeSeq := []byte(nl + "---" + nl)
	idx := bytes.Index(content[start:], closeSeq)
	if idx < 0 {
		// A closing delimiter at EOF has no trailing newline.
		if bytes.HasSuffix(content, []byte(nl+"---")) {
			return content[start : len(content)-len(nl+"---")], nil, nil
		}
		return nil, nil, ErrMissingClosingDelimiter
	}
	return content[start : start+idx+len(nl)], content[start+idx+len(closeSeq):], nil
}

func parseFrontmatter(fm []byte) (frontMatter, error) {
	var out frontMatter
	if len(bytes.TrimSpace(fm)) == 0 {
		return out, nil
	}
	if err := yaml.Unmarshal(fm, &out); err != nil {
		return out, err
	}
	return out, nil
}
