// Package content indexes the Markdown documents of a docs root by route and
// checks navigation links against them.
package content

import (
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	ferrors "git.home.luguber.info/inful/sitenav/internal/foundation/errors"
	"git.home.luguber.info/inful/sitenav/internal/logfields"
)

// Document is a Markdown page reachable under Route.
type Document struct {
	Route string
	// Path is relative to the index root, with forward slashes.
	Path  string
	Title string
	Draft bool
}

// Index maps routes to documents.
type Index struct {
	Root string
	docs map[string]Document
}

var skipDirs = map[string]bool{
	"node_modules": true,
	"public":       true,
}

// Build walks root for *.md files. Hidden directories, node_modules and
// public are skipped. A document with malformed frontmatter is indexed with a
// fallback title and logged.
func Build(root string) (*Index, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, ferrors.FileSystemError("content root not accessible").WithPath(root).WithCause(err).Build()
	}
	if !info.IsDir() {
		return nil, ferrors.FileSystemError("content root is not a directory").WithPath(root).Build()
	}

	idx := &Index{Root: root, docs: map[string]Document{}}
	md := goldmark.New()
	titler := cases.Title(language.English)

	err = filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if p != root && (strings.HasPrefix(d.Name(), ".") || skipDirs[d.Name()]) {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.EqualFold(filepath.Ext(p), ".md") {
			return nil
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		data, err := os.ReadFile(p)
		if err != nil {
			return err
		}
		doc := Document{Route: RouteFor(rel), Path: rel}
		fm, body, ferr := splitFrontmatter(data)
		if ferr != nil {
			slog.Warn("Ignoring malformed frontmatter", logfields.Path(rel), logfields.Error(ferr))
			body = data
		} else if meta, perr := parseFrontmatter(fm); perr != nil {
			slog.Warn("Ignoring malformed frontmatter", logfields.Path(rel), logfields.Error(perr))
		} else {
			doc.Title = meta.Title
			doc.Draft = meta.Draft
		}
		if doc.Title == "" {
			doc.Title = firstHeading(md, body)
		}
		if doc.Title == "" {
			doc.Title = titleFromName(titler, rel)
		}
		idx.docs[doc.Route] = doc
		return nil
	})
	if err != nil {
		return nil, ferrors.FileSystemError("failed to index content").WithPath(root).WithCause(err).Build()
	}
	slog.Debug("Indexed content", logfields.Path(root), logfields.Count(len(idx.docs)))
	return idx, nil
}

// RouteFor maps a slash-separated path relative to the docs root to its
// clean URL: index.md is "/", guide/index.md is "/guide/" and
// guide/intro.md is "/guide/intro". README.md is an index page at any level.
func RouteFor(rel string) string {
	rel = strings.TrimPrefix(rel, "/")
	stem := strings.TrimSuffix(rel, filepath.Ext(rel))
	dir, name := path.Split(stem)
	if isIndexName(name) {
		return "/" + dir
	}
	return "/" + stem
}

func isIndexName(name string) bool { return name == "index" || name == "README" }

// Len reports the number of indexed documents.
func (i *Index) Len() int { return len(i.docs) }

// Routes lists every route in lexical order.
func (i *Index) Routes() []string {
	out := make([]string, 0, len(i.docs))
	for r := range i.docs {
		out = append(out, r)
	}
	sort.Strings(out)
	return out
}

// Lookup returns the document at route exactly.
func (i *Index) Lookup(route string) (Document, bool) {
	d, ok := i.docs[route]
	return d, ok
}

// Resolve maps an internal link to its document. Query strings and fragments
// are dropped, as are .md and .html suffixes; "/guide" also matches
// "/guide/".
func (i *Index) Resolve(link string) (Document, bool) {
	route := link
	if j := strings.IndexAny(route, "?#"); j >= 0 {
		route = route[:j]
	}
	if route == "" {
		route = "/"
	}
	for _, ext := range []string{".md", ".html"} {
		route = strings.TrimSuffix(route, ext)
	}
	if strings.HasSuffix(route, "/index") {
		route = strings.TrimSuffix(route, "index")
	}
	if d, ok := i.docs[route]; ok {
		return d, true
	}
	if !strings.HasSuffix(route, "/") {
		if d, ok := i.docs[route+"/"]; ok {
			return d, true
		}
	} else if route != "/" {
		if d, ok := i.docs[strings.TrimSuffix(route, "/")]; ok {
			return d, true
		}
	}
	return Document{}, false
}

// firstHeading returns the text of the first level-1 heading.
func firstHeading(md goldmark.Markdown, body []byte) string {
	root := md.Parser().Parse(text.NewReader(body))
	var title string
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		h, ok := n.(*gmast.Heading)
		if !ok || h.Level != 1 {
			return gmast.WalkContinue, nil
		}
		title = strings.TrimSpace(string(headingText(h, body)))
		return gmast.WalkStop, nil
	})
	return title
}

func headingText(n gmast.Node, source []byte) []byte {
	var out []byte
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*gmast.Text); ok {
			out = append(out, t.Segment.Value(source)...)
			if t.SoftLineBreak() {
				out = append(out, ' ')
			}
			continue
		}
		out = append(out, headingText(c, source)...)
	}
	return out
}

// titleFromName turns "reaction-wheel.md" into "Reaction Wheel". Index
// pages take their directory name.
func titleFromName(titler cases.Caser, rel string) string {
	name := strings.TrimSuffix(filepath.Base(rel), filepath.Ext(rel))
	if isIndexName(name) {
		dir := filepath.Base(filepath.Dir(rel))
		if dir == "." || dir == "/" {
			return "Home"
		}
		name = dir
	}
	name = strings.NewReplacer("-", " ", "_", " ").Replace(name)
	return titler.String(name)
}
