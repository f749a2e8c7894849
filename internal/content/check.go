package content

import (
	"strings"

	"git.home.luguber.info/inful/sitenav/internal/site"
)

// Problem is a navigation link without a matching document.
type Problem struct {
	Field  string
	Text   string
	Link   string
	Reason string
}

func (p Problem) String() string {
	return p.Field + ": " + p.Link + " (" + p.Reason + ")"
}

// CheckLinks returns every nav and sidebar link whose target has no document
// in idx, in declaration order. Anchors and external links are skipped. The
// site base, when set, is stripped from internal links first.
func CheckLinks(cfg *site.Config, idx *Index) []Problem {
	var problems []Problem
	base := strings.TrimSuffix(cfg.Base, "/")
	for _, ref := range cfg.Links() {
		if site.ClassifyLink(ref.Link) != site.LinkInternal {
			continue
		}
		link := ref.Link
		if base != "" && strings.HasPrefix(link, base+"/") {
			link = strings.TrimPrefix(link, base)
		}
		doc, ok := idx.Resolve(link)
		switch {
		case !ok:
			problems = append(problems, Problem{Field: ref.Field, Text: ref.Text, Link: ref.Link, Reason: "no document for route"})
		case doc.Draft:
			problems = append(problems, Problem{Field: ref.Field, Text: ref.Text, Link: ref.Link, Reason: "document is a draft"})
		}
	}
	return problems
}
