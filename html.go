package snipper

import (
	"io"
	"sort"
	"strconv"

	"github.com/mozillazg/go-slugify"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const ellipsis = "…"

// WriteHTML writes an HTML fragment previewing results: one section per hit, one block per field,
// with highlighted ranges in <strong> elements.
func WriteHTML(w io.Writer, results []HitResult) error {
	for _, result := range results {
		if err := html.Render(w, hitNode(result)); err != nil {
			return err
		}
	}
	return nil
}

func hitNode(result HitResult) *html.Node {
	hitID := "hit-" + slugify.Slugify(result.ID)
	section := element(atom.Section, "class", "hit", "id", hitID)
	heading := element(atom.H2)
	heading.AppendChild(text(result.ID))
	section.AppendChild(heading)

	for _, name := range fieldNames(result) {
		field := element(atom.Div, "class", "field", "id", hitID+"-"+slugify.Slugify(name))
		h := element(atom.H3)
		h.AppendChild(text(name))
		field.AppendChild(h)

		if fs, ok := result.Snippets[name]; ok {
			for _, r := range fs.Snippets {
				field.AppendChild(snippetNode(r))
			}
		}
		if p, ok := result.Passages[name]; ok {
			passage := element(atom.P, "class", "passage")
			passage.AppendChild(text(p))
			field.AppendChild(passage)
		}
		section.AppendChild(field)
	}
	return section
}

func snippetNode(r Record) *html.Node {
	p := element(atom.P, "class", "snippet", "data-offset", strconv.Itoa(r.Offset))
	if r.head {
		p.AppendChild(text(ellipsis))
	}
	content := []rune(r.text)
	c := 0
	for _, rg := range r.Ranges {
		start := rg.Offset - r.Offset
		if start < c || start+rg.Length > len(content) {
			continue
		}
		if start > c {
			p.AppendChild(text(string(content[c:start])))
		}
		strong := element(atom.Strong)
		strong.AppendChild(text(string(content[start : start+rg.Length])))
		p.AppendChild(strong)
		c = start + rg.Length
	}
	if c < len(content) {
		p.AppendChild(text(string(content[c:])))
	}
	if r.tail {
		p.AppendChild(text(ellipsis))
	}
	return p
}

func fieldNames(result HitResult) []string {
	seen := map[string]struct{}{}
	var names []string
	add := func(name string) {
		if _, ok := seen[name]; !ok {
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}
	for name := range result.Snippets {
		add(name)
	}
	for name := range result.Passages {
		add(name)
	}
	sort.Strings(names)
	return names
}

// element returns an element node with the given attribute key/value pairs.
func element(a atom.Atom, attrs ...string) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
	for i := 0; i+1 < len(attrs); i += 2 {
		n.Attr = append(n.Attr, html.Attribute{Key: attrs[i], Val: attrs[i+1]})
	}
	return n
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}
