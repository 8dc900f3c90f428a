package docs

import (
	"bytes"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/zipo2008/confdocs/pkg/options"
)

// Parse extracts documented option records from raw artifact HTML. Every
// table's first body is read row by row; rows with fewer than four cells are
// ignored. Origin tags the resulting records, normally with the artifact's
// base name.
func Parse(r io.Reader, origin string) ([]options.Documented, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	var records []options.Documented
	for _, table := range findAll(doc, atom.Table) {
		tbody := findFirst(table, atom.Tbody)
		if tbody == nil {
			continue
		}
		for row := tbody.FirstChild; row != nil; row = row.NextSibling {
			if !isElement(row, atom.Tr) {
				continue
			}
			if rec, ok := parseRow(row, origin); ok {
				records = append(records, rec)
			}
		}
	}
	return records, nil
}

// parseRow turns one table row into a record. The key is the first
// whitespace-delimited token of the first cell, stripping any trailing
// annotation marker the generator appends after the key.
func parseRow(row *html.Node, origin string) (options.Documented, bool) {
	var cells []*html.Node
	for cell := row.FirstChild; cell != nil; cell = cell.NextSibling {
		if isElement(cell, atom.Td) {
			cells = append(cells, cell)
		}
	}
	if len(cells) < 4 {
		return options.Documented{}, false
	}

	keyTokens := strings.Fields(flattenText(cells[0]))
	if len(keyTokens) == 0 {
		return options.Documented{}, false
	}

	return options.Documented{
		Fields: options.Fields{
			Key:         keyTokens[0],
			Default:     flattenText(cells[1]),
			Type:        flattenText(cells[2]),
			Description: innerHTML(cells[3]),
		},
		Origin: origin,
	}, true
}

// isElement reports whether n is an element node with the given tag.
func isElement(n *html.Node, a atom.Atom) bool {
	return n.Type == html.ElementNode && n.DataAtom == a
}

// findAll collects every descendant element with the given tag, in document
// order.
func findAll(n *html.Node, a atom.Atom) []*html.Node {
	var found []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if isElement(n, a) {
			found = append(found, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return found
}

// findFirst returns the first descendant element with the given tag.
func findFirst(n *html.Node, a atom.Atom) *html.Node {
	if all := findAll(n, a); len(all) > 0 {
		return all[0]
	}
	return nil
}

// flattenText extracts the visible text of a node subtree with runs of
// whitespace collapsed to single spaces.
func flattenText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			sb.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(sb.String()), " ")
}

// innerHTML serialises a cell's child nodes back to markup, preserving inner
// tags as part of the value.
func innerHTML(n *html.Node) string {
	var buf bytes.Buffer
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		// Render only fails on unrenderable node types, which cannot
		// appear under a parsed table cell.
		_ = html.Render(&buf, c)
	}
	return buf.String()
}
