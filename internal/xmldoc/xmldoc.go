// Package xmldoc wraps xmlquery with namespace-mandatory lookups.
//
// Registry extracts declare a single significant namespace, and every
// element lookup must be scoped through it: an unscoped lookup silently
// matches nothing. This package makes that contract impossible to get
// wrong by compiling the prefix binding into every query.
package xmldoc

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
)

// Missing is the sentinel for a field or attribute that is not present
// in the document. It is distinct from an empty string so that "present
// but empty" survives tabular output unchanged.
const Missing = "N/A"

// Prefix is the namespace prefix bound in every query expression.
// Paths passed to First and All must qualify each element step with it,
// e.g. "v:StatutarniOrgan/v:Clen".
const Prefix = "v"

// Document is a fully parsed XML document with its namespace binding.
type Document struct {
	root *xmlquery.Node
	ns   map[string]string
}

// Parse reads and parses an entire document from r, binding ns as the
// significant namespace. The whole tree is materialized in memory before
// any lookup runs.
func Parse(r io.Reader, ns string) (*Document, error) {
	if ns == "" {
		return nil, errors.New("xmldoc: namespace must not be empty")
	}
	root, err := xmlquery.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("xmldoc: malformed document: %w", err)
	}
	return &Document{
		root: root,
		ns:   map[string]string{Prefix: ns},
	}, nil
}

// ParseFile reads path as UTF-8 text and parses it. A missing or
// unreadable file surfaces as the underlying os error.
func ParseFile(path, ns string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f, ns)
}

// Root returns the document root node.
func (d *Document) Root() *xmlquery.Node {
	return d.root
}

// compile binds the namespace prefix into the expression. An invalid
// path is a programming error: all paths in this codebase are fixed
// literals, so compile panics rather than returning an error every
// caller would have to ignore.
func (d *Document) compile(path string) *xpath.Expr {
	expr, err := xpath.CompileWithNS(path, d.ns)
	if err != nil {
		panic(fmt.Sprintf("xmldoc: bad xpath %q: %v", path, err))
	}
	return expr
}

// First returns the first node matching the namespace-scoped path
// relative to base, or nil when nothing matches. A nil base yields nil.
func (d *Document) First(base *xmlquery.Node, path string) *xmlquery.Node {
	if base == nil {
		return nil
	}
	return xmlquery.QuerySelector(base, d.compile(path))
}

// All returns every node matching the namespace-scoped path relative to
// base, in document order. A nil base yields nil.
func (d *Document) All(base *xmlquery.Node, path string) []*xmlquery.Node {
	if base == nil {
		return nil
	}
	return xmlquery.QuerySelectorAll(base, d.compile(path))
}

// Text is the safe text accessor: the node's inner text when n is
// non-nil, the Missing marker otherwise. It never fails, whatever the
// input.
func Text(n *xmlquery.Node) string {
	if n == nil {
		return Missing
	}
	return n.InnerText()
}

// ChildText resolves a namespace-scoped path under base and returns the
// matched node's text, or Missing when the path matches nothing.
func (d *Document) ChildText(base *xmlquery.Node, path string) string {
	return Text(d.First(base, path))
}

// Attr returns the named attribute's value on n, or Missing when the
// attribute does not exist or n is nil. An attribute that is present
// with an empty value returns "".
func Attr(n *xmlquery.Node, name string) string {
	if n == nil {
		return Missing
	}
	for _, a := range n.Attr {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return Missing
}
