// Package vypis extracts tabular data from Czech commercial-registry
// full-extract XML documents (výpis z obchodního rejstříku).
//
// One parsed document yields up to four tables: the entity's basic
// info, its statutory-body members, its oversight-committee members and
// its declared business activities. Each extractor is a single pure
// pass over the in-memory document; an absent section produces an empty
// table, never an error.
package vypis

import (
	"io"
	"runtime/debug"

	"github.com/prozkosny/pydata-zdenka/internal/xmldoc"
)

// Namespace is the single significant namespace of a registry extract.
// Every element lookup is scoped through it; a document declaring a
// different namespace extracts as empty, silently. That is the source
// format's actual contract.
const Namespace = "http://or.justice.cz/ias/isor/ws/vypis"

// Missing marks a field or attribute that was not present in the
// document. Distinct from "" so present-but-empty values stay
// distinguishable in tabular output.
const Missing = xmldoc.Missing

// Parse reads a registry extract from r into memory, bound to the
// registry namespace. Malformed input surfaces the parser's positional
// diagnostics.
func Parse(r io.Reader) (*xmldoc.Document, error) {
	return xmldoc.Parse(r, Namespace)
}

// ParseFile reads and parses the registry extract at path.
func ParseFile(path string) (*xmldoc.Document, error) {
	return xmldoc.ParseFile(path, Namespace)
}

// Extract runs all four extractors over doc and composes their results.
// It performs no transformation of its own and tolerates any subset of
// the tables coming back empty. Extraction is deterministic: the same
// document always yields the same table-set.
func Extract(doc *xmldoc.Document) TableSet {
	return TableSet{
		Entity:     ExtractEntity(doc),
		Board:      ExtractBoard(doc),
		Committee:  ExtractCommittee(doc),
		Activities: ExtractActivities(doc),
	}
}

// Version returns the module version consumers pulled via go get.
// Returns "(devel)" when built from source without version info.
func Version() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		return info.Main.Version
	}
	return "(unknown)"
}
