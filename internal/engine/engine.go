// File path: internal/engine/engine.go

// Package engine is the deterministic core of the navigator: it classifies a
// query, locates the page range holding the answer inside the specification
// PDFs, extracts the exact passage or section, and serializes the result as
// the envelope consumed by the presentation layer. Nothing in this package
// calls a generative model; regulatory text is reproduced verbatim.
package engine

import (
	"path/filepath"

	"github.com/isodocs/isonav/internal/docstore"
	"github.com/isodocs/isonav/internal/registry"
)

// Engine answers queries against the specification documents reachable under
// dataDir through the given page source.
type Engine struct {
	source  docstore.Source
	dataDir string
}

// New returns an Engine reading documents from dataDir via source.
func New(source docstore.Source, dataDir string) *Engine {
	return &Engine{source: source, dataDir: dataDir}
}

// sectionPages resolves the PDF for code and returns its cached pages along
// with the bounds for the requested section. Any miss (unknown code, unknown
// section, unreadable file) reports false; absence is not an error here.
func (e *Engine) sectionPages(code string, section registry.Section) ([]string, PageBounds, bool) {
	file, ok := registry.FileFor(code)
	if !ok {
		return nil, PageBounds{}, false
	}
	bounds, ok := SectionBounds(code, section)
	if !ok {
		return nil, PageBounds{}, false
	}
	pages, err := e.source.Pages(filepath.Join(e.dataDir, file))
	if err != nil {
		return nil, PageBounds{}, false
	}
	return pages, bounds, true
}
