// File path: internal/docstore/store.go

// Package docstore loads the static specification PDFs and keeps their
// per-page text in memory so repeated queries never re-parse a document.
package docstore

import (
	"fmt"
	"os"
	"sync"

	"github.com/ledongthuc/pdf"

	"github.com/isodocs/isonav/internal/common"
)

// Source yields the ordered per-page raw text of a document. The engine
// depends on this interface so tests can substitute synthetic pages.
type Source interface {
	Pages(path string) ([]string, error)
}

// Store caches parsed PDF pages keyed by file path. The source documents are
// static, so entries live for the process lifetime. Concurrent first access
// to the same path may parse twice; the parse is deterministic, so last
// writer wins without corruption.
type Store struct {
	mu    sync.RWMutex
	cache map[string][]string
}

// New returns an empty Store.
func New() *Store {
	return &Store{cache: make(map[string][]string)}
}

// Pages returns the raw text of every page in the PDF at path, 0-indexed by
// slice position (page 1 is element 0). The first call parses and caches the
// whole document. A page whose text cannot be extracted yields an empty
// string at its index rather than failing the load.
func (s *Store) Pages(path string) ([]string, error) {
	s.mu.RLock()
	pages, ok := s.cache[path]
	s.mu.RUnlock()
	if ok {
		return pages, nil
	}

	pages, err := extractPages(path)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.cache[path] = pages
	s.mu.Unlock()
	return pages, nil
}

// Seed installs pre-parsed pages for a path, replacing any cached entry.
func (s *Store) Seed(path string, pages []string) {
	s.mu.Lock()
	s.cache[path] = append([]string(nil), pages...)
	s.mu.Unlock()
}

// Invalidate drops the cached pages for a path. Production never calls this;
// it exists so tests can force a re-parse.
func (s *Store) Invalidate(path string) {
	s.mu.Lock()
	delete(s.cache, path)
	s.mu.Unlock()
}

func extractPages(path string) ([]string, error) {
	logger := common.Logger()
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("stat pdf: %w", err)
	}
	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf %s: %w", path, err)
	}
	defer f.Close()

	total := reader.NumPage()
	pages := make([]string, 0, total)
	failed := 0
	for i := 1; i <= total; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			failed++
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// Extraction is best effort per page; a corrupt or scanned
			// page must not sink the rest of the document.
			pages = append(pages, "")
			failed++
			continue
		}
		pages = append(pages, text)
	}
	if failed > 0 {
		logger.Warn("docstore: some pages yielded no text", "path", path, "failed", failed, "total", total)
	}
	logger.Info("docstore: document parsed", "path", path, "pages", total)
	return pages, nil
}
