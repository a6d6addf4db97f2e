// Package memory provides an in-process document store for tests and local
// development.
package memory

import (
	"context"
	"strings"
	"sync"

	"fintrack/internal/store"
)

type Store struct {
	mu   sync.Mutex
	docs map[string]store.Document // full document path -> document
}

func New() *Store {
	return &Store{docs: make(map[string]store.Document)}
}

var _ store.Store = (*Store)(nil)

func (s *Store) Push(_ context.Context, p string, doc store.Document) (string, error) {
	key := store.NewKey()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[p+"/"+key] = clone(doc)
	return key, nil
}

func (s *Store) List(_ context.Context, p string) (map[string]store.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	prefix := p + "/"
	var out map[string]store.Document
	for docPath, doc := range s.docs {
		if !strings.HasPrefix(docPath, prefix) {
			continue
		}
		key := docPath[len(prefix):]
		if strings.Contains(key, "/") {
			continue
		}
		if out == nil {
			out = make(map[string]store.Document)
		}
		out[key] = clone(doc)
	}
	return out, nil
}

func (s *Store) Get(_ context.Context, p string) (store.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.docs[p]
	if !ok {
		return nil, nil
	}
	return clone(doc), nil
}

func (s *Store) Set(_ context.Context, p string, doc store.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(doc) == 0 {
		delete(s.docs, p)
		return nil
	}
	s.docs[p] = clone(doc)
	return nil
}

func (s *Store) Update(_ context.Context, p string, fields store.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.docs[p]
	if !ok {
		doc = store.Document{}
		s.docs[p] = doc
	}
	for k, v := range fields {
		doc[k] = v
	}
	return nil
}

// clone keeps callers from mutating stored state through shared maps.
func clone(doc store.Document) store.Document {
	out := make(store.Document, len(doc))
	for k, v := range doc {
		out[k] = v
	}
	return out
}
