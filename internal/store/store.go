// Package store holds the single in-memory résumé document and exposes the
// merge-style update operation every editor goes through.
package store

import (
	"log"
	"sync"
	"time"

	"github.com/careerpal/careerpal/internal/storage"
	"github.com/careerpal/careerpal/internal/types"
)

// PolicyKind names a persistence trigger strategy.
type PolicyKind string

// Persistence trigger strategies. WriteThrough persists on every update, the
// behavior of the original editor. Debounced coalesces bursts of keystroke
// updates into one write.
const (
	WriteThrough PolicyKind = "write-through"
	Debounced    PolicyKind = "debounced"
)

// SavePolicy configures when Update persists the document.
type SavePolicy struct {
	Kind  PolicyKind
	Delay time.Duration // debounce window, Debounced only
}

// Store owns the document for the session. It is constructed once at startup,
// initialized from the persistence adapter, and lives until process exit.
type Store struct {
	mu      sync.Mutex
	doc     *types.ResumeDocument
	adapter *storage.Adapter
	policy  SavePolicy

	timer  *time.Timer
	dirty  bool
	warned bool // persistence-failure warning is logged once per session
}

// Option configures a Store.
type Option func(*Store)

// WithPolicy sets the persistence trigger strategy.
func WithPolicy(p SavePolicy) Option {
	return func(s *Store) {
		s.policy = p
	}
}

// New loads the document through the adapter and returns a store. A load
// failure degrades to a fresh default document; the editor must start either
// way.
func New(adapter *storage.Adapter, opts ...Option) *Store {
	doc, err := adapter.Load()
	if err != nil {
		log.Printf("[store] starting with a fresh document: %v", err)
	}
	s := &Store{
		doc:     doc,
		adapter: adapter,
		policy:  SavePolicy{Kind: WriteThrough},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get returns a deep copy of the current document.
func (s *Store) Get() *types.ResumeDocument {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Clone()
}

// Update shallow-merges the patch's top-level keys into the document,
// replacing whole fields, then triggers persistence per the configured
// policy. No validation is performed here; malformed section contents
// propagate to the renderer, which must degrade gracefully.
func (s *Store) Update(patch *types.DocumentPatch) {
	if patch == nil || patch.IsZero() {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.doc.Clone()
	patch.Apply(doc)
	s.doc = doc
	s.dirty = true

	switch s.policy.Kind {
	case Debounced:
		s.scheduleSaveLocked()
	default:
		s.saveLocked()
	}
}

// Dirty reports whether the document has changes not yet persisted.
func (s *Store) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty
}

// Flush persists any pending changes immediately.
func (s *Store) Flush() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	if s.dirty {
		s.saveLocked()
	}
}

// Close flushes pending changes and releases the adapter.
func (s *Store) Close() error {
	s.Flush()
	return s.adapter.Close()
}

// scheduleSaveLocked arms (or re-arms) the debounce timer.
func (s *Store) scheduleSaveLocked() {
	delay := s.policy.Delay
	if delay <= 0 {
		delay = 500 * time.Millisecond
	}
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(delay, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.timer = nil
		if s.dirty {
			s.saveLocked()
		}
	})
}

// saveLocked persists the current document. Failures degrade to
// session-only state: the document stays editable and the warning is logged
// once.
func (s *Store) saveLocked() {
	if err := s.adapter.Save(s.doc); err != nil {
		if !s.warned {
			s.warned = true
			log.Printf("[store] persistence unavailable, continuing in-memory only: %v", err)
		}
		return
	}
	s.dirty = false
}
