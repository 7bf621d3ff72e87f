package registry

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"
)

// Document kinds tracked by the registry.
const (
	KindImage     = "image"
	KindPDF       = "pdf"
	KindGenerated = "generated-text"
)

// ChatEngine answers follow-up questions about a single document. Handles are
// owned by the registry and released when their record is deleted.
type ChatEngine interface {
	Ask(ctx context.Context, question string) (string, error)
}

// Record binds a document name to its plain-language analysis.
type Record struct {
	Name      string
	Kind      string
	Analysis  string
	CreatedAt time.Time
}

// Registry is the session-scoped store correlating document names with their
// analyses and chat engines. A chat engine exists for a name exactly when
// that name was successfully analyzed. Safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	records map[string]Record
	engines map[string]ChatEngine
	current string
}

// NewRegistry constructs an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		records: make(map[string]Record),
		engines: make(map[string]ChatEngine),
	}
}

// RecordAnalysis inserts or overwrites the analysis and chat engine for name.
// A duplicate name replaces the prior record and its engine outright; there
// is no merge. History is the caller's responsibility and must be appended
// immediately after a successful call.
func (r *Registry) RecordAnalysis(name, kind, analysis string, engine ChatEngine) error {
	if strings.TrimSpace(name) == "" || engine == nil {
		return ErrInvalidInput
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[name] = Record{
		Name:      name,
		Kind:      kind,
		Analysis:  analysis,
		CreatedAt: time.Now().UTC(),
	}
	r.engines[name] = engine
	return nil
}

// Get returns the record for name.
func (r *Registry) Get(name string) (Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.records[name]
	if !ok {
		return Record{}, ErrNotFound
	}
	return rec, nil
}

// ChatEngine returns the engine registered for name. Callers must treat
// ErrNotFound as "chat unavailable" for that document.
func (r *Registry) ChatEngine(name string) (ChatEngine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	engine, ok := r.engines[name]
	if !ok {
		return nil, ErrNotFound
	}
	return engine, nil
}

// List returns a snapshot of all records, newest first.
func (r *Registry) List() []Record {
	r.mu.RLock()
	records := make([]Record, 0, len(r.records))
	for _, rec := range r.records {
		records = append(records, rec)
	}
	r.mu.RUnlock()

	sort.Slice(records, func(i, j int) bool {
		if records[i].CreatedAt.Equal(records[j].CreatedAt) {
			return records[i].Name < records[j].Name
		}
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})
	return records
}

// Delete removes the record and its engine for name, clearing the current
// document reference when it matches. Deleting an absent name is a no-op.
func (r *Registry) Delete(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.records, name)
	delete(r.engines, name)
	if r.current == name {
		r.current = ""
	}
}

// SetCurrent marks name as the session's current document.
func (r *Registry) SetCurrent(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.records[name]; !ok {
		return ErrNotFound
	}
	r.current = name
	return nil
}

// Current returns the current document name, empty when unset.
func (r *Registry) Current() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

// Len reports the number of records.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.records)
}
