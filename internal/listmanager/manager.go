// Package listmanager keeps the client-side view of one entity collection:
// the source as last fetched from the server, the filtered and sorted view
// derived from it, and the current page of that view. Mutations go to the
// server and are followed by a full reload; nothing is patched locally.
package listmanager

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"strings"
	"sync"

	"github.com/ArturMukhamedjanov/is-lab1-front/internal/logging"
	"github.com/ArturMukhamedjanov/is-lab1-front/internal/schema"
	"github.com/ArturMukhamedjanov/is-lab1-front/pkg/types"
)

// Manager maintains the (source, view, page) triple for one entity.
// It is safe for concurrent use; remote calls run without the lock held.
type Manager struct {
	schema    *types.Schema
	coll      types.Collection
	validator types.Validator
	reporter  types.Reporter
	logger    *slog.Logger
	pageSize  int

	mu      sync.Mutex
	issued  uint64 // generation of the most recently issued Load
	applied uint64 // generation whose result is currently held
	source  []types.Record
	view    []types.Record
	filters Filters
	sort    SortState
	page    int
}

// Option configures a Manager.
type Option func(*Manager)

// WithPageSize sets the number of records per page. Non-positive values are
// ignored.
func WithPageSize(n int) Option {
	return func(m *Manager) {
		if n > 0 {
			m.pageSize = n
		}
	}
}

// WithReporter sets the collaborator that surfaces errors to the user.
func WithReporter(r types.Reporter) Option {
	return func(m *Manager) { m.reporter = r }
}

// WithValidator replaces the schema-derived validator.
func WithValidator(v types.Validator) Option {
	return func(m *Manager) { m.validator = v }
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(m *Manager) { m.logger = l }
}

// New returns a Manager for the entity described by s, backed by coll.
// The source starts empty; call Load to fetch it.
func New(s *types.Schema, coll types.Collection, opts ...Option) *Manager {
	m := &Manager{
		schema:    s,
		coll:      coll,
		validator: schema.NewValidator(s),
		reporter:  types.ReporterFunc(func(context.Context, error) {}),
		logger:    logging.Discard(),
		pageSize:  types.DefaultPageSize,
		filters:   Filters{},
		page:      1,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.logger = m.logger.With(logging.Entity(s.Name))
	return m
}

// Schema returns the entity schema the manager was built with.
func (m *Manager) Schema() *types.Schema { return m.schema }

// PageSize returns the number of records per page.
func (m *Manager) PageSize() int { return m.pageSize }

// Load fetches the collection and replaces the source with it. On failure
// the error is reported and the previous source is kept.
//
// Overlapping calls resolve last-issued-wins: a result is applied only if
// no call issued after it has already been applied, so a slow early
// response never overwrites a newer one. A superseded call returns nil and
// reports nothing, whether it succeeded or failed.
func (m *Manager) Load(ctx context.Context) error {
	m.mu.Lock()
	m.issued++
	gen := m.issued
	m.mu.Unlock()

	recs, err := m.coll.List(ctx)
	if err != nil {
		m.mu.Lock()
		stale := gen <= m.applied
		m.mu.Unlock()
		if stale {
			m.logger.Debug("discarding superseded load failure", logging.Generation(gen), logging.Error(err))
			return nil
		}
		m.logger.Debug("load failed", logging.Generation(gen), logging.Error(err))
		m.reporter.Report(ctx, err)
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if gen <= m.applied {
		m.logger.Debug("discarding superseded load", logging.Generation(gen))
		return nil
	}
	m.applied = gen
	m.source = cloneRecords(recs)
	m.page = 1
	m.derive()
	m.logger.Debug("loaded", logging.Generation(gen), logging.Count(len(recs)))
	return nil
}

// Mutate validates payload for kind, sends it to the server and reloads on
// success. A validation failure blocks the remote call. Every failure is
// reported and leaves local state unchanged.
func (m *Manager) Mutate(ctx context.Context, kind types.MutationKind, payload map[string]string) error {
	id, rec, err := m.validator.Validate(kind, payload)
	if err != nil {
		m.reporter.Report(ctx, err)
		return err
	}
	return m.Submit(ctx, kind, id, rec)
}

// Submit sends an already validated mutation to the server and reloads on
// success. id is ignored for create; rec is ignored for delete.
func (m *Manager) Submit(ctx context.Context, kind types.MutationKind, id int64, rec types.Record) error {
	var err error
	switch kind {
	case types.MutationCreate:
		err = m.coll.Create(ctx, rec)
	case types.MutationUpdate:
		err = m.coll.Update(ctx, id, rec)
	case types.MutationDelete:
		err = m.coll.Delete(ctx, id)
	default:
		err = fmt.Errorf("%w %q", types.ErrInvalidMutation, kind)
	}
	if err != nil {
		m.reporter.Report(ctx, err)
		return err
	}
	m.logger.Debug("mutation applied", logging.Operation(string(kind)), logging.RecordID(id))
	return m.Load(ctx)
}

// SetFilter sets the input of a filter key and resets the page to 1.
// Keys must name a filterable field.
func (m *Manager) SetFilter(key, value string) error {
	f, ok := m.schema.Field(key)
	if !ok || !f.Filterable {
		return fmt.Errorf("%w %q for %s filter (valid: %s)", types.ErrUnknownField, key, m.schema.Name,
			strings.Join(m.schema.FilterKeys(), ", "))
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.filters[key] = value
	m.page = 1
	m.derive()
	return nil
}

// SetSort applies the sort toggle for key. Any schema field can be sorted.
func (m *Manager) SetSort(key string) error {
	if _, ok := m.schema.Field(key); !ok {
		return fmt.Errorf("%w %q for %s (valid: %s)", types.ErrUnknownField, key, m.schema.Name,
			strings.Join(m.schema.Columns(), ", "))
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sort = NextSort(m.sort, key)
	m.derive()
	return nil
}

// SetPage selects the current page. Pages below 1 select page 1; pages past
// the end are allowed and show nothing.
func (m *Manager) SetPage(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.page = max(n, 1)
}

// Page returns the current 1-based page.
func (m *Manager) Page() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.page
}

// PageCount returns the number of pages in the current view.
func (m *Manager) PageCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return PageCount(len(m.view), m.pageSize)
}

// Visible returns the records of the current page.
func (m *Manager) Visible() []types.Record {
	m.mu.Lock()
	defer m.mu.Unlock()
	return cloneRecords(Paginate(m.view, m.page, m.pageSize))
}

// View returns a copy of the filtered and sorted view.
func (m *Manager) View() []types.Record {
	m.mu.Lock()
	defer m.mu.Unlock()
	return cloneRecords(m.view)
}

// Source returns a copy of the collection as last fetched.
func (m *Manager) Source() []types.Record {
	m.mu.Lock()
	defer m.mu.Unlock()
	return cloneRecords(m.source)
}

// Filters returns a copy of the filter inputs.
func (m *Manager) Filters() Filters {
	m.mu.Lock()
	defer m.mu.Unlock()
	return maps.Clone(m.filters)
}

// Sort returns the current sort state.
func (m *Manager) Sort() SortState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sort
}

// Find returns a copy of the source record with the given id.
func (m *Manager) Find(id int64) (types.Record, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, rec := range m.source {
		if rid, ok := rec.ID(); ok && rid == id {
			return rec.Clone(), true
		}
	}
	return nil, false
}

// DistinctCount returns the number of distinct non-empty values of field
// across the current view.
func (m *Manager) DistinctCount(field string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	seen := make(map[string]struct{})
	for _, rec := range m.view {
		s, ok := stringValue(rec[field])
		if !ok || strings.TrimSpace(s) == "" {
			continue
		}
		seen[s] = struct{}{}
	}
	return len(seen)
}

// derive recomputes the view from source, filters and sort. Callers hold mu.
func (m *Manager) derive() {
	m.view = ApplySort(ApplyFilters(m.schema, m.source, m.filters), m.sort)
}

func cloneRecords(recs []types.Record) []types.Record {
	out := make([]types.Record, len(recs))
	for i, r := range recs {
		out[i] = r.Clone()
	}
	return out
}
