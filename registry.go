package sqltypes

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync/atomic"
)

// ColumnType describes a registered column adapter: a registration name, the
// DDL fragment to use in schema definitions and, optionally, the Go adapter
// type it maps to. Generic adapters register with a nil GoType.
type ColumnType struct {
	Name    string
	SQLType string
	GoType  reflect.Type
}

// Options control registry behavior.
type Options struct {
	CaseInsensitiveLookup bool // when true, names are matched case-insensitively
	AllowOverride         bool // when true, re-registering a name replaces the previous entry
}

type Option func(*Options)

func WithCaseInsensitiveLookup(v bool) Option {
	return func(o *Options) { o.CaseInsensitiveLookup = v }
}
func WithAllowOverride(v bool) Option { return func(o *Options) { o.AllowOverride = v } }

// registrySnapshot stores column types at two scopes and is swapped atomically
// (copy-on-write): registration happens at init time, lookups happen on every
// schema render, so reads must not take locks.
type registrySnapshot struct {
	global    map[string]ColumnType
	byDialect map[string]map[string]ColumnType
	byGoType  map[reflect.Type]string
}

func (s *registrySnapshot) clone() *registrySnapshot {
	out := &registrySnapshot{
		global:    make(map[string]ColumnType, len(s.global)+1),
		byDialect: make(map[string]map[string]ColumnType, len(s.byDialect)),
		byGoType:  make(map[reflect.Type]string, len(s.byGoType)+1),
	}
	for k, v := range s.global {
		out.global[k] = v
	}
	for d, m := range s.byDialect {
		sub := make(map[string]ColumnType, len(m))
		for k, v := range m {
			sub[k] = v
		}
		out.byDialect[d] = sub
	}
	for k, v := range s.byGoType {
		out.byGoType[k] = v
	}
	return out
}

// Registry is a catalog of column type registrations, scoped globally or per
// SQL dialect. Dialect lookups fall back to the global scope.
type Registry struct {
	snap    atomic.Value // holds *registrySnapshot
	options Options
}

// NewRegistry creates a Registry with the provided options.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{}
	for _, f := range opts {
		f(&r.options)
	}
	r.snap.Store(&registrySnapshot{
		global:    make(map[string]ColumnType),
		byDialect: make(map[string]map[string]ColumnType),
		byGoType:  make(map[reflect.Type]string),
	})
	return r
}

func (r *Registry) key(name string) string {
	if r.options.CaseInsensitiveLookup {
		return strings.ToLower(name)
	}
	return name
}

// Register adds a column type at global scope.
func (r *Registry) Register(ct ColumnType) error {
	if ct.Name == "" {
		return fmt.Errorf("sqltypes: column type must have a name")
	}
	old := r.snap.Load().(*registrySnapshot)
	key := r.key(ct.Name)
	if _, dup := old.global[key]; dup && !r.options.AllowOverride {
		return fmt.Errorf("sqltypes: column type %q already registered", ct.Name)
	}
	next := old.clone()
	next.global[key] = ct
	if ct.GoType != nil {
		next.byGoType[ct.GoType] = key
	}
	r.snap.Store(next)
	return nil
}

// RegisterFor adds a column type scoped to a dialect, e.g. a Postgres-only
// DDL fragment for a name that also has a portable global entry.
func (r *Registry) RegisterFor(dialect string, ct ColumnType) error {
	if ct.Name == "" {
		return fmt.Errorf("sqltypes: column type must have a name")
	}
	if dialect == "" {
		return r.Register(ct)
	}
	old := r.snap.Load().(*registrySnapshot)
	key := r.key(ct.Name)
	if m, ok := old.byDialect[dialect]; ok {
		if _, dup := m[key]; dup && !r.options.AllowOverride {
			return fmt.Errorf("sqltypes: column type %q already registered for dialect %q", ct.Name, dialect)
		}
	}
	next := old.clone()
	m := next.byDialect[dialect]
	if m == nil {
		m = make(map[string]ColumnType)
		next.byDialect[dialect] = m
	}
	m[key] = ct
	if ct.GoType != nil {
		next.byGoType[ct.GoType] = key
	}
	r.snap.Store(next)
	return nil
}

// Lookup returns the global registration for name.
func (r *Registry) Lookup(name string) (ColumnType, bool) {
	snap := r.snap.Load().(*registrySnapshot)
	ct, ok := snap.global[r.key(name)]
	return ct, ok
}

// LookupFor returns the registration for name under the given dialect,
// falling back to the global scope.
func (r *Registry) LookupFor(dialect, name string) (ColumnType, bool) {
	snap := r.snap.Load().(*registrySnapshot)
	key := r.key(name)
	if m, ok := snap.byDialect[dialect]; ok {
		if ct, ok := m[key]; ok {
			return ct, true
		}
	}
	ct, ok := snap.global[key]
	return ct, ok
}

// LookupGoType returns the registration for a concrete adapter Go type,
// searching the global scope first and then the dialect scopes.
func (r *Registry) LookupGoType(t reflect.Type) (ColumnType, bool) {
	snap := r.snap.Load().(*registrySnapshot)
	key, ok := snap.byGoType[t]
	if !ok {
		return ColumnType{}, false
	}
	if ct, ok := snap.global[key]; ok {
		return ct, true
	}
	for _, m := range snap.byDialect {
		if ct, ok := m[key]; ok && ct.GoType == t {
			return ct, true
		}
	}
	return ColumnType{}, false
}

// DDL returns the SQL type fragment for name under the given dialect.
func (r *Registry) DDL(dialect, name string) (string, bool) {
	ct, ok := r.LookupFor(dialect, name)
	if !ok {
		return "", false
	}
	return ct.SQLType, true
}

// Names returns the sorted global registration names.
func (r *Registry) Names() []string {
	snap := r.snap.Load().(*registrySnapshot)
	names := make([]string, 0, len(snap.global))
	for _, ct := range snap.global {
		names = append(names, ct.Name)
	}
	sort.Strings(names)
	return names
}

// defaultRegistry backs the package-level registration functions used by the
// columns subpackages at init time.
var defaultRegistry = NewRegistry(WithCaseInsensitiveLookup(true))

// DefaultRegistry returns the process-wide registry.
func DefaultRegistry() *Registry { return defaultRegistry }

// RegisterColumn adds a column type to the process-wide registry.
func RegisterColumn(ct ColumnType) error { return defaultRegistry.Register(ct) }

// RegisterColumnFor adds a dialect-scoped column type to the process-wide
// registry.
func RegisterColumnFor(dialect string, ct ColumnType) error {
	return defaultRegistry.RegisterFor(dialect, ct)
}

// MustRegisterColumn is RegisterColumn for init-time use; it panics on error.
func MustRegisterColumn(ct ColumnType) {
	if err := RegisterColumn(ct); err != nil {
		panic(err)
	}
}

// MustRegisterColumnFor is RegisterColumnFor for init-time use.
func MustRegisterColumnFor(dialect string, ct ColumnType) {
	if err := RegisterColumnFor(dialect, ct); err != nil {
		panic(err)
	}
}

// LookupColumn returns the global registration for name from the
// process-wide registry.
func LookupColumn(name string) (ColumnType, bool) { return defaultRegistry.Lookup(name) }

// LookupColumnFor returns the dialect-scoped registration for name from the
// process-wide registry.
func LookupColumnFor(dialect, name string) (ColumnType, bool) {
	return defaultRegistry.LookupFor(dialect, name)
}

// ColumnDDL returns the SQL type fragment for name under dialect from the
// process-wide registry.
func ColumnDDL(dialect, name string) (string, bool) { return defaultRegistry.DDL(dialect, name) }
