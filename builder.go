package sqltypes

// Builder provides a fluent API to construct a Registry with options and
// column types pre-registered in a single snapshot swap.
type Builder struct {
	opts      []Option
	global    []ColumnType
	byDialect map[string][]ColumnType
}

// NewBuilder creates a new builder.
func NewBuilder() *Builder {
	return &Builder{byDialect: make(map[string][]ColumnType)}
}

// WithOptions appends registry options to the builder.
func (b *Builder) WithOptions(opts ...Option) *Builder { b.opts = append(b.opts, opts...); return b }

// AddColumn queues a global column type registration.
func (b *Builder) AddColumn(ct ColumnType) *Builder {
	b.global = append(b.global, ct)
	return b
}

// AddColumnFor queues a dialect-scoped column type registration.
func (b *Builder) AddColumnFor(dialect string, ct ColumnType) *Builder {
	b.byDialect[dialect] = append(b.byDialect[dialect], ct)
	return b
}

// Build constructs the Registry. The first registration error wins and is
// returned here rather than panicking mid-chain.
func (b *Builder) Build() (*Registry, error) {
	r := NewRegistry(b.opts...)
	for _, ct := range b.global {
		if err := r.Register(ct); err != nil {
			return nil, err
		}
	}
	for dialect, cts := range b.byDialect {
		for _, ct := range cts {
			if err := r.RegisterFor(dialect, ct); err != nil {
				return nil, err
			}
		}
	}
	return r, nil
}
