package fluentsql

import "fmt"

// QueryBuilder accumulates one statement. Every mutator appends or sets in
// place and returns the same builder; ToSql reads it without changing it.
//
// A builder is not safe for concurrent mutation. Clone it to share a base query.
type QueryBuilder struct {
	kind        QueryKind
	table       string
	columns     ColumnList
	joins       JoinList
	wheres      WhereList
	orders      OrderList
	distinct    bool
	assignments []Assignment
	values      [][]string

	whereStyle WhereStyle
	logger     Logger
	violations []error
}

// Assignment is one `column = value` pair of an UPDATE's SET clause.
type Assignment struct {
	Column string
	Value  string
}

type Option func(*QueryBuilder)

// WithWhereStyle picks how conditions render. The style also decides whether
// SET and VALUES literals are quoted.
func WithWhereStyle(s WhereStyle) Option {
	return func(b *QueryBuilder) {
		b.whereStyle = s
	}
}

func WithLogger(l Logger) Option {
	return func(b *QueryBuilder) {
		if l != nil {
			b.logger = l
		}
	}
}

// Table starts a builder for the given table. The name is used verbatim.
func Table(name string, opts ...Option) *QueryBuilder {
	b := &QueryBuilder{
		kind:   KindUnset,
		table:  name,
		logger: nopLogger(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *QueryBuilder) setKind(k QueryKind) *QueryBuilder {
	if b.kind != KindUnset && b.kind != k {
		b.log().Warnf("query on %s switched from %s to %s", b.table, b.kind, k)
		b.violations = append(b.violations, fmt.Errorf("%w: %s replaced by %s", ErrKindOverwritten, b.kind, k))
	}
	b.kind = k
	return b
}

func (b *QueryBuilder) Select() *QueryBuilder {
	return b.setKind(KindSelect)
}

func (b *QueryBuilder) Insert() *QueryBuilder {
	return b.setKind(KindInsert)
}

func (b *QueryBuilder) Update() *QueryBuilder {
	return b.setKind(KindUpdate)
}

func (b *QueryBuilder) Delete() *QueryBuilder {
	return b.setKind(KindDelete)
}

func (b *QueryBuilder) Kind() QueryKind {
	return b.kind
}

func (b *QueryBuilder) Distinct(flag bool) *QueryBuilder {
	b.distinct = flag
	return b
}

// Set adds an assignment to the SET clause of an UPDATE.
func (b *QueryBuilder) Set(column, value string) *QueryBuilder {
	b.assignments = append(b.assignments, Assignment{Column: column, Value: value})
	return b
}

// Values adds one row to the VALUES clause of an INSERT.
func (b *QueryBuilder) Values(values ...string) *QueryBuilder {
	row := make([]string, len(values))
	copy(row, values)
	b.values = append(b.values, row)
	return b
}

// Clone returns a deep copy sharing no slices with b.
func (b *QueryBuilder) Clone() *QueryBuilder {
	c := *b
	c.columns = append(ColumnList(nil), b.columns...)
	c.joins = append(JoinList(nil), b.joins...)
	c.wheres = append(WhereList(nil), b.wheres...)
	c.orders = append(OrderList(nil), b.orders...)
	c.assignments = append([]Assignment(nil), b.assignments...)
	c.violations = append([]error(nil), b.violations...)
	c.values = nil
	for _, row := range b.values {
		c.values = append(c.values, append([]string(nil), row...))
	}
	return &c
}
