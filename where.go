package fluentsql

import (
	"fmt"
	"strings"
)

const (
	Eq = "="
	NE = "!="
	LT = "<"
	GT = ">"
	LE = "<="
	GE = ">="
)

// Connector joins a condition to the one before it.
type Connector int

const (
	And Connector = iota
	Or
)

func (c Connector) String() string {
	if c == Or {
		return "OR"
	}
	return "AND"
}

// WhereStyle picks how conditions are written out.
type WhereStyle int

const (
	// WhereStyleKeyword renders `WHERE a = 'x' AND b = 'y'`.
	WhereStyleKeyword WhereStyle = iota
	// WhereStyleGrouped renders `(a = x),(b = y)` with no keyword and no quoting.
	WhereStyleGrouped
)

// literal writes a right hand side value. Values are never escaped.
func (s WhereStyle) literal(v string) string {
	if s == WhereStyleGrouped {
		return v
	}
	return "'" + v + "'"
}

type WhereCond struct {
	Connector Connector
	Left      string
	Op        string
	Right     string
}

func (w WhereCond) render(style WhereStyle) string {
	if style == WhereStyleGrouped {
		return fmt.Sprintf("(%s %s %s)", w.Left, w.Op, w.Right)
	}
	return fmt.Sprintf("%s %s %s", w.Left, w.Op, style.literal(w.Right))
}

type WhereList []WhereCond

func (l WhereList) render(style WhereStyle) string {
	if len(l) == 0 {
		return ""
	}
	if style == WhereStyleGrouped {
		groups := make([]string, 0, len(l))
		for _, w := range l {
			groups = append(groups, w.render(style))
		}
		return strings.Join(groups, ",")
	}
	parts := []string{ClauseType_Where}
	for i, w := range l {
		if i > 0 {
			parts = append(parts, w.Connector.String())
		}
		parts = append(parts, w.render(style))
	}
	return strings.Join(parts, " ")
}

func (b *QueryBuilder) cond(conn Connector, left, op, right string) *QueryBuilder {
	b.wheres = append(b.wheres, WhereCond{Connector: conn, Left: left, Op: op, Right: right})
	return b
}

// Where adds `left op right`, joined to the previous condition with AND.
func (b *QueryBuilder) Where(left, op, right string) *QueryBuilder {
	return b.cond(And, left, op, right)
}

// OrWhere adds `left op right`, joined to the previous condition with OR.
// WhereStyleGrouped has no connectors, so there the condition renders like
// any other group and Build reports ErrConnectorIgnored.
func (b *QueryBuilder) OrWhere(left, op, right string) *QueryBuilder {
	if b.whereStyle == WhereStyleGrouped {
		b.log().Warnf("or where %s %s %s: grouped style has no connectors", left, op, right)
		b.violations = append(b.violations, fmt.Errorf("%w: OR before %s %s %s", ErrConnectorIgnored, left, op, right))
	}
	return b.cond(Or, left, op, right)
}

func (b *QueryBuilder) Eq(left, right string) *QueryBuilder {
	return b.Where(left, Eq, right)
}

func (b *QueryBuilder) NotEq(left, right string) *QueryBuilder {
	return b.Where(left, NE, right)
}

func (b *QueryBuilder) LessThan(left, right string) *QueryBuilder {
	return b.Where(left, LT, right)
}

func (b *QueryBuilder) GreaterThan(left, right string) *QueryBuilder {
	return b.Where(left, GT, right)
}

// NotLess adds `left >= right`.
func (b *QueryBuilder) NotLess(left, right string) *QueryBuilder {
	return b.Where(left, GE, right)
}

// NotGreater adds `left <= right`.
func (b *QueryBuilder) NotGreater(left, right string) *QueryBuilder {
	return b.Where(left, LE, right)
}

func (b *QueryBuilder) GreaterOrEqual(left, right string) *QueryBuilder {
	return b.NotLess(left, right)
}

func (b *QueryBuilder) LessOrEqual(left, right string) *QueryBuilder {
	return b.NotGreater(left, right)
}
