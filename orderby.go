package fluentsql

import (
	"fmt"
	"strings"
)

type Direction int

const (
	Asc Direction = iota
	Desc
)

func (d Direction) String() string {
	if d == Desc {
		return "DESC"
	}
	return "ASC"
}

type OrderItem struct {
	Direction Direction
	Column    string
}

func (o OrderItem) String() string {
	return o.Column + " " + o.Direction.String()
}

type OrderList []OrderItem

func (l OrderList) String() string {
	if len(l) == 0 {
		return ""
	}
	parts := make([]string, 0, len(l))
	for _, o := range l {
		parts = append(parts, o.String())
	}
	return ClauseType_OrderBy + " " + strings.Join(parts, ", ")
}

// OrderBy always records an ascending order; direction is accepted for
// compatibility only. Anything other than "" or "ASC" is reported by Build.
func (b *QueryBuilder) OrderBy(column, direction string) *QueryBuilder {
	if d := strings.ToUpper(strings.TrimSpace(direction)); d != "" && d != "ASC" {
		b.log().Warnf("order by %s: direction %q ignored, ordering ascending", column, direction)
		b.violations = append(b.violations, fmt.Errorf("%w: %q on column %s", ErrDirectionIgnored, direction, column))
	}
	return b.Asc(column)
}

func (b *QueryBuilder) Asc(column string) *QueryBuilder {
	b.orders = append(b.orders, OrderItem{Direction: Asc, Column: column})
	return b
}

func (b *QueryBuilder) Desc(column string) *QueryBuilder {
	b.orders = append(b.orders, OrderItem{Direction: Desc, Column: column})
	return b
}
