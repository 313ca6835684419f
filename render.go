package fluentsql

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrKindUnset        = errors.New("query kind is not set")
	ErrKindOverwritten  = errors.New("query kind set more than once")
	ErrDirectionIgnored = errors.New("order by direction ignored")
	ErrConnectorIgnored = errors.New("condition connector ignored")
	ErrNoAssignments    = errors.New("update has no assignments")
	ErrNoValues         = errors.New("insert has no values")
)

// ToSql renders the statement. An unset kind renders as the empty string.
// Empty fragments are dropped, so a query without conditions has no WHERE.
func (b *QueryBuilder) ToSql() string {
	var sections []string
	switch b.kind {
	case KindSelect:
		sections = append(sections, ClauseType_Select)
		if b.distinct {
			sections = append(sections, ClauseType_Distinct)
		}
		sections = append(sections,
			b.columns.String(),
			ClauseType_From, b.table,
			b.joins.String(),
			b.wheres.render(b.whereStyle),
			b.orders.String(),
		)
	case KindUpdate:
		sections = append(sections,
			ClauseType_Update, b.table,
			ClauseType_Set, b.assignmentsString(),
			b.wheres.render(b.whereStyle),
		)
	case KindInsert:
		sections = append(sections,
			ClauseType_Insert, b.table,
			b.columns.String(),
			ClauseType_Values, b.valuesString(),
		)
	case KindDelete:
		sections = append(sections,
			ClauseType_Delete, b.table,
			b.wheres.render(b.whereStyle),
		)
	default:
		return ""
	}

	sql := joinSections(sections) + ";"
	b.log().Debugf("rendered %s: %s", b.kind, sql)
	return sql
}

// Build renders like ToSql but refuses statements that ToSql would render
// incomplete, as well as builders that were given contradictory configuration.
func (b *QueryBuilder) Build() (string, error) {
	if b.kind == KindUnset {
		return "", fmt.Errorf("%w: table %s", ErrKindUnset, b.table)
	}
	if len(b.violations) > 0 {
		return "", errors.Join(b.violations...)
	}
	switch b.kind {
	case KindUpdate:
		if len(b.assignments) == 0 {
			return "", fmt.Errorf("%w: table %s", ErrNoAssignments, b.table)
		}
	case KindInsert:
		if len(b.values) == 0 {
			return "", fmt.Errorf("%w: table %s", ErrNoValues, b.table)
		}
	}
	return b.ToSql(), nil
}

func (b *QueryBuilder) assignmentsString() string {
	parts := make([]string, 0, len(b.assignments))
	for _, a := range b.assignments {
		parts = append(parts, fmt.Sprintf("%s = %s", a.Column, b.whereStyle.literal(a.Value)))
	}
	return strings.Join(parts, ", ")
}

func (b *QueryBuilder) valuesString() string {
	rows := make([]string, 0, len(b.values))
	for _, row := range b.values {
		literals := make([]string, 0, len(row))
		for _, v := range row {
			literals = append(literals, b.whereStyle.literal(v))
		}
		rows = append(rows, "("+strings.Join(literals, ",")+")")
	}
	return strings.Join(rows, ",")
}

func joinSections(sections []string) string {
	kept := make([]string, 0, len(sections))
	for _, s := range sections {
		if s != "" {
			kept = append(kept, s)
		}
	}
	return strings.Join(kept, " ")
}
