package fluentsql

import "strings"

type JoinKind int

const (
	JoinPlain JoinKind = iota
	JoinLeft
	JoinRight
	JoinInner
	JoinFull
)

func (k JoinKind) String() string {
	switch k {
	case JoinLeft:
		return ClauseType_LeftJoin
	case JoinRight:
		return ClauseType_RightJoin
	case JoinInner:
		return ClauseType_InnerJoin
	case JoinFull:
		return ClauseType_FullJoin
	default:
		return ClauseType_Join
	}
}

type JoinItem struct {
	Kind  JoinKind
	Table string
}

func (j JoinItem) String() string {
	return j.Kind.String() + " " + j.Table
}

type JoinList []JoinItem

func (l JoinList) String() string {
	parts := make([]string, 0, len(l))
	for _, j := range l {
		parts = append(parts, j.String())
	}
	return strings.Join(parts, " ")
}

func (b *QueryBuilder) join(kind JoinKind, table string) *QueryBuilder {
	b.joins = append(b.joins, JoinItem{Kind: kind, Table: table})
	return b
}

func (b *QueryBuilder) Join(table string) *QueryBuilder {
	return b.join(JoinPlain, table)
}

func (b *QueryBuilder) LeftJoin(table string) *QueryBuilder {
	return b.join(JoinLeft, table)
}

func (b *QueryBuilder) RightJoin(table string) *QueryBuilder {
	return b.join(JoinRight, table)
}

func (b *QueryBuilder) InnerJoin(table string) *QueryBuilder {
	return b.join(JoinInner, table)
}

func (b *QueryBuilder) FullJoin(table string) *QueryBuilder {
	return b.join(JoinFull, table)
}
