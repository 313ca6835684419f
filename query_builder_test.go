package fluentsql

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestTable(t *testing.T) {
	t.Run("fresh builder is empty", func(t *testing.T) {
		b := Table("users")
		assert.Equal(t, KindUnset, b.Kind())
		assert.Equal(t, "users", b.table)
		assert.Empty(t, b.columns)
		assert.Empty(t, b.joins)
		assert.Empty(t, b.wheres)
		assert.Empty(t, b.orders)
		assert.False(t, b.distinct)
		assert.Equal(t, WhereStyleKeyword, b.whereStyle)
	})
	t.Run("empty table name is accepted", func(t *testing.T) {
		b := Table("")
		assert.Equal(t, "", b.table)
	})
	t.Run("options are applied", func(t *testing.T) {
		b := Table("users", WithWhereStyle(WhereStyleGrouped))
		assert.Equal(t, WhereStyleGrouped, b.whereStyle)
	})
	t.Run("nil logger keeps the default", func(t *testing.T) {
		b := Table("users", WithLogger(nil))
		assert.NotNil(t, b.logger)
	})
}

func TestKind(t *testing.T) {
	t.Run("each marker sets its kind", func(t *testing.T) {
		assert.Equal(t, KindSelect, Table("t").Select().Kind())
		assert.Equal(t, KindInsert, Table("t").Insert().Kind())
		assert.Equal(t, KindUpdate, Table("t").Update().Kind())
		assert.Equal(t, KindDelete, Table("t").Delete().Kind())
	})
	t.Run("last write wins", func(t *testing.T) {
		b := Table("t").Select().Update()
		assert.Equal(t, KindUpdate, b.Kind())
		assert.Len(t, b.violations, 1)
		assert.ErrorIs(t, b.violations[0], ErrKindOverwritten)
	})
	t.Run("repeating the same kind is not a conflict", func(t *testing.T) {
		b := Table("t").Select().Select()
		assert.Equal(t, KindSelect, b.Kind())
		assert.Empty(t, b.violations)
	})
	t.Run("markers return the same builder", func(t *testing.T) {
		b := Table("t")
		assert.Same(t, b, b.Select())
		assert.Same(t, b, b.Column("a"))
		assert.Same(t, b, b.LeftJoin("x"))
		assert.Same(t, b, b.Eq("a", "b"))
		assert.Same(t, b, b.Asc("a"))
		assert.Same(t, b, b.Distinct(true))
	})
}

func TestColumns(t *testing.T) {
	t.Run("order and content are preserved", func(t *testing.T) {
		b := Table("t").Column("b").Column(" A ").Column("b")
		assert.Equal(t, ColumnList{"b", " A ", "b"}, b.columns)
		assert.Equal(t, "(b, A ,b)", b.columns.String())
	})
	t.Run("variadic columns", func(t *testing.T) {
		b := Table("t").Columns("a", "b").Column("c")
		assert.Equal(t, "(a,b,c)", b.columns.String())
	})
	t.Run("empty list renders nothing", func(t *testing.T) {
		assert.Equal(t, "", ColumnList{}.String())
	})
}

func TestJoins(t *testing.T) {
	b := Table("t").
		Join("a").
		LeftJoin("b").
		RightJoin("c").
		InnerJoin("d").
		FullJoin("e")
	assert.Equal(t, JoinList{
		{Kind: JoinPlain, Table: "a"},
		{Kind: JoinLeft, Table: "b"},
		{Kind: JoinRight, Table: "c"},
		{Kind: JoinInner, Table: "d"},
		{Kind: JoinFull, Table: "e"},
	}, b.joins)
	assert.Equal(t, "JOIN a LEFT JOIN b RIGHT JOIN c INNER JOIN d FULL JOIN e", b.joins.String())
}

func TestConditions(t *testing.T) {
	t.Run("helpers map to their operators", func(t *testing.T) {
		b := Table("t").
			Eq("a", "1").
			NotEq("b", "2").
			LessThan("c", "3").
			GreaterThan("d", "4").
			NotLess("e", "5").
			NotGreater("f", "6").
			GreaterOrEqual("g", "7").
			LessOrEqual("h", "8").
			Where("i", "LIKE", "%9")
		var ops []string
		for _, w := range b.wheres {
			ops = append(ops, w.Op)
			assert.Equal(t, And, w.Connector)
		}
		assert.Equal(t, []string{"=", "!=", "<", ">", ">=", "<=", ">=", "<=", "LIKE"}, ops)
	})
	t.Run("or where records the or connector", func(t *testing.T) {
		b := Table("t").Eq("a", "1").OrWhere("b", Eq, "2")
		assert.Equal(t, WhereList{
			{Connector: And, Left: "a", Op: "=", Right: "1"},
			{Connector: Or, Left: "b", Op: "=", Right: "2"},
		}, b.wheres)
	})
}

func TestOrders(t *testing.T) {
	t.Run("asc and desc", func(t *testing.T) {
		b := Table("t").Asc("a").Desc("b")
		assert.Equal(t, "ORDER BY a ASC, b DESC", b.orders.String())
	})
	t.Run("order by always records ascending", func(t *testing.T) {
		b := Table("t").OrderBy("a", "DESC").OrderBy("b", "asc").OrderBy("c", "")
		assert.Equal(t, OrderList{
			{Direction: Asc, Column: "a"},
			{Direction: Asc, Column: "b"},
			{Direction: Asc, Column: "c"},
		}, b.orders)
		assert.Len(t, b.violations, 1)
		assert.ErrorIs(t, b.violations[0], ErrDirectionIgnored)
	})
}

func TestClone(t *testing.T) {
	sameLogger := cmp.Comparer(func(x, y Logger) bool { return x == y })

	b := Table("users").
		Select().
		Columns("id", "name").
		LeftJoin("orders").
		Eq("users.id", "orders.uid").
		Desc("id").
		Set("name", "x").
		Values("1", "a")
	c := b.Clone()
	assert.Empty(t, cmp.Diff(b, c, cmp.AllowUnexported(QueryBuilder{}), sameLogger))

	c.Column("age").Eq("age", "3").Asc("name")
	c.values[0][0] = "2"
	assert.Equal(t, ColumnList{"id", "name"}, b.columns)
	assert.Len(t, b.wheres, 1)
	assert.Len(t, b.orders, 1)
	assert.Equal(t, "1", b.values[0][0])
	assert.NotEmpty(t, cmp.Diff(b, c, cmp.AllowUnexported(QueryBuilder{}), sameLogger))
}
