package fluentsql

import "testing"

func BenchmarkToSql(b *testing.B) {
	q := Table("users").
		Select().
		Columns("id", "name", "email").
		LeftJoin("orders").
		InnerJoin("addresses").
		Eq("users.id", "orders.uid").
		GreaterThan("orders.total", "100").
		OrWhere("users.vip", Eq, "1").
		Desc("users.created_at")

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = q.ToSql()
	}
}

func BenchmarkChain(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Table("users").Select().Column("name").Eq("id", "1").Asc("name").ToSql()
	}
}
