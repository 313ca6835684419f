package fluentsql

// QueryKind selects the statement template ToSql renders.
type QueryKind int

const (
	KindUnset QueryKind = iota
	KindSelect
	KindInsert
	KindUpdate
	KindDelete
)

const (
	ClauseType_Select    = "SELECT"
	ClauseType_Distinct  = "DISTINCT"
	ClauseType_From      = "FROM"
	ClauseType_Insert    = "INSERT INTO"
	ClauseType_Values    = "VALUES"
	ClauseType_Update    = "UPDATE"
	ClauseType_Set       = "SET"
	ClauseType_Delete    = "DELETE FROM"
	ClauseType_Where     = "WHERE"
	ClauseType_OrderBy   = "ORDER BY"
	ClauseType_Join      = "JOIN"
	ClauseType_LeftJoin  = "LEFT JOIN"
	ClauseType_RightJoin = "RIGHT JOIN"
	ClauseType_InnerJoin = "INNER JOIN"
	ClauseType_FullJoin  = "FULL JOIN"
)

func (k QueryKind) String() string {
	switch k {
	case KindSelect:
		return "SELECT"
	case KindInsert:
		return "INSERT"
	case KindUpdate:
		return "UPDATE"
	case KindDelete:
		return "DELETE"
	default:
		return "UNSET"
	}
}
