package fluentsql

import (
	"fmt"

	"github.com/jedib0t/go-pretty/table"
)

// Schematic draws the accumulated state of the builder as a table, one row
// per column, join, condition and ordering in the order they were added.
func (b *QueryBuilder) Schematic() string {
	w := table.NewWriter()
	w.AppendHeader(table.Row{"Clause", "Kind", "Value"})
	if b.distinct {
		w.AppendRow(table.Row{ClauseType_Select, ClauseType_Distinct, ""})
	}
	for _, c := range b.columns {
		w.AppendRow(table.Row{"COLUMN", "", c})
	}
	for _, j := range b.joins {
		w.AppendRow(table.Row{ClauseType_Join, j.Kind, j.Table})
	}
	for i, cond := range b.wheres {
		conn := ""
		if i > 0 {
			conn = cond.Connector.String()
		}
		w.AppendRow(table.Row{ClauseType_Where, conn, fmt.Sprintf("%s %s %s", cond.Left, cond.Op, cond.Right)})
	}
	for _, a := range b.assignments {
		w.AppendRow(table.Row{ClauseType_Set, "", fmt.Sprintf("%s = %s", a.Column, a.Value)})
	}
	for _, row := range b.values {
		w.AppendRow(table.Row{ClauseType_Values, "", fmt.Sprint(row)})
	}
	for _, o := range b.orders {
		w.AppendRow(table.Row{ClauseType_OrderBy, o.Direction, o.Column})
	}
	return fmt.Sprintf("%s %s\n%s", b.kind, b.table, w.Render())
}
