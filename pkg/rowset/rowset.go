package rowset

// Row maps column name to a scalar value (string, number, bool or nil)
// as produced by the database driver.
type Row map[string]interface{}

// RowSet is an ordered result set. Columns carries the driver's column
// order because Go maps do not preserve it; consumers that need a stable
// order (CSV export, table rendering) read Columns, everyone else reads
// the rows directly.
type RowSet struct {
	Columns []string `json:"columns"`
	Rows    []Row    `json:"rows"`
}

func New(columns []string) *RowSet {
	return &RowSet{
		Columns: columns,
		Rows:    make([]Row, 0),
	}
}

func (rs *RowSet) Append(row Row) {
	rs.Rows = append(rs.Rows, row)
}

func (rs *RowSet) Len() int {
	if rs == nil {
		return 0
	}
	return len(rs.Rows)
}
