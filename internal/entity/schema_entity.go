package entity

// ColumnDescriptor mirrors one information_schema.columns row.
type ColumnDescriptor struct {
	ColumnName    string
	DataType      string
	IsNullable    string
	ColumnDefault *string
}

// ForeignKeyEdge is one foreign-key constraint: source column pointing at
// a target table/column.
type ForeignKeyEdge struct {
	ColumnName        string
	ForeignTableName  string
	ForeignColumnName string
}
