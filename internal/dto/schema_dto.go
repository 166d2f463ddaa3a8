package dto

import "sql-workbench-be/pkg/rowset"

type ListTablesResponse struct {
	Message string   `json:"message"`
	Tables  []string `json:"tables"`
}

type TableColumn struct {
	ColumnName    string  `json:"column_name"`
	DataType      string  `json:"data_type"`
	IsNullable    string  `json:"is_nullable"`
	ColumnDefault *string `json:"column_default"`
}

type TableForeignKey struct {
	ColumnName        string `json:"column_name"`
	ForeignTableName  string `json:"foreign_table_name"`
	ForeignColumnName string `json:"foreign_column_name"`
}

type TableSchemaResponse struct {
	Message     string            `json:"message"`
	Table       string            `json:"table"`
	Columns     []TableColumn     `json:"columns"`
	PrimaryKeys []string          `json:"primaryKeys"`
	ForeignKeys []TableForeignKey `json:"foreignKeys"`
	SampleData  []rowset.Row      `json:"sampleData"`
}
