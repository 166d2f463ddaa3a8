package csvenc

import (
	"fmt"
	"strings"

	"sql-workbench-be/pkg/rowset"
)

// Encode serializes a result set as CSV. The header line follows the
// result set's column order; values containing a comma are wrapped in
// double quotes. Embedded quotes and newlines are not escaped further,
// so output is not full RFC 4180; the minimal quoting is part of the
// download format and encoding/csv would alter it.
func Encode(rs *rowset.RowSet) []byte {
	var b strings.Builder

	if rs == nil || len(rs.Columns) == 0 {
		return []byte{}
	}

	b.WriteString(strings.Join(rs.Columns, ","))
	b.WriteString("\n")

	for _, row := range rs.Rows {
		fields := make([]string, len(rs.Columns))
		for i, col := range rs.Columns {
			fields[i] = renderField(row[col])
		}
		b.WriteString(strings.Join(fields, ","))
		b.WriteString("\n")
	}

	return []byte(b.String())
}

func renderField(value interface{}) string {
	if value == nil {
		return ""
	}

	var s string
	switch v := value.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	default:
		s = fmt.Sprintf("%v", v)
	}

	if strings.Contains(s, ",") {
		return `"` + s + `"`
	}
	return s
}
