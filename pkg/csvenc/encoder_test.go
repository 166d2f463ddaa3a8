package csvenc

import (
	"testing"

	"sql-workbench-be/pkg/rowset"

	"github.com/stretchr/testify/assert"
)

func TestEncode(t *testing.T) {
	rs := &rowset.RowSet{
		Columns: []string{"a", "b"},
		Rows: []rowset.Row{
			{"a": 1, "b": "x,y"},
			{"a": 2, "b": "z"},
		},
	}

	got := string(Encode(rs))

	assert.Equal(t, "a,b\n1,\"x,y\"\n2,z\n", got)
}

func TestEncodeEmptyRows(t *testing.T) {
	rs := rowset.New([]string{"id", "name"})

	got := string(Encode(rs))

	// header-only output, zero rows must not fail
	assert.Equal(t, "id,name\n", got)
}

func TestEncodeNilRowSet(t *testing.T) {
	assert.Equal(t, "", string(Encode(nil)))
}

func TestEncodeNullAndMissingValues(t *testing.T) {
	rs := &rowset.RowSet{
		Columns: []string{"a", "b", "c"},
		Rows: []rowset.Row{
			{"a": nil, "b": true},
		},
	}

	got := string(Encode(rs))

	assert.Equal(t, "a,b,c\n,true,\n", got)
}

func TestEncodePreservesColumnOrder(t *testing.T) {
	rs := &rowset.RowSet{
		Columns: []string{"z", "a", "m"},
		Rows: []rowset.Row{
			{"a": "2", "m": "3", "z": "1"},
		},
	}

	got := string(Encode(rs))

	assert.Equal(t, "z,a,m\n1,2,3\n", got)
}
