package datatable_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/craftcloud/configurator-api/internal/datatable"
	"github.com/craftcloud/configurator-api/internal/domain"
)

func TestEncodeCSV(t *testing.T) {
	columns := []domain.ColumnInfo{
		{Name: "a", Type: "String"},
		{Name: "b", Type: "String"},
	}

	t.Run("header only for empty row set", func(t *testing.T) {
		file, err := datatable.EncodeCSV(columns, nil)
		assert.NoError(t, err)
		assert.Equal(t, "a,b\n", file)
	})

	t.Run("values follow column order", func(t *testing.T) {
		file, err := datatable.EncodeCSV(columns, []map[string]string{
			{"b": "2", "a": "1"},
			{"a": "3", "b": "4"},
		})
		assert.NoError(t, err)
		assert.Equal(t, "a,b\n1,2\n3,4\n", file)
	})

	t.Run("missing columns become empty cells", func(t *testing.T) {
		file, err := datatable.EncodeCSV(columns, []map[string]string{
			{"a": "only"},
		})
		assert.NoError(t, err)
		assert.Equal(t, "a,b\nonly,\n", file)
	})

	t.Run("values with commas and quotes are escaped", func(t *testing.T) {
		file, err := datatable.EncodeCSV(columns, []map[string]string{
			{"a": `{"k":"v"}`, "b": "x,y"},
		})
		assert.NoError(t, err)
		assert.Equal(t, "a,b\n\"{\"\"k\"\":\"\"v\"\"}\",\"x,y\"\n", file)
	})
}
