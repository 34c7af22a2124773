package datatable

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/craftcloud/configurator-api/internal/domain"
)

// EncodeCSV serializes rows into the CSV file format the datatables API
// expects: a header of column names followed by one record per row, values
// ordered by the column schema. Missing columns become empty cells.
func EncodeCSV(columns []domain.ColumnInfo, rows []map[string]string) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := make([]string, len(columns))
	for i, column := range columns {
		header[i] = column.Name
	}
	if err := w.Write(header); err != nil {
		return "", fmt.Errorf("failed to encode CSV header: %w", err)
	}

	record := make([]string, len(columns))
	for _, row := range rows {
		for i, column := range columns {
			record[i] = row[column.Name]
		}
		if err := w.Write(record); err != nil {
			return "", fmt.Errorf("failed to encode CSV row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to encode CSV: %w", err)
	}

	return buf.String(), nil
}
