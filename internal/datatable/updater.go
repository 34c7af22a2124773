package datatable

import (
	"context"
	"fmt"

	"github.com/craftcloud/configurator-api/internal/domain"
	"github.com/craftcloud/configurator-api/internal/providers/threekit"
)

// Updater emulates row-level mutation on top of a table store that only
// supports whole-file replacement. Both operations rewrite the complete
// table; concurrent writers race and the last PUT wins.
//
//go:generate mockgen -source=updater.go -destination=../mocks/updater.go -package=mocks -mock_names=Updater=MockUpdater
type Updater interface {
	// Append fetches the current rows, puts the new rows ahead of them and
	// rewrites the whole table. The table version is read before the row
	// fetch and checked again right before the upload; a changed version
	// aborts with domain.ErrConcurrentUpdate. The window between the check
	// and the PUT is still last-write-wins.
	Append(ctx context.Context, tableID string, tableName string, tableType domain.TableType, rows []map[string]string) (*threekit.Datatable, error)

	// ReplaceAll rewrites the table with exactly the supplied row set. No
	// fetch is performed; the caller owns the complete desired contents.
	ReplaceAll(ctx context.Context, tableID string, tableName string, tableType domain.TableType, rows []map[string]string) (*threekit.Datatable, error)
}

// TableUpdater implements Updater on the Threekit datatables client
type TableUpdater struct {
	client threekit.Client
}

// NewUpdater creates a new table update emulator
func NewUpdater(client threekit.Client) Updater {
	return &TableUpdater{client: client}
}

// Append fetches the current rows, prepends the new ones and rewrites the table
func (u *TableUpdater) Append(ctx context.Context, tableID string, tableName string, tableType domain.TableType, rows []map[string]string) (*threekit.Datatable, error) {
	columns := tableType.Columns()
	if columns == nil {
		return nil, fmt.Errorf("table type %q: %w", tableType, domain.ErrInvalidTableType)
	}

	table, err := u.client.GetDatatable(ctx, tableID)
	if err != nil {
		return nil, err
	}

	rowList, err := u.client.GetDatatableRows(ctx, tableID)
	if err != nil {
		return nil, err
	}

	merged := make([]map[string]string, 0, len(rows)+len(rowList.Rows))
	merged = append(merged, rows...)
	for _, row := range rowList.Rows {
		merged = append(merged, row.Value)
	}

	file, err := EncodeCSV(columns, merged)
	if err != nil {
		return nil, err
	}

	// Version guard: reject the rewrite if someone replaced the table while
	// we were merging. The race between this read and the PUT remains open.
	current, err := u.client.GetDatatable(ctx, tableID)
	if err != nil {
		return nil, err
	}
	if current.Version != table.Version {
		return nil, fmt.Errorf("datatable %s version changed from %d to %d: %w",
			tableID, table.Version, current.Version, domain.ErrConcurrentUpdate)
	}

	return u.client.ReplaceDatatable(ctx, tableID, tableName, columns, file)
}

// ReplaceAll rewrites the table with exactly the supplied row set
func (u *TableUpdater) ReplaceAll(ctx context.Context, tableID string, tableName string, tableType domain.TableType, rows []map[string]string) (*threekit.Datatable, error) {
	columns := tableType.Columns()
	if columns == nil {
		return nil, fmt.Errorf("table type %q: %w", tableType, domain.ErrInvalidTableType)
	}

	file, err := EncodeCSV(columns, rows)
	if err != nil {
		return nil, err
	}

	return u.client.ReplaceDatatable(ctx, tableID, tableName, columns, file)
}
