package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/craftcloud/configurator-api/internal/adapter"
	"github.com/craftcloud/configurator-api/internal/datatable"
	"github.com/craftcloud/configurator-api/internal/domain"
	"github.com/craftcloud/configurator-api/internal/providers/threekit"
)

// ThreekitStoreRepository implements StoreRepository on the datatables API
type ThreekitStoreRepository struct {
	client  threekit.Client
	updater datatable.Updater
	clock   adapter.Clock
}

// NewStoreRepository creates a new store repository
func NewStoreRepository(client threekit.Client, updater datatable.Updater, clock adapter.Clock) StoreRepository {
	return &ThreekitStoreRepository{
		client:  client,
		updater: updater,
		clock:   clock,
	}
}

// FindByStoreID resolves the stores table and scans it for the store
func (r *ThreekitStoreRepository) FindByStoreID(ctx context.Context, storeID string) (*StoreLookup, error) {
	table, err := r.client.FindDatatableByName(ctx, domain.StoresTableName)
	if err != nil {
		return nil, err
	}

	rowList, err := r.client.GetDatatableRows(ctx, table.ID)
	if err != nil {
		return nil, err
	}

	for i := range rowList.Rows {
		if rowList.Rows[i].Value[domain.ColStoreID] == storeID {
			return &StoreLookup{Info: rowList.Rows[i], Data: rowList}, nil
		}
	}

	return nil, fmt.Errorf("store %q: %w", storeID, domain.ErrStoreNotFound)
}

// Create registers a new store
func (r *ThreekitStoreRepository) Create(ctx context.Context, storeID string, storeName string) (*threekit.Datatable, error) {
	// Resolve the stores table, creating it on first use
	table, err := r.client.FindDatatableByName(ctx, domain.StoresTableName)
	if errors.Is(err, domain.ErrTableNotFound) {
		table, err = r.client.CreateDatatable(ctx, domain.StoresTableName, domain.TableTypeStore.Columns())
	}
	if err != nil {
		return nil, err
	}

	// Uniqueness is enforced here, not by the table store: scan the
	// current rows before writing
	rowList, err := r.client.GetDatatableRows(ctx, table.ID)
	if err != nil {
		return nil, err
	}
	for _, row := range rowList.Rows {
		if row.Value[domain.ColStoreID] == storeID {
			return nil, fmt.Errorf("store %q: %w", storeID, domain.ErrStoreExists)
		}
	}

	// Create the dedicated configurations table before referencing it
	configurationsTable, err := r.CreateConfigurationsTable(ctx, storeID)
	if err != nil {
		return nil, err
	}

	store := domain.Store{
		StoreID:               storeID,
		StoreName:             storeName,
		ConfigurationsTableID: configurationsTable.ID,
		CreatedAt:             r.clock.Now().UTC().Format(time.RFC3339),
		UpdatedAt:             domain.NullUpdatedAt,
	}

	return r.updater.Append(ctx, table.ID, table.Name, domain.TableTypeStore, []map[string]string{store.RowValue()})
}

// Delete removes the store row, cascading to its configurations table first
func (r *ThreekitStoreRepository) Delete(ctx context.Context, storeID string) error {
	table, err := r.client.FindDatatableByName(ctx, domain.StoresTableName)
	if err != nil {
		return err
	}

	rowList, err := r.client.GetDatatableRows(ctx, table.ID)
	if err != nil {
		return err
	}

	var store *threekit.Row
	for i := range rowList.Rows {
		if rowList.Rows[i].Value[domain.ColStoreID] == storeID {
			store = &rowList.Rows[i]
			break
		}
	}
	if store == nil {
		return fmt.Errorf("store %q: %w", storeID, domain.ErrStoreNotFound)
	}

	// Cascade: the configurations table goes first so a failed rewrite
	// cannot orphan it
	if configurationsTableID := store.Value[domain.ColConfigurationsTableID]; configurationsTableID != "" {
		if err := r.client.DeleteDatatable(ctx, configurationsTableID); err != nil {
			return err
		}
	}

	remaining := make([]map[string]string, 0, len(rowList.Rows))
	for _, row := range rowList.Rows {
		if row.Value[domain.ColStoreID] != storeID {
			remaining = append(remaining, row.Value)
		}
	}

	_, err = r.updater.ReplaceAll(ctx, table.ID, table.Name, domain.TableTypeStore, remaining)
	return err
}

// CreateConfigurationsTable creates the per-store configurations datatable
func (r *ThreekitStoreRepository) CreateConfigurationsTable(ctx context.Context, storeID string) (*threekit.Datatable, error) {
	return r.client.CreateDatatable(ctx, domain.ConfigurationsTableName(storeID), domain.TableTypeConfigurations.Columns())
}
