package repository

import (
	"context"
	"fmt"

	"github.com/craftcloud/configurator-api/internal/domain"
	"github.com/craftcloud/configurator-api/internal/providers/threekit"
)

// StoreLookup bundles the matched store row with the full contents of the
// stores table, which is what the store detail endpoint responds with.
type StoreLookup struct {
	Info threekit.Row      `json:"info"`
	Data *threekit.RowList `json:"data"`
}

// StoreRepository manages tenant records in the singleton stores datatable
//
//go:generate mockgen -source=repository.go -destination=../mocks/repository.go -package=mocks
type StoreRepository interface {
	// FindByStoreID resolves the stores table and scans it for the store
	FindByStoreID(ctx context.Context, storeID string) (*StoreLookup, error)

	// Create registers a new store, creating the stores table on first use
	// and a dedicated configurations table for the store. Returns the
	// upstream response of the stores table rewrite.
	Create(ctx context.Context, storeID string, storeName string) (*threekit.Datatable, error)

	// Delete removes the store row and cascades to its configurations
	// table, which is deleted first.
	Delete(ctx context.Context, storeID string) error

	// CreateConfigurationsTable creates the per-store configurations
	// datatable without touching the stores table.
	CreateConfigurationsTable(ctx context.Context, storeID string) (*threekit.Datatable, error)
}

// SaveConfigurationParams carries one configuration to be saved.
// Data is the already-serialized configuration payload.
type SaveConfigurationParams struct {
	StoreID         string
	CustomerID      string
	ConfigurationID string
	Name            string
	Data            string
	Picture         string
}

// ConfigurationRepository manages saved configurations in the per-store
// configurations datatables
type ConfigurationRepository interface {
	// ListByCustomer returns the configurations whose customer id exactly
	// equals customerID
	ListByCustomer(ctx context.Context, storeID string, customerID string) ([]domain.CustomerConfiguration, error)

	// Save appends a configuration row, rejecting names that collide
	// case-insensitively after trimming with an existing configuration
	Save(ctx context.Context, params SaveConfigurationParams) error

	// FindByConfigurationID scans for a configuration id match,
	// case-insensitively after trimming
	FindByConfigurationID(ctx context.Context, storeID string, configurationID string) (*domain.CustomerConfiguration, error)

	// DeleteForCustomer removes the configuration after checking that it
	// belongs to the calling customer. A missing configuration and a
	// foreign one are distinct failures. Returns the deleted row.
	DeleteForCustomer(ctx context.Context, storeID string, configurationID string, customerID string) (*domain.CustomerConfiguration, error)
}

// resolveStoreRow locates the stores datatable and the row of one store.
// Shared by both repositories; every call re-reads the remote store, there
// is no cache.
func resolveStoreRow(ctx context.Context, client threekit.Client, storeID string) (*threekit.Row, error) {
	table, err := client.FindDatatableByName(ctx, domain.StoresTableName)
	if err != nil {
		return nil, err
	}

	rowList, err := client.GetDatatableRows(ctx, table.ID)
	if err != nil {
		return nil, err
	}

	for i := range rowList.Rows {
		if rowList.Rows[i].Value[domain.ColStoreID] == storeID {
			return &rowList.Rows[i], nil
		}
	}

	return nil, fmt.Errorf("store %q: %w", storeID, domain.ErrStoreNotFound)
}
