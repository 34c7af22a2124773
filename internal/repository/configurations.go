package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/craftcloud/configurator-api/internal/adapter"
	"github.com/craftcloud/configurator-api/internal/datatable"
	"github.com/craftcloud/configurator-api/internal/domain"
	"github.com/craftcloud/configurator-api/internal/providers/threekit"
)

// ThreekitConfigurationRepository implements ConfigurationRepository on the
// datatables API
type ThreekitConfigurationRepository struct {
	client  threekit.Client
	updater datatable.Updater
	clock   adapter.Clock
}

// NewConfigurationRepository creates a new configuration repository
func NewConfigurationRepository(client threekit.Client, updater datatable.Updater, clock adapter.Clock) ConfigurationRepository {
	return &ThreekitConfigurationRepository{
		client:  client,
		updater: updater,
		clock:   clock,
	}
}

// resolveConfigurationsTable walks store -> configurations table reference
// -> table. Every step is a fresh upstream read.
func (r *ThreekitConfigurationRepository) resolveConfigurationsTable(ctx context.Context, storeID string) (*threekit.Datatable, error) {
	store, err := resolveStoreRow(ctx, r.client, storeID)
	if err != nil {
		return nil, err
	}

	tableID := store.Value[domain.ColConfigurationsTableID]
	if tableID == "" {
		return nil, fmt.Errorf("store %q has no configurations datatable: %w", storeID, domain.ErrTableNotFound)
	}

	return r.client.GetDatatable(ctx, tableID)
}

// ListByCustomer returns the configurations whose customer id exactly equals customerID
func (r *ThreekitConfigurationRepository) ListByCustomer(ctx context.Context, storeID string, customerID string) ([]domain.CustomerConfiguration, error) {
	table, err := r.resolveConfigurationsTable(ctx, storeID)
	if err != nil {
		return nil, err
	}

	rowList, err := r.client.GetDatatableRows(ctx, table.ID)
	if err != nil {
		return nil, err
	}

	configurations := make([]domain.CustomerConfiguration, 0, len(rowList.Rows))
	for _, row := range rowList.Rows {
		if row.Value[domain.ColCustomerID] == customerID {
			configurations = append(configurations, domain.ConfigurationFromRow(row.Value))
		}
	}

	return configurations, nil
}

// Save appends a configuration row after the duplicate-name scan
func (r *ThreekitConfigurationRepository) Save(ctx context.Context, params SaveConfigurationParams) error {
	table, err := r.resolveConfigurationsTable(ctx, params.StoreID)
	if err != nil {
		return err
	}

	rowList, err := r.client.GetDatatableRows(ctx, table.ID)
	if err != nil {
		return err
	}

	// Names are unique per store, case-insensitively after trimming
	name := strings.TrimSpace(params.Name)
	normalized := domain.NormalizeKey(params.Name)
	for _, row := range rowList.Rows {
		if domain.NormalizeKey(row.Value[domain.ColConfigurationName]) == normalized {
			return fmt.Errorf("configuration %q: %w", name, domain.ErrConfigurationExists)
		}
	}

	configuration := domain.CustomerConfiguration{
		CustomerID:        params.CustomerID,
		ConfigurationID:   params.ConfigurationID,
		ConfigurationName: name,
		ConfigurationData: params.Data,
		CreatedAt:         r.clock.Now().UTC().Format(time.RFC3339),
		UpdatedAt:         domain.NullUpdatedAt,
		Picture:           params.Picture,
	}

	_, err = r.updater.Append(ctx, table.ID, table.Name, domain.TableTypeConfigurations, []map[string]string{configuration.RowValue()})
	return err
}

// FindByConfigurationID scans for a configuration id match
func (r *ThreekitConfigurationRepository) FindByConfigurationID(ctx context.Context, storeID string, configurationID string) (*domain.CustomerConfiguration, error) {
	table, err := r.resolveConfigurationsTable(ctx, storeID)
	if err != nil {
		return nil, err
	}

	rowList, err := r.client.GetDatatableRows(ctx, table.ID)
	if err != nil {
		return nil, err
	}

	normalized := domain.NormalizeKey(configurationID)
	for _, row := range rowList.Rows {
		if domain.NormalizeKey(row.Value[domain.ColConfigurationID]) == normalized {
			configuration := domain.ConfigurationFromRow(row.Value)
			return &configuration, nil
		}
	}

	return nil, fmt.Errorf("configuration %q: %w", configurationID, domain.ErrConfigurationNotFound)
}

// DeleteForCustomer removes the configuration after the ownership check
func (r *ThreekitConfigurationRepository) DeleteForCustomer(ctx context.Context, storeID string, configurationID string, customerID string) (*domain.CustomerConfiguration, error) {
	table, err := r.resolveConfigurationsTable(ctx, storeID)
	if err != nil {
		return nil, err
	}

	rowList, err := r.client.GetDatatableRows(ctx, table.ID)
	if err != nil {
		return nil, err
	}

	normalized := domain.NormalizeKey(configurationID)
	var target *threekit.Row
	for i := range rowList.Rows {
		if domain.NormalizeKey(rowList.Rows[i].Value[domain.ColConfigurationID]) == normalized {
			target = &rowList.Rows[i]
			break
		}
	}

	// A missing configuration and a foreign one are distinct failures: the
	// caller must not learn about other customers' rows through the
	// ownership error.
	if target == nil {
		return nil, fmt.Errorf("configuration %q: %w", configurationID, domain.ErrConfigurationNotFound)
	}
	if target.Value[domain.ColCustomerID] != customerID {
		return nil, fmt.Errorf("configuration %q: %w", configurationID, domain.ErrNotConfigurationOwner)
	}

	remaining := make([]map[string]string, 0, len(rowList.Rows))
	for _, row := range rowList.Rows {
		if domain.NormalizeKey(row.Value[domain.ColConfigurationID]) != normalized {
			remaining = append(remaining, row.Value)
		}
	}

	if _, err := r.updater.ReplaceAll(ctx, table.ID, table.Name, domain.TableTypeConfigurations, remaining); err != nil {
		return nil, err
	}

	deleted := domain.ConfigurationFromRow(target.Value)
	return &deleted, nil
}
