package repository_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/craftcloud/configurator-api/internal/domain"
	"github.com/craftcloud/configurator-api/internal/mocks"
	"github.com/craftcloud/configurator-api/internal/providers/threekit"
	"github.com/craftcloud/configurator-api/internal/repository"
)

type storeRepoMocks struct {
	ctrl    *gomock.Controller
	client  *mocks.MockThreekitClient
	updater *mocks.MockUpdater
	clock   *mocks.MockClock
}

func setupStoreRepo(t *testing.T) (*storeRepoMocks, repository.StoreRepository) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := &storeRepoMocks{
		ctrl:    ctrl,
		client:  mocks.NewMockThreekitClient(ctrl),
		updater: mocks.NewMockUpdater(ctrl),
		clock:   mocks.NewMockClock(ctrl),
	}
	return m, repository.NewStoreRepository(m.client, m.updater, m.clock)
}

func storesTable() *threekit.Datatable {
	return &threekit.Datatable{ID: "stores-table", Name: domain.StoresTableName, Version: 1}
}

func storeRow(storeID, configurationsTableID string) threekit.Row {
	return threekit.Row{
		ID: "row-" + storeID,
		Value: map[string]string{
			domain.ColStoreID:               storeID,
			domain.ColStoreName:             "Store " + storeID,
			domain.ColConfigurationsTableID: configurationsTableID,
			domain.ColCreatedAt:             "2025-01-01T00:00:00Z",
			domain.ColUpdatedAt:             domain.NullUpdatedAt,
		},
	}
}

func TestStoreRepository_FindByStoreID(t *testing.T) {
	m, repo := setupStoreRepo(t)
	ctx := context.Background()

	rowList := &threekit.RowList{
		Count: 2,
		Rows:  []threekit.Row{storeRow("s1", "cfg-1"), storeRow("s2", "cfg-2")},
	}

	m.client.EXPECT().FindDatatableByName(ctx, domain.StoresTableName).Return(storesTable(), nil)
	m.client.EXPECT().GetDatatableRows(ctx, "stores-table").Return(rowList, nil)

	lookup, err := repo.FindByStoreID(ctx, "s2")
	require.NoError(t, err)
	assert.Equal(t, "row-s2", lookup.Info.ID)
	assert.Equal(t, rowList, lookup.Data)
}

func TestStoreRepository_FindByStoreID_NotFound(t *testing.T) {
	m, repo := setupStoreRepo(t)
	ctx := context.Background()

	m.client.EXPECT().FindDatatableByName(ctx, domain.StoresTableName).Return(storesTable(), nil)
	m.client.EXPECT().GetDatatableRows(ctx, "stores-table").Return(&threekit.RowList{}, nil)

	_, err := repo.FindByStoreID(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrStoreNotFound)
}

func TestStoreRepository_Create(t *testing.T) {
	m, repo := setupStoreRepo(t)
	ctx := context.Background()
	now := time.Date(2025, 3, 4, 5, 6, 7, 0, time.UTC)

	m.client.EXPECT().FindDatatableByName(ctx, domain.StoresTableName).Return(storesTable(), nil)
	m.client.EXPECT().GetDatatableRows(ctx, "stores-table").
		Return(&threekit.RowList{Rows: []threekit.Row{storeRow("other", "cfg-other")}}, nil)
	m.client.EXPECT().
		CreateDatatable(ctx, "customer_configurations_s1", domain.TableTypeConfigurations.Columns()).
		Return(&threekit.Datatable{ID: "cfg-1", Name: "customer_configurations_s1"}, nil)
	m.clock.EXPECT().Now().Return(now)
	m.updater.EXPECT().
		Append(ctx, "stores-table", domain.StoresTableName, domain.TableTypeStore, []map[string]string{{
			domain.ColStoreID:               "s1",
			domain.ColStoreName:             "Shop One",
			domain.ColConfigurationsTableID: "cfg-1",
			domain.ColCreatedAt:             "2025-03-04T05:06:07Z",
			domain.ColUpdatedAt:             domain.NullUpdatedAt,
		}}).
		Return(&threekit.Datatable{ID: "stores-table", Version: 2}, nil)

	result, err := repo.Create(ctx, "s1", "Shop One")
	require.NoError(t, err)
	assert.Equal(t, 2, result.Version)
}

func TestStoreRepository_Create_BootstrapsStoresTable(t *testing.T) {
	m, repo := setupStoreRepo(t)
	ctx := context.Background()

	m.client.EXPECT().FindDatatableByName(ctx, domain.StoresTableName).
		Return(nil, fmt.Errorf("datatable %q: %w", domain.StoresTableName, domain.ErrTableNotFound))
	m.client.EXPECT().
		CreateDatatable(ctx, domain.StoresTableName, domain.TableTypeStore.Columns()).
		Return(storesTable(), nil)
	m.client.EXPECT().GetDatatableRows(ctx, "stores-table").Return(&threekit.RowList{}, nil)
	m.client.EXPECT().
		CreateDatatable(ctx, "customer_configurations_s1", domain.TableTypeConfigurations.Columns()).
		Return(&threekit.Datatable{ID: "cfg-1"}, nil)
	m.clock.EXPECT().Now().Return(time.Date(2025, 3, 4, 5, 6, 7, 0, time.UTC))
	m.updater.EXPECT().
		Append(ctx, "stores-table", domain.StoresTableName, domain.TableTypeStore, gomock.Any()).
		Return(&threekit.Datatable{ID: "stores-table", Version: 1}, nil)

	_, err := repo.Create(ctx, "s1", "Shop One")
	assert.NoError(t, err)
}

func TestStoreRepository_Create_DuplicateStoreID(t *testing.T) {
	m, repo := setupStoreRepo(t)
	ctx := context.Background()

	m.client.EXPECT().FindDatatableByName(ctx, domain.StoresTableName).Return(storesTable(), nil)
	m.client.EXPECT().GetDatatableRows(ctx, "stores-table").
		Return(&threekit.RowList{Rows: []threekit.Row{storeRow("s1", "cfg-1")}}, nil)

	// Neither a configurations table nor a row append may happen.
	_, err := repo.Create(ctx, "s1", "Shop One")
	assert.ErrorIs(t, err, domain.ErrStoreExists)
}

func TestStoreRepository_Delete_CascadesConfigurationsTableFirst(t *testing.T) {
	m, repo := setupStoreRepo(t)
	ctx := context.Background()

	keep := storeRow("s2", "cfg-2")

	gomock.InOrder(
		m.client.EXPECT().FindDatatableByName(ctx, domain.StoresTableName).Return(storesTable(), nil),
		m.client.EXPECT().GetDatatableRows(ctx, "stores-table").
			Return(&threekit.RowList{Rows: []threekit.Row{storeRow("s1", "cfg-1"), keep}}, nil),
		m.client.EXPECT().DeleteDatatable(ctx, "cfg-1").Return(nil),
		m.updater.EXPECT().
			ReplaceAll(ctx, "stores-table", domain.StoresTableName, domain.TableTypeStore,
				[]map[string]string{keep.Value}).
			Return(&threekit.Datatable{ID: "stores-table", Version: 2}, nil),
	)

	assert.NoError(t, repo.Delete(ctx, "s1"))
}

func TestStoreRepository_Delete_NotFound(t *testing.T) {
	m, repo := setupStoreRepo(t)
	ctx := context.Background()

	m.client.EXPECT().FindDatatableByName(ctx, domain.StoresTableName).Return(storesTable(), nil)
	m.client.EXPECT().GetDatatableRows(ctx, "stores-table").
		Return(&threekit.RowList{Rows: []threekit.Row{storeRow("s2", "cfg-2")}}, nil)

	err := repo.Delete(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrStoreNotFound)
}

func TestStoreRepository_Delete_MissingConfigurationsTableReference(t *testing.T) {
	m, repo := setupStoreRepo(t)
	ctx := context.Background()

	// A row without a configurations table reference skips the cascade.
	orphan := storeRow("s1", "")

	m.client.EXPECT().FindDatatableByName(ctx, domain.StoresTableName).Return(storesTable(), nil)
	m.client.EXPECT().GetDatatableRows(ctx, "stores-table").
		Return(&threekit.RowList{Rows: []threekit.Row{orphan}}, nil)
	m.updater.EXPECT().
		ReplaceAll(ctx, "stores-table", domain.StoresTableName, domain.TableTypeStore, []map[string]string{}).
		Return(&threekit.Datatable{ID: "stores-table"}, nil)

	assert.NoError(t, repo.Delete(ctx, "s1"))
}

func TestStoreRepository_CreateConfigurationsTable(t *testing.T) {
	m, repo := setupStoreRepo(t)
	ctx := context.Background()

	m.client.EXPECT().
		CreateDatatable(ctx, "customer_configurations_s9", domain.TableTypeConfigurations.Columns()).
		Return(&threekit.Datatable{ID: "cfg-9", Name: "customer_configurations_s9"}, nil)

	table, err := repo.CreateConfigurationsTable(ctx, "s9")
	require.NoError(t, err)
	assert.Equal(t, "cfg-9", table.ID)
}
