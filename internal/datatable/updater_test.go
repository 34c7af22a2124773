package datatable_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/craftcloud/configurator-api/internal/datatable"
	"github.com/craftcloud/configurator-api/internal/domain"
	"github.com/craftcloud/configurator-api/internal/mocks"
	"github.com/craftcloud/configurator-api/internal/providers/threekit"
)

type updaterMocks struct {
	ctrl   *gomock.Controller
	client *mocks.MockThreekitClient
}

func setupUpdater(t *testing.T) (*updaterMocks, datatable.Updater) {
	ctrl := gomock.NewController(t)
	m := &updaterMocks{
		ctrl:   ctrl,
		client: mocks.NewMockThreekitClient(ctrl),
	}
	return m, datatable.NewUpdater(m.client)
}

func TestUpdater_Append_UnknownTableType(t *testing.T) {
	m, updater := setupUpdater(t)
	defer m.ctrl.Finish()

	// No client expectations: the schema check fails before any call.
	_, err := updater.Append(context.Background(), "t1", "stores", domain.TableType("bogus"), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidTableType)
}

func TestUpdater_Append_PrependsNewRows(t *testing.T) {
	m, updater := setupUpdater(t)
	defer m.ctrl.Finish()

	ctx := context.Background()
	table := &threekit.Datatable{ID: "t1", Name: "stores", Version: 3}

	existing := &threekit.RowList{
		Count: 1,
		Rows: []threekit.Row{
			{Value: map[string]string{
				domain.ColStoreID:               "old",
				domain.ColStoreName:             "Old Store",
				domain.ColConfigurationsTableID: "cfg-old",
				domain.ColCreatedAt:             "2025-01-01T00:00:00Z",
				domain.ColUpdatedAt:             "null",
			}},
		},
	}

	newRow := map[string]string{
		domain.ColStoreID:               "new",
		domain.ColStoreName:             "New Store",
		domain.ColConfigurationsTableID: "cfg-new",
		domain.ColCreatedAt:             "2025-02-01T00:00:00Z",
		domain.ColUpdatedAt:             "null",
	}

	expectedCSV := "store_id,store_name,customer_configurations_datatable_id,created_at,updated_at\n" +
		"new,New Store,cfg-new,2025-02-01T00:00:00Z,null\n" +
		"old,Old Store,cfg-old,2025-01-01T00:00:00Z,null\n"

	gomock.InOrder(
		m.client.EXPECT().GetDatatable(ctx, "t1").Return(table, nil),
		m.client.EXPECT().GetDatatableRows(ctx, "t1").Return(existing, nil),
		m.client.EXPECT().GetDatatable(ctx, "t1").Return(table, nil),
		m.client.EXPECT().
			ReplaceDatatable(ctx, "t1", "stores", domain.TableTypeStore.Columns(), expectedCSV).
			Return(&threekit.Datatable{ID: "t1", Name: "stores", Version: 4}, nil),
	)

	result, err := updater.Append(ctx, "t1", "stores", domain.TableTypeStore, []map[string]string{newRow})
	assert.NoError(t, err)
	assert.Equal(t, 4, result.Version)
}

func TestUpdater_Append_VersionConflict(t *testing.T) {
	m, updater := setupUpdater(t)
	defer m.ctrl.Finish()

	ctx := context.Background()

	gomock.InOrder(
		m.client.EXPECT().GetDatatable(ctx, "t1").
			Return(&threekit.Datatable{ID: "t1", Name: "stores", Version: 3}, nil),
		m.client.EXPECT().GetDatatableRows(ctx, "t1").
			Return(&threekit.RowList{}, nil),
		m.client.EXPECT().GetDatatable(ctx, "t1").
			Return(&threekit.Datatable{ID: "t1", Name: "stores", Version: 4}, nil),
	)

	_, err := updater.Append(ctx, "t1", "stores", domain.TableTypeStore, []map[string]string{
		{domain.ColStoreID: "new"},
	})
	assert.ErrorIs(t, err, domain.ErrConcurrentUpdate)
}

func TestUpdater_Append_RowFetchFailure(t *testing.T) {
	m, updater := setupUpdater(t)
	defer m.ctrl.Finish()

	ctx := context.Background()
	fetchErr := errors.New("upstream unavailable")

	gomock.InOrder(
		m.client.EXPECT().GetDatatable(ctx, "t1").
			Return(&threekit.Datatable{ID: "t1", Name: "stores", Version: 1}, nil),
		m.client.EXPECT().GetDatatableRows(ctx, "t1").Return(nil, fetchErr),
	)

	_, err := updater.Append(ctx, "t1", "stores", domain.TableTypeStore, nil)
	assert.ErrorIs(t, err, fetchErr)
}

func TestUpdater_ReplaceAll_UploadsExactSet(t *testing.T) {
	m, updater := setupUpdater(t)
	defer m.ctrl.Finish()

	ctx := context.Background()

	rows := []map[string]string{
		{domain.ColStoreID: "s1", domain.ColStoreName: "One"},
		{domain.ColStoreID: "s2", domain.ColStoreName: "Two"},
	}
	expectedCSV := "store_id,store_name,customer_configurations_datatable_id,created_at,updated_at\n" +
		"s1,One,,,\n" +
		"s2,Two,,,\n"

	// No fetch happens: the caller owns the complete desired contents.
	m.client.EXPECT().
		ReplaceDatatable(ctx, "t1", "stores", domain.TableTypeStore.Columns(), expectedCSV).
		Return(&threekit.Datatable{ID: "t1", Name: "stores", Version: 2}, nil)

	result, err := updater.ReplaceAll(ctx, "t1", "stores", domain.TableTypeStore, rows)
	assert.NoError(t, err)
	assert.Equal(t, "t1", result.ID)
}

func TestUpdater_ReplaceAll_UnknownTableType(t *testing.T) {
	m, updater := setupUpdater(t)
	defer m.ctrl.Finish()

	_, err := updater.ReplaceAll(context.Background(), "t1", "stores", domain.TableType(""), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidTableType)
}
