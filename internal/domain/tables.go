package domain

// TableType discriminates which column schema a datatable carries.
type TableType string

const (
	// TableTypeStore is the schema of the singleton stores table.
	TableTypeStore TableType = "store"
	// TableTypeConfigurations is the schema of the per-store customer
	// configurations tables.
	TableTypeConfigurations TableType = "customer_configurations"
)

const (
	// StoresTableName is the name of the singleton stores datatable.
	StoresTableName = "stores"
	// ConfigurationsTablePrefix prefixes the per-store configurations
	// datatable names.
	ConfigurationsTablePrefix = "customer_configurations_"
)

// ConfigurationsTableName returns the datatable name holding the saved
// configurations of one store.
func ConfigurationsTableName(storeID string) string {
	return ConfigurationsTablePrefix + storeID
}

// Stores table columns.
const (
	ColStoreID               = "store_id"
	ColStoreName             = "store_name"
	ColConfigurationsTableID = "customer_configurations_datatable_id"
	ColCreatedAt             = "created_at"
	ColUpdatedAt             = "updated_at"
)

// Customer configurations table columns.
const (
	ColCustomerID        = "customer_id"
	ColConfigurationID   = "configuration_id"
	ColConfigurationName = "configuration_name"
	ColConfigurationData = "configuration_data"
	ColPicture           = "picture"
)

// ColumnInfo describes one datatable column. The remote store only
// distinguishes column types nominally; everything here is a string.
type ColumnInfo struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

var storeColumns = []ColumnInfo{
	{Name: ColStoreID, Type: "String"},
	{Name: ColStoreName, Type: "String"},
	{Name: ColConfigurationsTableID, Type: "String"},
	{Name: ColCreatedAt, Type: "String"},
	{Name: ColUpdatedAt, Type: "String"},
}

var configurationColumns = []ColumnInfo{
	{Name: ColCustomerID, Type: "String"},
	{Name: ColConfigurationID, Type: "String"},
	{Name: ColConfigurationName, Type: "String"},
	{Name: ColConfigurationData, Type: "String"},
	{Name: ColCreatedAt, Type: "String"},
	{Name: ColUpdatedAt, Type: "String"},
	{Name: ColPicture, Type: "String"},
}

// Columns returns the ordered column schema for the table type, or nil for
// an unknown type. The order is also the CSV column order on upload.
func (t TableType) Columns() []ColumnInfo {
	switch t {
	case TableTypeStore:
		return storeColumns
	case TableTypeConfigurations:
		return configurationColumns
	default:
		return nil
	}
}

// ColumnNames returns just the names of Columns, in the same order.
func (t TableType) ColumnNames() []string {
	columns := t.Columns()
	if columns == nil {
		return nil
	}
	names := make([]string, len(columns))
	for i, column := range columns {
		names[i] = column.Name
	}
	return names
}
