package domain

import "strings"

// NullUpdatedAt is written to updated_at on every insert. There is no
// in-place update path, so the column never holds a real timestamp.
const NullUpdatedAt = "null"

// Store is a tenant record in the stores datatable. Each store owns one
// dedicated customer configurations datatable.
type Store struct {
	StoreID               string `json:"store_id"`
	StoreName             string `json:"store_name"`
	ConfigurationsTableID string `json:"customer_configurations_datatable_id"`
	CreatedAt             string `json:"created_at"`
	UpdatedAt             string `json:"updated_at"`
}

// StoreFromRow maps a datatable row value onto a Store.
func StoreFromRow(value map[string]string) Store {
	return Store{
		StoreID:               value[ColStoreID],
		StoreName:             value[ColStoreName],
		ConfigurationsTableID: value[ColConfigurationsTableID],
		CreatedAt:             value[ColCreatedAt],
		UpdatedAt:             value[ColUpdatedAt],
	}
}

// RowValue maps the Store onto a datatable row value.
func (s Store) RowValue() map[string]string {
	return map[string]string{
		ColStoreID:               s.StoreID,
		ColStoreName:             s.StoreName,
		ColConfigurationsTableID: s.ConfigurationsTableID,
		ColCreatedAt:             s.CreatedAt,
		ColUpdatedAt:             s.UpdatedAt,
	}
}

// CustomerConfiguration is a saved product configuration scoped to one
// store and one customer. ConfigurationData is an opaque serialized
// payload; the backend never interprets it.
type CustomerConfiguration struct {
	CustomerID        string `json:"customer_id"`
	ConfigurationID   string `json:"configuration_id"`
	ConfigurationName string `json:"configuration_name"`
	ConfigurationData string `json:"configuration_data"`
	CreatedAt         string `json:"created_at"`
	UpdatedAt         string `json:"updated_at"`
	Picture           string `json:"picture,omitempty"`
}

// ConfigurationFromRow maps a datatable row value onto a CustomerConfiguration.
func ConfigurationFromRow(value map[string]string) CustomerConfiguration {
	return CustomerConfiguration{
		CustomerID:        value[ColCustomerID],
		ConfigurationID:   value[ColConfigurationID],
		ConfigurationName: value[ColConfigurationName],
		ConfigurationData: value[ColConfigurationData],
		CreatedAt:         value[ColCreatedAt],
		UpdatedAt:         value[ColUpdatedAt],
		Picture:           value[ColPicture],
	}
}

// RowValue maps the CustomerConfiguration onto a datatable row value.
func (c CustomerConfiguration) RowValue() map[string]string {
	return map[string]string{
		ColCustomerID:        c.CustomerID,
		ColConfigurationID:   c.ConfigurationID,
		ColConfigurationName: c.ConfigurationName,
		ColConfigurationData: c.ConfigurationData,
		ColCreatedAt:         c.CreatedAt,
		ColUpdatedAt:         c.UpdatedAt,
		ColPicture:           c.Picture,
	}
}

// NormalizeKey trims and lowercases an identifier for the
// case-insensitive comparisons used on configuration names and ids.
func NormalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
