package rest

import (
	"fmt"
	"strings"
)

// maxFieldLength caps every request string field, matching the limits the
// storefront widgets are built against
const maxFieldLength = 120

const configurationsTableType = "save_customer_configurations"

func validateField(name string, value string, required bool) error {
	if required && value == "" {
		return fmt.Errorf("%s is required", name)
	}
	if len(value) > maxFieldLength {
		return fmt.Errorf("%s must be at most %d characters", name, maxFieldLength)
	}
	return nil
}

// CreateStoreRequest represents the request body for creating a store
type CreateStoreRequest struct {
	StoreID   string `json:"storeId"`
	StoreName string `json:"storeName"`
}

// Validate trims and validates the request body
func (r *CreateStoreRequest) Validate() error {
	r.StoreID = strings.TrimSpace(r.StoreID)
	r.StoreName = strings.TrimSpace(r.StoreName)

	if err := validateField("storeId", r.StoreID, true); err != nil {
		return err
	}
	return validateField("storeName", r.StoreName, true)
}

// CreateDatatableRequest represents the request body for creating a
// per-store configurations datatable
type CreateDatatableRequest struct {
	StoreID string `json:"storeId"`
	Type    string `json:"type"`
}

// Validate trims and validates the request body
func (r *CreateDatatableRequest) Validate() error {
	r.StoreID = strings.TrimSpace(r.StoreID)
	r.Type = strings.TrimSpace(r.Type)

	if err := validateField("storeId", r.StoreID, true); err != nil {
		return err
	}
	if r.Type != configurationsTableType {
		return fmt.Errorf("type must be %q", configurationsTableType)
	}
	return nil
}

// ConfigurationData is the payload the storefront saves with a
// configuration. FormData is opaque to the backend.
type ConfigurationData struct {
	ProductHandle string                 `json:"product_handle"`
	FormData      map[string]interface{} `json:"form_data"`
}

// SaveConfigurationRequest represents the request body for saving a
// customer configuration
type SaveConfigurationRequest struct {
	StoreID    string            `json:"storeId"`
	Picture    string            `json:"picture,omitempty"`
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Data       ConfigurationData `json:"data"`
	CustomerID string            `json:"customerId"`
}

// Validate trims and validates the request body
func (r *SaveConfigurationRequest) Validate() error {
	r.StoreID = strings.TrimSpace(r.StoreID)
	r.ID = strings.TrimSpace(r.ID)
	r.Name = strings.TrimSpace(r.Name)
	r.CustomerID = strings.TrimSpace(r.CustomerID)
	r.Data.ProductHandle = strings.TrimSpace(r.Data.ProductHandle)

	if err := validateField("storeId", r.StoreID, true); err != nil {
		return err
	}
	if err := validateField("id", r.ID, true); err != nil {
		return err
	}
	if err := validateField("name", r.Name, true); err != nil {
		return err
	}
	if err := validateField("customerId", r.CustomerID, true); err != nil {
		return err
	}
	if err := validateField("data.product_handle", r.Data.ProductHandle, true); err != nil {
		return err
	}
	if r.Data.FormData == nil {
		return fmt.Errorf("data.form_data is required")
	}
	return nil
}
