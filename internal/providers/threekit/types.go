package threekit

import "github.com/goccy/go-json"

// Datatable is the upstream representation of a named table. ColumnInfo is
// kept raw because the upstream API returns it either as a JSON array or
// as a serialized string depending on the endpoint.
type Datatable struct {
	ID         string          `json:"id"`
	OrgID      string          `json:"orgId"`
	Name       string          `json:"name"`
	Version    int             `json:"version"`
	ColumnInfo json.RawMessage `json:"columnInfo,omitempty"`
	CreatedBy  string          `json:"createdBy,omitempty"`
	UpdatedBy  string          `json:"updatedBy,omitempty"`
	CreatedAt  string          `json:"createdAt,omitempty"`
	UpdatedAt  string          `json:"updatedAt,omitempty"`
}

// DatatableList is one page of the datatable listing.
type DatatableList struct {
	Count      int         `json:"count"`
	Datatables []Datatable `json:"datatables"`
}

// Row is one record of a datatable. Value maps column names to string
// values; the id, version and creation timestamp are assigned upstream.
type Row struct {
	ID        string            `json:"id"`
	OrgID     string            `json:"orgId"`
	TableID   string            `json:"tableId"`
	Value     map[string]string `json:"value"`
	Version   int               `json:"version"`
	CreatedAt string            `json:"createdAt"`
}

// RowList is the full row set of a datatable.
type RowList struct {
	Count int    `json:"count"`
	Sort  string `json:"sort"`
	Rows  []Row  `json:"rows"`
}
