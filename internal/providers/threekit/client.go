package threekit

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"mime/multipart"
	"net/textproto"

	"github.com/goccy/go-json"

	"github.com/craftcloud/configurator-api/internal/adapter"
	"github.com/craftcloud/configurator-api/internal/domain"
)

const PROVIDER_NAME = "threekit"

// Client defines the interface for datatable store operations to enable mocking
//
//go:generate mockgen -source=client.go -destination=../../mocks/threekit_client.go -package=mocks -mock_names=Client=MockThreekitClient
type Client interface {
	// ListDatatables fetches one page of the datatable listing. Pages start at 1.
	ListDatatables(ctx context.Context, page int) (*DatatableList, error)

	// FindDatatableByName scans the paged listing for a table with the
	// given name. This is a linear scan over all pages; it returns
	// domain.ErrTableNotFound when the pages are exhausted.
	FindDatatableByName(ctx context.Context, name string) (*Datatable, error)

	// GetDatatable fetches a datatable by its id
	GetDatatable(ctx context.Context, id string) (*Datatable, error)

	// GetDatatableRows fetches all rows of a datatable
	GetDatatableRows(ctx context.Context, id string) (*RowList, error)

	// CreateDatatable creates an empty datatable with the given column
	// schema, uploading a header-only CSV file
	CreateDatatable(ctx context.Context, name string, columns []domain.ColumnInfo) (*Datatable, error)

	// ReplaceDatatable replaces the whole contents of a datatable with the
	// given CSV file. The remote store has no row-level mutation; this is
	// the only write primitive besides create and delete.
	ReplaceDatatable(ctx context.Context, id string, name string, columns []domain.ColumnInfo, csvFile string) (*Datatable, error)

	// DeleteDatatable deletes a datatable by its id
	DeleteDatatable(ctx context.Context, id string) error
}

// ThreekitClient implements Client against the Threekit datatables API
type ThreekitClient struct {
	httpClient adapter.HTTPClient
	apiURL     string
	orgID      string
	token      string
	pageSize   int
}

// NewClient creates a new Threekit datatables client
func NewClient(httpClient adapter.HTTPClient, apiURL string, orgID string, token string, pageSize int) Client {
	return &ThreekitClient{
		httpClient: httpClient,
		apiURL:     apiURL,
		orgID:      orgID,
		token:      token,
		pageSize:   pageSize,
	}
}

func (c *ThreekitClient) authHeaders() map[string]string {
	return map[string]string{
		"Authorization": "Bearer " + c.token,
	}
}

// ListDatatables fetches one page of the datatable listing
func (c *ThreekitClient) ListDatatables(ctx context.Context, page int) (*DatatableList, error) {
	url := fmt.Sprintf("%s/datatables?org_id=%s&resultsPerPage=%d&page=%d", c.apiURL, c.orgID, c.pageSize, page)

	respBody, err := c.httpClient.Get(ctx, url, c.authHeaders())
	if err != nil {
		return nil, fmt.Errorf("failed to list datatables: %w", err)
	}

	var list DatatableList
	if err := json.Unmarshal(respBody, &list); err != nil {
		return nil, fmt.Errorf("failed to unmarshal datatable listing: %w", err)
	}

	return &list, nil
}

// FindDatatableByName scans the paged listing for a table with the given name
func (c *ThreekitClient) FindDatatableByName(ctx context.Context, name string) (*Datatable, error) {
	page := 1
	for {
		list, err := c.ListDatatables(ctx, page)
		if err != nil {
			return nil, err
		}

		for i := range list.Datatables {
			if list.Datatables[i].Name == name {
				return &list.Datatables[i], nil
			}
		}

		// An empty page also ends the scan, in case the reported count is stale.
		if page*c.pageSize >= list.Count || len(list.Datatables) == 0 {
			return nil, fmt.Errorf("datatable %q: %w", name, domain.ErrTableNotFound)
		}
		page++
	}
}

// GetDatatable fetches a datatable by its id
func (c *ThreekitClient) GetDatatable(ctx context.Context, id string) (*Datatable, error) {
	url := fmt.Sprintf("%s/datatables/%s?org_id=%s", c.apiURL, id, c.orgID)

	respBody, err := c.httpClient.Get(ctx, url, c.authHeaders())
	if err != nil {
		return nil, fmt.Errorf("failed to get datatable %s: %w", id, err)
	}

	var table Datatable
	if err := json.Unmarshal(respBody, &table); err != nil {
		return nil, fmt.Errorf("failed to unmarshal datatable: %w", err)
	}

	return &table, nil
}

// GetDatatableRows fetches all rows of a datatable
func (c *ThreekitClient) GetDatatableRows(ctx context.Context, id string) (*RowList, error) {
	url := fmt.Sprintf("%s/datatables/%s/rows?org_id=%s&all=true", c.apiURL, id, c.orgID)

	respBody, err := c.httpClient.Get(ctx, url, c.authHeaders())
	if err != nil {
		return nil, fmt.Errorf("failed to get datatable rows: %w", err)
	}

	var rows RowList
	if err := json.Unmarshal(respBody, &rows); err != nil {
		return nil, fmt.Errorf("failed to unmarshal datatable rows: %w", err)
	}

	return &rows, nil
}

// CreateDatatable creates an empty datatable with the given column schema
func (c *ThreekitClient) CreateDatatable(ctx context.Context, name string, columns []domain.ColumnInfo) (*Datatable, error) {
	header := make([]string, len(columns))
	for i, column := range columns {
		header[i] = column.Name
	}

	var file bytes.Buffer
	w := csv.NewWriter(&file)
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}

	body, contentType, err := buildUploadForm(name, columns, file.String())
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/datatables?org_id=%s", c.apiURL, c.orgID)
	respBody, err := c.httpClient.Post(ctx, url, contentType, body, c.authHeaders())
	if err != nil {
		return nil, fmt.Errorf("failed to create datatable %q: %w", name, err)
	}

	var table Datatable
	if err := json.Unmarshal(respBody, &table); err != nil {
		return nil, fmt.Errorf("failed to unmarshal created datatable: %w", err)
	}

	return &table, nil
}

// ReplaceDatatable replaces the whole contents of a datatable with the given CSV file
func (c *ThreekitClient) ReplaceDatatable(ctx context.Context, id string, name string, columns []domain.ColumnInfo, csvFile string) (*Datatable, error) {
	body, contentType, err := buildUploadForm(name, columns, csvFile)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/datatables/%s?org_id=%s", c.apiURL, id, c.orgID)
	respBody, err := c.httpClient.Put(ctx, url, contentType, body, c.authHeaders())
	if err != nil {
		return nil, fmt.Errorf("failed to replace datatable %s: %w", id, err)
	}

	var table Datatable
	if err := json.Unmarshal(respBody, &table); err != nil {
		return nil, fmt.Errorf("failed to unmarshal replaced datatable: %w", err)
	}

	return &table, nil
}

// DeleteDatatable deletes a datatable by its id
func (c *ThreekitClient) DeleteDatatable(ctx context.Context, id string) error {
	url := fmt.Sprintf("%s/datatables/%s?org_id=%s", c.apiURL, id, c.orgID)

	if _, err := c.httpClient.Delete(ctx, url, c.authHeaders()); err != nil {
		return fmt.Errorf("failed to delete datatable %s: %w", id, err)
	}

	return nil
}

// buildUploadForm assembles the multipart form the datatables API expects:
// the table name, the column schema as JSON, and the contents as a CSV file.
func buildUploadForm(name string, columns []domain.ColumnInfo, csvFile string) (*bytes.Buffer, string, error) {
	columnInfo, err := json.Marshal(columns)
	if err != nil {
		return nil, "", fmt.Errorf("failed to marshal column info: %w", err)
	}

	var body bytes.Buffer
	form := multipart.NewWriter(&body)

	if err := form.WriteField("name", name); err != nil {
		return nil, "", fmt.Errorf("failed to build upload form: %w", err)
	}
	if err := form.WriteField("columnInfo", string(columnInfo)); err != nil {
		return nil, "", fmt.Errorf("failed to build upload form: %w", err)
	}

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s.csv"`, name))
	header.Set("Content-Type", "text/csv")
	part, err := form.CreatePart(header)
	if err != nil {
		return nil, "", fmt.Errorf("failed to build upload form: %w", err)
	}
	if _, err := part.Write([]byte(csvFile)); err != nil {
		return nil, "", fmt.Errorf("failed to build upload form: %w", err)
	}

	if err := form.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to build upload form: %w", err)
	}

	return &body, form.FormDataContentType(), nil
}
