package gcp

import (
	"context"
	"encoding/csv"
	"fmt"
	"sort"
	"strings"

	json "github.com/goccy/go-json"
)

// ResourceListFormat is the closed set of list-resources output formats.
type ResourceListFormat string

const (
	ResourceFormatTabular ResourceListFormat = "tabular"
	ResourceFormatJSON    ResourceListFormat = "json"
	ResourceFormatCSV     ResourceListFormat = "csv"
)

// ParseResourceListFormat validates a --format flag value.
func ParseResourceListFormat(value string) (ResourceListFormat, error) {
	switch ResourceListFormat(value) {
	case ResourceFormatTabular, ResourceFormatJSON, ResourceFormatCSV:
		return ResourceListFormat(value), nil
	default:
		return "", fmt.Errorf("unknown resource list format %q (expected tabular, json or csv)", value)
	}
}

// ResourceRow is one rendered listing row: the owning project's resolved ID
// and the resource's short name.
type ResourceRow struct {
	ProjectID    string `json:"project_id"`
	ResourceName string `json:"resource_name"`
}

// BuildResourceRows resolves every record's owning project number through the
// shared cache and returns rows sorted by project ID, then resource name. A
// failed resolution falls back to the raw number; it never aborts the listing.
func BuildResourceRows(ctx context.Context, records []ResourceRecord, cache *ProjectIDCache) []ResourceRow {
	rows := make([]ResourceRow, 0, len(records))
	for _, record := range records {
		rows = append(rows, ResourceRow{
			ProjectID:    cache.Resolve(ctx, record.OwnerProjectNumber),
			ResourceName: record.DisplayName,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].ProjectID != rows[j].ProjectID {
			return rows[i].ProjectID < rows[j].ProjectID
		}
		return rows[i].ResourceName < rows[j].ResourceName
	})
	return rows
}

// RenderResourceRows produces one textual representation of the listing.
func RenderResourceRows(rows []ResourceRow, format ResourceListFormat) (string, error) {
	switch format {
	case ResourceFormatTabular:
		return renderResourceTable(rows), nil
	case ResourceFormatJSON:
		return renderResourceJSON(rows)
	case ResourceFormatCSV:
		return renderResourceCSV(rows)
	default:
		return "", fmt.Errorf("unknown resource list format %q", format)
	}
}

func renderResourceTable(rows []ResourceRow) string {
	body := make([][]string, 0, len(rows))
	for _, row := range rows {
		body = append(body, []string{row.ProjectID, row.ResourceName})
	}
	return renderFixedWidth([]string{"Project ID", "Resource Name"}, body)
}

func renderResourceJSON(rows []ResourceRow) (string, error) {
	if rows == nil {
		rows = []ResourceRow{}
	}
	out, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshalling resource rows: %w", err)
	}
	return string(out), nil
}

func renderResourceCSV(rows []ResourceRow) (string, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)
	if err := w.Write([]string{"Project_ID", "Resource_Name"}); err != nil {
		return "", err
	}
	for _, row := range rows {
		if err := w.Write([]string{row.ProjectID, row.ResourceName}); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return strings.TrimSuffix(sb.String(), "\n"), nil
}
