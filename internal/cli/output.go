package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/ArturMukhamedjanov/is-lab1-front/internal/listmanager"
	"github.com/ArturMukhamedjanov/is-lab1-front/internal/schema"
	"github.com/ArturMukhamedjanov/is-lab1-front/pkg/types"
)

// Sort indicators appended to the sorted column header.
const (
	arrowUp   = " ↑"
	arrowDown = " ↓"
)

// listing is the JSON form of one page of a list.
type listing struct {
	Entity   string                `json:"entity"`
	Page     int                   `json:"page"`
	Pages    int                   `json:"pages"`
	PageSize int                   `json:"pageSize"`
	Total    int                   `json:"total"`
	Filters  listmanager.Filters   `json:"filters,omitempty"`
	Sort     listmanager.SortState `json:"sort"`
	Records  []types.Record        `json:"records"`
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// renderList writes the visible page of m as a table, or as JSON.
func renderList(w io.Writer, m *listmanager.Manager, jsonMode bool) error {
	view := m.View()
	pages := max(m.PageCount(), 1)
	if jsonMode {
		return writeJSON(w, listing{
			Entity:   m.Schema().Name,
			Page:     m.Page(),
			Pages:    pages,
			PageSize: m.PageSize(),
			Total:    len(view),
			Filters:  activeFilters(m.Filters()),
			Sort:     m.Sort(),
			Records:  m.Visible(),
		})
	}

	s := m.Schema()
	sortState := m.Sort()
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	headers := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		h := strings.ToUpper(f.Label)
		if sortState.Key == f.Name {
			if sortState.Direction == listmanager.Descending {
				h += arrowDown
			} else {
				h += arrowUp
			}
		}
		headers[i] = h
	}
	fmt.Fprintln(tw, strings.Join(headers, "\t"))
	for _, rec := range m.Visible() {
		cells := make([]string, len(s.Fields))
		for i, f := range s.Fields {
			cells[i] = formatValue(rec[f.Name])
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Page %d of %d (%d records)\n", m.Page(), pages, len(view))
	return err
}

func activeFilters(f listmanager.Filters) listmanager.Filters {
	out := listmanager.Filters{}
	for k, v := range f {
		if strings.TrimSpace(v) != "" {
			out[k] = v
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// formatValue renders a decoded JSON scalar for a table cell.
func formatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return "-"
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case int64:
		return strconv.FormatInt(x, 10)
	default:
		return fmt.Sprint(x)
	}
}

// renderFields writes the columns of s with their kinds and constraints.
func renderFields(w io.Writer, s *types.Schema) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "FIELD\tLABEL\tKIND\tFILTER\tCONSTRAINTS")
	for _, f := range s.Fields {
		filter := ""
		if f.Filterable {
			filter = "yes"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", f.Name, f.Label, f.Kind, filter, schema.Constraints(f))
	}
	return tw.Flush()
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
