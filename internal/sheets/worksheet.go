package sheets

import (
	"context"
	"fmt"
	"strings"
)

// Worksheet is a tab viewed as a header row plus positional data rows. Header
// cells are slugified so rows can be addressed as string maps regardless of
// spreadsheet cosmetics. The cell values are snapshotted once at open time;
// a run never re-reads a sheet it already saw.
type Worksheet struct {
	client *Client
	name   string

	headers      []string
	values       [][]string
	firstDataRow int // 1-based absolute row
	lastDataRow  int // 1-based absolute row, 0 = unbounded
}

// Worksheet opens a tab whose header is at the given 1-based row.
func (c *Client) Worksheet(ctx context.Context, name string, headerRow int) (*Worksheet, error) {
	values, err := c.allValues(ctx, name)
	if err != nil {
		return nil, err
	}
	return newWorksheet(c, name, values, headerRow, 0)
}

func newWorksheet(client *Client, name string, values [][]string, headerRow, lastDataRow int) (*Worksheet, error) {
	if headerRow < 1 || headerRow > len(values) {
		return nil, fmt.Errorf("sheet %q has no header row %d", name, headerRow)
	}
	headers := make([]string, len(values[headerRow-1]))
	for i, h := range values[headerRow-1] {
		headers[i] = slugify(h)
	}
	return &Worksheet{
		client:       client,
		name:         name,
		headers:      headers,
		values:       values,
		firstDataRow: headerRow + 1,
		lastDataRow:  lastDataRow,
	}, nil
}

// Rows returns up to limit data rows starting at the 0-based data offset,
// keyed by slugified header. A limit of 0 means all rows. Columns with an
// empty header are skipped.
func (ws *Worksheet) Rows(offset, limit int) []map[string]string {
	var rows []map[string]string
	for i := ws.firstDataRow + offset; i <= len(ws.values); i++ {
		if ws.lastDataRow > 0 && i > ws.lastDataRow {
			break
		}
		if limit > 0 && len(rows) == limit {
			break
		}
		rows = append(rows, ws.rowMap(ws.values[i-1]))
	}
	return rows
}

func (ws *Worksheet) rowMap(cells []string) map[string]string {
	row := make(map[string]string, len(ws.headers))
	for i, key := range ws.headers {
		if key == "" {
			continue
		}
		if i < len(cells) {
			row[key] = cells[i]
		} else {
			row[key] = ""
		}
	}
	return row
}

// FindRow returns the 0-based data index of the first row whose column
// matches the value exactly.
func (ws *Worksheet) FindRow(key, value string) (int, error) {
	col, err := ws.column(key)
	if err != nil {
		return 0, err
	}
	for i, row := 0, ws.firstDataRow; row <= len(ws.values); i, row = i+1, row+1 {
		if ws.lastDataRow > 0 && row > ws.lastDataRow {
			break
		}
		cells := ws.values[row-1]
		if col < len(cells) && cells[col] == value {
			return i, nil
		}
	}
	return 0, fmt.Errorf("row with %s=%q was not found in sheet %q", key, value, ws.name)
}

// UpdateCell writes one cell addressed by data index and header key.
func (ws *Worksheet) UpdateCell(ctx context.Context, index int, key, value string) error {
	col, err := ws.column(key)
	if err != nil {
		return err
	}
	row := ws.firstDataRow + index
	if ws.lastDataRow > 0 && row > ws.lastDataRow {
		return fmt.Errorf("row %d is outside of the editable section: last row is %d", index, ws.lastDataRow)
	}
	rangeA1 := fmt.Sprintf("'%s'!%s%d", ws.name, columnLetter(col), row)
	return ws.client.updateRange(ctx, rangeA1, [][]interface{}{{value}})
}

// AppendRows appends rows after the current data region.
func (ws *Worksheet) AppendRows(ctx context.Context, rows [][]interface{}) error {
	if len(rows) == 0 {
		return nil
	}
	rangeA1 := fmt.Sprintf("'%s'!A%d", ws.name, ws.firstDataRow)
	return ws.client.appendRange(ctx, rangeA1, rows)
}

// Headers returns the slugified header keys in column order.
func (ws *Worksheet) Headers() []string {
	return ws.headers
}

func (ws *Worksheet) column(key string) (int, error) {
	for i, h := range ws.headers {
		if h == key {
			return i, nil
		}
	}
	return 0, fmt.Errorf("key %q is missing in headers of sheet %q: %v", key, ws.name, ws.headers)
}

func slugify(key string) string {
	return strings.ReplaceAll(strings.TrimSpace(strings.ToLower(key)), " ", "_")
}

// columnLetter converts a 0-based column index to its A1 letter form.
func columnLetter(index int) string {
	letters := ""
	for index >= 0 {
		letters = string(rune('A'+index%26)) + letters
		index = index/26 - 1
	}
	return letters
}
