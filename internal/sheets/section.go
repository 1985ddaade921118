package sheets

import (
	"context"
	"fmt"
)

// Section opens the named section of a sheet. A section starts with a row
// containing only the section title, has its header row directly beneath and
// ends at the first fully empty row.
func (c *Client) Section(ctx context.Context, sheetName, sectionName string) (*Worksheet, error) {
	values, err := c.allValues(ctx, sheetName)
	if err != nil {
		return nil, err
	}
	headerRow, lastDataRow, err := findSection(values, sectionName)
	if err != nil {
		return nil, fmt.Errorf("sheet %q: %w", sheetName, err)
	}
	return newWorksheet(c, sheetName, values, headerRow, lastDataRow)
}

func findSection(values [][]string, sectionName string) (headerRow, lastDataRow int, err error) {
	for i, row := range values {
		filtered := nonEmpty(row)
		if len(filtered) == 1 && filtered[0] == sectionName {
			headerRow = i + 2 // header sits under the title row
			continue
		}
		if headerRow > 0 && len(filtered) == 0 {
			lastDataRow = i + 1
			break
		}
	}
	if headerRow == 0 {
		return 0, 0, fmt.Errorf("section %q not found", sectionName)
	}
	return headerRow, lastDataRow, nil
}

func nonEmpty(row []string) []string {
	var cells []string
	for _, cell := range row {
		if cell != "" {
			cells = append(cells, cell)
		}
	}
	return cells
}
