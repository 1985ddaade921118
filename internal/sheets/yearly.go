package sheets

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// YearlyHours is one customer's section of the "<year>_hours" sheet, with an
// employee column and one column per month.
type YearlyHours struct {
	ws    *Worksheet
	month time.Month
}

// NewYearlyHours opens the customer's section for the given month's year.
func NewYearlyHours(ctx context.Context, client *Client, month time.Time, customer string) (*YearlyHours, error) {
	sheetName := month.Format("2006") + "_hours"
	ws, err := client.Section(ctx, sheetName, customer)
	if err != nil {
		return nil, fmt.Errorf("opening yearly hours section: %w", err)
	}
	return &YearlyHours{ws: ws, month: month.Month()}, nil
}

// SetMonthlyHours writes the employee's total into the month column.
func (y *YearlyHours) SetMonthlyHours(ctx context.Context, employee, hours string) error {
	index, err := y.ws.FindRow("employee", employee)
	if err != nil {
		return err
	}
	return y.ws.UpdateCell(ctx, index, strings.ToLower(y.month.String()), hours)
}
