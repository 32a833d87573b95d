package services

import (
	"fmt"
	"strconv"
	"time"

	"dashboard-app/models"

	"github.com/shopspring/decimal"
)

// DatedQuantity is one raw transaction-by-date row. Quantity arrives as
// text from the driver and is parsed before it is summed.
type DatedQuantity struct {
	Date     string `json:"date"`
	Quantity string `json:"quantity"`
}

// DailyBucket is one day of the dense monthly series. Date is the
// two-digit day of month so the label sorts the same way it charts.
type DailyBucket struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// StatusQuantity is one grouped (status, total quantity) row.
type StatusQuantity struct {
	Status   string `json:"status"`
	Quantity int64  `json:"quantity"`
}

// StatusShare is one slice of the status pie, percentage rounded to two
// decimal places.
type StatusShare struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

var hundred = decimal.NewFromInt(100)

// BucketByDay aggregates raw dated rows into a dense daily series for
// exactly one calendar month. Every day of the month is present in
// ascending order; days without rows carry zero. Rows dated outside the
// month (or with an unparseable date) contribute nothing. A row inside
// the month with a malformed quantity is an error, not a silent zero.
func BucketByDay(rows []DatedQuantity, year int, month int) ([]DailyBucket, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("month out of range: %d", month)
	}

	// day zero of the next month normalizes to the last day of this one
	daysInMonth := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()

	totals := make(map[int]int, daysInMonth)
	for _, row := range rows {
		date, err := parseRowDate(row.Date)
		if err != nil {
			continue
		}
		if date.Year() != year || int(date.Month()) != month {
			continue
		}

		qty, err := strconv.Atoi(row.Quantity)
		if err != nil {
			return nil, fmt.Errorf("malformed quantity %q on %s: %w", row.Quantity, row.Date, err)
		}
		totals[date.Day()] += qty
	}

	result := make([]DailyBucket, 0, daysInMonth)
	for day := 1; day <= daysInMonth; day++ {
		result = append(result, DailyBucket{
			Date:  fmt.Sprintf("%02d", day),
			Count: totals[day],
		})
	}

	return result, nil
}

func parseRowDate(s string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02", "2006-01-02 15:04:05", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date %q", s)
}

// ComputeDistribution converts grouped status totals into percentage
// shares of the grand total. Statuses must parse against the closed
// status set; an unknown value is a data-quality error. A zero grand
// total yields an empty distribution rather than a division by zero;
// the chart treats no data and zero data the same way.
func ComputeDistribution(rows []StatusQuantity) ([]StatusShare, error) {
	var grandTotal int64
	statuses := make([]models.OrderStatus, len(rows))

	for i, row := range rows {
		status, err := models.ParseOrderStatus(row.Status)
		if err != nil {
			return nil, err
		}
		statuses[i] = status
		grandTotal += row.Quantity
	}

	if grandTotal == 0 {
		return []StatusShare{}, nil
	}

	total := decimal.NewFromInt(grandTotal)
	result := make([]StatusShare, 0, len(rows))
	for i, row := range rows {
		pct := decimal.NewFromInt(row.Quantity).Mul(hundred).Div(total).Round(2)
		result = append(result, StatusShare{
			Name:  statuses[i].Label(),
			Value: pct.InexactFloat64(),
		})
	}

	return result, nil
}

// ParseMonth resolves the ?month=YYYY-MM query parameter. An empty
// value falls back to the configured default month; an explicitly
// malformed value is an error so it is never silently defaulted.
func ParseMonth(param string, fallback string) (year int, month int, err error) {
	value := param
	if value == "" {
		value = fallback
	}

	t, err := time.Parse("2006-01", value)
	if err != nil {
		return 0, 0, fmt.Errorf("month must be formatted as YYYY-MM, got %q", value)
	}

	return t.Year(), int(t.Month()), nil
}
