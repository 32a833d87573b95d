package services

import (
	"errors"

	"dashboard-app/models"
)

// ErrInvalidFilter means the requested filter key is not on the
// whitelist. It is surfaced, never defaulted, so no caller-controlled
// string ever reaches a column position.
var ErrInvalidFilter = errors.New("invalid filter type")

// ErrEmptyKeyword means the search keyword was missing or blank.
var ErrEmptyKeyword = errors.New("keyword is required")

// filterColumnMap maps the logical filter keys the frontend may send to
// trusted physical column names. This whitelist is the sole defense on
// the filter-selection axis.
var filterColumnMap = map[string]string{
	"shipmentId":   "shipment_id",
	"customer":     "customer",
	"itemCode":     "item_code",
	"ean":          "ean",
	"serialNumber": "serial_number",
}

// ResolveFilterColumn validates a filter key against the whitelist and
// returns the column it maps to.
func ResolveFilterColumn(filterType string) (string, error) {
	column, ok := filterColumnMap[filterType]
	if !ok {
		return "", ErrInvalidFilter
	}
	return column, nil
}

// HistoryQuerier runs the substring search against one of the two row
// sources. Both return the canonical HistoryRecord shape.
type HistoryQuerier interface {
	SearchCurrent(column string, keyword string) ([]models.HistoryRecord, error)
	SearchLegacy(column string, keyword string) ([]models.HistoryRecord, error)
}

// SearchHistory validates the filter, searches the live tables and, only
// when that comes back empty, falls back to the legacy archive. Results
// come from exactly one source, live data preferred. Validation happens
// before any query executes.
func SearchHistory(q HistoryQuerier, filterType string, keyword string) ([]models.HistoryRecord, error) {
	if keyword == "" {
		return nil, ErrEmptyKeyword
	}

	column, err := ResolveFilterColumn(filterType)
	if err != nil {
		return nil, err
	}

	rows, err := q.SearchCurrent(column, keyword)
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return q.SearchLegacy(column, keyword)
	}

	return rows, nil
}
