package services_test

import (
	"errors"
	"testing"

	"dashboard-app/models"
	"dashboard-app/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubHistoryQuerier struct {
	current    []models.HistoryRecord
	legacy     []models.HistoryRecord
	currentErr error
	legacyErr  error

	currentCalls []string
	legacyCalls  []string
}

func (s *stubHistoryQuerier) SearchCurrent(column string, keyword string) ([]models.HistoryRecord, error) {
	s.currentCalls = append(s.currentCalls, column)
	return s.current, s.currentErr
}

func (s *stubHistoryQuerier) SearchLegacy(column string, keyword string) ([]models.HistoryRecord, error) {
	s.legacyCalls = append(s.legacyCalls, column)
	return s.legacy, s.legacyErr
}

func TestResolveFilterColumn(t *testing.T) {
	tests := []struct {
		filterType string
		want       string
	}{
		{filterType: "shipmentId", want: "shipment_id"},
		{filterType: "customer", want: "customer"},
		{filterType: "itemCode", want: "item_code"},
		{filterType: "ean", want: "ean"},
		{filterType: "serialNumber", want: "serial_number"},
	}

	for _, tt := range tests {
		column, err := services.ResolveFilterColumn(tt.filterType)
		require.NoError(t, err)
		assert.Equal(t, tt.want, column)
	}
}

func TestResolveFilterColumn_Rejected(t *testing.T) {
	for _, filterType := range []string{"", "shipment_id", "__proto__", "customer; DROP TABLE users--"} {
		_, err := services.ResolveFilterColumn(filterType)
		assert.ErrorIs(t, err, services.ErrInvalidFilter, filterType)
	}
}

func TestSearchHistory_InvalidFilterRunsNoQuery(t *testing.T) {
	q := &stubHistoryQuerier{}

	_, err := services.SearchHistory(q, "__proto__", "SH-001")
	assert.ErrorIs(t, err, services.ErrInvalidFilter)
	assert.Empty(t, q.currentCalls)
	assert.Empty(t, q.legacyCalls)
}

func TestSearchHistory_EmptyKeyword(t *testing.T) {
	q := &stubHistoryQuerier{}

	_, err := services.SearchHistory(q, "shipmentId", "")
	assert.ErrorIs(t, err, services.ErrEmptyKeyword)
	assert.Empty(t, q.currentCalls)
	assert.Empty(t, q.legacyCalls)
}

func TestSearchHistory_PrimaryPreferred(t *testing.T) {
	q := &stubHistoryQuerier{
		current: []models.HistoryRecord{{ShipmentID: "SH-001", Customer: "Initech"}},
		legacy:  []models.HistoryRecord{{ShipmentID: "SH-OLD"}},
	}

	rows, err := services.SearchHistory(q, "shipmentId", "SH-001")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "SH-001", rows[0].ShipmentID)
	assert.Equal(t, []string{"shipment_id"}, q.currentCalls)
	assert.Empty(t, q.legacyCalls)
}

func TestSearchHistory_LegacyFallback(t *testing.T) {
	q := &stubHistoryQuerier{
		legacy: []models.HistoryRecord{{ShipmentID: "SH-OLD", TransporterName: "Fleet Co"}},
	}

	rows, err := services.SearchHistory(q, "itemCode", "ITM-9")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "SH-OLD", rows[0].ShipmentID)
	assert.Equal(t, "Fleet Co", rows[0].TransporterName)
	assert.Equal(t, []string{"item_code"}, q.currentCalls)
	assert.Equal(t, []string{"item_code"}, q.legacyCalls)
}

func TestSearchHistory_PrimaryErrorStopsFallback(t *testing.T) {
	q := &stubHistoryQuerier{currentErr: errors.New("connection reset")}

	_, err := services.SearchHistory(q, "ean", "4006381333931")
	assert.Error(t, err)
	assert.Empty(t, q.legacyCalls)
}
