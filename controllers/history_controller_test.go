package controllers_test

import (
	"net/http/httptest"
	"testing"

	"dashboard-app/controllers"
	"dashboard-app/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubHistoryStore struct {
	current []models.HistoryRecord
	legacy  []models.HistoryRecord

	currentCalls int
	legacyCalls  int
}

func (s *stubHistoryStore) SearchCurrent(column string, keyword string) ([]models.HistoryRecord, error) {
	s.currentCalls++
	return s.current, nil
}

func (s *stubHistoryStore) SearchLegacy(column string, keyword string) ([]models.HistoryRecord, error) {
	s.legacyCalls++
	return s.legacy, nil
}

func newHistoryApp(store *stubHistoryStore) *fiber.App {
	controller := &controllers.HistoryController{Store: store}
	app := fiber.New()
	app.Get("/history/outbound", controller.SearchOutboundHistory)
	app.Get("/history/outbound/export", controller.ExportOutboundHistory)
	return app
}

func TestSearchOutboundHistory(t *testing.T) {
	store := &stubHistoryStore{
		current: []models.HistoryRecord{
			{ShipmentID: "SH-001", Customer: "Initech", ItemCode: "ITM-1", Quantity: 5},
		},
	}
	app := newHistoryApp(store)

	resp, err := app.Test(httptest.NewRequest("GET", "/history/outbound?filter_type=shipmentId&keyword=SH-001", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	payload := decodeBody(t, resp.Body)
	assert.Equal(t, true, payload["success"])

	rows := payload["data"].([]interface{})
	require.Len(t, rows, 1)
	row := rows[0].(map[string]interface{})
	assert.Equal(t, "SH-001", row["shipment_id"])
	assert.Equal(t, "Initech", row["customer"])
	assert.Equal(t, 0, store.legacyCalls)
}

func TestSearchOutboundHistory_LegacyFallback(t *testing.T) {
	store := &stubHistoryStore{
		legacy: []models.HistoryRecord{
			{ShipmentID: "SH-OLD", TransporterName: "Fleet Co"},
		},
	}
	app := newHistoryApp(store)

	resp, err := app.Test(httptest.NewRequest("GET", "/history/outbound?filter_type=customer&keyword=fleet", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	payload := decodeBody(t, resp.Body)
	rows := payload["data"].([]interface{})
	require.Len(t, rows, 1)
	assert.Equal(t, "Fleet Co", rows[0].(map[string]interface{})["transporter_name"])
	assert.Equal(t, 1, store.currentCalls)
	assert.Equal(t, 1, store.legacyCalls)
}

func TestSearchOutboundHistory_MissingParams(t *testing.T) {
	store := &stubHistoryStore{}
	app := newHistoryApp(store)

	for _, target := range []string{
		"/history/outbound",
		"/history/outbound?filter_type=shipmentId",
		"/history/outbound?keyword=SH-001",
	} {
		resp, err := app.Test(httptest.NewRequest("GET", target, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, target)
	}
	assert.Equal(t, 0, store.currentCalls)
}

func TestSearchOutboundHistory_InvalidFilter(t *testing.T) {
	store := &stubHistoryStore{}
	app := newHistoryApp(store)

	resp, err := app.Test(httptest.NewRequest("GET", "/history/outbound?filter_type=__proto__&keyword=x", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, 0, store.currentCalls)
}

func TestExportOutboundHistory(t *testing.T) {
	store := &stubHistoryStore{
		current: []models.HistoryRecord{
			{ShipmentID: "SH-001", Customer: "Initech", ItemCode: "ITM-1", Quantity: 5},
		},
	}
	app := newHistoryApp(store)

	resp, err := app.Test(httptest.NewRequest("GET", "/history/outbound/export?filter_type=shipmentId&keyword=SH-001", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", resp.Header.Get(fiber.HeaderContentType))
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "outbound_history_SH-001.xlsx")
}

func TestExportOutboundHistory_FilenameSanitized(t *testing.T) {
	store := &stubHistoryStore{
		current: []models.HistoryRecord{{ShipmentID: "SH-001"}},
	}
	app := newHistoryApp(store)

	// quote and CRLF in the keyword must not reach the header
	resp, err := app.Test(httptest.NewRequest("GET", "/history/outbound/export?filter_type=shipmentId&keyword=SH%22%0D%0A1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	disposition := resp.Header.Get(fiber.HeaderContentDisposition)
	assert.Equal(t, `attachment; filename="outbound_history_SH___1.xlsx"`, disposition)
}
