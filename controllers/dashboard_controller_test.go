package controllers_test

import (
	"errors"
	"net/http/httptest"
	"testing"

	"dashboard-app/controllers"
	"dashboard-app/repositories"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubDashboardStore struct {
	activity []repositories.ActivitySummaryRow
	stock    []repositories.StockRow
	err      error
}

func (s *stubDashboardStore) GetOpenActivitySummary() ([]repositories.ActivitySummaryRow, error) {
	return s.activity, s.err
}

func (s *stubDashboardStore) GetStockSummary() ([]repositories.StockRow, error) {
	return s.stock, s.err
}

func newDashboardApp(store *stubDashboardStore, logistics *stubLogisticsStore) *fiber.App {
	controller := &controllers.DashboardController{Store: store, Logistics: logistics}
	app := fiber.New()
	app.Get("/dashboard", controller.GetDashboard)
	return app
}

func TestGetDashboard(t *testing.T) {
	store := &stubDashboardStore{
		activity: []repositories.ActivitySummaryRow{
			{ID: 1, NoRef: "INB-001", Status: "open", TransType: "inbound", TotItem: 2, TotQty: 40},
		},
		stock: []repositories.StockRow{
			{ItemCode: "ITM-1", ItemName: "Widget", QtyOnhand: 100},
		},
	}
	app := newDashboardApp(store, &stubLogisticsStore{})

	resp, err := app.Test(httptest.NewRequest("GET", "/dashboard", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	payload := decodeBody(t, resp.Body)
	data := payload["data"].(map[string]interface{})

	activity := data["activity"].([]interface{})
	require.Len(t, activity, 1)
	assert.Equal(t, "INB-001", activity[0].(map[string]interface{})["no_ref"])

	stock := data["stock"].([]interface{})
	require.Len(t, stock, 1)
	assert.Equal(t, float64(100), stock[0].(map[string]interface{})["qty_onhand"])

	// empty sources serialize as arrays, not null
	outbound, ok := data["outbound"].([]interface{})
	require.True(t, ok)
	assert.Empty(t, outbound)
}

func TestGetDashboard_StoreError(t *testing.T) {
	app := newDashboardApp(&stubDashboardStore{err: errors.New("db down")}, &stubLogisticsStore{})

	resp, err := app.Test(httptest.NewRequest("GET", "/dashboard", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}
