package controllers_test

import (
	"errors"
	"net/http/httptest"
	"testing"

	"dashboard-app/controllers"
	"dashboard-app/services"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLogisticsStore struct {
	inboundByDate  []services.DatedQuantity
	outboundByDate []services.DatedQuantity
	inboundStatus  []services.StatusQuantity
	outboundStatus []services.StatusQuantity
	err            error
}

func (s *stubLogisticsStore) GetInboundTransactionsByDate() ([]services.DatedQuantity, error) {
	return s.inboundByDate, s.err
}

func (s *stubLogisticsStore) GetOutboundTransactionsByDate() ([]services.DatedQuantity, error) {
	return s.outboundByDate, s.err
}

func (s *stubLogisticsStore) GetInboundStatusTotals() ([]services.StatusQuantity, error) {
	return s.inboundStatus, s.err
}

func (s *stubLogisticsStore) GetOutboundStatusTotals() ([]services.StatusQuantity, error) {
	return s.outboundStatus, s.err
}

func newLogisticsApp(store *stubLogisticsStore) *fiber.App {
	controller := &controllers.LogisticsController{Store: store, DefaultMonth: "2024-11"}
	app := fiber.New()
	app.Get("/logistics", controller.GetLogistics)
	return app
}

func TestGetLogistics_DefaultMonth(t *testing.T) {
	store := &stubLogisticsStore{
		inboundByDate: []services.DatedQuantity{
			{Date: "2024-11-05", Quantity: "578"},
			{Date: "2024-10-31", Quantity: "999"},
		},
		inboundStatus: []services.StatusQuantity{
			{Status: "Open", Quantity: 15},
			{Status: "Complete", Quantity: 45},
		},
	}
	app := newLogisticsApp(store)

	resp, err := app.Test(httptest.NewRequest("GET", "/logistics", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	payload := decodeBody(t, resp.Body)
	data := payload["data"].(map[string]interface{})

	inboundDaily := data["inbound_daily"].([]interface{})
	require.Len(t, inboundDaily, 30)
	day5 := inboundDaily[4].(map[string]interface{})
	assert.Equal(t, "05", day5["date"])
	assert.Equal(t, float64(578), day5["count"])

	outboundDaily := data["outbound_daily"].([]interface{})
	require.Len(t, outboundDaily, 30)
	assert.Equal(t, float64(0), outboundDaily[0].(map[string]interface{})["count"])

	inboundStatus := data["inbound_status"].([]interface{})
	require.Len(t, inboundStatus, 2)
	open := inboundStatus[0].(map[string]interface{})
	assert.Equal(t, "Open", open["name"])
	assert.InDelta(t, 25.00, open["value"].(float64), 0.001)

	assert.Empty(t, data["outbound_status"])
}

func TestGetLogistics_ExplicitMonth(t *testing.T) {
	app := newLogisticsApp(&stubLogisticsStore{})

	resp, err := app.Test(httptest.NewRequest("GET", "/logistics?month=2024-02", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	payload := decodeBody(t, resp.Body)
	data := payload["data"].(map[string]interface{})
	assert.Len(t, data["inbound_daily"].([]interface{}), 29)
}

func TestGetLogistics_MalformedMonth(t *testing.T) {
	app := newLogisticsApp(&stubLogisticsStore{})

	resp, err := app.Test(httptest.NewRequest("GET", "/logistics?month=Nov-2024", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	payload := decodeBody(t, resp.Body)
	assert.Equal(t, false, payload["success"])
}

func TestGetLogistics_StoreError(t *testing.T) {
	app := newLogisticsApp(&stubLogisticsStore{err: errors.New("timeout")})

	resp, err := app.Test(httptest.NewRequest("GET", "/logistics", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}

func TestGetLogistics_UnknownStatus(t *testing.T) {
	app := newLogisticsApp(&stubLogisticsStore{
		inboundStatus: []services.StatusQuantity{{Status: "teleported", Quantity: 5}},
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/logistics", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}
