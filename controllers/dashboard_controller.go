package controllers

import (
	"dashboard-app/repositories"
	"dashboard-app/services"
	"dashboard-app/utils/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type DashboardStore interface {
	GetOpenActivitySummary() ([]repositories.ActivitySummaryRow, error)
	GetStockSummary() ([]repositories.StockRow, error)
}

type DashboardController struct {
	Store     DashboardStore
	Logistics LogisticsStore
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{
		Store:     repositories.NewDashboardRepository(db),
		Logistics: repositories.NewLogisticsRepository(db),
	}
}

// GetDashboard returns the landing page payload: open transactions,
// the stock snapshot and the raw outbound-by-date rows.
func (c *DashboardController) GetDashboard(ctx *fiber.Ctx) error {
	activity, err := c.Store.GetOpenActivitySummary()
	if err != nil {
		return dashboardQueryFailure(ctx, "activity summary", err)
	}

	stock, err := c.Store.GetStockSummary()
	if err != nil {
		return dashboardQueryFailure(ctx, "stock summary", err)
	}

	outbound, err := c.Logistics.GetOutboundTransactionsByDate()
	if err != nil {
		return dashboardQueryFailure(ctx, "outbound by date", err)
	}

	if activity == nil {
		activity = []repositories.ActivitySummaryRow{}
	}
	if stock == nil {
		stock = []repositories.StockRow{}
	}
	if outbound == nil {
		outbound = []services.DatedQuantity{}
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Dashboard found",
		"data": fiber.Map{
			"activity": activity,
			"stock":    stock,
			"outbound": outbound,
		},
	})
}

func dashboardQueryFailure(ctx *fiber.Ctx, scope string, err error) error {
	logger.Error("dashboard query failed", zap.String("scope", scope), zap.Error(err))
	return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"success": false,
		"message": "Failed to load dashboard",
	})
}
