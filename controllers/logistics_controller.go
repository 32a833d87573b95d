package controllers

import (
	"dashboard-app/config"
	"dashboard-app/repositories"
	"dashboard-app/services"
	"dashboard-app/utils/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type LogisticsStore interface {
	GetInboundTransactionsByDate() ([]services.DatedQuantity, error)
	GetOutboundTransactionsByDate() ([]services.DatedQuantity, error)
	GetInboundStatusTotals() ([]services.StatusQuantity, error)
	GetOutboundStatusTotals() ([]services.StatusQuantity, error)
}

type LogisticsController struct {
	Store LogisticsStore

	// DefaultMonth is used when ?month= is absent.
	DefaultMonth string
}

func NewLogisticsController(db *gorm.DB) *LogisticsController {
	return &LogisticsController{
		Store:        repositories.NewLogisticsRepository(db),
		DefaultMonth: config.DefaultReportMonth,
	}
}

// GetLogistics returns the dense daily series and the status
// distribution for both directions for one calendar month.
func (c *LogisticsController) GetLogistics(ctx *fiber.Ctx) error {
	year, month, err := services.ParseMonth(ctx.Query("month"), c.DefaultMonth)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "month must be formatted as YYYY-MM",
		})
	}

	inboundRaw, err := c.Store.GetInboundTransactionsByDate()
	if err != nil {
		return logisticsQueryFailure(ctx, "inbound by date", err)
	}
	outboundRaw, err := c.Store.GetOutboundTransactionsByDate()
	if err != nil {
		return logisticsQueryFailure(ctx, "outbound by date", err)
	}
	inboundStatusRaw, err := c.Store.GetInboundStatusTotals()
	if err != nil {
		return logisticsQueryFailure(ctx, "inbound status", err)
	}
	outboundStatusRaw, err := c.Store.GetOutboundStatusTotals()
	if err != nil {
		return logisticsQueryFailure(ctx, "outbound status", err)
	}

	inboundDaily, err := services.BucketByDay(inboundRaw, year, month)
	if err != nil {
		return logisticsQueryFailure(ctx, "inbound bucketing", err)
	}
	outboundDaily, err := services.BucketByDay(outboundRaw, year, month)
	if err != nil {
		return logisticsQueryFailure(ctx, "outbound bucketing", err)
	}
	inboundStatus, err := services.ComputeDistribution(inboundStatusRaw)
	if err != nil {
		return logisticsQueryFailure(ctx, "inbound distribution", err)
	}
	outboundStatus, err := services.ComputeDistribution(outboundStatusRaw)
	if err != nil {
		return logisticsQueryFailure(ctx, "outbound distribution", err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Logistics found",
		"data": fiber.Map{
			"inbound_daily":   inboundDaily,
			"outbound_daily":  outboundDaily,
			"inbound_status":  inboundStatus,
			"outbound_status": outboundStatus,
		},
	})
}

func logisticsQueryFailure(ctx *fiber.Ctx, scope string, err error) error {
	logger.Error("logistics query failed", zap.String("scope", scope), zap.Error(err))
	return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"success": false,
		"message": "Failed to load logistics",
	})
}
