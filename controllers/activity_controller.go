package controllers

import (
	"dashboard-app/repositories"
	"dashboard-app/services"
	"dashboard-app/utils/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ActivityStore is the slice of the activity repository the controller
// uses; handler tests swap in a stub.
type ActivityStore interface {
	GetInboundBase() ([]services.InboundActivityRow, error)
	GetInboundScanTotals() ([]services.HeaderQuantity, error)
	GetInboundReceivedTotals() ([]services.HeaderQuantity, error)
	GetOutboundBase() ([]services.OutboundActivityRow, error)
	GetOutboundPickTotals() ([]services.HeaderQuantity, error)
	GetOutboundScanTotals() ([]services.HeaderQuantity, error)
	GetInboundDetailRows(receiptID string) ([]services.InboundDetailRow, error)
	GetOutboundDetailRows(shipmentID string) ([]services.OutboundDetailRow, error)
}

type ActivityController struct {
	Store ActivityStore
}

func NewActivityController(db *gorm.DB) *ActivityController {
	return &ActivityController{Store: repositories.NewActivityRepository(db)}
}

// GetInboundActivity returns one reconciled row per open receipt:
// requested vs scanned vs received quantity.
func (c *ActivityController) GetInboundActivity(ctx *fiber.Ctx) error {
	base, err := c.Store.GetInboundBase()
	if err != nil {
		return activityQueryFailure(ctx, "inbound base", err)
	}
	scans, err := c.Store.GetInboundScanTotals()
	if err != nil {
		return activityQueryFailure(ctx, "inbound scans", err)
	}
	received, err := c.Store.GetInboundReceivedTotals()
	if err != nil {
		return activityQueryFailure(ctx, "inbound received", err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Inbound activity found",
		"data": fiber.Map{
			"activity": services.MergeInboundActivity(base, scans, received),
		},
	})
}

// GetOutboundActivity returns one reconciled row per open shipment:
// requested vs picked vs scanned quantity.
func (c *ActivityController) GetOutboundActivity(ctx *fiber.Ctx) error {
	base, err := c.Store.GetOutboundBase()
	if err != nil {
		return activityQueryFailure(ctx, "outbound base", err)
	}
	picks, err := c.Store.GetOutboundPickTotals()
	if err != nil {
		return activityQueryFailure(ctx, "outbound picks", err)
	}
	scans, err := c.Store.GetOutboundScanTotals()
	if err != nil {
		return activityQueryFailure(ctx, "outbound scans", err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Outbound activity found",
		"data": fiber.Map{
			"activity": services.MergeOutboundActivity(base, picks, scans),
		},
	})
}

func (c *ActivityController) GetInboundActivityDetail(ctx *fiber.Ctx) error {
	receiptID := ctx.Query("receipt_id")
	if receiptID == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "receipt_id is required",
		})
	}

	rows, err := c.Store.GetInboundDetailRows(receiptID)
	if err != nil {
		return activityQueryFailure(ctx, "inbound detail", err)
	}

	detail, err := services.GroupInboundDetail(rows)
	if err != nil {
		return activityQueryFailure(ctx, "inbound detail grouping", err)
	}

	if len(detail) == 0 {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Inbound activity not found",
			"data":    fiber.Map{"activity": []services.InboundActivityDetail{}},
		})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Inbound activity found",
		"data":    fiber.Map{"activity": detail},
	})
}

func (c *ActivityController) GetOutboundActivityDetail(ctx *fiber.Ctx) error {
	shipmentID := ctx.Query("shipment_id")
	if shipmentID == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "shipment_id is required",
		})
	}

	rows, err := c.Store.GetOutboundDetailRows(shipmentID)
	if err != nil {
		return activityQueryFailure(ctx, "outbound detail", err)
	}

	detail, err := services.GroupOutboundDetail(rows)
	if err != nil {
		return activityQueryFailure(ctx, "outbound detail grouping", err)
	}

	if len(detail) == 0 {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Outbound activity not found",
			"data":    fiber.Map{"activity": []services.OutboundActivityDetail{}},
		})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Outbound activity found",
		"data":    fiber.Map{"activity": detail},
	})
}

// activityQueryFailure logs the underlying error and returns the
// uniform failure response; query text never reaches the client.
func activityQueryFailure(ctx *fiber.Ctx, scope string, err error) error {
	logger.Error("activity query failed", zap.String("scope", scope), zap.Error(err))
	return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"success": false,
		"message": "Failed to load activity",
	})
}
