package controllers

import (
	"errors"
	"strings"

	"dashboard-app/models"
	"dashboard-app/repositories"
	"dashboard-app/services"
	"dashboard-app/utils/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type HistoryController struct {
	Store services.HistoryQuerier
}

func NewHistoryController(db *gorm.DB) *HistoryController {
	return &HistoryController{Store: repositories.NewHistoryRepository(db)}
}

// SearchOutboundHistory searches shipped records by a whitelisted filter
// key. Falls back to the legacy archive when the live tables match
// nothing.
func (c *HistoryController) SearchOutboundHistory(ctx *fiber.Ctx) error {
	rows, err := c.search(ctx)
	if err != nil {
		return c.searchFailure(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "History found",
		"data":    rows,
	})
}

// ExportOutboundHistory runs the same search and streams the result as
// an xlsx workbook.
func (c *HistoryController) ExportOutboundHistory(ctx *fiber.Ctx) error {
	rows, err := c.search(ctx)
	if err != nil {
		return c.searchFailure(ctx, err)
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	header := []interface{}{
		"Shipment ID", "Outbound No", "Outbound Date", "Customer",
		"Item Code", "EAN", "Serial Number", "Quantity",
		"PIC Scan", "Scan Time", "SPK Number", "Delivery Date",
		"Driver", "Transporter", "Truck Size", "Truck No", "Remarks",
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return c.searchFailure(ctx, err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return c.searchFailure(ctx, err)
		}
		values := []interface{}{
			row.ShipmentID, row.OutboundNo, row.OutboundDate, row.Customer,
			row.ItemCode, row.Ean, row.SerialNumber, row.Quantity,
			row.PicScan, row.TanggalScan, row.SpkNumber, row.DeliveryDate,
			row.Driver, row.TransporterName, row.TruckSize, row.TruckNo, row.RemarksSpkDtl,
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return c.searchFailure(ctx, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return c.searchFailure(ctx, err)
	}

	filename := exportFilename(ctx.Query("keyword"))
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)

	return ctx.Send(buf.Bytes())
}

// exportFilename builds a header-safe attachment name. The keyword is
// caller input; anything outside a conservative character set is
// replaced so it can never break out of the quoted header value.
func exportFilename(keyword string) string {
	safe := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '-', r == '_', r == '.':
			return r
		}
		return '_'
	}, keyword)
	return "outbound_history_" + safe + ".xlsx"
}

func (c *HistoryController) search(ctx *fiber.Ctx) ([]models.HistoryRecord, error) {
	filterType := ctx.Query("filter_type")
	keyword := ctx.Query("keyword")

	if filterType == "" || keyword == "" {
		return nil, services.ErrEmptyKeyword
	}

	return services.SearchHistory(c.Store, filterType, keyword)
}

func (c *HistoryController) searchFailure(ctx *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrEmptyKeyword):
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "filter_type and keyword are required",
		})
	case errors.Is(err, services.ErrInvalidFilter):
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid filter type",
		})
	default:
		logger.Error("history search failed", zap.Error(err))
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to search history",
		})
	}
}
