package services

import (
	"fmt"
	"strconv"
	"time"

	"dashboard-app/models"
)

// InboundActivityRow is one reconciled receipt: the requested quantity
// from the detail lines next to what was actually scanned and put away.
type InboundActivityRow struct {
	ID           uint   `json:"id"`
	InboundNo    string `json:"inbound_no"`
	ReceiptID    string `json:"receipt_id"`
	SupplierName string `json:"supplier_name"`
	InboundDate  string `json:"inbound_date"`
	Status       string `json:"status"`
	StatusLabel  string `json:"status_label,omitempty"`
	QuantityReq  int    `json:"quantity_req"`
	QuantityScan int    `json:"quantity_scan"`
	QuantityRcvd int    `json:"quantity_rcvd"`
}

// OutboundActivityRow is one reconciled shipment: requested vs picked
// vs scanned.
type OutboundActivityRow struct {
	ID           uint   `json:"id"`
	OutboundNo   string `json:"outbound_no"`
	ShipmentID   string `json:"shipment_id"`
	CustomerName string `json:"customer_name"`
	OutboundDate string `json:"outbound_date"`
	Status       string `json:"status"`
	StatusLabel  string `json:"status_label,omitempty"`
	QuantityReq  int    `json:"quantity_req"`
	QuantityPick int    `json:"quantity_pick"`
	QuantityScan int    `json:"quantity_scan"`
}

// HeaderQuantity is one independently summed event aggregate keyed by
// header id.
type HeaderQuantity struct {
	ID       uint `json:"id"`
	Quantity int  `json:"quantity"`
}

// MergeInboundActivity left-joins the scan and received aggregates onto
// the base rows by header id. A header with no matching event rows gets
// an explicit zero, never null, and is never dropped.
func MergeInboundActivity(base []InboundActivityRow, scans []HeaderQuantity, received []HeaderQuantity) []InboundActivityRow {
	scanByID := quantityByHeader(scans)
	rcvdByID := quantityByHeader(received)

	result := make([]InboundActivityRow, 0, len(base))
	for _, row := range base {
		row.QuantityScan = scanByID[row.ID]
		row.QuantityRcvd = rcvdByID[row.ID]
		if status, err := models.ParseOrderStatus(row.Status); err == nil {
			row.StatusLabel = status.Label()
		}
		result = append(result, row)
	}
	return result
}

// MergeOutboundActivity is the outbound counterpart joining pick and
// scan aggregates onto the base rows.
func MergeOutboundActivity(base []OutboundActivityRow, picks []HeaderQuantity, scans []HeaderQuantity) []OutboundActivityRow {
	pickByID := quantityByHeader(picks)
	scanByID := quantityByHeader(scans)

	result := make([]OutboundActivityRow, 0, len(base))
	for _, row := range base {
		row.QuantityPick = pickByID[row.ID]
		row.QuantityScan = scanByID[row.ID]
		if status, err := models.ParseOrderStatus(row.Status); err == nil {
			row.StatusLabel = status.Label()
		}
		result = append(result, row)
	}
	return result
}

func quantityByHeader(rows []HeaderQuantity) map[uint]int {
	m := make(map[uint]int, len(rows))
	for _, row := range rows {
		m[row.ID] += row.Quantity
	}
	return m
}

// ActivityItem is one item line in the detail modal.
type ActivityItem struct {
	ID          string `json:"id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	Sku         string `json:"sku"`
}

// InboundDetailRow is one flat row of the header→supplier→detail→product
// join. Item columns are pointers: a header without detail lines still
// produces a row, with the item side null.
type InboundDetailRow struct {
	HeaderID     uint      `json:"header_id"`
	ReceiptID    string    `json:"receipt_id"`
	SupplierName string    `json:"supplier_name"`
	InboundDate  string    `json:"inbound_date"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	ItemCode     *string   `json:"item_code"`
	ProductName  *string   `json:"product_name"`
	Quantity     *string   `json:"quantity"`
	Sku          *string   `json:"sku"`
}

// InboundActivityDetail is one receipt with its grouped item lines.
type InboundActivityDetail struct {
	ID           uint           `json:"id"`
	ReceiptID    string         `json:"receipt_id"`
	SupplierName string         `json:"supplier_name"`
	InboundDate  string         `json:"inbound_date"`
	Status       string         `json:"status"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	Items        []ActivityItem `json:"items"`
}

type OutboundDetailRow struct {
	HeaderID     uint      `json:"header_id"`
	ShipmentID   string    `json:"shipment_id"`
	CustomerName string    `json:"customer_name"`
	OutboundDate string    `json:"outbound_date"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	ItemCode     *string   `json:"item_code"`
	ProductName  *string   `json:"product_name"`
	Quantity     *string   `json:"quantity"`
	Sku          *string   `json:"sku"`
}

type OutboundActivityDetail struct {
	ID           uint           `json:"id"`
	ShipmentID   string         `json:"shipment_id"`
	CustomerName string         `json:"customer_name"`
	OutboundDate string         `json:"outbound_date"`
	Status       string         `json:"status"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	Items        []ActivityItem `json:"items"`
}

// GroupInboundDetail collapses the flat join rows into one entry per
// header, preserving row order. A null item code is a left-join row
// carrying no item: the header is kept with an empty item list.
func GroupInboundDetail(rows []InboundDetailRow) ([]InboundActivityDetail, error) {
	index := make(map[uint]int, len(rows))
	result := make([]InboundActivityDetail, 0, len(rows))

	for _, row := range rows {
		pos, seen := index[row.HeaderID]
		if !seen {
			result = append(result, InboundActivityDetail{
				ID:           row.HeaderID,
				ReceiptID:    row.ReceiptID,
				SupplierName: row.SupplierName,
				InboundDate:  row.InboundDate,
				Status:       row.Status,
				CreatedAt:    row.CreatedAt,
				UpdatedAt:    row.UpdatedAt,
				Items:        []ActivityItem{},
			})
			pos = len(result) - 1
			index[row.HeaderID] = pos
		}

		if row.ItemCode == nil {
			continue
		}

		qty, err := coerceQuantity(row.Quantity)
		if err != nil {
			return nil, fmt.Errorf("receipt %s item %s: %w", row.ReceiptID, *row.ItemCode, err)
		}

		result[pos].Items = append(result[pos].Items, ActivityItem{
			ID:          *row.ItemCode,
			ProductName: derefString(row.ProductName),
			Quantity:    qty,
			Sku:         derefString(row.Sku),
		})
	}

	return result, nil
}

// GroupOutboundDetail is the shipment counterpart of GroupInboundDetail.
func GroupOutboundDetail(rows []OutboundDetailRow) ([]OutboundActivityDetail, error) {
	index := make(map[uint]int, len(rows))
	result := make([]OutboundActivityDetail, 0, len(rows))

	for _, row := range rows {
		pos, seen := index[row.HeaderID]
		if !seen {
			result = append(result, OutboundActivityDetail{
				ID:           row.HeaderID,
				ShipmentID:   row.ShipmentID,
				CustomerName: row.CustomerName,
				OutboundDate: row.OutboundDate,
				Status:       row.Status,
				CreatedAt:    row.CreatedAt,
				UpdatedAt:    row.UpdatedAt,
				Items:        []ActivityItem{},
			})
			pos = len(result) - 1
			index[row.HeaderID] = pos
		}

		if row.ItemCode == nil {
			continue
		}

		qty, err := coerceQuantity(row.Quantity)
		if err != nil {
			return nil, fmt.Errorf("shipment %s item %s: %w", row.ShipmentID, *row.ItemCode, err)
		}

		result[pos].Items = append(result[pos].Items, ActivityItem{
			ID:          *row.ItemCode,
			ProductName: derefString(row.ProductName),
			Quantity:    qty,
			Sku:         derefString(row.Sku),
		})
	}

	return result, nil
}

func coerceQuantity(s *string) (int, error) {
	if s == nil {
		return 0, nil
	}
	qty, err := strconv.Atoi(*s)
	if err != nil {
		return 0, fmt.Errorf("malformed quantity %q", *s)
	}
	return qty, nil
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
