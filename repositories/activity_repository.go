package repositories

import (
	"dashboard-app/services"

	"gorm.io/gorm"
)

type ActivityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// GetInboundBase returns one row per non-cancelled receipt with the
// requested quantity summed from its detail lines. Event aggregates are
// fetched separately and merged in the service layer so the
// coalesce-to-zero defaults are explicit.
func (r *ActivityRepository) GetInboundBase() ([]services.InboundActivityRow, error) {
	sql := `SELECT
		a.id, a.inbound_no, a.receipt_id, c.supplier_name, a.inbound_date, a.status,
		COALESCE(SUM(b.quantity), 0) AS quantity_req
		FROM inbound_headers a
		LEFT JOIN inbound_details b ON a.id = b.inbound_id
		LEFT JOIN suppliers c ON a.supplier_id = c.id
		WHERE a.status <> 'cancel'
		GROUP BY a.id, a.inbound_no, a.receipt_id, c.supplier_name, a.inbound_date, a.status`

	var rows []services.InboundActivityRow
	if err := r.db.Raw(sql).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// GetInboundScanTotals sums all barcode scans per receipt.
func (r *ActivityRepository) GetInboundScanTotals() ([]services.HeaderQuantity, error) {
	sql := `SELECT inbound_id AS id, SUM(quantity) AS quantity
		FROM inbound_barcodes
		GROUP BY inbound_id`

	var rows []services.HeaderQuantity
	if err := r.db.Raw(sql).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// GetInboundReceivedTotals sums only the scans already put away.
func (r *ActivityRepository) GetInboundReceivedTotals() ([]services.HeaderQuantity, error) {
	sql := `SELECT inbound_id AS id, SUM(quantity) AS quantity
		FROM inbound_barcodes
		WHERE status = 'in stock'
		GROUP BY inbound_id`

	var rows []services.HeaderQuantity
	if err := r.db.Raw(sql).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *ActivityRepository) GetOutboundBase() ([]services.OutboundActivityRow, error) {
	sql := `SELECT
		a.id, a.outbound_no, a.shipment_id, c.customer_name, a.outbound_date, a.status,
		COALESCE(SUM(b.quantity), 0) AS quantity_req
		FROM outbound_headers a
		LEFT JOIN outbound_details b ON a.id = b.outbound_id
		LEFT JOIN customers c ON a.customer_code = c.customer_code
		WHERE a.status <> 'cancel'
		GROUP BY a.id, a.outbound_no, a.shipment_id, c.customer_name, a.outbound_date, a.status`

	var rows []services.OutboundActivityRow
	if err := r.db.Raw(sql).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *ActivityRepository) GetOutboundPickTotals() ([]services.HeaderQuantity, error) {
	sql := `SELECT outbound_id AS id, SUM(quantity) AS quantity
		FROM outbound_pickings
		GROUP BY outbound_id`

	var rows []services.HeaderQuantity
	if err := r.db.Raw(sql).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *ActivityRepository) GetOutboundScanTotals() ([]services.HeaderQuantity, error) {
	sql := `SELECT outbound_id AS id, SUM(quantity) AS quantity
		FROM outbound_barcodes
		GROUP BY outbound_id`

	var rows []services.HeaderQuantity
	if err := r.db.Raw(sql).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// GetInboundDetailRows returns the flat header→supplier→detail→product
// join for one receipt, newest header first. The service groups these
// into the detail modal shape.
func (r *ActivityRepository) GetInboundDetailRows(receiptID string) ([]services.InboundDetailRow, error) {
	sql := `SELECT
		a.id AS header_id,
		a.receipt_id,
		b.supplier_name,
		a.inbound_date,
		a.status,
		a.created_at,
		a.updated_at,
		c.item_code,
		c.quantity,
		d.item_name AS product_name,
		c.item_code AS sku
		FROM inbound_headers a
		LEFT JOIN suppliers b ON a.supplier_id = b.id
		LEFT JOIN inbound_details c ON a.id = c.inbound_id
		LEFT JOIN products d ON c.item_code = d.item_code
		WHERE a.receipt_id = ?
		ORDER BY a.created_at DESC`

	var rows []services.InboundDetailRow
	if err := r.db.Raw(sql, receiptID).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *ActivityRepository) GetOutboundDetailRows(shipmentID string) ([]services.OutboundDetailRow, error) {
	sql := `SELECT
		a.id AS header_id,
		a.shipment_id,
		b.customer_name,
		a.outbound_date,
		a.status,
		a.created_at,
		a.updated_at,
		c.item_code,
		c.quantity,
		d.item_name AS product_name,
		c.item_code AS sku
		FROM outbound_headers a
		LEFT JOIN customers b ON a.customer_code = b.customer_code
		LEFT JOIN outbound_details c ON a.id = c.outbound_id
		LEFT JOIN products d ON c.item_code = d.item_code
		WHERE a.shipment_id = ?
		ORDER BY a.created_at DESC`

	var rows []services.OutboundDetailRow
	if err := r.db.Raw(sql, shipmentID).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
