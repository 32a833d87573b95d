package repositories

import (
	"fmt"
	"strings"

	"dashboard-app/models"

	"gorm.io/gorm"
)

type HistoryRepository struct {
	db *gorm.DB
}

func NewHistoryRepository(db *gorm.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// SearchCurrent runs the substring search over the flat view of the
// live outbound, order and transport tables. The column name must come
// from services.ResolveFilterColumn since it is interpolated into the
// statement; the keyword is always bound as a parameter.
func (r *HistoryRepository) SearchCurrent(column string, keyword string) ([]models.HistoryRecord, error) {
	sql := fmt.Sprintf(`WITH ob AS (
		SELECT
		a.shipment_id, COALESCE(d.quantity, 0) AS quantity,
		a.outbound_date, a.outbound_no, b.customer_name AS customer,
		e.name AS pic_scan, CONVERT(varchar(16), d.created_at, 120) AS tanggal_scan,
		f.order_no AS spk_number, g.load_date AS delivery_date, g.driver, g.transporter_name,
		g.truck_size, g.truck_no, f.remarks AS remarks_spk_dtl,
		c.item_code, c.barcode AS ean, d.serial_number
		FROM outbound_headers a
		INNER JOIN customers b ON a.customer_code = b.customer_code
		INNER JOIN outbound_details c ON a.id = c.outbound_id
		LEFT JOIN outbound_barcodes d ON d.outbound_detail_id = c.id
		LEFT JOIN users e ON d.created_by = e.id
		LEFT JOIN order_details f ON a.shipment_id = f.shipment_id
		LEFT JOIN order_headers g ON f.order_id = g.id
	)
	SELECT * FROM ob WHERE LOWER(%s) LIKE ?`, column)

	var rows []models.HistoryRecord
	if err := r.db.Raw(sql, likePattern(keyword)).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// SearchLegacy runs the same substring search against the archive table
// migrated from the old system. Its divergent column names are aliased
// here onto the canonical HistoryRecord shape so the schema difference
// never leaks to callers.
func (r *HistoryRepository) SearchLegacy(column string, keyword string) ([]models.HistoryRecord, error) {
	sql := fmt.Sprintf(`SELECT
		shipment_id, quantity, outbound_date, outbound_no, customer,
		pic_scan, tanggal_scan, spk_number, delivery_date, driver,
		transporter AS transporter_name, truck_size, truck_no,
		remarks_spk_dtl, item_code, ean, serial_number
		FROM outbound_history_1
		WHERE LOWER(%s) LIKE ?`, column)

	var rows []models.HistoryRecord
	if err := r.db.Raw(sql, likePattern(keyword)).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func likePattern(keyword string) string {
	return "%" + strings.ToLower(keyword) + "%"
}
