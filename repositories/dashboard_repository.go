package repositories

import (
	"gorm.io/gorm"
)

type DashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) *DashboardRepository {
	return &DashboardRepository{db: db}
}

// ActivitySummaryRow is one open transaction on the landing dashboard,
// inbound and outbound folded into the same shape.
type ActivitySummaryRow struct {
	ID          uint   `json:"id"`
	NoRef       string `json:"no_ref"`
	ReferenceNo string `json:"reference_no"`
	Status      string `json:"status"`
	TransDate   string `json:"trans_date"`
	TotItem     int    `json:"tot_item"`
	TotQty      int    `json:"tot_qty"`
	TransType   string `json:"trans_type"`
}

// StockRow is one line of the inventory snapshot.
type StockRow struct {
	Barcode      string  `json:"barcode"`
	OwnerCode    string  `json:"owner_code"`
	Category     string  `json:"category"`
	ItemCode     string  `json:"item_code"`
	ItemName     string  `json:"item_name"`
	QaStatus     string  `json:"qa_status"`
	QtyIn        int     `json:"qty_in"`
	QtyOnhand    int     `json:"qty_onhand"`
	QtyAvailable int     `json:"qty_available"`
	QtyAllocated int     `json:"qty_allocated"`
	QtyOut       int     `json:"qty_out"`
	CbmPcs       float64 `json:"cbm_pcs"`
	CbmTotal     float64 `json:"cbm_total"`
}

// GetOpenActivitySummary unions the still-moving inbound and outbound
// headers with their item and quantity totals.
func (r *DashboardRepository) GetOpenActivitySummary() ([]ActivitySummaryRow, error) {
	sql := `WITH ib AS (
			SELECT ih.id, ih.inbound_no AS no_ref, ih.receipt_id AS reference_no, ih.status, ih.inbound_date AS trans_date, id.tot_item, id.tot_qty
			FROM inbound_headers ih
			INNER JOIN (
				SELECT inbound_id, COUNT(item_code) AS tot_item, SUM(quantity) AS tot_qty FROM inbound_details GROUP BY inbound_id
			) id ON ih.id = id.inbound_id
			WHERE ih.status NOT IN ('complete', 'cancel')
		), ob AS (
			SELECT oh.id, oh.outbound_no AS no_ref, oh.shipment_id AS reference_no, oh.status, oh.outbound_date AS trans_date, od.tot_item, od.tot_qty
			FROM outbound_headers oh
			INNER JOIN (
				SELECT outbound_id, COUNT(item_code) AS tot_item, SUM(quantity) AS tot_qty FROM outbound_details GROUP BY outbound_id
			) od ON oh.id = od.outbound_id
			WHERE oh.status NOT IN ('complete', 'cancel')
		)

		SELECT *, 'inbound' AS trans_type FROM ib
		UNION ALL
		SELECT *, 'outbound' AS trans_type FROM ob ORDER BY trans_type, no_ref DESC`

	var rows []ActivitySummaryRow
	if err := r.db.Raw(sql).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// GetStockSummary aggregates the on-hand inventory per item and QA
// status, with cubic volume derived from the product master.
func (r *DashboardRepository) GetStockSummary() ([]StockRow, error) {
	sql := `SELECT a.barcode,
		a.owner_code, b.category,
		b.item_code, b.item_name, a.qa_status,
		SUM(a.qty_origin) AS qty_in,
		SUM(a.qty_onhand) AS qty_onhand,
		SUM(a.qty_available) AS qty_available,
		SUM(a.qty_allocated) AS qty_allocated,
		SUM(a.qty_shipped) AS qty_out,
		b.cbm AS cbm_pcs,
		b.cbm * SUM(a.qty_available) AS cbm_total
		FROM inventories a
		INNER JOIN products b ON a.item_id = b.id
		WHERE a.qty_origin > 0
		GROUP BY b.item_code, b.item_name, a.qa_status,
		a.barcode, a.owner_code, b.category, b.cbm`

	var rows []StockRow
	if err := r.db.Raw(sql).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
