package repositories

import (
	"dashboard-app/services"

	"gorm.io/gorm"
)

type LogisticsRepository struct {
	db *gorm.DB
}

func NewLogisticsRepository(db *gorm.DB) *LogisticsRepository {
	return &LogisticsRepository{db: db}
}

// GetInboundTransactionsByDate returns requested quantity summed per
// receipt date across all non-cancelled receipts. Bucketing into a
// single month happens in the service.
func (r *LogisticsRepository) GetInboundTransactionsByDate() ([]services.DatedQuantity, error) {
	sql := `SELECT a.inbound_date AS date,
		COALESCE(SUM(b.quantity), 0) AS quantity
		FROM inbound_headers a
		LEFT JOIN inbound_details b ON a.id = b.inbound_id
		WHERE a.status <> 'cancel'
		GROUP BY a.inbound_date
		ORDER BY a.inbound_date ASC`

	var rows []services.DatedQuantity
	if err := r.db.Raw(sql).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *LogisticsRepository) GetOutboundTransactionsByDate() ([]services.DatedQuantity, error) {
	sql := `SELECT a.outbound_date AS date,
		COALESCE(SUM(b.quantity), 0) AS quantity
		FROM outbound_headers a
		LEFT JOIN outbound_details b ON a.id = b.outbound_id
		WHERE a.status <> 'cancel'
		GROUP BY a.outbound_date
		ORDER BY a.outbound_date ASC`

	var rows []services.DatedQuantity
	if err := r.db.Raw(sql).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// GetInboundStatusTotals returns requested quantity summed per status.
// Percentage shares are computed in the service with decimal math.
func (r *LogisticsRepository) GetInboundStatusTotals() ([]services.StatusQuantity, error) {
	sql := `SELECT a.status,
		COALESCE(SUM(b.quantity), 0) AS quantity
		FROM inbound_headers a
		LEFT JOIN inbound_details b ON a.id = b.inbound_id
		WHERE a.status <> 'cancel'
		GROUP BY a.status`

	var rows []services.StatusQuantity
	if err := r.db.Raw(sql).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *LogisticsRepository) GetOutboundStatusTotals() ([]services.StatusQuantity, error) {
	sql := `SELECT a.status,
		COALESCE(SUM(b.quantity), 0) AS quantity
		FROM outbound_headers a
		LEFT JOIN outbound_details b ON a.id = b.outbound_id
		WHERE a.status <> 'cancel'
		GROUP BY a.status`

	var rows []services.StatusQuantity
	if err := r.db.Raw(sql).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
