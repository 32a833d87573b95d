package models

import (
	"gorm.io/gorm"
)

// OrderHeader is the transport order (SPK) a shipment is loaded on.
type OrderHeader struct {
	gorm.Model
	OrderNo         string `json:"order_no" gorm:"unique"`
	LoadDate        string `json:"load_date"`
	Driver          string `json:"driver"`
	TransporterName string `json:"transporter_name"`
	TruckSize       string `json:"truck_size"`
	TruckNo         string `json:"truck_no"`
	CreatedBy       int
	UpdatedBy       int

	OrderDetails []OrderDetail `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE" json:"order_details"`
}

type OrderDetail struct {
	gorm.Model
	OrderID    int    `json:"order_id" gorm:"index"`
	OrderNo    string `json:"order_no"`
	ShipmentID string `json:"shipment_id" gorm:"index"`
	Remarks    string `json:"remarks"`
	CreatedBy  int
	UpdatedBy  int
}
