package models

import (
	"gorm.io/gorm"
)

type OutboundHeader struct {
	gorm.Model
	OutboundNo   string `json:"outbound_no" gorm:"unique"`
	ShipmentID   string `json:"shipment_id" gorm:"index"`
	CustomerCode string `json:"customer_code"`
	OutboundDate string `json:"outbound_date"`
	Status       string `json:"status" gorm:"default:'open'"`
	Remarks      string `json:"remarks"`
	CreatedBy    int
	UpdatedBy    int

	OutboundDetails []OutboundDetail `gorm:"foreignKey:OutboundID;references:ID;constraint:OnDelete:CASCADE" json:"outbound_details"`
}

type OutboundDetail struct {
	gorm.Model
	OutboundID int    `json:"outbound_id" gorm:"index"`
	ItemCode   string `json:"item_code"`
	Barcode    string `json:"barcode"`
	Quantity   int    `json:"quantity"`
	Uom        string `json:"uom"`
	WhsCode    string `json:"whs_code"`
	CreatedBy  int
	UpdatedBy  int

	OutboundBarcodes []OutboundBarcode `gorm:"foreignKey:OutboundDetailID;references:ID;constraint:OnDelete:CASCADE" json:"outbound_barcodes"`
	OutboundPickings []OutboundPicking `gorm:"foreignKey:OutboundDetailID;references:ID;constraint:OnDelete:CASCADE" json:"outbound_pickings"`
}

// OutboundBarcode is one scan event at packing/loading.
type OutboundBarcode struct {
	gorm.Model
	OutboundID       int    `json:"outbound_id" gorm:"index"`
	OutboundDetailID int    `json:"outbound_detail_id"`
	ItemCode         string `json:"item_code"`
	SerialNumber     string `json:"serial_number"`
	Quantity         int    `json:"quantity"`
	Status           string `json:"status"`
	CreatedBy        int
}

// OutboundPicking records quantity pulled from an inventory slot
// against a shipment line.
type OutboundPicking struct {
	gorm.Model
	OutboundID       int `json:"outbound_id" gorm:"index"`
	OutboundDetailID int `json:"outbound_detail_id"`
	InventoryID      int `json:"inventory_id"`
	Quantity         int `json:"quantity"`
	CreatedBy        int
}

type Customer struct {
	gorm.Model
	CustomerCode string `json:"customer_code" gorm:"unique"`
	CustomerName string `json:"customer_name"`
	Address      string `json:"address"`
	CreatedBy    int
	UpdatedBy    int
}
