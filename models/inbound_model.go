package models

import (
	"gorm.io/gorm"
)

type InboundHeader struct {
	gorm.Model
	InboundNo   string `json:"inbound_no" gorm:"unique"`
	ReceiptID   string `json:"receipt_id" gorm:"index"`
	SupplierID  int    `json:"supplier_id" gorm:"default:null"`
	InboundDate string `json:"inbound_date"`
	Status      string `json:"status" gorm:"default:'open'"`
	Remarks     string `json:"remarks"`
	CreatedBy   int
	UpdatedBy   int

	InboundDetails []InboundDetail `gorm:"foreignKey:InboundID;references:ID;constraint:OnDelete:CASCADE" json:"inbound_details"`
}

type InboundDetail struct {
	gorm.Model
	InboundID int    `json:"inbound_id" gorm:"index"`
	ItemCode  string `json:"item_code"`
	Quantity  int    `json:"quantity"`
	Uom       string `json:"uom"`
	WhsCode   string `json:"whs_code"`
	CreatedBy int
	UpdatedBy int

	InboundBarcodes []InboundBarcode `gorm:"foreignKey:InboundDetailID;references:ID;constraint:OnDelete:CASCADE" json:"inbound_barcodes"`
}

// InboundBarcode is one scan event against a receipt. Status moves to
// 'in stock' once the scanned quantity is put away.
type InboundBarcode struct {
	gorm.Model
	InboundID       int    `json:"inbound_id" gorm:"index"`
	InboundDetailID int    `json:"inbound_detail_id"`
	ItemCode        string `json:"item_code"`
	Barcode         string `json:"barcode"`
	SerialNumber    string `json:"serial_number"`
	Quantity        int    `json:"quantity"`
	Status          string `json:"status" gorm:"default:'pending'"`
	CreatedBy       int
}

type Supplier struct {
	gorm.Model
	SupplierCode string `json:"supplier_code" gorm:"unique"`
	SupplierName string `json:"supplier_name"`
	Address      string `json:"address"`
	CreatedBy    int
	UpdatedBy    int
}
