package models

import (
	"gorm.io/gorm"
)

type Product struct {
	gorm.Model
	ItemCode  string  `json:"item_code" gorm:"unique"`
	ItemName  string  `json:"item_name"`
	Barcode   string  `json:"barcode"`
	Category  string  `json:"category"`
	Uom       string  `json:"uom"`
	Cbm       float64 `json:"cbm"`
	HasSerial string  `json:"has_serial" gorm:"default:'N'"`
	CreatedBy int
	UpdatedBy int
}

type Inventory struct {
	gorm.Model
	ItemID       int    `json:"item_id" gorm:"index"`
	Barcode      string `json:"barcode"`
	OwnerCode    string `json:"owner_code"`
	WhsCode      string `json:"whs_code"`
	Location     string `json:"location"`
	QaStatus     string `json:"qa_status"`
	QtyOrigin    int    `json:"qty_origin"`
	QtyOnhand    int    `json:"qty_onhand"`
	QtyAvailable int    `json:"qty_available"`
	QtyAllocated int    `json:"qty_allocated"`
	QtyShipped   int    `json:"qty_shipped"`
	CreatedBy    int
	UpdatedBy    int
}
