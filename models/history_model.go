package models

import (
	"time"
)

// HistoryRecord is the canonical row shape returned by the outbound
// history search, regardless of whether it came from the live tables or
// the legacy archive. The legacy table names a few columns differently
// (e.g. transporter instead of transporter_name); those are aliased in
// the legacy query so callers never see the difference.
type HistoryRecord struct {
	ShipmentID      string `json:"shipment_id"`
	OutboundNo      string `json:"outbound_no"`
	OutboundDate    string `json:"outbound_date"`
	Customer        string `json:"customer"`
	ItemCode        string `json:"item_code"`
	Ean             string `json:"ean"`
	SerialNumber    string `json:"serial_number"`
	Quantity        int    `json:"quantity"`
	PicScan         string `json:"pic_scan"`
	TanggalScan     string `json:"tanggal_scan"`
	SpkNumber       string `json:"spk_number"`
	DeliveryDate    string `json:"delivery_date"`
	Driver          string `json:"driver"`
	TransporterName string `json:"transporter_name"`
	TruckSize       string `json:"truck_size"`
	TruckNo         string `json:"truck_no"`
	RemarksSpkDtl   string `json:"remarks_spk_dtl"`
}

// OutboundHistory maps the legacy archive table migrated from the old
// system. Column names diverge from the live schema.
type OutboundHistory struct {
	ID            uint   `json:"id" gorm:"primaryKey"`
	ShipmentID    string `json:"shipment_id" gorm:"index"`
	OutboundNo    string `json:"outbound_no"`
	OutboundDate  string `json:"outbound_date"`
	Customer      string `json:"customer"`
	ItemCode      string `json:"item_code"`
	Ean           string `json:"ean"`
	SerialNumber  string `json:"serial_number"`
	Quantity      int    `json:"quantity"`
	PicScan       string `json:"pic_scan"`
	TanggalScan   string `json:"tanggal_scan"`
	SpkNumber     string `json:"spk_number"`
	DeliveryDate  string `json:"delivery_date"`
	Driver        string `json:"driver"`
	Transporter   string `json:"transporter"`
	TruckSize     string `json:"truck_size"`
	TruckNo       string `json:"truck_no"`
	RemarksSpkDtl string `json:"remarks_spk_dtl"`
	CreatedAt     time.Time
}

func (OutboundHistory) TableName() string {
	return "outbound_history_1"
}
