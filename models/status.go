package models

import (
	"fmt"
	"strings"
)

// OrderStatus is the closed set of lifecycle states an inbound or
// outbound header can be in. The warehouse tables store the status as a
// free-form string with inconsistent casing, so anything read from the
// database goes through ParseOrderStatus before it is compared.
type OrderStatus int

const (
	StatusOpen OrderStatus = iota
	StatusChecking
	StatusPicking
	StatusPartiallyReceived
	StatusFullyReceived
	StatusComplete
	StatusCancel
)

var statusNames = map[OrderStatus]string{
	StatusOpen:              "Open",
	StatusChecking:          "Checking",
	StatusPicking:           "Picking",
	StatusPartiallyReceived: "Partially Received",
	StatusFullyReceived:     "Fully Received",
	StatusComplete:          "Complete",
	StatusCancel:            "Cancel",
}

var statusByKey = map[string]OrderStatus{
	"open":               StatusOpen,
	"checking":           StatusChecking,
	"picking":            StatusPicking,
	"partially received": StatusPartiallyReceived,
	"fully received":     StatusFullyReceived,
	"complete":           StatusComplete,
	"cancel":             StatusCancel,
}

// ParseOrderStatus normalizes casing and inner whitespace and maps the
// value onto the closed status set. Unrecognized values are an error,
// not a default bucket.
func ParseOrderStatus(s string) (OrderStatus, error) {
	key := strings.Join(strings.Fields(strings.ToLower(s)), " ")
	status, ok := statusByKey[key]
	if !ok {
		return 0, fmt.Errorf("unrecognized order status %q", s)
	}
	return status, nil
}

// Label returns the canonical display form of the status.
func (s OrderStatus) Label() string {
	return statusNames[s]
}

func (s OrderStatus) String() string {
	return s.Label()
}
