package repository

import "time"

type CreateOptions struct {
	EquipmentName    string
	Category         string
	Quantity         int
	BeneficiaryUnit  string
	Beneficiary      string
	Receiver         string
	DeliveredBy      string
	DeliveryDate     time.Time
	ReferenceNumber  string
	ReferenceDate    time.Time
	WarehouseManager string
	UnitHead         string
	Notes            *string
}

// ListOptions filters are combined with AND. A non-nil From/To switches the order to
// delivery_date descending.
type ListOptions struct {
	BeneficiaryUnit string
	From            *time.Time
	To              *time.Time
	Limit           int
	Offset          int
}

// UpdateOptions carries the full merged record.
type UpdateOptions struct {
	ID               int64
	EquipmentName    string
	Category         string
	Quantity         int
	BeneficiaryUnit  string
	Beneficiary      string
	Receiver         string
	DeliveryDate     time.Time
	ReferenceNumber  string
	ReferenceDate    time.Time
	WarehouseManager string
	UnitHead         string
	Notes            *string
}
