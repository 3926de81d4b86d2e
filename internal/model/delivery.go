package model

import "time"

// EquipmentDelivery records equipment handed out to a beneficiary unit.
type EquipmentDelivery struct {
	ID               int64
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
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// DeliveredByUser is set when the delivering account still exists.
	DeliveredByUser *UserSummary
}
