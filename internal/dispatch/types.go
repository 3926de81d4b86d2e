package dispatch

import (
	"time"

	"inventory-srv/internal/model"
	"inventory-srv/pkg/paginator"
)

type CreateInput struct {
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

// DateRange bounds delivery_date inclusively on both ends.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// ListInput lists newest first, or by delivery date descending when Range is set.
type ListInput struct {
	BeneficiaryUnit string
	Range           *DateRange
	Paginator       paginator.Query
}

type ListOutput struct {
	Deliveries []model.EquipmentDelivery
	Paginator  paginator.Page
}

// UpdateInput is a partial update: empty strings, zero numbers and nil dates keep the
// stored value. Notes replace the stored value only when NotesSet is true.
type UpdateInput struct {
	ID               int64
	EquipmentName    string
	Category         string
	Quantity         int
	BeneficiaryUnit  string
	Beneficiary      string
	Receiver         string
	DeliveryDate     *time.Time
	ReferenceNumber  string
	ReferenceDate    *time.Time
	WarehouseManager string
	UnitHead         string
	Notes            *string
	NotesSet         bool
}
