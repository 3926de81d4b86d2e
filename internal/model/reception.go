package model

import "time"

// EquipmentReception records equipment received into the warehouse.
type EquipmentReception struct {
	ID               int64
	EquipmentName    string
	Category         string
	Quantity         int
	MinimumThreshold int
	SendingDept      string
	ReceptionDate    time.Time
	Notes            *string
	CreatedBy        string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// IsLowStock reports whether the quantity is below the minimum threshold.
func (r EquipmentReception) IsLowStock() bool {
	return r.Quantity < r.MinimumThreshold
}
