package repository

import "time"

type CreateOptions struct {
	EquipmentName    string
	Category         string
	Quantity         int
	MinimumThreshold int
	SendingDept      string
	ReceptionDate    time.Time
	Notes            *string
	CreatedBy        string
}

type ListOptions struct {
	Category string
	LowStock bool
	Limit    int
	Offset   int
}

// UpdateOptions carries the full merged record.
type UpdateOptions struct {
	ID               int64
	EquipmentName    string
	Category         string
	Quantity         int
	MinimumThreshold int
	SendingDept      string
	ReceptionDate    time.Time
	Notes            *string
}
