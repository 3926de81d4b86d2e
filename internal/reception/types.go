package reception

import (
	"time"

	"inventory-srv/internal/model"
	"inventory-srv/pkg/paginator"
)

type CreateInput struct {
	EquipmentName    string
	Category         string
	Quantity         int
	MinimumThreshold int
	SendingDept      string
	ReceptionDate    time.Time
	Notes            *string
}

// ListInput filters are combined with AND. Empty values do not filter.
type ListInput struct {
	Category  string
	LowStock  bool
	Paginator paginator.Query
}

type ListOutput struct {
	Receptions []model.EquipmentReception
	Paginator  paginator.Page
}

// UpdateInput is a partial update: empty strings, zero numbers and a nil date keep the
// stored value. Notes replace the stored value only when NotesSet is true.
type UpdateInput struct {
	ID               int64
	EquipmentName    string
	Category         string
	Quantity         int
	MinimumThreshold int
	SendingDept      string
	ReceptionDate    *time.Time
	Notes            *string
	NotesSet         bool
}
