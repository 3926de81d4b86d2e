package postgre

import (
	"database/sql"
	"time"

	"inventory-srv/internal/model"
	"inventory-srv/internal/reception/repository"
	"inventory-srv/pkg/sqlfilter"
)

const receptionColumns = `id, equipment_name, category, quantity, minimum_threshold, sending_dept, reception_date, notes, created_by, created_at, updated_at`

type receptionRow struct {
	ID               int64          `db:"id"`
	EquipmentName    string         `db:"equipment_name"`
	Category         string         `db:"category"`
	Quantity         int            `db:"quantity"`
	MinimumThreshold int            `db:"minimum_threshold"`
	SendingDept      string         `db:"sending_dept"`
	ReceptionDate    time.Time      `db:"reception_date"`
	Notes            sql.NullString `db:"notes"`
	CreatedBy        string         `db:"created_by"`
	CreatedAt        time.Time      `db:"created_at"`
	UpdatedAt        time.Time      `db:"updated_at"`
}

func (r receptionRow) toModel() model.EquipmentReception {
	var notes *string
	if r.Notes.Valid {
		v := r.Notes.String
		notes = &v
	}
	return model.EquipmentReception{
		ID:               r.ID,
		EquipmentName:    r.EquipmentName,
		Category:         r.Category,
		Quantity:         r.Quantity,
		MinimumThreshold: r.MinimumThreshold,
		SendingDept:      r.SendingDept,
		ReceptionDate:    r.ReceptionDate,
		Notes:            notes,
		CreatedBy:        r.CreatedBy,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}

func toNullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func buildListFilter(opt repository.ListOptions) sqlfilter.Filter {
	var f sqlfilter.Filter
	f.AddIf(opt.Category != "", "category = ?", opt.Category)
	f.AddIf(opt.LowStock, "quantity < minimum_threshold")
	return f
}
