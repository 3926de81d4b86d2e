package postgre

import (
	"database/sql"
	"time"

	"inventory-srv/internal/dispatch/repository"
	"inventory-srv/internal/model"
	"inventory-srv/pkg/sqlfilter"
)

// deliveryColumns selects from equipment_deliveries d LEFT JOIN users u.
const deliveryColumns = `d.id, d.equipment_name, d.category, d.quantity, d.beneficiary_unit, d.beneficiary,
	d.receiver, d.delivered_by, d.delivery_date, d.reference_number, d.reference_date,
	d.warehouse_manager, d.unit_head, d.notes, d.created_at, d.updated_at,
	u.id AS user_id, u.email AS user_email, u.name AS user_name, u.role AS user_role`

const deliveryJoin = ` LEFT JOIN users u ON u.id = d.delivered_by`

type deliveryRow struct {
	ID               int64          `db:"id"`
	EquipmentName    string         `db:"equipment_name"`
	Category         string         `db:"category"`
	Quantity         int            `db:"quantity"`
	BeneficiaryUnit  string         `db:"beneficiary_unit"`
	Beneficiary      string         `db:"beneficiary"`
	Receiver         string         `db:"receiver"`
	DeliveredBy      string         `db:"delivered_by"`
	DeliveryDate     time.Time      `db:"delivery_date"`
	ReferenceNumber  string         `db:"reference_number"`
	ReferenceDate    time.Time      `db:"reference_date"`
	WarehouseManager string         `db:"warehouse_manager"`
	UnitHead         string         `db:"unit_head"`
	Notes            sql.NullString `db:"notes"`
	CreatedAt        time.Time      `db:"created_at"`
	UpdatedAt        time.Time      `db:"updated_at"`

	UserID    sql.NullString `db:"user_id"`
	UserEmail sql.NullString `db:"user_email"`
	UserName  sql.NullString `db:"user_name"`
	UserRole  sql.NullString `db:"user_role"`
}

func (r deliveryRow) toModel() model.EquipmentDelivery {
	d := model.EquipmentDelivery{
		ID:               r.ID,
		EquipmentName:    r.EquipmentName,
		Category:         r.Category,
		Quantity:         r.Quantity,
		BeneficiaryUnit:  r.BeneficiaryUnit,
		Beneficiary:      r.Beneficiary,
		Receiver:         r.Receiver,
		DeliveredBy:      r.DeliveredBy,
		DeliveryDate:     r.DeliveryDate,
		ReferenceNumber:  r.ReferenceNumber,
		ReferenceDate:    r.ReferenceDate,
		WarehouseManager: r.WarehouseManager,
		UnitHead:         r.UnitHead,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
	if r.Notes.Valid {
		v := r.Notes.String
		d.Notes = &v
	}
	if r.UserID.Valid {
		d.DeliveredByUser = &model.UserSummary{
			ID:    r.UserID.String,
			Email: r.UserEmail.String,
			Name:  r.UserName.String,
			Role:  r.UserRole.String,
		}
	}
	return d
}

func toNullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

// buildListFilter returns the filter for opt and the matching ORDER BY.
func buildListFilter(opt repository.ListOptions) (sqlfilter.Filter, string) {
	var f sqlfilter.Filter
	f.AddIf(opt.BeneficiaryUnit != "", "d.beneficiary_unit = ?", opt.BeneficiaryUnit)
	if opt.From != nil {
		f.Add("d.delivery_date >= ?", *opt.From)
	}
	if opt.To != nil {
		f.Add("d.delivery_date <= ?", *opt.To)
	}

	if opt.From != nil || opt.To != nil {
		return f, " ORDER BY d.delivery_date DESC, d.id DESC"
	}
	return f, " ORDER BY d.created_at DESC, d.id DESC"
}
