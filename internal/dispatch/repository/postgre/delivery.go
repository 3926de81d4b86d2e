package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"inventory-srv/internal/dispatch/repository"
	"inventory-srv/internal/model"
)

func (r *implRepository) Create(ctx context.Context, opt repository.CreateOptions) (model.EquipmentDelivery, error) {
	query := `
		WITH d AS (
			INSERT INTO equipment_deliveries
				(equipment_name, category, quantity, beneficiary_unit, beneficiary, receiver, delivered_by,
				 delivery_date, reference_number, reference_date, warehouse_manager, unit_head, notes,
				 created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $14)
			RETURNING *
		)
		SELECT ` + deliveryColumns + ` FROM d` + deliveryJoin

	var row deliveryRow
	err := r.db.GetContext(ctx, &row, query,
		opt.EquipmentName, opt.Category, opt.Quantity, opt.BeneficiaryUnit, opt.Beneficiary, opt.Receiver,
		opt.DeliveredBy, opt.DeliveryDate, opt.ReferenceNumber, opt.ReferenceDate, opt.WarehouseManager,
		opt.UnitHead, toNullString(opt.Notes), time.Now().UTC())
	if err != nil {
		r.l.Errorf(ctx, "dispatch.repository.postgre.Create: %v", err)
		return model.EquipmentDelivery{}, fmt.Errorf("Create: %w", err)
	}
	return row.toModel(), nil
}

func (r *implRepository) GetByID(ctx context.Context, id int64) (model.EquipmentDelivery, error) {
	query := `SELECT ` + deliveryColumns + ` FROM equipment_deliveries d` + deliveryJoin + ` WHERE d.id = $1`

	var row deliveryRow
	err := r.db.GetContext(ctx, &row, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return model.EquipmentDelivery{}, repository.ErrNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "dispatch.repository.postgre.GetByID: %v", err)
		return model.EquipmentDelivery{}, fmt.Errorf("GetByID: %w", err)
	}
	return row.toModel(), nil
}

func (r *implRepository) List(ctx context.Context, opt repository.ListOptions) ([]model.EquipmentDelivery, error) {
	f, order := buildListFilter(opt)
	query := r.db.Rebind(`SELECT ` + deliveryColumns + ` FROM equipment_deliveries d` + deliveryJoin +
		f.Where() + order + ` LIMIT ? OFFSET ?`)
	args := append(f.Args(), opt.Limit, opt.Offset)

	var rows []deliveryRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		r.l.Errorf(ctx, "dispatch.repository.postgre.List: %v", err)
		return nil, fmt.Errorf("List: %w", err)
	}

	out := make([]model.EquipmentDelivery, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toModel())
	}
	return out, nil
}

func (r *implRepository) Count(ctx context.Context, opt repository.ListOptions) (int64, error) {
	f, _ := buildListFilter(opt)
	query := r.db.Rebind(`SELECT COUNT(*) FROM equipment_deliveries d` + f.Where())

	var total int64
	if err := r.db.GetContext(ctx, &total, query, f.Args()...); err != nil {
		r.l.Errorf(ctx, "dispatch.repository.postgre.Count: %v", err)
		return 0, fmt.Errorf("Count: %w", err)
	}
	return total, nil
}

func (r *implRepository) Update(ctx context.Context, opt repository.UpdateOptions) (model.EquipmentDelivery, error) {
	query := `
		WITH d AS (
			UPDATE equipment_deliveries SET
				equipment_name = $2, category = $3, quantity = $4, beneficiary_unit = $5, beneficiary = $6,
				receiver = $7, delivery_date = $8, reference_number = $9, reference_date = $10,
				warehouse_manager = $11, unit_head = $12, notes = $13, updated_at = $14
			WHERE id = $1
			RETURNING *
		)
		SELECT ` + deliveryColumns + ` FROM d` + deliveryJoin

	var row deliveryRow
	err := r.db.GetContext(ctx, &row, query,
		opt.ID, opt.EquipmentName, opt.Category, opt.Quantity, opt.BeneficiaryUnit, opt.Beneficiary,
		opt.Receiver, opt.DeliveryDate, opt.ReferenceNumber, opt.ReferenceDate, opt.WarehouseManager,
		opt.UnitHead, toNullString(opt.Notes), time.Now().UTC())
	if errors.Is(err, sql.ErrNoRows) {
		return model.EquipmentDelivery{}, repository.ErrNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "dispatch.repository.postgre.Update: %v", err)
		return model.EquipmentDelivery{}, fmt.Errorf("Update: %w", err)
	}
	return row.toModel(), nil
}

func (r *implRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM equipment_deliveries WHERE id = $1`, id)
	if err != nil {
		r.l.Errorf(ctx, "dispatch.repository.postgre.Delete: %v", err)
		return fmt.Errorf("Delete: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "dispatch.repository.postgre.Delete: %v", err)
		return fmt.Errorf("Delete: %w", err)
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}
