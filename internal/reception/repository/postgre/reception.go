package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"inventory-srv/internal/model"
	"inventory-srv/internal/reception/repository"
)

func (r *implRepository) Create(ctx context.Context, opt repository.CreateOptions) (model.EquipmentReception, error) {
	now := time.Now().UTC()
	query := `
		INSERT INTO equipment_receptions
			(equipment_name, category, quantity, minimum_threshold, sending_dept, reception_date, notes, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
		RETURNING ` + receptionColumns

	var row receptionRow
	err := r.db.GetContext(ctx, &row, query,
		opt.EquipmentName, opt.Category, opt.Quantity, opt.MinimumThreshold,
		opt.SendingDept, opt.ReceptionDate, toNullString(opt.Notes), opt.CreatedBy, now)
	if err != nil {
		r.l.Errorf(ctx, "reception.repository.postgre.Create: %v", err)
		return model.EquipmentReception{}, fmt.Errorf("Create: %w", err)
	}
	return row.toModel(), nil
}

func (r *implRepository) GetByID(ctx context.Context, id int64) (model.EquipmentReception, error) {
	var row receptionRow
	err := r.db.GetContext(ctx, &row, `SELECT `+receptionColumns+` FROM equipment_receptions WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return model.EquipmentReception{}, repository.ErrNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "reception.repository.postgre.GetByID: %v", err)
		return model.EquipmentReception{}, fmt.Errorf("GetByID: %w", err)
	}
	return row.toModel(), nil
}

func (r *implRepository) List(ctx context.Context, opt repository.ListOptions) ([]model.EquipmentReception, error) {
	f := buildListFilter(opt)
	query := r.db.Rebind(`SELECT ` + receptionColumns + ` FROM equipment_receptions` + f.Where() +
		` ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?`)
	args := append(f.Args(), opt.Limit, opt.Offset)

	var rows []receptionRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		r.l.Errorf(ctx, "reception.repository.postgre.List: %v", err)
		return nil, fmt.Errorf("List: %w", err)
	}

	out := make([]model.EquipmentReception, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toModel())
	}
	return out, nil
}

func (r *implRepository) Count(ctx context.Context, opt repository.ListOptions) (int64, error) {
	f := buildListFilter(opt)
	query := r.db.Rebind(`SELECT COUNT(*) FROM equipment_receptions` + f.Where())

	var total int64
	if err := r.db.GetContext(ctx, &total, query, f.Args()...); err != nil {
		r.l.Errorf(ctx, "reception.repository.postgre.Count: %v", err)
		return 0, fmt.Errorf("Count: %w", err)
	}
	return total, nil
}

func (r *implRepository) Update(ctx context.Context, opt repository.UpdateOptions) (model.EquipmentReception, error) {
	query := `
		UPDATE equipment_receptions SET
			equipment_name = $2, category = $3, quantity = $4, minimum_threshold = $5,
			sending_dept = $6, reception_date = $7, notes = $8, updated_at = $9
		WHERE id = $1
		RETURNING ` + receptionColumns

	var row receptionRow
	err := r.db.GetContext(ctx, &row, query,
		opt.ID, opt.EquipmentName, opt.Category, opt.Quantity, opt.MinimumThreshold,
		opt.SendingDept, opt.ReceptionDate, toNullString(opt.Notes), time.Now().UTC())
	if errors.Is(err, sql.ErrNoRows) {
		return model.EquipmentReception{}, repository.ErrNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "reception.repository.postgre.Update: %v", err)
		return model.EquipmentReception{}, fmt.Errorf("Update: %w", err)
	}
	return row.toModel(), nil
}

func (r *implRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM equipment_receptions WHERE id = $1`, id)
	if err != nil {
		r.l.Errorf(ctx, "reception.repository.postgre.Delete: %v", err)
		return fmt.Errorf("Delete: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "reception.repository.postgre.Delete: %v", err)
		return fmt.Errorf("Delete: %w", err)
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}
