package usecase

import (
	"context"
	"errors"
	"strings"

	"inventory-srv/internal/model"
	"inventory-srv/internal/reception"
	"inventory-srv/internal/reception/repository"
	"inventory-srv/pkg/paginator"
)

func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input reception.CreateInput) (model.EquipmentReception, error) {
	input.EquipmentName = strings.TrimSpace(input.EquipmentName)
	input.Category = strings.TrimSpace(input.Category)
	input.SendingDept = strings.TrimSpace(input.SendingDept)

	if input.EquipmentName == "" || input.Category == "" || input.SendingDept == "" || input.ReceptionDate.IsZero() {
		return model.EquipmentReception{}, reception.ErrRequiredFields
	}
	if input.Quantity <= 0 || input.MinimumThreshold <= 0 {
		return model.EquipmentReception{}, reception.ErrInvalidQuantity
	}

	r, err := uc.repo.Create(ctx, repository.CreateOptions{
		EquipmentName:    input.EquipmentName,
		Category:         input.Category,
		Quantity:         input.Quantity,
		MinimumThreshold: input.MinimumThreshold,
		SendingDept:      input.SendingDept,
		ReceptionDate:    input.ReceptionDate,
		Notes:            input.Notes,
		CreatedBy:        sc.UserID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "reception.usecase.Create: repo.Create failed: %v", err)
		return model.EquipmentReception{}, err
	}

	if err := uc.producer.PublishReceptionCreated(ctx, r); err != nil {
		uc.l.Warnf(ctx, "reception.usecase.Create: producer.PublishReceptionCreated failed: %v", err)
	}

	return r, nil
}

func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input reception.ListInput) (reception.ListOutput, error) {
	q := input.Paginator
	q.Normalize()

	opt := repository.ListOptions{
		Category: strings.TrimSpace(input.Category),
		LowStock: input.LowStock,
		Limit:    q.Limit,
		Offset:   q.Offset(),
	}

	rs, err := uc.repo.List(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "reception.usecase.List: repo.List failed: %v", err)
		return reception.ListOutput{}, err
	}

	total, err := uc.repo.Count(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "reception.usecase.List: repo.Count failed: %v", err)
		return reception.ListOutput{}, err
	}

	return reception.ListOutput{
		Receptions: rs,
		Paginator:  paginator.NewPage(q, total, len(rs)),
	}, nil
}

func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id int64) (model.EquipmentReception, error) {
	r, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return model.EquipmentReception{}, uc.mapRepoError(ctx, "Detail", err)
	}
	return r, nil
}

// Update merges input over the stored record and writes the result.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input reception.UpdateInput) (model.EquipmentReception, error) {
	if input.Quantity < 0 || input.MinimumThreshold < 0 {
		return model.EquipmentReception{}, reception.ErrInvalidQuantity
	}

	cur, err := uc.repo.GetByID(ctx, input.ID)
	if err != nil {
		return model.EquipmentReception{}, uc.mapRepoError(ctx, "Update", err)
	}

	opt := repository.UpdateOptions{
		ID:               cur.ID,
		EquipmentName:    pick(strings.TrimSpace(input.EquipmentName), cur.EquipmentName),
		Category:         pick(strings.TrimSpace(input.Category), cur.Category),
		Quantity:         pick(input.Quantity, cur.Quantity),
		MinimumThreshold: pick(input.MinimumThreshold, cur.MinimumThreshold),
		SendingDept:      pick(strings.TrimSpace(input.SendingDept), cur.SendingDept),
		ReceptionDate:    cur.ReceptionDate,
		Notes:            cur.Notes,
	}
	if input.ReceptionDate != nil {
		opt.ReceptionDate = *input.ReceptionDate
	}
	if input.NotesSet {
		opt.Notes = input.Notes
	}

	r, err := uc.repo.Update(ctx, opt)
	if err != nil {
		return model.EquipmentReception{}, uc.mapRepoError(ctx, "Update", err)
	}
	return r, nil
}

func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id int64) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return uc.mapRepoError(ctx, "Delete", err)
	}
	return nil
}

func (uc *implUseCase) mapRepoError(ctx context.Context, op string, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return reception.ErrReceptionNotFound
	}
	uc.l.Errorf(ctx, "reception.usecase.%s: repository failed: %v", op, err)
	return err
}

// pick returns v unless it is the zero value.
func pick[T comparable](v, fallback T) T {
	var zero T
	if v == zero {
		return fallback
	}
	return v
}
