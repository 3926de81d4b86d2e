package usecase

import (
	"context"
	"errors"
	"strings"

	"inventory-srv/internal/dispatch"
	"inventory-srv/internal/dispatch/repository"
	"inventory-srv/internal/model"
	"inventory-srv/internal/user"
	"inventory-srv/pkg/paginator"
)

func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input dispatch.CreateInput) (model.EquipmentDelivery, error) {
	input = trimCreateInput(input)
	if !isComplete(input) {
		return model.EquipmentDelivery{}, dispatch.ErrRequiredFields
	}
	if input.Quantity <= 0 {
		return model.EquipmentDelivery{}, dispatch.ErrInvalidQuantity
	}

	if err := uc.validateManager(ctx, input.WarehouseManager); err != nil {
		return model.EquipmentDelivery{}, err
	}

	d, err := uc.repo.Create(ctx, repository.CreateOptions{
		EquipmentName:    input.EquipmentName,
		Category:         input.Category,
		Quantity:         input.Quantity,
		BeneficiaryUnit:  input.BeneficiaryUnit,
		Beneficiary:      input.Beneficiary,
		Receiver:         input.Receiver,
		DeliveredBy:      sc.UserID,
		DeliveryDate:     input.DeliveryDate,
		ReferenceNumber:  input.ReferenceNumber,
		ReferenceDate:    input.ReferenceDate,
		WarehouseManager: input.WarehouseManager,
		UnitHead:         input.UnitHead,
		Notes:            input.Notes,
	})
	if err != nil {
		uc.l.Errorf(ctx, "dispatch.usecase.Create: repo.Create failed: %v", err)
		return model.EquipmentDelivery{}, err
	}

	if err := uc.producer.PublishDeliveryCreated(ctx, d); err != nil {
		uc.l.Warnf(ctx, "dispatch.usecase.Create: producer.PublishDeliveryCreated failed: %v", err)
	}

	return d, nil
}

func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input dispatch.ListInput) (dispatch.ListOutput, error) {
	q := input.Paginator
	q.Normalize()

	opt := repository.ListOptions{
		BeneficiaryUnit: strings.TrimSpace(input.BeneficiaryUnit),
		Limit:           q.Limit,
		Offset:          q.Offset(),
	}
	if r := input.Range; r != nil {
		if r.Start.IsZero() || r.End.IsZero() {
			return dispatch.ListOutput{}, dispatch.ErrDateRangeIncomplete
		}
		if r.Start.After(r.End) {
			return dispatch.ListOutput{}, dispatch.ErrInvalidDateRange
		}
		opt.From, opt.To = &r.Start, &r.End
	}

	ds, err := uc.repo.List(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "dispatch.usecase.List: repo.List failed: %v", err)
		return dispatch.ListOutput{}, err
	}

	total, err := uc.repo.Count(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "dispatch.usecase.List: repo.Count failed: %v", err)
		return dispatch.ListOutput{}, err
	}

	return dispatch.ListOutput{
		Deliveries: ds,
		Paginator:  paginator.NewPage(q, total, len(ds)),
	}, nil
}

func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id int64) (model.EquipmentDelivery, error) {
	d, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return model.EquipmentDelivery{}, uc.mapRepoError(ctx, "Detail", err)
	}
	return d, nil
}

// Update merges input over the stored record. A changed warehouse manager is validated again.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input dispatch.UpdateInput) (model.EquipmentDelivery, error) {
	if input.Quantity < 0 {
		return model.EquipmentDelivery{}, dispatch.ErrInvalidQuantity
	}

	cur, err := uc.repo.GetByID(ctx, input.ID)
	if err != nil {
		return model.EquipmentDelivery{}, uc.mapRepoError(ctx, "Update", err)
	}

	manager := strings.TrimSpace(input.WarehouseManager)
	if manager != "" && manager != cur.WarehouseManager {
		if err := uc.validateManager(ctx, manager); err != nil {
			return model.EquipmentDelivery{}, err
		}
	}

	opt := repository.UpdateOptions{
		ID:               cur.ID,
		EquipmentName:    pick(strings.TrimSpace(input.EquipmentName), cur.EquipmentName),
		Category:         pick(strings.TrimSpace(input.Category), cur.Category),
		Quantity:         pick(input.Quantity, cur.Quantity),
		BeneficiaryUnit:  pick(strings.TrimSpace(input.BeneficiaryUnit), cur.BeneficiaryUnit),
		Beneficiary:      pick(strings.TrimSpace(input.Beneficiary), cur.Beneficiary),
		Receiver:         pick(strings.TrimSpace(input.Receiver), cur.Receiver),
		DeliveryDate:     cur.DeliveryDate,
		ReferenceNumber:  pick(strings.TrimSpace(input.ReferenceNumber), cur.ReferenceNumber),
		ReferenceDate:    cur.ReferenceDate,
		WarehouseManager: pick(manager, cur.WarehouseManager),
		UnitHead:         pick(strings.TrimSpace(input.UnitHead), cur.UnitHead),
		Notes:            cur.Notes,
	}
	if input.DeliveryDate != nil {
		opt.DeliveryDate = *input.DeliveryDate
	}
	if input.ReferenceDate != nil {
		opt.ReferenceDate = *input.ReferenceDate
	}
	if input.NotesSet {
		opt.Notes = input.Notes
	}

	d, err := uc.repo.Update(ctx, opt)
	if err != nil {
		return model.EquipmentDelivery{}, uc.mapRepoError(ctx, "Update", err)
	}
	return d, nil
}

func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id int64) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return uc.mapRepoError(ctx, "Delete", err)
	}
	uc.l.Infof(ctx, "dispatch.usecase.Delete: delivery deleted id=%d by=%s", id, sc.UserID)
	return nil
}

func (uc *implUseCase) validateManager(ctx context.Context, name string) error {
	if _, err := uc.userUC.FindManagerByName(ctx, name); err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return dispatch.ErrInvalidManager
		}
		uc.l.Errorf(ctx, "dispatch.usecase.validateManager: userUC.FindManagerByName failed: %v", err)
		return err
	}
	return nil
}

func (uc *implUseCase) mapRepoError(ctx context.Context, op string, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return dispatch.ErrDeliveryNotFound
	}
	uc.l.Errorf(ctx, "dispatch.usecase.%s: repository failed: %v", op, err)
	return err
}
