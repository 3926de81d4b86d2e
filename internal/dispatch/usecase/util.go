package usecase

import (
	"strings"

	"inventory-srv/internal/dispatch"
)

func trimCreateInput(in dispatch.CreateInput) dispatch.CreateInput {
	in.EquipmentName = strings.TrimSpace(in.EquipmentName)
	in.Category = strings.TrimSpace(in.Category)
	in.BeneficiaryUnit = strings.TrimSpace(in.BeneficiaryUnit)
	in.Beneficiary = strings.TrimSpace(in.Beneficiary)
	in.Receiver = strings.TrimSpace(in.Receiver)
	in.ReferenceNumber = strings.TrimSpace(in.ReferenceNumber)
	in.WarehouseManager = strings.TrimSpace(in.WarehouseManager)
	in.UnitHead = strings.TrimSpace(in.UnitHead)
	return in
}

// pick returns v unless it is the zero value.
func pick[T comparable](v, fallback T) T {
	var zero T
	if v == zero {
		return fallback
	}
	return v
}

func isComplete(in dispatch.CreateInput) bool {
	for _, s := range []string{
		in.EquipmentName, in.Category, in.BeneficiaryUnit, in.Beneficiary, in.Receiver,
		in.ReferenceNumber, in.WarehouseManager, in.UnitHead,
	} {
		if s == "" {
			return false
		}
	}
	return !in.DeliveryDate.IsZero() && !in.ReferenceDate.IsZero()
}
