package http

import (
	"time"

	"inventory-srv/internal/dispatch"
	"inventory-srv/internal/model"
	"inventory-srv/pkg/paginator"
	"inventory-srv/pkg/util"
)

type createReq struct {
	EquipmentName    string  `json:"equipmentName" binding:"required"`
	Category         string  `json:"category" binding:"required"`
	Quantity         int     `json:"quantity" binding:"required"`
	BeneficiaryUnit  string  `json:"beneficiaryUnit" binding:"required"`
	Beneficiary      string  `json:"beneficiary" binding:"required"`
	Receiver         string  `json:"receiver" binding:"required"`
	DeliveryDate     string  `json:"deliveryDate" binding:"required"`
	ReferenceNumber  string  `json:"referenceNumber" binding:"required"`
	ReferenceDate    string  `json:"referenceDate" binding:"required"`
	WarehouseManager string  `json:"warehouseManager" binding:"required"`
	UnitHead         string  `json:"unitHead" binding:"required"`
	Notes            *string `json:"notes"`
}

func (r createReq) toInput(deliveryDate, referenceDate time.Time) dispatch.CreateInput {
	return dispatch.CreateInput{
		EquipmentName:    r.EquipmentName,
		Category:         r.Category,
		Quantity:         r.Quantity,
		BeneficiaryUnit:  r.BeneficiaryUnit,
		Beneficiary:      r.Beneficiary,
		Receiver:         r.Receiver,
		DeliveryDate:     deliveryDate,
		ReferenceNumber:  r.ReferenceNumber,
		ReferenceDate:    referenceDate,
		WarehouseManager: r.WarehouseManager,
		UnitHead:         r.UnitHead,
		Notes:            r.Notes,
	}
}

type updateReq struct {
	EquipmentName    string                `json:"equipmentName"`
	Category         string                `json:"category"`
	Quantity         int                   `json:"quantity"`
	BeneficiaryUnit  string                `json:"beneficiaryUnit"`
	Beneficiary      string                `json:"beneficiary"`
	Receiver         string                `json:"receiver"`
	DeliveryDate     string                `json:"deliveryDate"`
	ReferenceNumber  string                `json:"referenceNumber"`
	ReferenceDate    string                `json:"referenceDate"`
	WarehouseManager string                `json:"warehouseManager"`
	UnitHead         string                `json:"unitHead"`
	Notes            util.Optional[string] `json:"notes" swaggertype:"string"`
}

func (r updateReq) toInput(id int64, deliveryDate, referenceDate *time.Time) dispatch.UpdateInput {
	return dispatch.UpdateInput{
		ID:               id,
		EquipmentName:    r.EquipmentName,
		Category:         r.Category,
		Quantity:         r.Quantity,
		BeneficiaryUnit:  r.BeneficiaryUnit,
		Beneficiary:      r.Beneficiary,
		Receiver:         r.Receiver,
		DeliveryDate:     deliveryDate,
		ReferenceNumber:  r.ReferenceNumber,
		ReferenceDate:    referenceDate,
		WarehouseManager: r.WarehouseManager,
		UnitHead:         r.UnitHead,
		Notes:            r.Notes.Value,
		NotesSet:         r.Notes.Set,
	}
}

type listReq struct {
	paginator.Query
}

type dateRangeReq struct {
	paginator.Query
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
}

type deliveredByResp struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

type deliveryResp struct {
	ID               int64            `json:"id"`
	EquipmentName    string           `json:"equipmentName"`
	Category         string           `json:"category"`
	Quantity         int              `json:"quantity"`
	BeneficiaryUnit  string           `json:"beneficiaryUnit"`
	Beneficiary      string           `json:"beneficiary"`
	Receiver         string           `json:"receiver"`
	DeliveredBy      string           `json:"deliveredBy"`
	DeliveryDate     time.Time        `json:"deliveryDate"`
	ReferenceNumber  string           `json:"referenceNumber"`
	ReferenceDate    time.Time        `json:"referenceDate"`
	WarehouseManager string           `json:"warehouseManager"`
	UnitHead         string           `json:"unitHead"`
	Notes            *string          `json:"notes"`
	CreatedAt        time.Time        `json:"createdAt"`
	UpdatedAt        time.Time        `json:"updatedAt"`
	DeliveredByUser  *deliveredByResp `json:"deliveredByUser"`
}

func newDeliveryResp(d model.EquipmentDelivery) deliveryResp {
	resp := deliveryResp{
		ID:               d.ID,
		EquipmentName:    d.EquipmentName,
		Category:         d.Category,
		Quantity:         d.Quantity,
		BeneficiaryUnit:  d.BeneficiaryUnit,
		Beneficiary:      d.Beneficiary,
		Receiver:         d.Receiver,
		DeliveredBy:      d.DeliveredBy,
		DeliveryDate:     d.DeliveryDate,
		ReferenceNumber:  d.ReferenceNumber,
		ReferenceDate:    d.ReferenceDate,
		WarehouseManager: d.WarehouseManager,
		UnitHead:         d.UnitHead,
		Notes:            d.Notes,
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}
	if u := d.DeliveredByUser; u != nil {
		resp.DeliveredByUser = &deliveredByResp{
			ID:    u.ID,
			Email: u.Email,
			Name:  u.Name,
			Role:  u.Role,
		}
	}
	return resp
}

type listResp struct {
	Deliveries []deliveryResp `json:"deliveries"`
	Count      int64          `json:"count"`
	Paginator  paginator.Page `json:"paginator"`
}

func (h *handler) newListResp(o dispatch.ListOutput) listResp {
	return listResp{
		Deliveries: util.MapSlice(o.Deliveries, newDeliveryResp),
		Count:      o.Paginator.Total,
		Paginator:  o.Paginator,
	}
}

type deleteResp struct {
	ID int64 `json:"id"`
}
