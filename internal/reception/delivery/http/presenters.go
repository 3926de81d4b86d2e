package http

import (
	"time"

	"inventory-srv/internal/model"
	"inventory-srv/internal/reception"
	"inventory-srv/pkg/paginator"
	"inventory-srv/pkg/util"
)

type createReq struct {
	EquipmentName    string  `json:"equipmentName" binding:"required"`
	Category         string  `json:"category" binding:"required"`
	Quantity         int     `json:"quantity" binding:"required"`
	MinimumThreshold int     `json:"minimumThreshold" binding:"required"`
	SendingDept      string  `json:"sendingDept" binding:"required"`
	ReceptionDate    string  `json:"receptionDate" binding:"required"`
	Notes            *string `json:"notes"`
}

func (r createReq) toInput(date time.Time) reception.CreateInput {
	return reception.CreateInput{
		EquipmentName:    r.EquipmentName,
		Category:         r.Category,
		Quantity:         r.Quantity,
		MinimumThreshold: r.MinimumThreshold,
		SendingDept:      r.SendingDept,
		ReceptionDate:    date,
		Notes:            r.Notes,
	}
}

type updateReq struct {
	EquipmentName    string                `json:"equipmentName"`
	Category         string                `json:"category"`
	Quantity         int                   `json:"quantity"`
	MinimumThreshold int                   `json:"minimumThreshold"`
	SendingDept      string                `json:"sendingDept"`
	ReceptionDate    string                `json:"receptionDate"`
	Notes            util.Optional[string] `json:"notes" swaggertype:"string"`
}

func (r updateReq) toInput(id int64, date *time.Time) reception.UpdateInput {
	return reception.UpdateInput{
		ID:               id,
		EquipmentName:    r.EquipmentName,
		Category:         r.Category,
		Quantity:         r.Quantity,
		MinimumThreshold: r.MinimumThreshold,
		SendingDept:      r.SendingDept,
		ReceptionDate:    date,
		Notes:            r.Notes.Value,
		NotesSet:         r.Notes.Set,
	}
}

type listReq struct {
	paginator.Query
}

type receptionResp struct {
	ID               int64     `json:"id"`
	EquipmentName    string    `json:"equipmentName"`
	Category         string    `json:"category"`
	Quantity         int       `json:"quantity"`
	MinimumThreshold int       `json:"minimumThreshold"`
	SendingDept      string    `json:"sendingDept"`
	ReceptionDate    time.Time `json:"receptionDate"`
	Notes            *string   `json:"notes"`
	CreatedBy        string    `json:"createdBy"`
	LowStock         bool      `json:"lowStock"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

func newReceptionResp(r model.EquipmentReception) receptionResp {
	return receptionResp{
		ID:               r.ID,
		EquipmentName:    r.EquipmentName,
		Category:         r.Category,
		Quantity:         r.Quantity,
		MinimumThreshold: r.MinimumThreshold,
		SendingDept:      r.SendingDept,
		ReceptionDate:    r.ReceptionDate,
		Notes:            r.Notes,
		CreatedBy:        r.CreatedBy,
		LowStock:         r.IsLowStock(),
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}

type listResp struct {
	Receptions []receptionResp `json:"receptions"`
	Count      int64           `json:"count"`
	Paginator  paginator.Page  `json:"paginator"`
}

func (h *handler) newListResp(o reception.ListOutput) listResp {
	return listResp{
		Receptions: util.MapSlice(o.Receptions, newReceptionResp),
		Count:      o.Paginator.Total,
		Paginator:  o.Paginator,
	}
}

type deleteResp struct {
	ID int64 `json:"id"`
}
