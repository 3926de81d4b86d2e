package http

import (
	"inventory-srv/internal/dispatch"
	"inventory-srv/internal/model"
	"inventory-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary Record equipment delivery
// @Description The warehouse manager must be the name of a MANAGER account.
// @Tags Deliveries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body createReq true "Delivery"
// @Success 201 {object} deliveryResp
// @Failure 400 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Router /api/v1/deliveries [post]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	input, sc, err := h.processCreateRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "dispatch.delivery.http.Create: processCreateRequest failed: %v", err)
		response.Error(c, err)
		return
	}

	d, err := h.uc.Create(ctx, sc, input)
	if err != nil {
		h.l.Warnf(ctx, "dispatch.delivery.http.Create: usecase Create failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	h.l.Infof(ctx, "dispatch.delivery.http.Create: delivery recorded id=%d by=%s", d.ID, sc.UserID)
	response.Created(c, newDeliveryResp(d))
}

// @Summary List equipment deliveries
// @Tags Deliveries
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Success 200 {object} listResp
// @Router /api/v1/deliveries [get]
func (h *handler) List(c *gin.Context) {
	input, sc, err := h.processListRequest(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	h.list(c, sc, input)
}

// @Summary List deliveries in a date range
// @Description Inclusive on both ends. A date-only endDate covers the whole day.
// @Tags Deliveries
// @Produce json
// @Security BearerAuth
// @Param startDate query string true "Start date"
// @Param endDate query string true "End date"
// @Success 200 {object} listResp
// @Failure 400 {object} response.Resp
// @Router /api/v1/deliveries/date-range [get]
func (h *handler) ListByDateRange(c *gin.Context) {
	input, sc, err := h.processDateRangeRequest(c)
	if err != nil {
		h.l.Warnf(c.Request.Context(), "dispatch.delivery.http.ListByDateRange: processDateRangeRequest failed: %v", err)
		response.Error(c, err)
		return
	}
	h.list(c, sc, input)
}

// @Summary List deliveries by beneficiary unit
// @Tags Deliveries
// @Produce json
// @Security BearerAuth
// @Param unit path string true "Beneficiary unit"
// @Success 200 {object} listResp
// @Router /api/v1/deliveries/unit/{unit} [get]
func (h *handler) ListByUnit(c *gin.Context) {
	input, sc, err := h.processListRequest(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	input.BeneficiaryUnit = c.Param("unit")
	h.list(c, sc, input)
}

func (h *handler) list(c *gin.Context, sc model.Scope, input dispatch.ListInput) {
	o, err := h.uc.List(c.Request.Context(), sc, input)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, h.newListResp(o))
}

// @Summary Get equipment delivery
// @Tags Deliveries
// @Produce json
// @Security BearerAuth
// @Param id path int true "Delivery ID"
// @Success 200 {object} deliveryResp
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /api/v1/deliveries/{id} [get]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, sc, err := h.processDetailRequest(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	d, err := h.uc.Detail(ctx, sc, id)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newDeliveryResp(d))
}

// @Summary Update equipment delivery
// @Description Partial update. A changed warehouse manager is checked again.
// @Tags Deliveries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Delivery ID"
// @Param body body updateReq true "Fields to change"
// @Success 200 {object} deliveryResp
// @Failure 400 {object} response.Resp
// @Failure 403 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /api/v1/deliveries/{id} [put]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	input, sc, err := h.processUpdateRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "dispatch.delivery.http.Update: processUpdateRequest failed: %v", err)
		response.Error(c, err)
		return
	}

	d, err := h.uc.Update(ctx, sc, input)
	if err != nil {
		h.l.Warnf(ctx, "dispatch.delivery.http.Update: usecase Update failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newDeliveryResp(d))
}

// @Summary Delete equipment delivery
// @Tags Deliveries
// @Produce json
// @Security BearerAuth
// @Param id path int true "Delivery ID"
// @Success 200 {object} deleteResp
// @Failure 403 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /api/v1/deliveries/{id} [delete]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, sc, err := h.processDetailRequest(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.Delete(ctx, sc, id); err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, deleteResp{ID: id})
}
