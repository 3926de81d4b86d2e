package http

import (
	"inventory-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary Create equipment reception
// @Tags Equipment
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body createReq true "Reception"
// @Success 201 {object} receptionResp
// @Failure 400 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Router /api/v1/equipment [post]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	input, sc, err := h.processCreateRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "reception.delivery.http.Create: processCreateRequest failed: %v", err)
		response.Error(c, err)
		return
	}

	r, err := h.uc.Create(ctx, sc, input)
	if err != nil {
		h.l.Warnf(ctx, "reception.delivery.http.Create: usecase Create failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, newReceptionResp(r))
}

// @Summary List equipment receptions
// @Description Newest first.
// @Tags Equipment
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Success 200 {object} listResp
// @Router /api/v1/equipment [get]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	input, sc, err := h.processListRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "reception.delivery.http.List: processListRequest failed: %v", err)
		response.Error(c, err)
		return
	}

	o, err := h.uc.List(ctx, sc, input)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(o))
}

// @Summary List equipment receptions by category
// @Tags Equipment
// @Produce json
// @Security BearerAuth
// @Param category path string true "Category"
// @Success 200 {object} listResp
// @Router /api/v1/equipment/category/{category} [get]
func (h *handler) ListByCategory(c *gin.Context) {
	ctx := c.Request.Context()

	input, sc, err := h.processListRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "reception.delivery.http.ListByCategory: processListRequest failed: %v", err)
		response.Error(c, err)
		return
	}
	input.Category = c.Param("category")

	o, err := h.uc.List(ctx, sc, input)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(o))
}

// @Summary List low stock equipment
// @Description Receptions whose quantity is below the minimum threshold.
// @Tags Equipment
// @Produce json
// @Security BearerAuth
// @Success 200 {object} listResp
// @Router /api/v1/equipment/status/low-stock [get]
func (h *handler) ListLowStock(c *gin.Context) {
	ctx := c.Request.Context()

	input, sc, err := h.processListRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "reception.delivery.http.ListLowStock: processListRequest failed: %v", err)
		response.Error(c, err)
		return
	}
	input.LowStock = true

	o, err := h.uc.List(ctx, sc, input)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(o))
}

// @Summary Get equipment reception
// @Tags Equipment
// @Produce json
// @Security BearerAuth
// @Param id path int true "Reception ID"
// @Success 200 {object} receptionResp
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /api/v1/equipment/{id} [get]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, sc, err := h.processDetailRequest(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	r, err := h.uc.Detail(ctx, sc, id)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newReceptionResp(r))
}

// @Summary Update equipment reception
// @Description Partial update. Empty fields keep their value; notes null clears.
// @Tags Equipment
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Reception ID"
// @Param body body updateReq true "Fields to change"
// @Success 200 {object} receptionResp
// @Failure 403 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /api/v1/equipment/{id} [put]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	input, sc, err := h.processUpdateRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "reception.delivery.http.Update: processUpdateRequest failed: %v", err)
		response.Error(c, err)
		return
	}

	r, err := h.uc.Update(ctx, sc, input)
	if err != nil {
		h.l.Warnf(ctx, "reception.delivery.http.Update: usecase Update failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newReceptionResp(r))
}

// @Summary Delete equipment reception
// @Tags Equipment
// @Produce json
// @Security BearerAuth
// @Param id path int true "Reception ID"
// @Success 200 {object} deleteResp
// @Failure 403 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /api/v1/equipment/{id} [delete]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, sc, err := h.processDetailRequest(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.Delete(ctx, sc, id); err != nil {
		h.l.Warnf(ctx, "reception.delivery.http.Delete: usecase Delete failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	h.l.Infof(ctx, "reception.delivery.http.Delete: reception deleted id=%d by=%s", id, sc.UserID)
	response.OK(c, deleteResp{ID: id})
}
