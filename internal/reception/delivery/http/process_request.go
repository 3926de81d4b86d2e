package http

import (
	"strconv"
	"time"

	"inventory-srv/internal/model"
	"inventory-srv/internal/reception"
	"inventory-srv/pkg/scope"
	"inventory-srv/pkg/util"

	"github.com/gin-gonic/gin"
)

func (h *handler) processScope(c *gin.Context) (model.Scope, error) {
	sc, ok := scope.GetScopeFromContext(c.Request.Context())
	if !ok {
		return model.Scope{}, errUnauthenticated
	}
	return sc, nil
}

func (h *handler) processID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}

func (h *handler) processCreateRequest(c *gin.Context) (reception.CreateInput, model.Scope, error) {
	sc, err := h.processScope(c)
	if err != nil {
		return reception.CreateInput{}, model.Scope{}, err
	}

	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return reception.CreateInput{}, sc, errRequiredFields
	}

	date, err := util.ParseDate(req.ReceptionDate)
	if err != nil {
		return reception.CreateInput{}, sc, errInvalidDate
	}
	return req.toInput(date), sc, nil
}

func (h *handler) processListRequest(c *gin.Context) (reception.ListInput, model.Scope, error) {
	sc, err := h.processScope(c)
	if err != nil {
		return reception.ListInput{}, model.Scope{}, err
	}

	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return reception.ListInput{}, sc, errInvalidPagination
	}
	return reception.ListInput{Paginator: req.Query}, sc, nil
}

func (h *handler) processDetailRequest(c *gin.Context) (int64, model.Scope, error) {
	sc, err := h.processScope(c)
	if err != nil {
		return 0, model.Scope{}, err
	}

	id, err := h.processID(c)
	if err != nil {
		return 0, sc, err
	}
	return id, sc, nil
}

func (h *handler) processUpdateRequest(c *gin.Context) (reception.UpdateInput, model.Scope, error) {
	id, sc, err := h.processDetailRequest(c)
	if err != nil {
		return reception.UpdateInput{}, sc, err
	}

	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return reception.UpdateInput{}, sc, errInvalidBody
	}

	var date *time.Time
	if req.ReceptionDate != "" {
		d, err := util.ParseDate(req.ReceptionDate)
		if err != nil {
			return reception.UpdateInput{}, sc, errInvalidDate
		}
		date = &d
	}
	return req.toInput(id, date), sc, nil
}
