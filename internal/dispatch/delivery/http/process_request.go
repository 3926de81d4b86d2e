package http

import (
	"strconv"
	"strings"
	"time"

	"inventory-srv/internal/dispatch"
	"inventory-srv/internal/model"
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

// parseOptionalDate returns nil for an empty value.
func parseOptionalDate(s string) (*time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	t, err := util.ParseDate(s)
	if err != nil {
		return nil, errInvalidDate
	}
	return &t, nil
}

func (h *handler) processCreateRequest(c *gin.Context) (dispatch.CreateInput, model.Scope, error) {
	sc, err := h.processScope(c)
	if err != nil {
		return dispatch.CreateInput{}, model.Scope{}, err
	}

	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return dispatch.CreateInput{}, sc, errRequiredFields
	}

	deliveryDate, err := util.ParseDate(req.DeliveryDate)
	if err != nil {
		return dispatch.CreateInput{}, sc, errInvalidDate
	}
	referenceDate, err := util.ParseDate(req.ReferenceDate)
	if err != nil {
		return dispatch.CreateInput{}, sc, errInvalidDate
	}
	return req.toInput(deliveryDate, referenceDate), sc, nil
}

func (h *handler) processListRequest(c *gin.Context) (dispatch.ListInput, model.Scope, error) {
	sc, err := h.processScope(c)
	if err != nil {
		return dispatch.ListInput{}, model.Scope{}, err
	}

	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return dispatch.ListInput{}, sc, errInvalidPagination
	}
	return dispatch.ListInput{Paginator: req.Query}, sc, nil
}

// processDateRangeRequest widens a date-only end bound to the end of that day.
func (h *handler) processDateRangeRequest(c *gin.Context) (dispatch.ListInput, model.Scope, error) {
	sc, err := h.processScope(c)
	if err != nil {
		return dispatch.ListInput{}, model.Scope{}, err
	}

	var req dateRangeReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return dispatch.ListInput{}, sc, errInvalidPagination
	}
	if strings.TrimSpace(req.StartDate) == "" || strings.TrimSpace(req.EndDate) == "" {
		return dispatch.ListInput{}, sc, errDateRangeRequired
	}

	start, err := util.ParseDate(req.StartDate)
	if err != nil {
		return dispatch.ListInput{}, sc, errInvalidDate
	}
	end, err := util.ParseDate(req.EndDate)
	if err != nil {
		return dispatch.ListInput{}, sc, errInvalidDate
	}
	if util.IsDateOnly(req.EndDate) {
		end = util.EndOfDay(end)
	}

	return dispatch.ListInput{
		Range:     &dispatch.DateRange{Start: start, End: end},
		Paginator: req.Query,
	}, sc, nil
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

func (h *handler) processUpdateRequest(c *gin.Context) (dispatch.UpdateInput, model.Scope, error) {
	id, sc, err := h.processDetailRequest(c)
	if err != nil {
		return dispatch.UpdateInput{}, sc, err
	}

	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return dispatch.UpdateInput{}, sc, errInvalidBody
	}

	deliveryDate, err := parseOptionalDate(req.DeliveryDate)
	if err != nil {
		return dispatch.UpdateInput{}, sc, err
	}
	referenceDate, err := parseOptionalDate(req.ReferenceDate)
	if err != nil {
		return dispatch.UpdateInput{}, sc, err
	}
	return req.toInput(id, deliveryDate, referenceDate), sc, nil
}
