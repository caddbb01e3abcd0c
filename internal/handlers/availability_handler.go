package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/AstralPath/consult-scheduler/internal/domain/availability"
	"github.com/AstralPath/consult-scheduler/internal/httperr"
	"github.com/AstralPath/consult-scheduler/internal/httpresp"
	"github.com/AstralPath/consult-scheduler/internal/middleware"
	ucAvailability "github.com/AstralPath/consult-scheduler/internal/usecase/availability"
)

type AvailabilityHandler struct {
	repo       domain.Repository
	createUC   *ucAvailability.CreateWindow
	withdrawUC *ucAvailability.WithdrawWindow
	bulkUC     *ucAvailability.GenerateBulk
}

func NewAvailabilityHandler(
	repo domain.Repository,
	createUC *ucAvailability.CreateWindow,
	withdrawUC *ucAvailability.WithdrawWindow,
	bulkUC *ucAvailability.GenerateBulk,
) *AvailabilityHandler {
	return &AvailabilityHandler{
		repo:       repo,
		createUC:   createUC,
		withdrawUC: withdrawUC,
		bulkUC:     bulkUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateWindowRequest struct {
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required"`
}

type BulkWindowRequest struct {
	Days      []int  `json:"days" binding:"required"`
	StartTime string `json:"startTime" binding:"required"`
	EndTime   string `json:"endTime" binding:"required"`
	FromDate  string `json:"fromDate" binding:"required"`
	ToDate    string `json:"toDate" binding:"required"`
	Timezone  string `json:"timezone"`
}

// ======================================================
// LIST (public)
// ======================================================

func (h *AvailabilityHandler) List(c *gin.Context) {
	var superuserID *uint
	if raw := c.Query("superuser_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			httperr.BadRequest(c, "invalid_request", "Invalid superuser_id.")
			return
		}
		v := uint(id)
		superuserID = &v
	}

	after := time.Now().UTC()
	if raw := c.Query("from"); raw != "" {
		from, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			httperr.BadRequest(c, "invalid_request", "Invalid from timestamp.")
			return
		}
		if from.After(after) {
			after = from.UTC()
		}
	}

	var until *time.Time
	if raw := c.Query("to"); raw != "" {
		to, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			httperr.BadRequest(c, "invalid_request", "Invalid to timestamp.")
			return
		}
		u := to.UTC()
		until = &u
	}

	windows, err := h.repo.ListFutureAvailable(c.Request.Context(), superuserID, after)
	if err != nil {
		httperr.Internal(c, "failed_to_list_windows", "Failed to fetch availability.")
		return
	}

	if until != nil {
		bounded := windows[:0]
		for _, w := range windows {
			if !w.StartTime.After(*until) {
				bounded = append(bounded, w)
			}
		}
		windows = bounded
	}

	httpresp.List(c, windows)
}

// ======================================================
// CREATE (superuser)
// ======================================================

func (h *AvailabilityHandler) Create(c *gin.Context) {
	actor := middleware.ActorFrom(c)

	var req CreateWindowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "start_time and end_time are required.")
		return
	}

	w, err := h.createUC.Execute(c.Request.Context(), ucAvailability.CreateWindowInput{
		SuperuserID: actor.UserID,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
	})
	if err != nil {
		writeBusinessError(c, err, "failed_to_create_window", "Failed to create availability window.")
		return
	}

	httpresp.Created(c, w)
}

// ======================================================
// WITHDRAW (superuser, soft delete)
// ======================================================

func (h *AvailabilityHandler) Withdraw(c *gin.Context) {
	actor := middleware.ActorFrom(c)
	id := c.Param("id")

	w, err := h.withdrawUC.Execute(c.Request.Context(), id, actor)
	if err != nil {
		writeBusinessError(c, err, "failed_to_withdraw_window", "Failed to withdraw availability window.")
		return
	}

	httpresp.OK(c, w)
}

// ======================================================
// BULK (superuser, recurring rule)
// ======================================================

func (h *AvailabilityHandler) Bulk(c *gin.Context) {
	actor := middleware.ActorFrom(c)

	var req BulkWindowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "days, startTime, endTime, fromDate and toDate are required.")
		return
	}

	res, err := h.bulkUC.Execute(c.Request.Context(), ucAvailability.GenerateBulkInput{
		SuperuserID: actor.UserID,
		Days:        req.Days,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		FromDate:    req.FromDate,
		ToDate:      req.ToDate,
		Timezone:    req.Timezone,
	})
	if err != nil {
		writeBusinessError(c, err, "failed_to_generate_windows", "Failed to create availability windows.")
		return
	}

	httpresp.Created(c, res)
}
