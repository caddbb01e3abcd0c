package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/AstralPath/consult-scheduler/internal/httperr"
	"github.com/AstralPath/consult-scheduler/internal/httpresp"
	ucSlots "github.com/AstralPath/consult-scheduler/internal/usecase/slots"
)

type SlotsHandler struct {
	computeUC *ucSlots.ComputeSlots
}

func NewSlotsHandler(computeUC *ucSlots.ComputeSlots) *SlotsHandler {
	return &SlotsHandler{computeUC: computeUC}
}

// Times is the public slot projection: every bookable start/end for the
// requested duration, across all superusers.
func (h *SlotsHandler) Times(c *gin.Context) {
	durationStr := c.Query("duration")
	if durationStr == "" {
		httperr.BadRequest(c, "invalid_request", "duration query parameter is required.")
		return
	}

	duration, err := strconv.Atoi(durationStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_request", "Duration must be 30, 60, or 90 minutes.")
		return
	}

	times, err := h.computeUC.Execute(c.Request.Context(), duration)
	if err != nil {
		writeBusinessError(c, err, "failed_to_compute_slots", "Failed to compute available times.")
		return
	}

	httpresp.List(c, times)
}
