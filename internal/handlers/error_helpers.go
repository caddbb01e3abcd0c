package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/AstralPath/consult-scheduler/internal/httperr"
)

// writeBusinessError maps the business error taxonomy onto HTTP responses.
// Anything without a business code is an internal failure.
func writeBusinessError(c *gin.Context, err error, internalCode, internalMsg string) {
	code, ok := httperr.BusinessCode(err)
	if !ok {
		httperr.Internal(c, internalCode, internalMsg)
		return
	}

	switch code {
	case httperr.CodeInvalidRequest:
		httperr.BadRequest(c, code, "Invalid request.")
	case httperr.CodeInvalidTimezone:
		httperr.BadRequest(c, code, "Unknown timezone identifier.")
	case httperr.CodeOverlap:
		httperr.Conflict(c, code, "This time window overlaps an existing one.")
	case httperr.CodeConflict:
		httperr.Conflict(c, code, "This time is no longer available.")
	case httperr.CodeNotFound:
		httperr.NotFound(c, code, "Not found.")
	case httperr.CodeForbidden:
		httperr.Forbidden(c, code, "You are not allowed to perform this action.")
	case httperr.CodeHasActiveBookings:
		httperr.Conflict(c, code, "Window has pending or approved bookings.")
	case httperr.CodeNoValidWindows:
		httperr.BadRequest(c, code, "No valid future windows in the selected range.")
	case httperr.CodeAlreadyCaptured:
		httperr.Conflict(c, code, "Payment was already captured for this booking.")
	case httperr.CodeAuthorizationExpired:
		httperr.Conflict(c, code, "The payment authorization is no longer valid.")
	case httperr.CodeCaptureFailed:
		httperr.PaymentRequired(c, code, "Payment capture failed; the hold may have expired. Consider rejecting the booking instead.")
	default:
		httperr.BadRequest(c, code, "Request could not be processed.")
	}
}
