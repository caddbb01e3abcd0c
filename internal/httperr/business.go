package httperr

import "errors"

// Machine-checkable business error codes. Handlers translate them into HTTP
// statuses; usecases never see the transport.
const (
	CodeInvalidRequest       = "invalid_request"
	CodeInvalidTimezone      = "invalid_timezone"
	CodeOverlap              = "overlap"
	CodeConflict             = "conflict"
	CodeNotFound             = "not_found"
	CodeForbidden            = "forbidden"
	CodeHasActiveBookings    = "has_active_bookings"
	CodeNoValidWindows       = "no_valid_windows"
	CodeAlreadyCaptured      = "already_captured"
	CodeAuthorizationExpired = "authorization_expired"
	CodeCaptureFailed        = "capture_failed"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func BusinessCode(err error) (string, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code, true
	}
	return "", false
}
