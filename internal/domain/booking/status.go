package booking

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// IsTerminal reports whether a booking in this status may never transition
// again.
func (s Status) IsTerminal() bool {
	switch s {
	case StatusRejected, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

func InitialStatus() Status {
	return StatusPending
}

// ActiveStatuses are the statuses that hold a booking's time slot: they block
// overlapping bookings and prevent window withdrawal.
func ActiveStatuses() []string {
	return []string{string(StatusPending), string(StatusApproved)}
}

// ===============================
// Payment sub-state
// ===============================

type PaymentStatus string

const (
	PaymentNone                 PaymentStatus = "none"
	PaymentAuthorized           PaymentStatus = "authorized"
	PaymentCaptured             PaymentStatus = "captured"
	PaymentCancelled            PaymentStatus = "cancelled"
	PaymentFailed               PaymentStatus = "failed"
	PaymentRequiresAction       PaymentStatus = "requires_action"
	PaymentRequiresConfirmation PaymentStatus = "requires_confirmation"
)
