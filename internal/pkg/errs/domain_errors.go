package errs

import "errors"

// Sentinel errors shared by the usecase layers; handlers map these to HTTP statuses.
var (
	// Lookup errors
	ErrNotFound               = errors.New("not found")
	ErrOrderNotFound          = errors.New("order not found")
	ErrPaymentSessionNotFound = errors.New("payment session not found")

	// Ownership errors
	ErrCustomerMismatch = errors.New("customer mismatch")

	// Check-in / connect errors
	ErrConnectFieldsRequired = errors.New("customer_id, lane_id, and code required")
	ErrNotCheckedIn          = errors.New("not checked in to this lane")
)
