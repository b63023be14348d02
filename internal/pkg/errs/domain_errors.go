package errs

// Engine-wide error taxonomy. Usecases mark domain causes with one of these,
// handlers classify with Is.
var (
	ErrConflict        = New("conflict: resource in use")
	ErrNoCapacity      = New("no capacity available")
	ErrAlreadyParked   = New("vehicle already parked")
	ErrNotParked       = New("vehicle not parked")
	ErrInvalidInterval = New("invalid interval")
	ErrInvalidState    = New("invalid state transition")
	ErrAlreadyPaid     = New("already paid")
	ErrAmountMismatch  = New("amount does not match outstanding balance")

	ErrNotFound     = New("resource not found")
	ErrValidation   = New("validation failed")
	ErrForbidden    = New("operation not permitted")
	ErrUnauthorized = New("unauthorized")
)
