package errs

import "errors"

// Sentinel errors shared by the usecase layers.
var (
	// Record errors
	ErrRecordNotFound = errors.New("record not found")

	// Reference data errors
	ErrWasherNotFound  = errors.New("washer not found")
	ErrServiceNotFound = errors.New("service not found")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
