package errs

// Cross-layer sentinels shared by the command and query sides.
var (
	ErrDomainValidation        = New("domain validation error")
	ErrDatabaseOperationFailed = New("database operation failed")
	ErrIdempotencyInProgress   = New("idempotency in progress")
	ErrIdempotencyKeyReused    = New("idempotency key reused with a different request")
)
