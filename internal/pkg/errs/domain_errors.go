package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Transaction errors
	ErrTransactionNotFound    = errors.New("transaction not found")
	ErrTransactionNotApproved = errors.New("transaction not approved")

	// Reconciliation errors
	ErrAlreadyProcessing   = errors.New("transaction already being processed")
	ErrNoDispatchTargets   = errors.New("no dispatch targets")
	ErrMissingUsername     = errors.New("target username missing")
	ErrProviderRejected    = errors.New("provider rejected order")
	ErrProviderUnavailable = errors.New("provider unavailable")

	// Webhook errors
	ErrPaymentIDNotFound  = errors.New("payment id not found in event")
	ErrSignatureInvalid   = errors.New("webhook signature invalid")
	ErrGatewayUnavailable = errors.New("payment gateway unavailable")

	// Auth errors
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
