package models

import "errors"

// Domain errors shared by the command and query services. Handlers match
// them with errors.Is and translate them to HTTP status codes; anything
// else is treated as a persistence failure and surfaced as a 500.
var (
	// ErrMissingParameter signals a required field was empty. Normally the
	// HTTP layer rejects these before the services run; the services check
	// again so direct callers get the same contract.
	ErrMissingParameter = errors.New("missing parameters")

	// ErrDuplicateUser signals account creation for a user that already
	// has one.
	ErrDuplicateUser = errors.New("user already exists")

	// ErrAccountNotFound signals the target user has no account.
	ErrAccountNotFound = errors.New("account not found")

	// ErrTransactionNotFound signals the account exists but holds no
	// transaction with the requested id.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrInvalidAmount signals an amount that does not resolve to a
	// finite number.
	ErrInvalidAmount = errors.New("amount must be a number")

	// ErrDuplicateTransaction signals that the derived transaction id is
	// already present in the account's ledger.
	ErrDuplicateTransaction = errors.New("transaction already exists")
)
