package cqrs

// CreateAccountCommand opens a budget account for a user.
// InitialBalance is a base offset on the balance, not a transaction.
type CreateAccountCommand struct {
	User           string
	Currency       string
	Description    string
	InitialBalance float64
}

// DeleteAccountCommand removes an account and its whole ledger.
type DeleteAccountCommand struct {
	User string
}

// AddTransactionCommand appends one ledger entry to a user's account.
type AddTransactionCommand struct {
	User   string
	Date   string
	Object string
	Amount float64
}

// RemoveTransactionCommand removes one ledger entry by its derived id.
type RemoveTransactionCommand struct {
	User          string
	TransactionID string
}
