package cqrs

// ---------- Account queries ----------

// GetAccountQuery fetches a single account, ledger included.
type GetAccountQuery struct {
	User string
}

// ---------- Transaction queries ----------

// ListTransactionsQuery fetches the full ledger of an account.
type ListTransactionsQuery struct {
	User string
}

// GetTransactionQuery fetches a single ledger entry by id.
type GetTransactionQuery struct {
	User          string
	TransactionID string
}
