package models

import "time"

// Transaction is a single dated, labelled, signed entry in an account's
// ledger. The ID is derived from the transaction content (see utils), not
// generated randomly, so the same logical transaction always carries the
// same id.
type Transaction struct {
	ID     string  `json:"id"`
	Date   string  `json:"date"`
	Object string  `json:"object"`
	Amount float64 `json:"amount"`
}

// Account is a user's budget record. The transaction slice is the full
// ledger in append order; Balance always equals the initial balance plus
// the sum of all transaction amounts.
type Account struct {
	User         string        `json:"user"`
	Currency     string        `json:"currency"`
	Description  string        `json:"description"`
	Balance      float64       `json:"balance"`
	Transactions []Transaction `json:"transactions"`
	CreatedAt    time.Time     `json:"createdTimestamp"`
	UpdatedAt    time.Time     `json:"updatedTimestamp"`
}
