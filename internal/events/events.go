package events

import "time"

// Event types
const (
	AccountCreated     = "account.created"
	AccountDeleted     = "account.deleted"
	TransactionAdded   = "transaction.added"
	TransactionRemoved = "transaction.removed"
)

// BudgetEventsStream carries every domain event of this service.
const BudgetEventsStream = "budget.events"

// Event is the envelope written to the stream.
type Event struct {
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Data      any       `json:"data"`
}

type AccountCreatedEvent struct {
	User     string  `json:"user"`
	Currency string  `json:"currency"`
	Balance  float64 `json:"balance"`
}

type AccountDeletedEvent struct {
	User string `json:"user"`
}

type TransactionAddedEvent struct {
	User          string  `json:"user"`
	TransactionID string  `json:"transactionId"`
	Date          string  `json:"date"`
	Object        string  `json:"object"`
	Amount        float64 `json:"amount"`
	NewBalance    float64 `json:"newBalance"`
}

type TransactionRemovedEvent struct {
	User          string  `json:"user"`
	TransactionID string  `json:"transactionId"`
	Amount        float64 `json:"amount"`
	NewBalance    float64 `json:"newBalance"`
}
