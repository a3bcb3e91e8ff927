package query

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/budgetbank/budget-api/internal/events"
)

// ViewRefresher reloads or drops one account's read model entry.
type ViewRefresher interface {
	RefreshByUser(ctx context.Context, user string) error
	InvalidateAccountView(ctx context.Context, user string)
}

// ReadModelProjector keeps the Redis account views in line with the
// domain event stream. The command services already cache synchronously;
// the projector re-applies from the write store, so lost cache writes and
// duplicate deliveries both converge on the same state.
type ReadModelProjector struct {
	views ViewRefresher
}

func NewReadModelProjector(views ViewRefresher) *ReadModelProjector {
	return &ReadModelProjector{views: views}
}

// HandleEvent is the subscriber callback for the budget.events stream.
func (p *ReadModelProjector) HandleEvent(ctx context.Context, event events.Event) error {
	user, err := eventUser(event)
	if err != nil {
		return err
	}

	switch event.Type {
	case events.AccountDeleted:
		p.views.InvalidateAccountView(ctx, user)
		return nil
	case events.AccountCreated, events.TransactionAdded, events.TransactionRemoved:
		return p.views.RefreshByUser(ctx, user)
	default:
		return nil
	}
}

// eventUser extracts the account user from any event payload. Payloads
// arrive as generic JSON maps, so decode through marshalling like the
// subscriber does for the envelope.
func eventUser(event events.Event) (string, error) {
	dataBytes, err := json.Marshal(event.Data)
	if err != nil {
		return "", fmt.Errorf("failed to marshal %s event data: %w", event.Type, err)
	}
	var data struct {
		User string `json:"user"`
	}
	if err := json.Unmarshal(dataBytes, &data); err != nil {
		return "", fmt.Errorf("failed to unmarshal %s event data: %w", event.Type, err)
	}
	if data.User == "" {
		return "", fmt.Errorf("%s event carries no user", event.Type)
	}
	return data.User, nil
}
