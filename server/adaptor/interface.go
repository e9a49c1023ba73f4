package adaptor

import (
	"context"

	"github.com/ponyo877/mural/server/domain"
)

type Usecase interface {
	ListMessages(ctx context.Context) ([]domain.Message, error)
	CreateMessage(ctx context.Context, author, body string) (domain.Message, error)
}

// Subscriber is the hub as seen from the live endpoint.
type Subscriber interface {
	Subscribe(sessionID string) <-chan domain.Event
	Unsubscribe(sessionID string)
	Stats() domain.HubStats
}
