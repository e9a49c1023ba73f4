package usecase

import (
	"context"

	"github.com/ponyo877/mural/server/domain"
)

// Repository is the storage accessor. It owns id/createdAt assignment.
type Repository interface {
	List(ctx context.Context) ([]domain.Message, error)
	Create(ctx context.Context, author, body string) (domain.Message, error)
}

// Broadcaster delivers an event to all current subscribers, best-effort.
type Broadcaster interface {
	Publish(event domain.Event) error
}
