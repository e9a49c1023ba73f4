package usecase

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/ponyo877/mural/server/adaptor"
	"github.com/ponyo877/mural/server/domain"
	"go.uber.org/zap"
)

type Usecase struct {
	repo      Repository
	broadcast Broadcaster
	validate  *validator.Validate
	log       *zap.SugaredLogger
}

type createInput struct {
	Author string `validate:"required"`
	Body   string `validate:"required"`
}

func NewUsecase(repo Repository, broadcast Broadcaster, log *zap.SugaredLogger) adaptor.Usecase {
	return &Usecase{
		repo:      repo,
		broadcast: broadcast,
		validate:  validator.New(),
		log:       log,
	}
}

func (u *Usecase) ListMessages(ctx context.Context) ([]domain.Message, error) {
	messages, err := u.repo.List(ctx)
	if err != nil {
		u.log.Errorw("failed to list messages", "error", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}
	return messages, nil
}

// CreateMessage validates, persists, then announces the new message. The
// publish step is best-effort: a stored message is the correctness
// guarantee, the live event only a hint, so a broadcast failure is logged
// and the write still succeeds. Nothing is published for a failed write.
func (u *Usecase) CreateMessage(ctx context.Context, author, body string) (domain.Message, error) {
	author, body = domain.TrimInput(author, body)
	if err := u.validate.Struct(createInput{Author: author, Body: body}); err != nil {
		return domain.Message{}, domain.ErrInvalidInput
	}

	message, err := u.repo.Create(ctx, author, body)
	if err != nil {
		u.log.Errorw("failed to persist message", "error", err)
		return domain.Message{}, fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}

	if err := u.broadcast.Publish(domain.NewMessageEvent(message)); err != nil {
		u.log.Warnw("failed to broadcast new message", "id", message.ID, "error", err)
	}
	return message, nil
}
