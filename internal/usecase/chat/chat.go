package chat

import (
	"context"
	"fmt"

	"github.com/defff666/cryptodivebot/internal/entity"
	"github.com/defff666/cryptodivebot/internal/notifier"
	profileRepo "github.com/defff666/cryptodivebot/internal/repository/profile"
)

type IChatUseCase interface {
	// Send relays text to a matched profile. No transcript is kept.
	Send(ctx context.Context, senderID, receiverID int64, text string) error
}

type chatUseCase struct {
	profiles profileRepo.IProfileRepo
	notifier notifier.Notifier
}

func New(profiles profileRepo.IProfileRepo, n notifier.Notifier) IChatUseCase {
	return &chatUseCase{
		profiles: profiles,
		notifier: n,
	}
}

func (c *chatUseCase) Send(ctx context.Context, senderID, receiverID int64, text string) error {
	sender, err := c.profiles.Get(ctx, senderID)
	if err != nil {
		return err
	}

	matches, err := c.profiles.GetMatches(ctx, senderID)
	if err != nil {
		return err
	}

	allowed := false
	for _, id := range matches {
		if id == receiverID {
			allowed = true
			break
		}
	}
	if !allowed {
		return entity.ErrNotMatched
	}

	return c.notifier.Notify(ctx, receiverID, fmt.Sprintf("%s: %s", sender.Nickname, text))
}
