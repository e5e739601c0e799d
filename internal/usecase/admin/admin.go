package admin

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/defff666/cryptodivebot/internal/entity"
	"github.com/defff666/cryptodivebot/internal/notifier"
	profileRepo "github.com/defff666/cryptodivebot/internal/repository/profile"
)

const DefaultBroadcastDelay = 500 * time.Millisecond

type IAdminUseCase interface {
	// Stats rolls up the profile store. User count covers unblocked
	// profiles only; match count halves the symmetric edge sum and
	// surfaces corruption instead of truncating it.
	Stats(ctx context.Context) (*entity.StatsReport, error)

	// Broadcast sends text to every unblocked profile, throttled between
	// sends. Individual delivery failures are counted, not fatal.
	Broadcast(ctx context.Context, text string) (*entity.BroadcastResult, error)
}

type adminUseCase struct {
	profiles profileRepo.IProfileRepo
	notifier notifier.Notifier
	delay    time.Duration
}

func New(profiles profileRepo.IProfileRepo, n notifier.Notifier, broadcastDelay time.Duration) IAdminUseCase {
	if broadcastDelay <= 0 {
		broadcastDelay = DefaultBroadcastDelay
	}
	return &adminUseCase{
		profiles: profiles,
		notifier: n,
		delay:    broadcastDelay,
	}
}

func (a *adminUseCase) Stats(ctx context.Context) (*entity.StatsReport, error) {
	users, err := a.profiles.CountActive(ctx)
	if err != nil {
		return nil, err
	}

	degreeSum, err := a.profiles.SumMatchDegrees(ctx)
	if err != nil {
		return nil, err
	}
	if degreeSum%2 != 0 {
		return nil, fmt.Errorf("%w: degree sum %d", entity.ErrCorruptMatchData, degreeSum)
	}

	return &entity.StatsReport{
		UserCount:  users,
		MatchCount: degreeSum / 2,
		// No persisted chat sessions exist; the chat relay is stateless.
		ActiveChatCount: 0,
	}, nil
}

func (a *adminUseCase) Broadcast(ctx context.Context, text string) (*entity.BroadcastResult, error) {
	ids, err := a.profiles.ListActiveIDs(ctx)
	if err != nil {
		return nil, err
	}

	result := &entity.BroadcastResult{}
	for i, id := range ids {
		if i > 0 {
			select {
			case <-ctx.Done():
				return result, ctx.Err()
			case <-time.After(a.delay):
			}
		}
		if err := a.notifier.Notify(ctx, id, text); err != nil {
			log.Printf("failed to send broadcast to %d: %v", id, err)
			result.Failed++
			continue
		}
		result.Delivered++
	}

	return result, nil
}
