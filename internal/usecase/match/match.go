package match

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/defff666/cryptodivebot/internal/entity"
	"github.com/defff666/cryptodivebot/internal/notifier"
	profileRepo "github.com/defff666/cryptodivebot/internal/repository/profile"
)

type IMatchUseCase interface {
	// NextCandidate returns the next viable profile for userID, or nil when
	// nobody qualifies. extraExclude lets the front end skip profiles the
	// user already saw this session.
	NextCandidate(ctx context.Context, userID int64, extraExclude []int64) (*entity.Profile, error)

	// Like records a directed like and reports the outcome. A new mutual
	// match notifies both parties exactly once.
	Like(ctx context.Context, likerID, targetID int64) (entity.LikeOutcome, error)
}

type matchUseCase struct {
	profiles profileRepo.IProfileRepo
	notifier notifier.Notifier
}

func New(profiles profileRepo.IProfileRepo, n notifier.Notifier) IMatchUseCase {
	return &matchUseCase{
		profiles: profiles,
		notifier: n,
	}
}

func (m *matchUseCase) NextCandidate(ctx context.Context, userID int64, extraExclude []int64) (*entity.Profile, error) {
	requester, err := m.profiles.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	likes, err := m.profiles.GetLikes(ctx, userID)
	if err != nil {
		return nil, err
	}

	seen := map[int64]bool{userID: true}
	exclude := []int64{userID}
	for _, id := range append(likes, extraExclude...) {
		if !seen[id] {
			seen[id] = true
			exclude = append(exclude, id)
		}
	}

	filter := entity.CandidateFilter{
		City:       requester.City,
		Genders:    requester.Gender.CompatibleWith(),
		Interests:  requester.Interests,
		ExcludeIDs: exclude,
	}

	return m.profiles.FindCandidate(ctx, filter)
}

func (m *matchUseCase) Like(ctx context.Context, likerID, targetID int64) (entity.LikeOutcome, error) {
	if likerID == targetID {
		return entity.OutcomeRejected, nil
	}

	liker, err := m.profiles.Get(ctx, likerID)
	if err != nil {
		return 0, err
	}

	target, err := m.profiles.Get(ctx, targetID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return entity.OutcomeNotFound, nil
		}
		return 0, err
	}
	if target.Blocked {
		return entity.OutcomeRejected, nil
	}

	matched, err := m.profiles.CreateLike(ctx, likerID, targetID)
	if err != nil {
		return 0, err
	}
	if !matched {
		return entity.OutcomeLiked, nil
	}

	// Best-effort: an unreachable user does not unwind the match.
	m.notifyMatch(ctx, likerID, target.Nickname)
	m.notifyMatch(ctx, targetID, liker.Nickname)

	return entity.OutcomeMatch, nil
}

func (m *matchUseCase) notifyMatch(ctx context.Context, userID int64, otherNickname string) {
	text := fmt.Sprintf("It's a match! You can now chat with %s.", otherNickname)
	if err := m.notifier.Notify(ctx, userID, text); err != nil {
		log.Printf("failed to notify %d of match: %v", userID, err)
	}
}
