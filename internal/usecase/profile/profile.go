package profile

import (
	"context"

	"github.com/defff666/cryptodivebot/internal/entity"
	profileRepo "github.com/defff666/cryptodivebot/internal/repository/profile"
)

// DefaultCoins is the starting balance for a freshly registered profile.
const DefaultCoins = 10

type IProfileUseCase interface {
	// Register creates or updates the caller's profile. Editing happens by
	// re-registering; coins, edges and the blocked flag are preserved.
	Register(ctx context.Context, userID int64, req entity.RegisterRequest) (*entity.Profile, bool, error)

	Get(ctx context.Context, userID int64) (*entity.ProfileDetail, error)

	// Ban blocks a profile from matching and broadcasts. Admin only.
	Ban(ctx context.Context, userID int64) error
}

type profileUseCase struct {
	profiles profileRepo.IProfileRepo
}

func New(profiles profileRepo.IProfileRepo) IProfileUseCase {
	return &profileUseCase{profiles: profiles}
}

func (p *profileUseCase) Register(ctx context.Context, userID int64, req entity.RegisterRequest) (*entity.Profile, bool, error) {
	if problems := req.Validate(ctx); len(problems) > 0 {
		return nil, false, &entity.ValidationError{Problems: problems}
	}

	prof := &entity.Profile{
		ID:        userID,
		Nickname:  req.Nickname,
		Age:       req.Age,
		Country:   req.Country,
		City:      req.City,
		Gender:    entity.Gender(req.Gender),
		Interests: req.Interests,
		PhotoURL:  req.PhotoURL,
		Coins:     DefaultCoins,
	}

	created, err := p.profiles.Upsert(ctx, prof)
	if err != nil {
		return nil, false, err
	}

	stored, err := p.profiles.Get(ctx, userID)
	if err != nil {
		return nil, false, err
	}
	return stored, created, nil
}

func (p *profileUseCase) Get(ctx context.Context, userID int64) (*entity.ProfileDetail, error) {
	prof, err := p.profiles.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	likes, err := p.profiles.GetLikes(ctx, userID)
	if err != nil {
		return nil, err
	}
	matches, err := p.profiles.GetMatches(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &entity.ProfileDetail{
		Profile: *prof,
		Likes:   likes,
		Matches: matches,
	}, nil
}

func (p *profileUseCase) Ban(ctx context.Context, userID int64) error {
	return p.profiles.SetBlocked(ctx, userID, true)
}
