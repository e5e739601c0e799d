package profile_test

import (
	"context"
	"errors"
	"testing"

	"github.com/defff666/cryptodivebot/internal/entity"
	profileRepo "github.com/defff666/cryptodivebot/internal/repository/profile"
	profileUseCase "github.com/defff666/cryptodivebot/internal/usecase/profile"
	"gotest.tools/assert"
)

func validRequest() entity.RegisterRequest {
	return entity.RegisterRequest{
		Nickname:  "anna",
		Age:       25,
		Country:   "Germany",
		City:      "Berlin",
		Gender:    "Female",
		Interests: []string{"music", "art"},
	}
}

func TestRegisterCreatesProfileWithDefaults(t *testing.T) {
	repo := profileRepo.NewMemory()
	useCase := profileUseCase.New(repo)

	profile, created, err := useCase.Register(context.TODO(), 100, validRequest())
	assert.NilError(t, err)
	assert.Assert(t, created)
	assert.Equal(t, profile.ID, int64(100))
	assert.Equal(t, profile.Coins, profileUseCase.DefaultCoins)
	assert.Equal(t, profile.Blocked, false)
}

func TestRegisterRejectsUnderage(t *testing.T) {
	repo := profileRepo.NewMemory()
	useCase := profileUseCase.New(repo)

	request := validRequest()
	request.Age = 17

	_, _, err := useCase.Register(context.TODO(), 100, request)

	var validation *entity.ValidationError
	assert.Assert(t, errors.As(err, &validation))
	assert.Equal(t, len(validation.Problems["Age"]), 1)

	// Nothing reached the store.
	_, err = repo.Get(context.TODO(), 100)
	assert.Assert(t, errors.Is(err, entity.ErrNotFound))
}

func TestReRegisterUpdatesFieldsKeepsEngagement(t *testing.T) {
	repo := profileRepo.NewMemory()
	useCase := profileUseCase.New(repo)

	_, _, err := useCase.Register(context.TODO(), 100, validRequest())
	assert.NilError(t, err)

	// Earn some coins and get banned in between.
	assert.NilError(t, repo.IncrementCoins(context.TODO(), 100, 5))
	assert.NilError(t, repo.SetBlocked(context.TODO(), 100, true))

	updated := validRequest()
	updated.City = "Hamburg"

	profile, created, err := useCase.Register(context.TODO(), 100, updated)
	assert.NilError(t, err)
	assert.Assert(t, !created)
	assert.Equal(t, profile.City, "Hamburg")
	assert.Equal(t, profile.Coins, profileUseCase.DefaultCoins+5)
	assert.Equal(t, profile.Blocked, true)
}

func TestGetIncludesEdges(t *testing.T) {
	repo := profileRepo.NewMemory()
	useCase := profileUseCase.New(repo)

	_, _, err := useCase.Register(context.TODO(), 100, validRequest())
	assert.NilError(t, err)
	_, _, err = useCase.Register(context.TODO(), 200, validRequest())
	assert.NilError(t, err)

	repo.CreateLike(context.TODO(), 100, 200)
	repo.CreateLike(context.TODO(), 200, 100)

	detail, err := useCase.Get(context.TODO(), 100)
	assert.NilError(t, err)
	assert.DeepEqual(t, detail.Likes, []int64{200})
	assert.DeepEqual(t, detail.Matches, []int64{200})
}

func TestGetUnregistered(t *testing.T) {
	useCase := profileUseCase.New(profileRepo.NewMemory())

	_, err := useCase.Get(context.TODO(), 42)
	assert.Assert(t, errors.Is(err, entity.ErrNotFound))
}

func TestBan(t *testing.T) {
	repo := profileRepo.NewMemory()
	useCase := profileUseCase.New(repo)

	_, _, err := useCase.Register(context.TODO(), 100, validRequest())
	assert.NilError(t, err)

	assert.NilError(t, useCase.Ban(context.TODO(), 100))

	profile, err := repo.Get(context.TODO(), 100)
	assert.NilError(t, err)
	assert.Equal(t, profile.Blocked, true)
}

func TestBanUnknownUser(t *testing.T) {
	useCase := profileUseCase.New(profileRepo.NewMemory())

	err := useCase.Ban(context.TODO(), 42)
	assert.Assert(t, errors.Is(err, entity.ErrNotFound))
}
