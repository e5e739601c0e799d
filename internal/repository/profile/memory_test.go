package profileRepo_test

import (
	"context"
	"sync"
	"testing"

	"github.com/defff666/cryptodivebot/internal/entity"
	profileRepo "github.com/defff666/cryptodivebot/internal/repository/profile"
	"gotest.tools/assert"
)

func seedPair(t *testing.T, repo *profileRepo.MemoryRepo) {
	t.Helper()
	for _, id := range []int64{1, 2} {
		_, err := repo.Upsert(context.TODO(), &entity.Profile{
			ID: id, Nickname: "u", Age: 25, City: "Berlin", Gender: entity.GenderBi, Coins: 10,
		})
		assert.NilError(t, err)
	}
}

// Concurrent likes in both directions must produce exactly one match
// report, never zero and never two.
func TestConcurrentMutualLikeMatchesOnce(t *testing.T) {
	for i := 0; i < 200; i++ {
		repo := profileRepo.NewMemory()
		seedPair(t, repo)

		var wg sync.WaitGroup
		results := make([]bool, 2)

		wg.Add(2)
		go func() {
			defer wg.Done()
			matched, err := repo.CreateLike(context.TODO(), 1, 2)
			assert.NilError(t, err)
			results[0] = matched
		}()
		go func() {
			defer wg.Done()
			matched, err := repo.CreateLike(context.TODO(), 2, 1)
			assert.NilError(t, err)
			results[1] = matched
		}()
		wg.Wait()

		matchCount := 0
		for _, matched := range results {
			if matched {
				matchCount++
			}
		}
		assert.Equal(t, matchCount, 1)

		matches1, _ := repo.GetMatches(context.TODO(), 1)
		matches2, _ := repo.GetMatches(context.TODO(), 2)
		assert.DeepEqual(t, matches1, []int64{2})
		assert.DeepEqual(t, matches2, []int64{1})
	}
}

func TestCreateLikeIdempotent(t *testing.T) {
	repo := profileRepo.NewMemory()
	seedPair(t, repo)

	for i := 0; i < 3; i++ {
		matched, err := repo.CreateLike(context.TODO(), 1, 2)
		assert.NilError(t, err)
		assert.Equal(t, matched, false)
	}

	likes, err := repo.GetLikes(context.TODO(), 1)
	assert.NilError(t, err)
	assert.DeepEqual(t, likes, []int64{2})
}

func TestCreateLikeReportsMatchOnlyOnce(t *testing.T) {
	repo := profileRepo.NewMemory()
	seedPair(t, repo)

	matched, err := repo.CreateLike(context.TODO(), 1, 2)
	assert.NilError(t, err)
	assert.Equal(t, matched, false)

	matched, err = repo.CreateLike(context.TODO(), 2, 1)
	assert.NilError(t, err)
	assert.Equal(t, matched, true)

	// Re-confirming the edge never reports a second match.
	matched, err = repo.CreateLike(context.TODO(), 1, 2)
	assert.NilError(t, err)
	assert.Equal(t, matched, false)
}

func TestIncrementCoinsFloorsAtZero(t *testing.T) {
	repo := profileRepo.NewMemory()
	seedPair(t, repo)

	assert.NilError(t, repo.IncrementCoins(context.TODO(), 1, -99))

	profile, err := repo.Get(context.TODO(), 1)
	assert.NilError(t, err)
	assert.Equal(t, profile.Coins, 0)
}

func TestUpsertPreservesEngagementFields(t *testing.T) {
	repo := profileRepo.NewMemory()
	seedPair(t, repo)

	assert.NilError(t, repo.IncrementCoins(context.TODO(), 1, 7))
	assert.NilError(t, repo.SetBlocked(context.TODO(), 1, true))

	_, err := repo.Upsert(context.TODO(), &entity.Profile{
		ID: 1, Nickname: "renamed", Age: 26, City: "Hamburg", Gender: entity.GenderBi, Coins: 10,
	})
	assert.NilError(t, err)

	profile, err := repo.Get(context.TODO(), 1)
	assert.NilError(t, err)
	assert.Equal(t, profile.Nickname, "renamed")
	assert.Equal(t, profile.Coins, 17)
	assert.Equal(t, profile.Blocked, true)
}

func TestFindCandidateInterestTagsAreExact(t *testing.T) {
	repo := profileRepo.NewMemory()
	_, err := repo.Upsert(context.TODO(), &entity.Profile{
		ID: 1, Nickname: "u", Age: 25, City: "Berlin", Gender: entity.GenderFemale,
		Interests: []string{"Music"}, Coins: 10,
	})
	assert.NilError(t, err)

	candidate, err := repo.FindCandidate(context.TODO(), entity.CandidateFilter{
		City:      "Berlin",
		Genders:   []entity.Gender{entity.GenderFemale},
		Interests: []string{"music"},
	})
	assert.NilError(t, err)
	assert.Assert(t, candidate == nil)

	candidate, err = repo.FindCandidate(context.TODO(), entity.CandidateFilter{
		City:      "Berlin",
		Genders:   []entity.Gender{entity.GenderFemale},
		Interests: []string{"Music"},
	})
	assert.NilError(t, err)
	assert.Assert(t, candidate != nil)
}

func TestFindCandidateLowestIDFirst(t *testing.T) {
	repo := profileRepo.NewMemory()
	for _, id := range []int64{5, 3, 9} {
		_, err := repo.Upsert(context.TODO(), &entity.Profile{
			ID: id, Nickname: "u", Age: 25, City: "Berlin", Gender: entity.GenderFemale, Coins: 10,
		})
		assert.NilError(t, err)
	}

	candidate, err := repo.FindCandidate(context.TODO(), entity.CandidateFilter{
		City:    "Berlin",
		Genders: []entity.Gender{entity.GenderFemale},
	})
	assert.NilError(t, err)
	assert.Assert(t, candidate != nil)
	assert.Equal(t, candidate.ID, int64(3))
}
