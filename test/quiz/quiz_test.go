package quiz__test

import (
	"context"
	"log"
	"net/http"
	"os"
	"testing"

	"github.com/defff666/cryptodivebot/internal/entity"
	questionRepo "github.com/defff666/cryptodivebot/internal/repository/question"
	"github.com/defff666/cryptodivebot/pkg/http_util"
	"github.com/defff666/cryptodivebot/pkg/path"
	helper_test "github.com/defff666/cryptodivebot/test/helper"
	"gotest.tools/assert"
)

var globalResources *helper_test.TestServerResources
var answerKey map[string]int

func TestMain(m *testing.M) {
	resources, err := helper_test.SetupTestServer(context.TODO())
	var code int

	if err != nil {
		log.Printf("Failed to set up test server: %s", err)
		code = 1
	} else {
		globalResources = resources
		answerKey, err = loadAnswerKey()
		if err != nil {
			log.Printf("Failed to load question bank: %s", err)
			code = 1
		} else {
			code = m.Run()
		}
	}

	resources.CleanupTestServer()
	os.Exit(code)
}

// loadAnswerKey reads the same bank the server serves questions from, so
// the test can answer deliberately right or wrong.
func loadAnswerKey() (map[string]int, error) {
	basePath, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	root, err := path.FindRoot(basePath, "data", true)
	if err != nil {
		return nil, err
	}

	bank, err := questionRepo.Load(root + "/data/questions.json")
	if err != nil {
		return nil, err
	}

	key := make(map[string]int, bank.Len())
	for _, q := range bank.All() {
		key[q.ID] = q.Correct
	}
	return key, nil
}

func register(t *testing.T, userID int64, nickname string) {
	t.Helper()
	globalResources.RegisterProfile(t, userID, entity.RegisterRequest{
		Nickname:  nickname,
		Age:       30,
		Country:   "Germany",
		City:      "Berlin",
		Gender:    "Bi",
		Interests: []string{"crypto"},
	})
}

func startRound(t *testing.T, token string) entity.QuizPrompt {
	t.Helper()

	status, body := helper_test.DoJSON(t, http.MethodPost, globalResources.BaseURL()+"/v1/quiz/start", token, nil)
	assert.Equal(t, status, http.StatusOK)

	started := http_util.HTTPResponse[entity.QuizPrompt]{}
	started, err := http_util.DecodeBody[http_util.HTTPResponse[entity.QuizPrompt]](body, started)
	assert.NilError(t, err)
	return started.Data
}

func answer(t *testing.T, token, questionID string, option int) entity.QuizProgress {
	t.Helper()

	status, body := helper_test.DoJSON(t, http.MethodPost, globalResources.BaseURL()+"/v1/quiz/answer", token,
		entity.QuizAnswerRequest{QuestionID: questionID, Option: option})
	assert.Equal(t, status, http.StatusOK)

	progress := http_util.HTTPResponse[entity.QuizProgress]{}
	progress, err := http_util.DecodeBody[http_util.HTTPResponse[entity.QuizProgress]](body, progress)
	assert.NilError(t, err)
	return progress.Data
}

// Answer a full round correctly and verify one coin per correct answer
// lands on the balance.
func TestPerfectRoundPaysOut(t *testing.T) {
	register(t, 7101, "quinn")
	token := globalResources.Token(t, 7101)

	prompt := startRound(t, token)
	assert.Equal(t, prompt.Number, 1)
	assert.Equal(t, prompt.Total, 5)
	assert.Equal(t, len(prompt.Options), entity.OptionCount)

	var progress entity.QuizProgress
	current := prompt
	for {
		progress = answer(t, token, current.QuestionID, answerKey[current.QuestionID])
		assert.Assert(t, progress.Accepted)
		assert.Assert(t, progress.WasCorrect)
		if progress.Done {
			break
		}
		assert.Assert(t, progress.Next != nil)
		current = *progress.Next
	}

	assert.Equal(t, progress.Correct, 5)
	assert.Equal(t, progress.CoinsEarned, 5)

	status, body := helper_test.DoJSON(t, http.MethodGet, globalResources.BaseURL()+"/v1/profile/me", token, nil)
	assert.Equal(t, status, http.StatusOK)

	me := http_util.HTTPResponse[entity.ProfileDetail]{}
	me, err := http_util.DecodeBody[http_util.HTTPResponse[entity.ProfileDetail]](body, me)
	assert.NilError(t, err)
	assert.Equal(t, me.Data.Profile.Coins, 15)
}

func TestWrongAnswersEarnNothing(t *testing.T) {
	register(t, 7201, "nora")
	token := globalResources.Token(t, 7201)

	current := startRound(t, token)
	var progress entity.QuizProgress
	for {
		wrong := (answerKey[current.QuestionID] + 1) % entity.OptionCount
		progress = answer(t, token, current.QuestionID, wrong)
		assert.Assert(t, progress.Accepted)
		assert.Assert(t, !progress.WasCorrect)
		if progress.Done {
			break
		}
		current = *progress.Next
	}

	assert.Equal(t, progress.Correct, 0)
	assert.Equal(t, progress.CoinsEarned, 0)
}

func TestStaleQuestionIDIsIgnored(t *testing.T) {
	register(t, 7301, "iris")
	token := globalResources.Token(t, 7301)

	current := startRound(t, token)

	staleID := "not-" + current.QuestionID
	progress := answer(t, token, staleID, 0)
	assert.Assert(t, !progress.Accepted)

	// The round did not advance; the current question still counts.
	progress = answer(t, token, current.QuestionID, answerKey[current.QuestionID])
	assert.Assert(t, progress.Accepted)
	assert.Assert(t, progress.WasCorrect)
}

func TestAnswerWithoutRound(t *testing.T) {
	register(t, 7401, "olaf")
	token := globalResources.Token(t, 7401)

	status, _ := helper_test.DoJSON(t, http.MethodPost, globalResources.BaseURL()+"/v1/quiz/answer", token,
		entity.QuizAnswerRequest{QuestionID: "anything", Option: 0})
	assert.Equal(t, status, http.StatusConflict)
}

func TestStartWithoutProfile(t *testing.T) {
	token := globalResources.Token(t, 7501)

	status, _ := helper_test.DoJSON(t, http.MethodPost, globalResources.BaseURL()+"/v1/quiz/start", token, nil)
	assert.Equal(t, status, http.StatusNotFound)
}
