package entity_test

import (
	"context"
	"testing"

	"github.com/defff666/cryptodivebot/internal/entity"
	"gotest.tools/assert"
)

func validRegisterRequest() entity.RegisterRequest {
	return entity.RegisterRequest{
		Nickname:  "anna",
		Age:       25,
		Country:   "Germany",
		City:      "Berlin",
		Gender:    "Female",
		Interests: []string{"music"},
	}
}

func TestRegisterRequestValid(t *testing.T) {
	request := validRegisterRequest()
	assert.Equal(t, len(request.Validate(context.TODO())), 0)
}

func TestRegisterRequestUnderage(t *testing.T) {
	request := validRegisterRequest()
	request.Age = 17

	problems := request.Validate(context.TODO())
	assert.Equal(t, len(problems["Age"]), 1)
}

func TestRegisterRequestMissingFields(t *testing.T) {
	request := entity.RegisterRequest{Age: 30}

	problems := request.Validate(context.TODO())
	for _, field := range []string{"Nickname", "Country", "City", "Gender", "Interests"} {
		if len(problems[field]) == 0 {
			t.Errorf("expected a problem for %s", field)
		}
	}
}

func TestQuizAnswerRequestOptionRange(t *testing.T) {
	request := entity.QuizAnswerRequest{QuestionID: "q1", Option: 4}
	problems := request.Validate(context.TODO())
	assert.Equal(t, len(problems["Option"]), 1)

	request.Option = 3
	assert.Equal(t, len(request.Validate(context.TODO())), 0)
}
