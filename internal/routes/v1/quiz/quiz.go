package routesV1Quiz

import (
	"net/http"

	"github.com/defff666/cryptodivebot/internal/entity"
	"github.com/defff666/cryptodivebot/internal/middleware"
	"github.com/defff666/cryptodivebot/internal/routes/v1/respond"
	quizUseCase "github.com/defff666/cryptodivebot/internal/usecase/quiz"
	"github.com/defff666/cryptodivebot/pkg/http_util"
	"github.com/labstack/echo"
)

func StartHandler(c echo.Context, quizCase quizUseCase.IQuizUseCase) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return http_util.Encode(c, http.StatusUnauthorized, map[string]string{"message": "missing token"})
	}

	prompt, err := quizCase.Start(c.Request().Context(), userID)
	if err != nil {
		return respond.Error(c, err)
	}

	return http_util.Encode(c, http.StatusOK, http_util.HTTPResponse[*entity.QuizPrompt]{
		Message: "Quiz started",
		Data:    prompt,
	})
}

func AnswerHandler(c echo.Context, quizCase quizUseCase.IQuizUseCase) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return http_util.Encode(c, http.StatusUnauthorized, map[string]string{"message": "missing token"})
	}

	request, err := http_util.Decode[entity.QuizAnswerRequest](c)
	if err != nil {
		return err
	}

	if problems := request.Validate(c.Request().Context()); len(problems) != 0 {
		return http_util.Encode(c, http.StatusBadRequest, http_util.HTTPErrorResponse[any]{
			HTTPResponse: http_util.HTTPResponse[any]{Message: "Bad Request"},
			Errors:       problems,
		})
	}

	progress, err := quizCase.Answer(c.Request().Context(), userID, request.QuestionID, request.Option)
	if err != nil {
		return respond.Error(c, err)
	}

	message := "Answer recorded"
	if !progress.Accepted {
		message = "Answer rejected"
	}
	if progress.Done {
		message = "Quiz finished"
	}

	return http_util.Encode(c, http.StatusOK, http_util.HTTPResponse[*entity.QuizProgress]{
		Message: message,
		Data:    progress,
	})
}
