package routesV1Match

import (
	"net/http"
	"strconv"

	"github.com/defff666/cryptodivebot/internal/entity"
	"github.com/defff666/cryptodivebot/internal/middleware"
	"github.com/defff666/cryptodivebot/internal/routes/v1/respond"
	matchUseCase "github.com/defff666/cryptodivebot/internal/usecase/match"
	"github.com/defff666/cryptodivebot/pkg/http_util"
	"github.com/labstack/echo"
)

func NextCandidateHandler(c echo.Context, matchCase matchUseCase.IMatchUseCase) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return http_util.Encode(c, http.StatusUnauthorized, map[string]string{"message": "missing token"})
	}

	var exclude []int64
	for _, raw := range c.QueryParams()["exclude"] {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return http_util.Encode(c, http.StatusBadRequest, map[string]string{"message": "invalid exclude id"})
		}
		exclude = append(exclude, id)
	}

	candidate, err := matchCase.NextCandidate(c.Request().Context(), userID, exclude)
	if err != nil {
		return respond.Error(c, err)
	}

	message := "Candidate found"
	if candidate == nil {
		message = "No more users to show"
	}

	return http_util.Encode(c, http.StatusOK, http_util.HTTPResponse[entity.MatchNextResponse]{
		Message: message,
		Data:    entity.MatchNextResponse{Candidate: candidate},
	})
}

func LikeHandler(c echo.Context, matchCase matchUseCase.IMatchUseCase) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return http_util.Encode(c, http.StatusUnauthorized, map[string]string{"message": "missing token"})
	}

	targetID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return http_util.Encode(c, http.StatusBadRequest, map[string]string{"message": "invalid profile id"})
	}

	outcome, err := matchCase.Like(c.Request().Context(), userID, targetID)
	if err != nil {
		return respond.Error(c, err)
	}

	return http_util.Encode(c, http.StatusOK, http_util.HTTPResponse[entity.LikeResponse]{
		Message: "Like outcome",
		Data: entity.LikeResponse{
			Outcome:     outcome.String(),
			OutcomeEnum: outcome,
		},
	})
}
