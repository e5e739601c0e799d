package routesV1Profile

import (
	"net/http"

	"github.com/defff666/cryptodivebot/internal/entity"
	"github.com/defff666/cryptodivebot/internal/middleware"
	"github.com/defff666/cryptodivebot/internal/routes/v1/respond"
	profileUseCase "github.com/defff666/cryptodivebot/internal/usecase/profile"
	"github.com/defff666/cryptodivebot/pkg/http_util"
	"github.com/labstack/echo"
)

func RegisterHandler(c echo.Context, profileCase profileUseCase.IProfileUseCase) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return http_util.Encode(c, http.StatusUnauthorized, map[string]string{"message": "missing token"})
	}

	request, err := http_util.Decode[entity.RegisterRequest](c)
	if err != nil {
		return err
	}

	profile, created, err := profileCase.Register(c.Request().Context(), userID, request)
	if err != nil {
		return respond.Error(c, err)
	}

	status := http.StatusOK
	message := "Profile updated"
	if created {
		status = http.StatusCreated
		message = "Profile created"
	}

	return http_util.Encode(c, status, http_util.HTTPResponse[*entity.Profile]{
		Message: message,
		Data:    profile,
	})
}

func MeHandler(c echo.Context, profileCase profileUseCase.IProfileUseCase) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return http_util.Encode(c, http.StatusUnauthorized, map[string]string{"message": "missing token"})
	}

	detail, err := profileCase.Get(c.Request().Context(), userID)
	if err != nil {
		return respond.Error(c, err)
	}

	return http_util.Encode(c, http.StatusOK, http_util.HTTPResponse[*entity.ProfileDetail]{
		Message: "Profile fetched successfully",
		Data:    detail,
	})
}
