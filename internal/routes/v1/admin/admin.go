package routesV1Admin

import (
	"net/http"
	"strconv"

	"github.com/defff666/cryptodivebot/internal/entity"
	"github.com/defff666/cryptodivebot/internal/routes/v1/respond"
	adminUseCase "github.com/defff666/cryptodivebot/internal/usecase/admin"
	profileUseCase "github.com/defff666/cryptodivebot/internal/usecase/profile"
	"github.com/defff666/cryptodivebot/pkg/http_util"
	"github.com/labstack/echo"
)

func StatsHandler(c echo.Context, adminCase adminUseCase.IAdminUseCase) error {
	stats, err := adminCase.Stats(c.Request().Context())
	if err != nil {
		return respond.Error(c, err)
	}

	return http_util.Encode(c, http.StatusOK, http_util.HTTPResponse[*entity.StatsReport]{
		Message: "Stats fetched successfully",
		Data:    stats,
	})
}

func BanHandler(c echo.Context, profileCase profileUseCase.IProfileUseCase) error {
	targetID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return http_util.Encode(c, http.StatusBadRequest, map[string]string{"message": "invalid profile id"})
	}

	if err := profileCase.Ban(c.Request().Context(), targetID); err != nil {
		return respond.Error(c, err)
	}

	return http_util.Encode(c, http.StatusOK, map[string]string{"message": "user banned"})
}

func BroadcastHandler(c echo.Context, adminCase adminUseCase.IAdminUseCase) error {
	request, err := http_util.Decode[entity.BroadcastRequest](c)
	if err != nil {
		return err
	}

	if problems := request.Validate(c.Request().Context()); len(problems) != 0 {
		return http_util.Encode(c, http.StatusBadRequest, http_util.HTTPErrorResponse[any]{
			HTTPResponse: http_util.HTTPResponse[any]{Message: "Bad Request"},
			Errors:       problems,
		})
	}

	result, err := adminCase.Broadcast(c.Request().Context(), request.Text)
	if err != nil {
		return respond.Error(c, err)
	}

	return http_util.Encode(c, http.StatusOK, http_util.HTTPResponse[*entity.BroadcastResult]{
		Message: "Broadcast finished",
		Data:    result,
	})
}
