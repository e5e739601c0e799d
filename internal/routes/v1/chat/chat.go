package routesV1Chat

import (
	"net/http"
	"strconv"

	"github.com/defff666/cryptodivebot/internal/entity"
	"github.com/defff666/cryptodivebot/internal/middleware"
	"github.com/defff666/cryptodivebot/internal/routes/v1/respond"
	chatUseCase "github.com/defff666/cryptodivebot/internal/usecase/chat"
	"github.com/defff666/cryptodivebot/pkg/http_util"
	"github.com/labstack/echo"
)

func SendHandler(c echo.Context, chatCase chatUseCase.IChatUseCase) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return http_util.Encode(c, http.StatusUnauthorized, map[string]string{"message": "missing token"})
	}

	receiverID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return http_util.Encode(c, http.StatusBadRequest, map[string]string{"message": "invalid profile id"})
	}

	request, err := http_util.Decode[entity.ChatSendRequest](c)
	if err != nil {
		return err
	}

	if problems := request.Validate(c.Request().Context()); len(problems) != 0 {
		return http_util.Encode(c, http.StatusBadRequest, http_util.HTTPErrorResponse[any]{
			HTTPResponse: http_util.HTTPResponse[any]{Message: "Bad Request"},
			Errors:       problems,
		})
	}

	if err := chatCase.Send(c.Request().Context(), userID, receiverID, request.Text); err != nil {
		return respond.Error(c, err)
	}

	return http_util.Encode(c, http.StatusOK, map[string]string{"message": "message sent"})
}
