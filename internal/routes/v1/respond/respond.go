package respond

import (
	"errors"
	"net/http"

	"github.com/defff666/cryptodivebot/internal/entity"
	"github.com/defff666/cryptodivebot/pkg/http_util"
	"github.com/labstack/echo"
)

// Error maps core error conditions onto HTTP statuses. Validation and
// not-found are expected control flow; only storage trouble is a 5xx.
func Error(c echo.Context, err error) error {
	var validation *entity.ValidationError
	switch {
	case errors.As(err, &validation):
		return http_util.Encode(c, http.StatusBadRequest, http_util.HTTPErrorResponse[any]{
			HTTPResponse: http_util.HTTPResponse[any]{Message: "Bad Request"},
			Errors:       validation.Problems,
		})
	case errors.Is(err, entity.ErrNotFound):
		return http_util.Encode(c, http.StatusNotFound, map[string]string{"message": "please register first"})
	case errors.Is(err, entity.ErrNoSession):
		return http_util.Encode(c, http.StatusConflict, map[string]string{"message": "no active quiz session"})
	case errors.Is(err, entity.ErrNotMatched):
		return http_util.Encode(c, http.StatusForbidden, map[string]string{"message": "you can only chat with your matches"})
	case errors.Is(err, entity.ErrCorruptMatchData):
		return http_util.Encode(c, http.StatusInternalServerError, map[string]string{"message": "match data inconsistent"})
	default:
		return http_util.Encode(c, http.StatusInternalServerError, map[string]string{"message": "internal error"})
	}
}
