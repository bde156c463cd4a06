package errors

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

// CustomHTTPErrorHandler renders every error as {"error": message}.
// Errors wrapping an HttpError keep its status and message, echo's routing
// errors become "route not found" and anything else is a 500 carrying the
// original error message.
func CustomHTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code, message := resolve(err)
	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = c.JSON(code, Response{Error: message})
	}
	if err != nil {
		c.Logger().Error(err)
	}
}

func resolve(err error) (int, string) {
	e := HttpError{}
	if errors.As(err, &e) {
		return e.Code, e.Err.Error()
	}

	he := &echo.HTTPError{}
	if errors.As(err, &he) {
		switch he.Code {
		case http.StatusNotFound, http.StatusMethodNotAllowed:
			return RouteNotFound.Code, RouteNotFound.Error()
		}
		if he.Internal != nil {
			return http.StatusInternalServerError, he.Internal.Error()
		}
		return http.StatusInternalServerError, InternalServerError.Error()
	}

	return http.StatusInternalServerError, err.Error()
}
