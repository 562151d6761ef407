package httpapi

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/alexanderramin/syllabus/internal/app"
	"github.com/alexanderramin/syllabus/internal/feed"
	"github.com/alexanderramin/syllabus/internal/logger"
	"github.com/alexanderramin/syllabus/internal/service"
	"github.com/labstack/echo/v4"
)

type errorResponse struct {
	Success bool   `json:"success"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

// httpErrorHandler maps domain errors onto status codes and writes the
// same {success:false} shape the feed envelope uses.
func httpErrorHandler(err error, c echo.Context) {
	resp := errorResponse{}
	code := http.StatusInternalServerError

	var (
		reqErr  *app.RequestError
		httpErr *echo.HTTPError
	)
	switch {
	case errors.As(err, &reqErr):
		code = http.StatusBadRequest
		resp.Code = string(reqErr.Code)
		resp.Message = reqErr.Message
	case errors.As(err, &httpErr):
		if inner, ok := httpErr.Internal.(*echo.HTTPError); ok {
			httpErr = inner
		}
		code = httpErr.Code
		resp.Message = fmt.Sprint(httpErr.Message)
	case errors.Is(err, service.ErrStaleLoad):
		code = http.StatusConflict
		resp.Message = err.Error()
	case errors.Is(err, feed.ErrFeedUnavailable):
		code = http.StatusServiceUnavailable
		resp.Message = err.Error()
	default:
		resp.Message = http.StatusText(code)
		logger.Error("request failed", "method", c.Request().Method, "path", c.Request().URL.Path, "err", err)
		if c.Echo().Debug {
			resp.Message = err.Error()
		}
	}

	if c.Response().Committed {
		return
	}
	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = c.JSON(code, resp)
	}
	if err != nil {
		logger.Error("writing error response", "err", err)
	}
}

func badRequest(format string, args ...any) error {
	return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf(format, args...))
}
