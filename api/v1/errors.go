package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"
	"github.com/thesrcielos/CodingTracker/internal/apperrors"
)

const INVALID_REQUEST = "invalid request"

type errorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// HTTPErrorHandler renders every handler failure as {message, error?}.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	body := errorResponse{Message: "Internal server error"}

	if appErr, ok := apperrors.As(err); ok {
		code = appErr.Code
		body.Message = appErr.Message
		if appErr.Expose && appErr.Err != nil {
			body.Error = appErr.Err.Error()
		}
	} else if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		if msg, ok := he.Message.(string); ok {
			body.Message = msg
		} else {
			body.Message = http.StatusText(code)
		}
	}

	if code >= http.StatusInternalServerError {
		log.WithError(err).WithField("path", c.Path()).Error("request failed")
	}

	var errWrite error
	if c.Request().Method == http.MethodHead {
		errWrite = c.NoContent(code)
	} else {
		errWrite = c.JSON(code, body)
	}
	if errWrite != nil {
		log.WithError(errWrite).Error("error writing error response")
	}
}
