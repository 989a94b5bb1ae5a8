package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aqipulse/aqipulse/internal/domain/dto"
	"github.com/aqipulse/aqipulse/internal/logger"
)

// ErrorHandler is a Gin middleware that turns errors attached to the
// context via c.Error() into a standardized 500 response. Handlers
// that already wrote a status keep it; this is the safety net for
// errors nobody rendered.
var ErrorHandler gin.HandlerFunc = func(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 {
		return
	}

	err := c.Errors.Last().Err
	logger.L().Error().
		Str("request_id", requestIDFrom(c)).
		Str("path", c.Request.URL.Path).
		Err(err).
		Msg("unhandled request error")

	if c.Writer.Written() {
		return
	}
	c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error", err))
}

// AbortWithError renders a standardized error body with the given
// status and stops the handler chain. The error is also attached to
// the context so request logs carry it.
func AbortWithError(c *gin.Context, status int, message string, err error) {
	if err != nil {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message, err))
}
