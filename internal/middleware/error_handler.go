package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/daytona/internal/domain/dto"
)

// ErrorHandler converts errors attached to the Gin context into a 500 JSON
// response, for handlers that record failures via c.Error instead of writing
// a body themselves.
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}

	err := c.Errors.Last().Err
	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal Server Error.", err))
}
