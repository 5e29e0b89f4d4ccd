package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Sinclqir/jobazur-document-service/internal/utils"
)

// writeError maps an error to its status and the {"error": message} body.
// The wrapped cause stays out of the response; it reaches the request log
// through gin's error list.
func writeError(c *gin.Context, err error) {
	_ = c.Error(err)

	status := utils.HTTPStatus(err)

	var ae *utils.AppError
	if errors.As(err, &ae) && ae.Message != "" {
		c.JSON(status, gin.H{"error": ae.Message})
		return
	}
	c.JSON(status, gin.H{"error": http.StatusText(status)})
}

func requireUserID(c *gin.Context) (string, bool) {
	if v, ok := c.Get("user_id"); ok {
		if s, ok := v.(string); ok && s != "" {
			return s, true
		}
	}

	writeError(c, utils.E(utils.CodeUnauthenticated, "Auth", "Missing Authorization header", nil))
	return "", false
}
