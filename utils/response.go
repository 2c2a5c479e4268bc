package utils

import (
	"net/http"

	"hotel-management/services"

	"github.com/gin-gonic/gin"
)

// JSONSuccess writes {success:true, message?, ...payload}.
func JSONSuccess(c *gin.Context, code int, message string, payload gin.H) {
	body := gin.H{"success": true}
	if message != "" {
		body["message"] = message
	}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(code, body)
}

func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "message": message})
}

// StatusFor maps a service error kind onto an HTTP status.
func StatusFor(err error) int {
	switch services.KindOf(err) {
	case services.KindNotFound:
		return http.StatusNotFound
	case services.KindConflict:
		return http.StatusConflict
	case services.KindValidation:
		return http.StatusBadRequest
	case services.KindUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// RespondError hides storage failures behind a generic message.
func RespondError(c *gin.Context, err error) {
	code := StatusFor(err)
	if code == http.StatusInternalServerError {
		_ = c.Error(err)
		JSONError(c, code, "internal server error")
		return
	}
	JSONError(c, code, err.Error())
}
