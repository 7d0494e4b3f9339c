package httperr

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/table-booking/internal/middleware"
)

type HTTPError struct {
	Message string `json:"error"`
}

func Write(c *gin.Context, status int, message string) {
	c.JSON(status, HTTPError{
		Message: message,
	})
}

// Respond maps err onto the status of its kind. Errors that are not
// BusinessError values are logged and reported as 500 with their text.
func Respond(c *gin.Context, err error) {
	requestID := c.GetString(middleware.ContextRequestID)

	var be BusinessError
	if !errors.As(err, &be) {
		log.Printf("request %s: unexpected error: %v", requestID, err)
		Write(c, http.StatusInternalServerError, err.Error())
		return
	}

	switch be.Kind {
	case KindValidation:
		Write(c, http.StatusBadRequest, be.Error())
	case KindNotFound:
		Write(c, http.StatusNotFound, be.Error())
	default:
		log.Printf("request %s: %s: %s", requestID, be.Code, be.Error())
		Write(c, http.StatusInternalServerError, be.Error())
	}
}
