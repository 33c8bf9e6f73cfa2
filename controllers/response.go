package controllers

import (
	"IntakeKiosk/services"

	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

const internalError = "Internal Server Error"

var errInvalidBody = services.NewValidationError("Invalid request body")

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}

/*
* Validation errors are 400
* Bad credentials are 401
* Everything else is logged and answered with a generic 500
 */
func failed(c *gin.Context, err error) {
	var v *services.ValidationError
	switch {
	case errors.As(err, &v):
		c.JSON(http.StatusBadRequest, gin.H{"error": v.Msg})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": services.ErrInvalidCredentials.Error()})
	case errors.Is(err, services.ErrStoreUnavailable):
		log.Println("Store error: ", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": services.ErrStoreUnavailable.Error()})
	default:
		log.Println("Unhandled error: ", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": internalError})
	}
}
