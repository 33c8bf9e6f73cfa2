package controllers

import (
	"IntakeKiosk/services"

	"net/http"

	"github.com/gin-gonic/gin"
)

func Options(router gin.IRouter, options *services.OptionService, guard gin.HandlerFunc) {
	router.GET("/options", FetchOptions(options))
	router.POST("/options", guard, SaveOptions(options))
}

func FetchOptions(options *services.OptionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		set, err := options.Get(c)
		if err != nil {
			failed(c, err)
			return
		}
		c.JSON(http.StatusOK, set)
	}
}

/*
* Bind the raw body so the reasons layout can be checked before decoding
* Reject the legacy flat reasons array
* Replace the stored document
 */
func SaveOptions(options *services.OptionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		body := make(map[string]interface{})
		if err := c.ShouldBindJSON(&body); err != nil {
			badRequest(c, services.ErrInvalidFormat.Msg)
			return
		}
		set, err := services.ParseOptionSet(body)
		if err != nil {
			failed(c, err)
			return
		}
		if err := options.Save(c, set); err != nil {
			failed(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
