package controllers

import (
	"IntakeKiosk/models"
	"IntakeKiosk/services"

	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

func Auth(router gin.IRouter, auth *services.AuthService) {
	router.POST("/login", Login(auth))
	seed := router.Group("/seed")
	{
		seed.POST("", Seed(auth))
		seed.GET("", SeedStatus(auth))
	}
}

/*
* Bind username and password, a malformed body is a 400
* Pass to the service, which seeds the default admin on first use
 */
func Login(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var login models.Login
		if err := c.ShouldBindJSON(&login); err != nil {
			badRequest(c, services.ErrMissingCredentials.Msg)
			return
		}
		session, err := auth.Login(c, login)
		if err != nil {
			failed(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "token": session.Token})
	}
}

func Seed(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		creds, err := auth.Seed(c)
		if errors.Is(err, services.ErrAdminExists) {
			c.JSON(http.StatusOK, gin.H{
				"success":  false,
				"message":  err.Error(),
				"username": creds.Username,
			})
			return
		}
		if err != nil {
			failed(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success":     true,
			"message":     "Admin user created successfully",
			"credentials": gin.H{"username": creds.Username, "password": creds.Password},
		})
	}
}

func SeedStatus(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		status, err := auth.SeedStatus(c)
		if err != nil {
			failed(c, err)
			return
		}
		c.JSON(http.StatusOK, status)
	}
}

/*
* When required, only requests carrying a live session token get through
* The token comes from "Authorization: Bearer <token>"
 */
func RequireAdmin(auth *services.AuthService, required bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !required {
			c.Next()
			return
		}
		token := strings.TrimSpace(strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer "))
		session, err := auth.Authenticate(c, token)
		if err != nil {
			failed(c, err)
			c.Abort()
			return
		}
		c.Set("admin", session.Username)
		c.Next()
	}
}
