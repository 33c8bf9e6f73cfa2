package controllers

import (
	"IntakeKiosk/services"

	"net/http"

	"github.com/gin-gonic/gin"
)

func Dashboard(router gin.IRouter, dashboard *services.DashboardService, guard gin.HandlerFunc) {
	router.GET("/dashboard/summary", guard, FetchSummary(dashboard))
}

func FetchSummary(dashboard *services.DashboardService) gin.HandlerFunc {
	return func(c *gin.Context) {
		summary, err := dashboard.Summary(c)
		if err != nil {
			failed(c, err)
			return
		}
		c.JSON(http.StatusOK, summary)
	}
}
