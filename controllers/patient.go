package controllers

import (
	"IntakeKiosk/models"
	"IntakeKiosk/services"

	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

func Patient(router gin.IRouter, patients *services.PatientService, guard gin.HandlerFunc) {
	patient := router.Group("/patients")
	{
		patient.GET("", guard, FetchAllPatients(patients))
		patient.POST("", CreatePatient(patients))
		patient.POST("/lookup", LookupPatient(patients))
	}
}

func FetchAllPatients(patients *services.PatientService) gin.HandlerFunc {
	return func(c *gin.Context) {
		records, err := patients.FetchAll(c)
		if err != nil {
			failed(c, err)
			return
		}
		c.JSON(http.StatusOK, records)
	}
}

/*
* Bind the intake form
* The service validates, deduplicates and stamps provenance
 */
func CreatePatient(patients *services.PatientService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form models.IntakeForm
		if err := c.ShouldBindJSON(&form); err != nil {
			badRequest(c, "Invalid intake form")
			return
		}
		res, err := patients.Submit(c, form, c.GetHeader("User-Agent"))
		if err != nil {
			failed(c, err)
			return
		}
		body := gin.H{"success": true, "id": res.ID}
		if res.Duplicate {
			body["duplicate"] = true
		}
		c.JSON(http.StatusOK, body)
	}
}

type lookupRequest struct {
	MobileNumber string `json:"mobileNumber"`
}

func LookupPatient(patients *services.PatientService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req lookupRequest
		if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.MobileNumber) == "" {
			badRequest(c, services.ErrMobileRequired.Msg)
			return
		}
		c.JSON(http.StatusOK, patients.Lookup(c, req.MobileNumber))
	}
}
