package controllers

import (
	"IntakeKiosk/models"
	"IntakeKiosk/services"
	"IntakeKiosk/wizard"

	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

const kioskSessionKey = "kioskSession"

func Kiosk(router gin.IRouter, registry *wizard.Registry) {
	router.POST("/kiosk/sessions", CreateKioskSession(registry))
	session := router.Group("/kiosk/sessions/:id", loadKioskSession(registry))
	{
		session.GET("", kioskView)
		session.POST("/start", kioskAction(func(c *gin.Context, s *wizard.Session) error {
			return s.Start()
		}))
		session.POST("/visit-type", kioskAction(func(c *gin.Context, s *wizard.Session) error {
			var req struct {
				VisitType models.VisitType `json:"visitType"`
			}
			if err := c.ShouldBindJSON(&req); err != nil {
				return errInvalidBody
			}
			return s.SelectVisitType(req.VisitType)
		}))
		session.POST("/name", kioskAction(func(c *gin.Context, s *wizard.Session) error {
			var req struct {
				FullName string `json:"fullName"`
			}
			if err := c.ShouldBindJSON(&req); err != nil {
				return errInvalidBody
			}
			return s.EnterName(req.FullName)
		}))
		session.POST("/mobile", kioskAction(func(c *gin.Context, s *wizard.Session) error {
			var req lookupRequest
			if err := c.ShouldBindJSON(&req); err != nil {
				return errInvalidBody
			}
			return s.EnterMobile(req.MobileNumber)
		}))
		session.POST("/lookup", kioskAction(func(c *gin.Context, s *wizard.Session) error {
			var req lookupRequest
			if err := c.ShouldBindJSON(&req); err != nil {
				return errInvalidBody
			}
			return s.LookupPhone(c, req.MobileNumber)
		}))
		session.POST("/greeting", kioskAction(func(c *gin.Context, s *wizard.Session) error {
			return s.ContinueGreeting()
		}))
		session.POST("/category", kioskAction(func(c *gin.Context, s *wizard.Session) error {
			var req struct {
				Category string `json:"selectedCategory"`
			}
			if err := c.ShouldBindJSON(&req); err != nil {
				return errInvalidBody
			}
			return s.SelectCategory(req.Category)
		}))
		session.POST("/reason", kioskAction(func(c *gin.Context, s *wizard.Session) error {
			var req struct {
				Reason string `json:"reason"`
			}
			if err := c.ShouldBindJSON(&req); err != nil {
				return errInvalidBody
			}
			return s.SelectReason(req.Reason)
		}))
		session.POST("/source", kioskAction(func(c *gin.Context, s *wizard.Session) error {
			var req struct {
				LeadSource         string `json:"leadSource"`
				OtherSourceDetails string `json:"otherSourceDetails"`
			}
			if err := c.ShouldBindJSON(&req); err != nil {
				return errInvalidBody
			}
			return s.SelectSource(c, req.LeadSource, req.OtherSourceDetails)
		}))
		session.POST("/ad", kioskAction(func(c *gin.Context, s *wizard.Session) error {
			var req struct {
				AdAttribution models.AdType `json:"adAttribution"`
			}
			if err := c.ShouldBindJSON(&req); err != nil {
				return errInvalidBody
			}
			return s.SelectAd(c, req.AdAttribution)
		}))
		session.POST("/back", kioskAction(func(c *gin.Context, s *wizard.Session) error {
			return s.Back()
		}))
		// a store failure stays on the thank-you slide with saveStatus "error"
		session.POST("/retry", kioskAction(func(c *gin.Context, s *wizard.Session) error {
			if _, err := s.Submit(c); err != nil && !errors.Is(err, services.ErrStoreUnavailable) {
				return err
			}
			return nil
		}))
		session.POST("/restart", kioskAction(func(c *gin.Context, s *wizard.Session) error {
			s.Restart()
			return nil
		}))
	}
}

func CreateKioskSession(registry *wizard.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		s := registry.Create(c, c.GetHeader("User-Agent"))
		c.JSON(http.StatusOK, s.View())
	}
}

func loadKioskSession(registry *wizard.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := registry.Get(c.Param("id"))
		if !ok {
			badRequest(c, "Unknown kiosk session")
			c.Abort()
			return
		}
		c.Set(kioskSessionKey, s)
		c.Next()
	}
}

func kioskView(c *gin.Context) {
	s := c.MustGet(kioskSessionKey).(*wizard.Session)
	c.JSON(http.StatusOK, s.View())
}

func kioskAction(action func(c *gin.Context, s *wizard.Session) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		s := c.MustGet(kioskSessionKey).(*wizard.Session)
		if err := action(c, s); err != nil {
			failed(c, err)
			return
		}
		c.JSON(http.StatusOK, s.View())
	}
}
