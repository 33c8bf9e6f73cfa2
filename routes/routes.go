package routes

import (
	"IntakeKiosk/controllers"
	"IntakeKiosk/services"
	"IntakeKiosk/wizard"

	"github.com/gin-gonic/gin"
)

func Routes(r *gin.Engine, svc *services.Services, registry *wizard.Registry, requireAuth bool) {
	admin := controllers.RequireAdmin(svc.Auth, requireAuth)

	//public
	controllers.Auth(r, svc.Auth)
	controllers.Kiosk(r, registry)
	//admin when INTAKE_REQUIRE_AUTH is set
	controllers.Options(r, svc.Options, admin)
	controllers.Patient(r, svc.Patients, admin)
	controllers.Dashboard(r, svc.Dashboard, admin)
}
