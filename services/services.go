package services

import "time"

// Services bundles everything the routes and jobs need.
type Services struct {
	Options   *OptionService
	Patients  *PatientService
	Auth      *AuthService
	Dashboard *DashboardService
}

type Stores struct {
	Patients PatientStore
	Options  OptionStore
	Admins   AdminStore
	Sessions SessionCache
}

func New(stores Stores, sourceTag string) *Services {
	patients := NewPatientService(stores.Patients, sourceTag)
	return &Services{
		Options:   NewOptionService(stores.Options),
		Patients:  patients,
		Auth:      NewAuthService(stores.Admins, stores.Sessions),
		Dashboard: NewDashboardService(patients),
	}
}

// SetClock replaces time.Now in every service.
func (s *Services) SetClock(now func() time.Time) {
	s.Options.now = now
	s.Patients.now = now
	s.Auth.now = now
}
