package jobs

import (
	"IntakeKiosk/models"
	"IntakeKiosk/services"
	"IntakeKiosk/store/memstore"
	"IntakeKiosk/wizard"

	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServices() (*services.Services, *memstore.Patients, *memstore.Admins) {
	patients := memstore.NewPatients()
	admins := memstore.NewAdmins()
	svc := services.New(services.Stores{
		Patients: patients,
		Options:  memstore.NewOptions(),
		Admins:   admins,
		Sessions: memstore.NewSessions(time.Hour),
	}, "intake-kiosk")
	return svc, patients, admins
}

func TestSeedAdmin(t *testing.T) {
	svc, _, admins := newTestServices()
	SeedAdmin(svc.Auth)
	SeedAdmin(svc.Auth)

	admin, err := admins.FindByUsername(context.Background(), models.DefaultAdminUsername)
	require.NoError(t, err)
	require.NotNil(t, admin)
}

func TestRunDailySummary(t *testing.T) {
	svc, patients, _ := newTestServices()
	_, err := svc.Patients.Submit(context.Background(), models.IntakeForm{
		FullName: "Asha Rao", MobileNumber: "9876543210",
		SelectedCategory: "Consultation", Reason: "Follow-up", LeadSource: "Walk-in",
	}, "")
	require.NoError(t, err)

	summary, err := RunDailySummary(context.Background(), svc.Dashboard)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Total)

	patients.Err = errors.New("down")
	_, err = RunDailySummary(context.Background(), svc.Dashboard)
	assert.ErrorIs(t, err, services.ErrStoreUnavailable)
}

func TestEvictIdleSessions(t *testing.T) {
	svc, _, _ := newTestServices()
	registry := wizard.NewRegistry(svc.Options, svc.Patients, svc.Patients, wizard.Settings{}, time.Minute)
	registry.Create(context.Background(), "")

	assert.Equal(t, 0, EvictIdleSessions(registry, time.Now()))
	assert.Equal(t, 1, EvictIdleSessions(registry, time.Now().Add(2*time.Minute)))
	assert.Equal(t, 0, registry.Len())
}

func TestStartScheduler(t *testing.T) {
	svc, _, _ := newTestServices()
	registry := wizard.NewRegistry(svc.Options, svc.Patients, svc.Patients, wizard.Settings{}, time.Minute)

	c, err := StartScheduler("0 23 * * *", svc.Dashboard, registry, memstore.NewSessions(time.Hour))
	require.NoError(t, err)
	assert.Len(t, c.Entries(), 2)
	c.Stop()

	_, err = StartScheduler("not a schedule", svc.Dashboard, registry, nil)
	assert.Error(t, err)
}

func TestSweepAdminSessions(t *testing.T) {
	sessions := memstore.NewSessions(time.Minute)
	ctx := context.Background()
	require.NoError(t, sessions.Put(ctx, models.AdminSession{Token: "t1"}))
	require.NoError(t, sessions.Put(ctx, models.AdminSession{Token: "t2"}))

	assert.Equal(t, 0, SweepAdminSessions(sessions, time.Now()))
	assert.Equal(t, 2, SweepAdminSessions(sessions, time.Now().Add(2*time.Minute)))
	assert.Equal(t, 0, sessions.Len())
	assert.Equal(t, 0, SweepAdminSessions(nil, time.Now()))
}
