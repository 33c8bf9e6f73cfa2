package jobs

import (
	"IntakeKiosk/services"
	"IntakeKiosk/wizard"

	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

const evictSchedule = "@every 1m"

// SessionSweeper drops expired admin sessions from a store that cannot expire them itself.
type SessionSweeper interface {
	Sweep(now time.Time) int
}

/*
* Summary runs on the configured schedule
* Idle kiosk sessions and expired admin sessions are swept every minute
* sessions may be nil
 */
func StartScheduler(summarySpec string, dashboard *services.DashboardService, registry *wizard.Registry, sessions SessionSweeper) (*cron.Cron, error) {
	c := cron.New()

	if _, err := c.AddFunc(summarySpec, func() {
		log.Println("Running daily intake summary...")
		RunDailySummary(context.Background(), dashboard)
	}); err != nil {
		log.Println("Error scheduling intake summary: ", err)
		return nil, err
	}
	if _, err := c.AddFunc(evictSchedule, func() {
		now := time.Now()
		EvictIdleSessions(registry, now)
		SweepAdminSessions(sessions, now)
	}); err != nil {
		log.Println("Error scheduling session eviction: ", err)
		return nil, err
	}

	c.Start()
	return c, nil
}

func RunDailySummary(ctx context.Context, dashboard *services.DashboardService) (services.Summary, error) {
	summary, err := dashboard.Summary(ctx)
	if err != nil {
		log.Println("Error from dashboard summary: ", err)
		return summary, err
	}
	log.Printf("Intake summary: %d submissions", summary.Total)
	for _, b := range summary.BySource {
		log.Printf("  source %s: %d", b.Name, b.Value)
	}
	for _, b := range summary.ByVisitType {
		log.Printf("  visit %s: %d", b.Name, b.Value)
	}
	return summary, nil
}

func EvictIdleSessions(registry *wizard.Registry, now time.Time) int {
	n := registry.Evict(now)
	if n > 0 {
		log.Println("Evicted idle kiosk sessions: ", n)
	}
	return n
}

func SweepAdminSessions(sessions SessionSweeper, now time.Time) int {
	if sessions == nil {
		return 0
	}
	n := sessions.Sweep(now)
	if n > 0 {
		log.Println("Removed expired admin sessions: ", n)
	}
	return n
}

// SeedAdmin makes sure the default admin exists before the first login.
func SeedAdmin(auth *services.AuthService) {
	created, err := auth.EnsureDefaultAdmin(context.Background())
	if err != nil {
		log.Println("Error seeding admin:", err)
		return
	}
	if !created {
		log.Println("Admin user already exists")
	}
}
