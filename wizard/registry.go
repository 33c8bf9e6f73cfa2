package wizard

import (
	"IntakeKiosk/models"

	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

type OptionSource interface {
	Get(ctx context.Context) (models.OptionSet, error)
}

// Registry holds the live kiosk sessions of this process.
type Registry struct {
	mu        sync.Mutex
	sessions  map[string]*Session
	options   OptionSource
	lookup    PatientLookup
	submitter IntakeSubmitter
	settings  Settings
	ttl       time.Duration
}

func NewRegistry(options OptionSource, lookup PatientLookup, submitter IntakeSubmitter, settings Settings, ttl time.Duration) *Registry {
	return &Registry{
		sessions:  map[string]*Session{},
		options:   options,
		lookup:    lookup,
		submitter: submitter,
		settings:  settings,
		ttl:       ttl,
	}
}

/*
* Fetch the option lists once for the new session
* If they cannot be read the kiosk still starts with the built-in lists
 */
func (r *Registry) Create(ctx context.Context, userAgent string) *Session {
	set, err := r.options.Get(ctx)
	if err != nil {
		log.Println("Using default options due to fetch error: ", err)
		set = models.DefaultOptions()
	}
	s := NewSession(uuid.NewString(), r.lookup, r.submitter, set, r.settings, userAgent)
	r.mu.Lock()
	r.sessions[s.ID()] = s
	r.mu.Unlock()
	return s
}

func (r *Registry) Get(id string) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	return s, ok
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Evict drops sessions idle for longer than the registry ttl and returns how many went.
func (r *Registry) Evict(now time.Time) int {
	if r.ttl <= 0 {
		return 0
	}
	r.mu.Lock()
	stale := []*Session{}
	for id, s := range r.sessions {
		if now.Sub(s.idleSince()) > r.ttl {
			stale = append(stale, s)
			delete(r.sessions, id)
		}
	}
	r.mu.Unlock()
	for _, s := range stale {
		s.close()
	}
	return len(stale)
}
