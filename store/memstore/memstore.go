// Package memstore holds every repository in process memory. It backs the service
// when INTAKE_STORE=memory and doubles as the test fixture for the other packages.
package memstore

import (
	"IntakeKiosk/models"
	"IntakeKiosk/services"

	"context"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Patients struct {
	mu      sync.Mutex
	records []models.PatientRecord
	// Err, when set, is returned from every call.
	Err error
}

func NewPatients() *Patients {
	return &Patients{}
}

func (p *Patients) FindSince(ctx context.Context, key services.DedupKey, since time.Time) (*models.PatientRecord, error) {
	return p.newest(func(r models.PatientRecord) bool {
		return r.FullName == key.FullName &&
			r.MobileNumber == key.MobileNumber &&
			r.Reason == key.Reason &&
			r.SelectedCategory == key.SelectedCategory &&
			!r.SubmittedAt.Before(since)
	})
}

func (p *Patients) LatestByMobile(ctx context.Context, mobile string) (*models.PatientRecord, error) {
	return p.newest(func(r models.PatientRecord) bool {
		return r.MobileNumber == mobile
	})
}

func (p *Patients) newest(match func(models.PatientRecord) bool) (*models.PatientRecord, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.Err != nil {
		return nil, p.Err
	}
	var found *models.PatientRecord
	for i := range p.records {
		r := p.records[i]
		if !match(r) {
			continue
		}
		if found == nil || r.SubmittedAt.After(found.SubmittedAt) {
			found = &r
		}
	}
	return found, nil
}

func (p *Patients) Insert(ctx context.Context, record *models.PatientRecord) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.Err != nil {
		return "", p.Err
	}
	record.ID = primitive.NewObjectID()
	p.records = append(p.records, *record)
	return record.ID.Hex(), nil
}

func (p *Patients) FindAll(ctx context.Context) ([]models.PatientRecord, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.Err != nil {
		return nil, p.Err
	}
	out := make([]models.PatientRecord, len(p.records))
	copy(out, p.records)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SubmittedAt.After(out[j].SubmittedAt)
	})
	return out, nil
}

func (p *Patients) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.records)
}

type Options struct {
	mu  sync.Mutex
	doc *models.OptionsDocument
	Err error
}

func NewOptions() *Options {
	return &Options{}
}

// Seed stores doc as is, including legacy reason layouts.
func (o *Options) Seed(doc models.OptionsDocument) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.doc = &doc
}

func (o *Options) Load(ctx context.Context) (*models.OptionsDocument, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.Err != nil {
		return nil, o.Err
	}
	if o.doc == nil {
		return nil, nil
	}
	doc := *o.doc
	return &doc, nil
}

func (o *Options) Replace(ctx context.Context, doc models.OptionsDocument) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.Err != nil {
		return o.Err
	}
	doc.Key = models.OptionsKey
	o.doc = &doc
	return nil
}

type Admins struct {
	mu     sync.Mutex
	admins map[string]models.AdminCredential
	Err    error
}

func NewAdmins() *Admins {
	return &Admins{admins: map[string]models.AdminCredential{}}
}

func (a *Admins) FindByUsername(ctx context.Context, username string) (*models.AdminCredential, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.Err != nil {
		return nil, a.Err
	}
	admin, ok := a.admins[username]
	if !ok {
		return nil, nil
	}
	return &admin, nil
}

func (a *Admins) Insert(ctx context.Context, admin *models.AdminCredential) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.Err != nil {
		return a.Err
	}
	admin.ID = primitive.NewObjectID()
	a.admins[admin.Username] = *admin
	return nil
}

type sessionEntry struct {
	session models.AdminSession
	expires time.Time
}

// Sessions keeps admin sessions until ttl has passed since Put. A ttl of zero never expires.
type Sessions struct {
	mu       sync.Mutex
	sessions map[string]sessionEntry
	ttl      time.Duration
	now      func() time.Time
}

func NewSessions(ttl time.Duration) *Sessions {
	return &Sessions{sessions: map[string]sessionEntry{}, ttl: ttl, now: time.Now}
}

func (s *Sessions) Put(ctx context.Context, session models.AdminSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry := sessionEntry{session: session}
	if s.ttl > 0 {
		entry.expires = s.now().Add(s.ttl)
	}
	s.sessions[session.Token] = entry
	return nil
}

// Get treats an expired session as missing and drops it.
func (s *Sessions) Get(ctx context.Context, token string) (*models.AdminSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.sessions[token]
	if !ok {
		return nil, nil
	}
	if entry.expired(s.now()) {
		delete(s.sessions, token)
		return nil, nil
	}
	session := entry.session
	return &session, nil
}

// Sweep removes every session expired at now and returns how many went.
func (s *Sessions) Sweep(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for token, entry := range s.sessions {
		if entry.expired(now) {
			delete(s.sessions, token)
			n++
		}
	}
	return n
}

func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (e sessionEntry) expired(now time.Time) bool {
	return !e.expires.IsZero() && !now.Before(e.expires)
}
