package services

import (
	"IntakeKiosk/models"

	"context"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
)

type SeedStatus struct {
	Exists    bool       `json:"exists"`
	Username  string     `json:"username,omitempty"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

type AuthService struct {
	admins   AdminStore
	sessions SessionCache
	now      func() time.Time
	newToken func() string
}

func NewAuthService(admins AdminStore, sessions SessionCache) *AuthService {
	return &AuthService{
		admins:   admins,
		sessions: sessions,
		now:      time.Now,
		newToken: func() string { return uuid.NewString() },
	}
}

func (s *AuthService) defaultAdmin() *models.AdminCredential {
	return &models.AdminCredential{
		Username:  models.DefaultAdminUsername,
		Password:  models.DefaultAdminPassword,
		Role:      models.AdminRole,
		CreatedAt: s.now(),
	}
}

/*
* Insert the default admin when no admin record exists
* Returns whether a record was created
 */
func (s *AuthService) EnsureDefaultAdmin(ctx context.Context) (bool, error) {
	existing, err := s.admins.FindByUsername(ctx, models.DefaultAdminUsername)
	if err != nil {
		return false, storeError("find admin", err)
	}
	if existing != nil {
		return false, nil
	}
	if err := s.admins.Insert(ctx, s.defaultAdmin()); err != nil {
		return false, storeError("seed admin", err)
	}
	log.Println("Seeded default admin user (username: admin)")
	return true, nil
}

/*
* Both fields are required
* Seed the default admin if missing, a seeding failure does not stop the login
* Compare the stored password directly
* On success cache a session and hand back its token
* Unknown user and wrong password give the same error
 */
func (s *AuthService) Login(ctx context.Context, login models.Login) (models.AdminSession, error) {
	if strings.TrimSpace(login.Username) == "" || login.Password == "" {
		return models.AdminSession{}, ErrMissingCredentials
	}
	if _, err := s.EnsureDefaultAdmin(ctx); err != nil {
		log.Println("Error seeding admin: ", err)
	}
	admin, err := s.admins.FindByUsername(ctx, login.Username)
	if err != nil {
		log.Println("Error from FindByUsername: ", err)
		return models.AdminSession{}, storeError("find admin", err)
	}
	if admin == nil || admin.Password != login.Password {
		return models.AdminSession{}, ErrInvalidCredentials
	}
	session := models.AdminSession{
		Token:    s.newToken(),
		Username: admin.Username,
		Role:     admin.Role,
		IssuedAt: s.now(),
	}
	if err := s.sessions.Put(ctx, session); err != nil {
		log.Println("Error caching admin session: ", err)
		return models.AdminSession{}, storeError("cache session", err)
	}
	return session, nil
}

/*
* Resolve a token issued by Login
* Unknown or empty tokens are invalid credentials
 */
func (s *AuthService) Authenticate(ctx context.Context, token string) (*models.AdminSession, error) {
	if strings.TrimSpace(token) == "" {
		return nil, ErrInvalidCredentials
	}
	session, err := s.sessions.Get(ctx, token)
	if err != nil {
		log.Println("Error from session cache: ", err)
		return nil, storeError("read session", err)
	}
	if session == nil {
		return nil, ErrInvalidCredentials
	}
	return session, nil
}

// Seed creates the default admin and reports the credentials that were written.
// ErrAdminExists is returned when there is nothing to seed.
func (s *AuthService) Seed(ctx context.Context) (models.Login, error) {
	created, err := s.EnsureDefaultAdmin(ctx)
	if err != nil {
		log.Println("Error from EnsureDefaultAdmin: ", err)
		return models.Login{}, err
	}
	if !created {
		return models.Login{Username: models.DefaultAdminUsername}, ErrAdminExists
	}
	return models.Login{Username: models.DefaultAdminUsername, Password: models.DefaultAdminPassword}, nil
}

func (s *AuthService) SeedStatus(ctx context.Context) (SeedStatus, error) {
	admin, err := s.admins.FindByUsername(ctx, models.DefaultAdminUsername)
	if err != nil {
		log.Println("Error from FindByUsername: ", err)
		return SeedStatus{}, storeError("find admin", err)
	}
	if admin == nil {
		return SeedStatus{Exists: false}, nil
	}
	createdAt := admin.CreatedAt
	return SeedStatus{Exists: true, Username: admin.Username, CreatedAt: &createdAt}, nil
}
