package services

import (
	"IntakeKiosk/models"
	"context"
	"time"
)

// DedupKey is the tuple compared when collapsing double submissions.
type DedupKey struct {
	FullName         string
	MobileNumber     string
	Reason           string
	SelectedCategory string
}

type PatientStore interface {
	// FindSince returns the newest record matching key submitted at or after since, or nil.
	FindSince(ctx context.Context, key DedupKey, since time.Time) (*models.PatientRecord, error)
	Insert(ctx context.Context, record *models.PatientRecord) (string, error)
	// LatestByMobile returns the most recently submitted record for mobile, or nil.
	LatestByMobile(ctx context.Context, mobile string) (*models.PatientRecord, error)
	// FindAll lists every record, newest first.
	FindAll(ctx context.Context) ([]models.PatientRecord, error)
}

type OptionStore interface {
	// Load returns nil when no options document exists.
	Load(ctx context.Context) (*models.OptionsDocument, error)
	Replace(ctx context.Context, doc models.OptionsDocument) error
}

type AdminStore interface {
	// FindByUsername returns nil when the user does not exist.
	FindByUsername(ctx context.Context, username string) (*models.AdminCredential, error)
	Insert(ctx context.Context, admin *models.AdminCredential) error
}

type SessionCache interface {
	Put(ctx context.Context, session models.AdminSession) error
	Get(ctx context.Context, token string) (*models.AdminSession, error)
}
