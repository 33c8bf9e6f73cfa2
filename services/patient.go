package services

import (
	"IntakeKiosk/models"

	"context"
	"log"
	"strings"
	"time"
)

// DedupWindow collapses accidental double submissions of the same form.
const DedupWindow = 5 * time.Second

const MinMobileDigits = 10

type SubmitResult struct {
	ID        string `json:"id"`
	Duplicate bool   `json:"duplicate,omitempty"`
}

type LookupResult struct {
	Found        bool   `json:"found"`
	FullName     string `json:"fullName,omitempty"`
	MobileNumber string `json:"mobileNumber,omitempty"`
}

type PatientService struct {
	store     PatientStore
	sourceTag string
	now       func() time.Time
}

func NewPatientService(store PatientStore, sourceTag string) *PatientService {
	return &PatientService{store: store, sourceTag: sourceTag, now: time.Now}
}

/*
* Every field the kiosk collects before the thank-you screen must be present
* "Other" lead source needs the free text details
 */
func ValidateIntake(form models.IntakeForm) error {
	if form.VisitType != "" && !form.VisitType.Valid() {
		return NewValidationError("Invalid visit type")
	}
	if len(strings.TrimSpace(form.FullName)) < 2 {
		return NewValidationError("Full name is required")
	}
	if len(models.DigitsOnly(form.MobileNumber)) < MinMobileDigits {
		return NewValidationError("Please enter a valid 10-digit mobile number")
	}
	if strings.TrimSpace(form.SelectedCategory) == "" {
		return NewValidationError("Category is required")
	}
	if strings.TrimSpace(form.Reason) == "" {
		return NewValidationError("Reason is required")
	}
	if strings.TrimSpace(form.LeadSource) == "" {
		return NewValidationError("Lead source is required")
	}
	if form.LeadSource == models.OtherSource && strings.TrimSpace(form.OtherSourceDetails) == "" {
		return NewValidationError("Please specify how you heard about us")
	}
	if form.AdAttribution != "" && !form.AdAttribution.Valid() {
		return NewValidationError("Invalid ad attribution")
	}
	return nil
}

/*
* Validate the completed form and keep only the digits of the mobile number
* Look for the same name, mobile, reason and category submitted in the last five seconds
* If found return that id marked duplicate instead of inserting
* Otherwise stamp submittedAt and provenance and insert
 */
func (s *PatientService) Submit(ctx context.Context, form models.IntakeForm, userAgent string) (SubmitResult, error) {
	if err := ValidateIntake(form); err != nil {
		log.Println("Error from ValidateIntake: ", err)
		return SubmitResult{}, err
	}
	form.FullName = strings.TrimSpace(form.FullName)
	form.MobileNumber = models.DigitsOnly(form.MobileNumber)
	if form.LeadSource != models.OtherSource {
		form.OtherSourceDetails = ""
	}

	now := s.now()
	key := DedupKey{
		FullName:         form.FullName,
		MobileNumber:     form.MobileNumber,
		Reason:           form.Reason,
		SelectedCategory: form.SelectedCategory,
	}
	dup, err := s.store.FindSince(ctx, key, now.Add(-DedupWindow))
	if err != nil {
		log.Println("Error from FindSince: ", err)
		return SubmitResult{}, storeError("dedup check", err)
	}
	if dup != nil {
		log.Println("Duplicate submission detected, skipping save: ", dup.ID.Hex())
		return SubmitResult{ID: dup.ID.Hex(), Duplicate: true}, nil
	}

	if strings.TrimSpace(userAgent) == "" {
		userAgent = "unknown"
	}
	record := &models.PatientRecord{
		IntakeForm:  form,
		SubmittedAt: now,
		Source:      s.sourceTag,
		UserAgent:   userAgent,
	}
	id, err := s.store.Insert(ctx, record)
	if err != nil {
		log.Println("Error from patient insert: ", err)
		return SubmitResult{}, storeError("insert patient", err)
	}
	return SubmitResult{ID: id}, nil
}

/*
* Normalise to digits
* Return the name on the most recent record for that number
* A store failure is reported as not found so the kiosk keeps going
 */
func (s *PatientService) Lookup(ctx context.Context, mobile string) LookupResult {
	normalized := models.DigitsOnly(mobile)
	if normalized == "" {
		return LookupResult{Found: false}
	}
	record, err := s.store.LatestByMobile(ctx, normalized)
	if err != nil {
		log.Println("Error from LatestByMobile, treating as not found: ", err)
		return LookupResult{Found: false}
	}
	if record == nil {
		return LookupResult{Found: false}
	}
	return LookupResult{Found: true, FullName: record.FullName, MobileNumber: record.MobileNumber}
}

func (s *PatientService) FetchAll(ctx context.Context) ([]models.PatientRecord, error) {
	records, err := s.store.FindAll(ctx)
	if err != nil {
		log.Println("Error from FindAll: ", err)
		return nil, storeError("list patients", err)
	}
	if records == nil {
		records = []models.PatientRecord{}
	}
	log.Printf("Fetched %d patients from database", len(records))
	return records, nil
}
