package models

import (
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type VisitType string

const (
	FirstTime VisitType = "First-Time"
	Returning VisitType = "Returning"
)

func (v VisitType) Valid() bool {
	return v == FirstTime || v == Returning
}

type AdType string

const (
	AdCleaning     AdType = "Teeth Cleaning Ad"
	AdBraces       AdType = "Braces / Aligners Ad"
	AdImplants     AdType = "Implants Ad"
	AdRootCanal    AdType = "Root Canal Ad"
	AdDontRemember AdType = "Don't Remember"
)

var AdTypes = []AdType{AdCleaning, AdBraces, AdImplants, AdRootCanal, AdDontRemember}

func (a AdType) Valid() bool {
	for _, t := range AdTypes {
		if a == t {
			return true
		}
	}
	return false
}

const OtherSource = "Other"

// AdSources are the lead sources that carry an advertisement.
var AdSources = []string{"Google Ads", "Instagram", "Facebook"}

func IsAdSource(source string) bool {
	for _, s := range AdSources {
		if s == source {
			return true
		}
	}
	return false
}

type IntakeForm struct {
	VisitType          VisitType `json:"visitType,omitempty" bson:"visitType,omitempty"`
	FullName           string    `json:"fullName" bson:"fullName"`
	MobileNumber       string    `json:"mobileNumber" bson:"mobileNumber"`
	SelectedCategory   string    `json:"selectedCategory,omitempty" bson:"selectedCategory,omitempty"`
	Reason             string    `json:"reason,omitempty" bson:"reason,omitempty"`
	LeadSource         string    `json:"leadSource,omitempty" bson:"leadSource,omitempty"`
	OtherSourceDetails string    `json:"otherSourceDetails,omitempty" bson:"otherSourceDetails,omitempty"`
	AdAttribution      AdType    `json:"adAttribution,omitempty" bson:"adAttribution,omitempty"`
}

type PatientRecord struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	IntakeForm  `bson:",inline"`
	SubmittedAt time.Time `json:"submittedAt" bson:"submittedAt"`
	Source      string    `json:"source" bson:"source"`
	UserAgent   string    `json:"userAgent" bson:"userAgent"`
}

var nonDigits = regexp.MustCompile(`\D`)

// DigitsOnly strips every non-digit character from a phone number.
func DigitsOnly(mobile string) string {
	return nonDigits.ReplaceAllString(mobile, "")
}
