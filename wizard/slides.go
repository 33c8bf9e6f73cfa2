package wizard

import (
	"IntakeKiosk/models"
	"IntakeKiosk/services"
	"fmt"
	"strings"
)

type Slide int

const (
	Welcome Slide = iota
	VisitType
	Name
	Mobile
	PhoneLookup
	ReturningGreeting
	CategorySelect
	ReasonSelect
	SourceSelect
	AdAttribution
	ThankYou
)

var slideNames = [...]string{
	Welcome:           "welcome",
	VisitType:         "visit-type",
	Name:              "name",
	Mobile:            "mobile",
	PhoneLookup:       "phone-lookup",
	ReturningGreeting: "returning-greeting",
	CategorySelect:    "category",
	ReasonSelect:      "reason",
	SourceSelect:      "source",
	AdAttribution:     "ad-attribution",
	ThankYou:          "thank-you",
}

func (s Slide) String() string {
	if s < 0 || int(s) >= len(slideNames) {
		return fmt.Sprintf("slide(%d)", int(s))
	}
	return slideNames[s]
}

func (s Slide) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

var (
	ErrNoTransition = services.NewValidationError("No transition from this slide")
	ErrWrongSlide   = services.NewValidationError("Action not available on this slide")
	ErrIncomplete   = services.NewValidationError("Form is incomplete")
)

// State is everything a navigation decision depends on.
type State struct {
	Slide                Slide
	Form                 models.IntakeForm
	LookupFound          bool
	CollectAdAttribution bool
}

/*
* Forward transitions
* VisitType branches on returning or first time
* Name skips Mobile for a returning visitor whose number came from the lookup
* PhoneLookup branches on the lookup outcome
* SourceSelect needs a source, and details when the source is "Other"
 */
func Next(st State) (Slide, error) {
	switch st.Slide {
	case Welcome:
		return VisitType, nil
	case VisitType:
		switch st.Form.VisitType {
		case models.Returning:
			return PhoneLookup, nil
		case models.FirstTime:
			return Name, nil
		}
		return st.Slide, ErrIncomplete
	case Name:
		if st.Form.VisitType == models.Returning && st.Form.MobileNumber != "" {
			return CategorySelect, nil
		}
		return Mobile, nil
	case Mobile:
		return CategorySelect, nil
	case PhoneLookup:
		if st.LookupFound {
			return ReturningGreeting, nil
		}
		return Name, nil
	case ReturningGreeting:
		return CategorySelect, nil
	case CategorySelect:
		return ReasonSelect, nil
	case ReasonSelect:
		return SourceSelect, nil
	case SourceSelect:
		if st.Form.LeadSource == "" {
			return st.Slide, ErrIncomplete
		}
		if st.Form.LeadSource == models.OtherSource && strings.TrimSpace(st.Form.OtherSourceDetails) == "" {
			return st.Slide, ErrIncomplete
		}
		if st.CollectAdAttribution && models.IsAdSource(st.Form.LeadSource) {
			return AdAttribution, nil
		}
		return ThankYou, nil
	case AdAttribution:
		return ThankYou, nil
	}
	return st.Slide, ErrNoTransition
}

/*
* Backward transitions mirror the forward ones, except from CategorySelect
* CategorySelect returns to the greeting after a successful lookup and to Name otherwise
* Welcome and ThankYou have no way back
 */
func Prev(st State) (Slide, error) {
	switch st.Slide {
	case VisitType:
		return Welcome, nil
	case Name:
		if st.Form.VisitType == models.Returning {
			return PhoneLookup, nil
		}
		return VisitType, nil
	case Mobile:
		return Name, nil
	case PhoneLookup:
		return VisitType, nil
	case ReturningGreeting:
		return PhoneLookup, nil
	case CategorySelect:
		if st.LookupFound {
			return ReturningGreeting, nil
		}
		return Name, nil
	case ReasonSelect:
		return CategorySelect, nil
	case SourceSelect:
		return ReasonSelect, nil
	case AdAttribution:
		return SourceSelect, nil
	}
	return st.Slide, ErrNoTransition
}

// Complete reports whether form carries everything needed to reach ThankYou.
func Complete(form models.IntakeForm) bool {
	if form.FullName == "" || form.MobileNumber == "" || form.SelectedCategory == "" ||
		form.Reason == "" || form.LeadSource == "" {
		return false
	}
	if form.LeadSource == models.OtherSource && strings.TrimSpace(form.OtherSourceDetails) == "" {
		return false
	}
	return true
}

const TotalSteps = 6

var mainSteps = map[Slide]int{
	VisitType:      1,
	Name:           2,
	Mobile:         3,
	CategorySelect: 4,
	ReasonSelect:   5,
	SourceSelect:   6,
}

type Progress struct {
	Step    int  `json:"step"`
	Total   int  `json:"total"`
	Visible bool `json:"visible"`
}
