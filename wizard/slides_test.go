package wizard

import (
	"IntakeKiosk/models"

	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNext_VisitTypeBranches(t *testing.T) {
	next, err := Next(State{Slide: VisitType, Form: models.IntakeForm{VisitType: models.FirstTime}})
	assert.NoError(t, err)
	assert.Equal(t, Name, next)

	next, err = Next(State{Slide: VisitType, Form: models.IntakeForm{VisitType: models.Returning}})
	assert.NoError(t, err)
	assert.Equal(t, PhoneLookup, next)

	_, err = Next(State{Slide: VisitType})
	assert.ErrorIs(t, err, ErrIncomplete)
}

func TestNext_NameSkipsMobileForReturning(t *testing.T) {
	next, _ := Next(State{Slide: Name, Form: models.IntakeForm{VisitType: models.Returning, MobileNumber: "9876543210"}})
	assert.Equal(t, CategorySelect, next)

	next, _ = Next(State{Slide: Name, Form: models.IntakeForm{VisitType: models.FirstTime, MobileNumber: "9876543210"}})
	assert.Equal(t, Mobile, next)
}

func TestNext_SourceSelect(t *testing.T) {
	st := State{Slide: SourceSelect}
	_, err := Next(st)
	assert.ErrorIs(t, err, ErrIncomplete)

	st.Form.LeadSource = models.OtherSource
	_, err = Next(st)
	assert.ErrorIs(t, err, ErrIncomplete)

	st.Form.OtherSourceDetails = "Radio"
	next, err := Next(st)
	assert.NoError(t, err)
	assert.Equal(t, ThankYou, next)

	st.Form.LeadSource = "Instagram"
	next, _ = Next(st)
	assert.Equal(t, ThankYou, next)

	st.CollectAdAttribution = true
	next, _ = Next(st)
	assert.Equal(t, AdAttribution, next)
}

func TestNext_Terminal(t *testing.T) {
	_, err := Next(State{Slide: ThankYou})
	assert.ErrorIs(t, err, ErrNoTransition)
}

func TestPrev_IsInverseOfNext(t *testing.T) {
	states := []State{
		{Slide: Welcome},
		{Slide: VisitType, Form: models.IntakeForm{VisitType: models.FirstTime}},
		{Slide: VisitType, Form: models.IntakeForm{VisitType: models.Returning}},
		{Slide: Name, Form: models.IntakeForm{VisitType: models.FirstTime}},
		{Slide: Name, Form: models.IntakeForm{VisitType: models.Returning, MobileNumber: "9876543210"}},
		{Slide: PhoneLookup, Form: models.IntakeForm{VisitType: models.Returning}, LookupFound: true},
		{Slide: PhoneLookup, Form: models.IntakeForm{VisitType: models.Returning}},
		{Slide: ReturningGreeting, Form: models.IntakeForm{VisitType: models.Returning}, LookupFound: true},
		{Slide: CategorySelect},
		{Slide: ReasonSelect},
		{Slide: SourceSelect, Form: models.IntakeForm{LeadSource: "Google Ads"}, CollectAdAttribution: true},
	}
	for _, st := range states {
		next, err := Next(st)
		if !assert.NoError(t, err, st.Slide.String()) {
			continue
		}
		after := st
		after.Slide = next
		prev, err := Prev(after)
		assert.NoError(t, err, next.String())
		assert.Equal(t, st.Slide, prev, "back from %s", next)
	}
}

func TestPrev_CategoryGoesToNameOnFirstTimePath(t *testing.T) {
	prev, err := Prev(State{Slide: CategorySelect, Form: models.IntakeForm{VisitType: models.FirstTime, MobileNumber: "9876543210"}})
	assert.NoError(t, err)
	assert.Equal(t, Name, prev)

	prev, _ = Prev(State{Slide: CategorySelect, Form: models.IntakeForm{VisitType: models.Returning}, LookupFound: true})
	assert.Equal(t, ReturningGreeting, prev)

	prev, _ = Prev(State{Slide: CategorySelect, Form: models.IntakeForm{VisitType: models.Returning, MobileNumber: "9876543210"}})
	assert.Equal(t, Name, prev)
}

func TestPrev_NoWayBack(t *testing.T) {
	_, err := Prev(State{Slide: Welcome})
	assert.ErrorIs(t, err, ErrNoTransition)
	_, err = Prev(State{Slide: ThankYou})
	assert.ErrorIs(t, err, ErrNoTransition)
}

func TestComplete(t *testing.T) {
	form := models.IntakeForm{
		FullName: "Asha Rao", MobileNumber: "9876543210",
		SelectedCategory: "Consultation", Reason: "Follow-up", LeadSource: "Walk-in",
	}
	assert.True(t, Complete(form))

	form.LeadSource = models.OtherSource
	assert.False(t, Complete(form))
	form.OtherSourceDetails = "Radio"
	assert.True(t, Complete(form))

	form.Reason = ""
	assert.False(t, Complete(form))
}

func TestSlideText(t *testing.T) {
	b, err := ReturningGreeting.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "returning-greeting", string(b))
	assert.Equal(t, "slide(42)", Slide(42).String())
}
