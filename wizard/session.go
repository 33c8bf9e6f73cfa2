package wizard

import (
	"IntakeKiosk/models"
	"IntakeKiosk/services"

	"context"
	"log"
	"strings"
	"sync"
	"time"
)

type PatientLookup interface {
	Lookup(ctx context.Context, mobile string) services.LookupResult
}

type IntakeSubmitter interface {
	Submit(ctx context.Context, form models.IntakeForm, userAgent string) (services.SubmitResult, error)
}

type SaveStatus string

const (
	SaveIdle    SaveStatus = ""
	SaveSaving  SaveStatus = "saving"
	SaveSuccess SaveStatus = "success"
	SaveError   SaveStatus = "error"
)

type Settings struct {
	CollectAdAttribution bool
	// GreetingDelay is how long the returning-visitor greeting stays up. Zero disables the auto-advance.
	GreetingDelay time.Duration
}

type View struct {
	ID           string            `json:"id"`
	Slide        Slide             `json:"slide"`
	Form         models.IntakeForm `json:"form"`
	Progress     Progress          `json:"progress"`
	GreetingName string            `json:"greetingName,omitempty"`
	SaveStatus   SaveStatus        `json:"saveStatus,omitempty"`
	RecordID     string            `json:"recordId,omitempty"`
	Duplicate    bool              `json:"duplicate,omitempty"`
	CanGoBack    bool              `json:"canGoBack"`
	Options      models.OptionSet  `json:"options"`
}

// Session is one kiosk's pass through the wizard. All methods are safe for
// concurrent use; calls are serialised.
type Session struct {
	mu        sync.Mutex
	id        string
	lookup    PatientLookup
	submitter IntakeSubmitter
	settings  Settings
	options   models.OptionSet
	userAgent string

	state        State
	greetingName string
	step         int

	// at most one successful submission per session
	submitted  bool
	result     services.SubmitResult
	saveStatus SaveStatus

	greetingTimer *time.Timer
	greetingGen   int
	touched       time.Time
}

func NewSession(id string, lookup PatientLookup, submitter IntakeSubmitter, options models.OptionSet, settings Settings, userAgent string) *Session {
	if options.IsEmpty() {
		options = models.DefaultOptions()
	}
	s := &Session{
		id:        id,
		lookup:    lookup,
		submitter: submitter,
		settings:  settings,
		options:   withOtherLast(options),
		userAgent: userAgent,
		touched:   time.Now(),
	}
	s.reset()
	return s
}

// withOtherLast is the source list the kiosk shows: configured order with "Other" last.
func withOtherLast(options models.OptionSet) models.OptionSet {
	sources := []string{}
	for _, src := range options.Sources {
		if src != models.OtherSource {
			sources = append(sources, src)
		}
	}
	options.Sources = append(sources, models.OtherSource)
	return options
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) reset() {
	s.cancelGreeting()
	s.state = State{Slide: Welcome, CollectAdAttribution: s.settings.CollectAdAttribution}
	s.greetingName = ""
	s.step = 0
	s.submitted = false
	s.result = services.SubmitResult{}
	s.saveStatus = SaveIdle
}

func (s *Session) touch() {
	s.touched = time.Now()
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.touched
}

func (s *Session) moveTo(slide Slide) {
	s.state.Slide = slide
	if step, ok := mainSteps[slide]; ok {
		s.step = step
	}
}

func (s *Session) expect(slide Slide) error {
	if s.state.Slide != slide {
		return ErrWrongSlide
	}
	return nil
}

func (s *Session) advance() error {
	next, err := Next(s.state)
	if err != nil {
		return err
	}
	s.moveTo(next)
	return nil
}

func (s *Session) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	if err := s.expect(Welcome); err != nil {
		return err
	}
	return s.advance()
}

/*
* Record the visit type
* Changing the visit type forgets any earlier lookup outcome
 */
func (s *Session) SelectVisitType(v models.VisitType) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	if err := s.expect(VisitType); err != nil {
		return err
	}
	if !v.Valid() {
		return services.NewValidationError("Invalid visit type")
	}
	s.state.Form.VisitType = v
	s.state.LookupFound = false
	s.greetingName = ""
	return s.advance()
}

func (s *Session) EnterName(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	if err := s.expect(Name); err != nil {
		return err
	}
	name = strings.TrimSpace(name)
	if len(name) < 2 {
		return services.NewValidationError("Full name is required")
	}
	s.state.Form.FullName = name
	return s.advance()
}

func validMobile(mobile string) (string, error) {
	digits := models.DigitsOnly(mobile)
	if len(digits) < services.MinMobileDigits {
		return "", services.NewValidationError("Please enter a valid 10-digit mobile number")
	}
	return digits, nil
}

func (s *Session) EnterMobile(mobile string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	if err := s.expect(Mobile); err != nil {
		return err
	}
	digits, err := validMobile(mobile)
	if err != nil {
		return err
	}
	s.state.Form.MobileNumber = digits
	return s.advance()
}

/*
* Keep the digits of the number
* A hit fills in the name and shows the greeting, which moves on by itself after GreetingDelay
* A miss or a failed lookup goes to Name with the number kept
 */
func (s *Session) LookupPhone(ctx context.Context, mobile string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	if err := s.expect(PhoneLookup); err != nil {
		return err
	}
	digits, err := validMobile(mobile)
	if err != nil {
		return err
	}
	s.state.Form.MobileNumber = digits
	res := s.lookup.Lookup(ctx, digits)
	s.state.LookupFound = res.Found
	if res.Found {
		s.state.Form.FullName = res.FullName
		s.greetingName = res.FullName
	} else {
		s.greetingName = ""
	}
	if err := s.advance(); err != nil {
		return err
	}
	if s.state.Slide == ReturningGreeting {
		s.scheduleGreeting()
	}
	return nil
}

func (s *Session) scheduleGreeting() {
	if s.settings.GreetingDelay <= 0 {
		return
	}
	s.greetingGen++
	gen := s.greetingGen
	s.greetingTimer = time.AfterFunc(s.settings.GreetingDelay, func() {
		s.greetingElapsed(gen)
	})
}

func (s *Session) greetingElapsed(gen int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.greetingGen || s.state.Slide != ReturningGreeting {
		return
	}
	s.greetingTimer = nil
	if err := s.advance(); err != nil {
		log.Println("Error from greeting auto-advance: ", err)
	}
}

func (s *Session) cancelGreeting() {
	s.greetingGen++
	if s.greetingTimer != nil {
		s.greetingTimer.Stop()
		s.greetingTimer = nil
	}
}

func (s *Session) ContinueGreeting() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	if err := s.expect(ReturningGreeting); err != nil {
		return err
	}
	s.cancelGreeting()
	return s.advance()
}

func (s *Session) SelectCategory(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	if err := s.expect(CategorySelect); err != nil {
		return err
	}
	if _, ok := s.options.Category(name); !ok {
		return services.NewValidationError("Unknown category: %s", name)
	}
	if s.state.Form.SelectedCategory != name {
		s.state.Form.Reason = ""
	}
	s.state.Form.SelectedCategory = name
	return s.advance()
}

func (s *Session) SelectReason(reason string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	if err := s.expect(ReasonSelect); err != nil {
		return err
	}
	category, ok := s.options.Category(s.state.Form.SelectedCategory)
	if !ok {
		return services.NewValidationError("Category not found")
	}
	for _, item := range category.Items {
		if item == reason {
			s.state.Form.Reason = reason
			return s.advance()
		}
	}
	return services.NewValidationError("Unknown reason: %s", reason)
}

/*
* The source must be one of the configured sources or "Other"
* "Other" needs details, any other source drops them
* A rejected choice leaves the form untouched
* Leaving the slide toward ThankYou submits the form
 */
func (s *Session) SelectSource(ctx context.Context, source, details string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	if err := s.expect(SourceSelect); err != nil {
		return err
	}
	if !contains(s.options.Sources, source) {
		return services.NewValidationError("Unknown source: %s", source)
	}
	details = strings.TrimSpace(details)
	if source == models.OtherSource && details == "" {
		return services.NewValidationError("Please specify how you heard about us")
	}
	if source != models.OtherSource {
		details = ""
	}
	s.state.Form.LeadSource = source
	s.state.Form.OtherSourceDetails = details
	if !models.IsAdSource(source) {
		s.state.Form.AdAttribution = ""
	}
	return s.finishOrAdvance(ctx)
}

func (s *Session) SelectAd(ctx context.Context, ad models.AdType) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	if err := s.expect(AdAttribution); err != nil {
		return err
	}
	if !ad.Valid() {
		return services.NewValidationError("Unknown ad: %s", ad)
	}
	s.state.Form.AdAttribution = ad
	return s.finishOrAdvance(ctx)
}

func (s *Session) finishOrAdvance(ctx context.Context) error {
	next, err := Next(s.state)
	if err != nil {
		return err
	}
	if next != ThankYou {
		s.moveTo(next)
		return nil
	}
	if !Complete(s.state.Form) {
		return ErrIncomplete
	}
	s.moveTo(ThankYou)
	s.submit(ctx)
	return nil
}

/*
* Guarded by the session: once a submission succeeded the stored outcome is returned
* A failure clears the guard so Submit can try again, the collected form is kept
 */
func (s *Session) submit(ctx context.Context) (services.SubmitResult, error) {
	if s.submitted {
		return s.result, nil
	}
	s.saveStatus = SaveSaving
	res, err := s.submitter.Submit(ctx, s.state.Form, s.userAgent)
	if err != nil {
		log.Println("Failed to save data: ", err)
		s.saveStatus = SaveError
		return services.SubmitResult{}, err
	}
	s.submitted = true
	s.result = res
	s.saveStatus = SaveSuccess
	return res, nil
}

// Submit sends the form from the ThankYou slide, returning the prior outcome if it already went through.
func (s *Session) Submit(ctx context.Context) (services.SubmitResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	if err := s.expect(ThankYou); err != nil {
		return services.SubmitResult{}, err
	}
	return s.submit(ctx)
}

func (s *Session) Back() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	prev, err := Prev(s.state)
	if err != nil {
		return err
	}
	s.cancelGreeting()
	s.moveTo(prev)
	return nil
}

// Restart throws away the form and begins again at Welcome.
func (s *Session) Restart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	s.reset()
}

func (s *Session) progress() Progress {
	switch s.state.Slide {
	case Welcome, ThankYou:
		return Progress{Step: s.step, Total: TotalSteps, Visible: false}
	}
	return Progress{Step: s.step, Total: TotalSteps, Visible: true}
}

func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, backErr := Prev(s.state)
	return View{
		ID:           s.id,
		Slide:        s.state.Slide,
		Form:         s.state.Form,
		Progress:     s.progress(),
		GreetingName: s.greetingName,
		SaveStatus:   s.saveStatus,
		RecordID:     s.result.ID,
		Duplicate:    s.result.Duplicate,
		CanGoBack:    backErr == nil,
		Options:      s.options,
	}
}

func (s *Session) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelGreeting()
}

func contains(list []string, v string) bool {
	for _, it := range list {
		if it == v {
			return true
		}
	}
	return false
}
