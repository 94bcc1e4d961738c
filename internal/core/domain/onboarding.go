package domain

import "strings"

// Onboarding wizard steps. StepSuccess is the terminal state reached
// after the last step validates.
const (
	StepName      = 1
	StepPhone     = 2
	StepLocation  = 3
	StepInterests = 4

	// WizardSteps is the number of required steps.
	WizardSteps = 4

	// StepSuccess is the terminal state, modeled as step WizardSteps+1.
	StepSuccess = WizardSteps + 1
)

// OnboardingForm is the answer struct accumulated across wizard steps.
type OnboardingForm struct {
	// PreferredName is the name the user wants shown to their circle.
	PreferredName string

	// PhoneNumber is the user's phone, any format; validation strips
	// non-digits and requires exactly 10.
	PhoneNumber string

	// City is the user's home city.
	City string

	// State is the user's home state, code or full name.
	State string

	// Interests are the verticals the user selected, at least one.
	Interests []Category
}

// StepValidator checks the accumulated form for one step. It returns a
// display-ready failure reason, or "" when the step passes.
type StepValidator func(form OnboardingForm) string

// Wizard is the onboarding step machine: a finite sequence of required
// steps with per-step validation and completion tracking.
//
// A step index enters the completed set only after its validator passes.
// The current step is always either completed or the lowest
// not-yet-completed step the user is actively on.
type Wizard struct {
	current    int
	completed  map[int]bool
	form       OnboardingForm
	errMessage string
	validators map[int]StepValidator
}

// NewWizard creates a wizard positioned on step 1 with the standard
// per-step validators.
func NewWizard() *Wizard {
	return &Wizard{
		current:   StepName,
		completed: make(map[int]bool),
		validators: map[int]StepValidator{
			StepName:      validateName,
			StepPhone:     validatePhone,
			StepLocation:  validateLocation,
			StepInterests: validateInterests,
		},
	}
}

// Current returns the step the user is on, or StepSuccess once done.
func (w *Wizard) Current() int {
	return w.current
}

// Completed reports whether a step has passed validation.
func (w *Wizard) Completed(step int) bool {
	return w.completed[step]
}

// Done reports whether the wizard has reached the terminal state.
func (w *Wizard) Done() bool {
	return w.current == StepSuccess
}

// Err returns the current step's validation message, or "".
func (w *Wizard) Err() string {
	return w.errMessage
}

// Form returns the accumulating answer struct for mutation by the UI.
func (w *Wizard) Form() *OnboardingForm {
	return &w.form
}

// Next runs the current step's validator. On failure it records the
// reason and stays put. On success it marks the step completed and
// advances, reaching StepSuccess from the last step.
func (w *Wizard) Next() bool {
	if w.current == StepSuccess {
		return false
	}
	if reason := w.validators[w.current](w.form); reason != "" {
		w.errMessage = reason
		return false
	}
	w.errMessage = ""
	w.completed[w.current] = true
	w.current++
	return true
}

// Back moves one step back when possible and clears any error.
// It never un-completes a step.
func (w *Wizard) Back() {
	if w.current > StepName {
		w.current--
	}
	w.errMessage = ""
}

// JumpTo navigates directly to a step. It is permitted only when the
// step is already completed or is the current step; anything else is
// ignored, not an error.
func (w *Wizard) JumpTo(step int) {
	if step == w.current || w.completed[step] {
		w.current = step
		w.errMessage = ""
	}
}

func validateName(form OnboardingForm) string {
	if strings.TrimSpace(form.PreferredName) == "" {
		return "please enter your name"
	}
	return ""
}

func validatePhone(form OnboardingForm) string {
	digits := digitsOnly(form.PhoneNumber)
	if len(digits) != 10 {
		return "please enter a valid 10-digit phone number"
	}
	return ""
}

func validateLocation(form OnboardingForm) string {
	if strings.TrimSpace(form.City) == "" {
		return "please enter your city"
	}
	if strings.TrimSpace(form.State) == "" {
		return "please enter your state"
	}
	return ""
}

func validateInterests(form OnboardingForm) string {
	for _, interest := range form.Interests {
		if interest.Valid() {
			return ""
		}
	}
	return "please pick at least one category"
}

// digitsOnly strips everything but ASCII digits.
func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NormalizedPhone returns the form's phone as bare digits.
func (f OnboardingForm) NormalizedPhone() string {
	return digitsOnly(f.PhoneNumber)
}

// OnboardingRequest is the wire-level onboarding completion payload.
type OnboardingRequest struct {
	// UserID is the onboarding user's id.
	UserID string `json:"userId"`

	// Email is the onboarding user's email.
	Email string `json:"email"`

	// Username is the generated unique handle.
	Username string `json:"username"`

	// PreferredName is the display name from step 1.
	PreferredName string `json:"preferredName"`

	// PhoneNumber is the 10-digit phone from step 2.
	PhoneNumber string `json:"phoneNumber"`

	// Location is the city from step 3.
	Location string `json:"location"`

	// State is the resolved state code from step 3.
	State string `json:"state"`

	// Interests are the selected verticals from step 4.
	Interests []string `json:"interests"`
}
