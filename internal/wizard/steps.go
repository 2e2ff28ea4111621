package wizard

import "vitrine/internal/models"

// The six wizard steps. Forward navigation past a step is gated by
// IsStepValid; going back never is.
const (
	StepIdentity = 1
	StepServices = 2
	StepPricing  = 3
	StepMedia    = 4
	StepContact  = 5
	StepLegal    = 6

	TerminalStep = StepLegal
)

// IsStepValid reports whether the wizard may advance past step. Pure
// function of its inputs; an unrecognized step fails closed.
//
// These gates are deliberately looser than the completion checklist in
// completion.go: description, for example, counts toward the progress bar
// but never blocks a step.
func IsStepValid(step int, d models.AdDraft) bool {
	switch step {
	case StepIdentity:
		return d.PresentationName != "" &&
			d.Age != nil && *d.Age > 0 &&
			d.Gender != "" &&
			d.Title != ""
	case StepServices:
		return len(d.ServicesOffered) > 0 && d.Location != ""
	case StepPricing:
		return d.Price > 0
	case StepMedia:
		// media is optional
		return true
	case StepContact:
		return d.WhatsApp != ""
	case StepLegal:
		return d.TermsAccepted && d.AgeConfirmed && d.ImageConsent
	default:
		return false
	}
}
