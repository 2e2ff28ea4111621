package wizard

import (
	"math"

	"vitrine/internal/models"
)

const requiredFieldCount = 12

// CompletionPercentage returns how much of the required-for-submission
// checklist is filled, as a rounded 0-100 integer for the progress bar.
//
// The checklist is fixed at 12 fields. Booleans count only when true (all
// three are consent gates, so false means not done). Numbers count when
// non-null and non-zero, lists when non-empty, strings when non-empty.
// Strings are not trimmed first, so a whitespace-only value counts as
// filled; kept as-is to match the shipped behavior.
func CompletionPercentage(d models.AdDraft) int {
	n := 0
	if d.PresentationName != "" {
		n++
	}
	if d.Age != nil && *d.Age != 0 {
		n++
	}
	if d.Gender != "" {
		n++
	}
	if d.Title != "" {
		n++
	}
	if d.Description != "" {
		n++
	}
	if len(d.ServicesOffered) > 0 {
		n++
	}
	if d.Location != "" {
		n++
	}
	if d.Price != 0 {
		n++
	}
	if d.WhatsApp != "" {
		n++
	}
	if d.TermsAccepted {
		n++
	}
	if d.AgeConfirmed {
		n++
	}
	if d.ImageConsent {
		n++
	}
	return int(math.Round(100 * float64(n) / requiredFieldCount))
}
