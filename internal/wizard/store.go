// Package wizard implements the ad-creation wizard: a draft store with
// patch-merge semantics, per-step validation gates, a completion score for
// the progress bar, and the orchestrator that walks a draft through the six
// steps and hands it to the ad repository on submit.
package wizard

import (
	"vitrine/internal/models"
)

// DraftStore is the single source of truth for one in-progress ad. It is
// mutated only through Patch; the draft never leaves memory until submission.
type DraftStore struct {
	draft models.AdDraft
}

func NewDraftStore() *DraftStore {
	return &DraftStore{}
}

// NewDraftStoreFromAd seeds a store from a stored ad, for the edit flow.
func NewDraftStoreFromAd(ad *models.Ad) *DraftStore {
	return &DraftStore{draft: ad.AdDraft}
}

// Draft returns the current snapshot.
func (s *DraftStore) Draft() models.AdDraft {
	return s.draft
}

// Patch shallow-merges p into the draft: every non-nil field of p fully
// replaces the corresponding draft field, absent fields are untouched.
// Maps (availability_hours, packages) are replaced whole — a patch carrying
// hours for tuesday drops a previously stored monday unless the caller sent
// the composed map. Callers rely on that overwrite, do not deep-merge here.
func (s *DraftStore) Patch(p *models.AdDraftPatch) {
	if p == nil {
		return
	}
	d := &s.draft

	if p.PresentationName != nil {
		d.PresentationName = *p.PresentationName
	}
	if p.Age != nil {
		d.Age = p.Age
	}
	if p.Gender != nil {
		d.Gender = *p.Gender
	}
	if p.Title != nil {
		d.Title = *p.Title
	}
	if p.Description != nil {
		d.Description = *p.Description
	}
	if p.HighlightPhrase != nil {
		d.HighlightPhrase = *p.HighlightPhrase
	}
	if p.Category != nil {
		d.Category = *p.Category
	}
	if p.ServicesOffered != nil {
		d.ServicesOffered = *p.ServicesOffered
	}
	if p.TargetAudience != nil {
		d.TargetAudience = *p.TargetAudience
	}
	if p.ServiceLocations != nil {
		d.ServiceLocations = *p.ServiceLocations
	}
	if p.AvailabilityDays != nil {
		d.AvailabilityDays = *p.AvailabilityDays
	}
	if p.AvailabilityHours != nil {
		d.AvailabilityHours = *p.AvailabilityHours
	}
	if p.AppointmentOnly != nil {
		d.AppointmentOnly = *p.AppointmentOnly
	}
	if p.Location != nil {
		d.Location = *p.Location
	}
	if p.Neighborhood != nil {
		d.Neighborhood = *p.Neighborhood
	}
	if p.PostalCode != nil {
		d.PostalCode = *p.PostalCode
	}
	if p.AcceptsTravel != nil {
		d.AcceptsTravel = *p.AcceptsTravel
	}
	if p.Price != nil {
		d.Price = *p.Price
	}
	if p.HourlyRate != nil {
		d.HourlyRate = p.HourlyRate
	}
	if p.Packages != nil {
		d.Packages = *p.Packages
	}
	if p.PaymentMethods != nil {
		d.PaymentMethods = *p.PaymentMethods
	}
	if p.Highlight != nil {
		d.Highlight = *p.Highlight
	}
	if p.ImageURL != nil {
		d.ImageURL = *p.ImageURL
	}
	if p.VideoURL != nil {
		d.VideoURL = *p.VideoURL
	}
	if p.Photos != nil {
		d.Photos = *p.Photos
	}
	if p.Videos != nil {
		d.Videos = *p.Videos
	}
	if p.WhatsApp != nil {
		d.WhatsApp = *p.WhatsApp
	}
	if p.ContactTelegram != nil {
		d.ContactTelegram = *p.ContactTelegram
	}
	if p.ContactInstagram != nil {
		d.ContactInstagram = *p.ContactInstagram
	}
	if p.ContactEmail != nil {
		d.ContactEmail = *p.ContactEmail
	}
	if p.ContactOther != nil {
		d.ContactOther = *p.ContactOther
	}
	if p.TermsAccepted != nil {
		d.TermsAccepted = *p.TermsAccepted
	}
	if p.AgeConfirmed != nil {
		d.AgeConfirmed = *p.AgeConfirmed
	}
	if p.ImageConsent != nil {
		d.ImageConsent = *p.ImageConsent
	}
	if p.AcceptsLastMinute != nil {
		d.AcceptsLastMinute = *p.AcceptsLastMinute
	}
	if p.Restrictions != nil {
		d.Restrictions = *p.Restrictions
	}
	if p.PersonalRules != nil {
		d.PersonalRules = *p.PersonalRules
	}
	if p.FavoriteFragrance != nil {
		d.FavoriteFragrance = *p.FavoriteFragrance
	}
	if p.FavoriteDrink != nil {
		d.FavoriteDrink = *p.FavoriteDrink
	}
	if p.PreferredGifts != nil {
		d.PreferredGifts = *p.PreferredGifts
	}
	if p.FavoriteMusic != nil {
		d.FavoriteMusic = *p.FavoriteMusic
	}
}
