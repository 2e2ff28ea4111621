package models

import "time"

type AdStatus string

const (
	AdStatusPendingApproval AdStatus = "pending_approval"
	AdStatusApproved        AdStatus = "approved"
	AdStatusRejected        AdStatus = "rejected"
	AdStatusPaused          AdStatus = "paused"
)

type HighlightPackage string

const (
	HighlightBasic    HighlightPackage = "basic"
	HighlightFeatured HighlightPackage = "featured"
	HighlightPremium  HighlightPackage = "premium"
)

// AdCategories is the closed set accepted for AdDraft.Category.
var AdCategories = []string{
	"acompanhante",
	"massagem",
	"videochamada",
	"eventos",
	"outros",
}

// WeekDays are the accepted values for AdDraft.AvailabilityDays and the
// keys of AdDraft.AvailabilityHours.
var WeekDays = []string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

// HourRange is one day's working window, "HH:MM" local time.
type HourRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// AdDraft is the in-progress ad while the creation wizard is open. Every
// field is optional here; required-ness is enforced by the wizard's step
// gates and the final submission guard, never by this shape.
//
// WhatsApp and PostalCode are stored pre-formatted ("(NN) NNNNN-NNNN",
// "NNNNN-NNN"); the wizard handler masks them on every patch.
type AdDraft struct {
	PresentationName string `json:"presentation_name"`
	Age              *int   `json:"age"`
	Gender           string `json:"gender"`
	Title            string `json:"title"`
	Description      string `json:"description"`
	HighlightPhrase  string `json:"highlight_phrase"`

	Category         string   `json:"category"`
	ServicesOffered  []string `json:"services_offered"`
	TargetAudience   []string `json:"target_audience"`
	ServiceLocations []string `json:"service_locations"`

	AvailabilityDays  []string             `json:"availability_days"`
	AvailabilityHours map[string]HourRange `json:"availability_hours"`
	AppointmentOnly   bool                 `json:"appointment_only"`

	Location      string `json:"location"`
	Neighborhood  string `json:"neighborhood"`
	PostalCode    string `json:"postal_code"`
	AcceptsTravel bool   `json:"accepts_travel"`

	Price            float64          `json:"price"`
	HourlyRate       *float64         `json:"hourly_rate"`
	Packages         map[string]any   `json:"packages"`
	PaymentMethods   []string         `json:"payment_methods"`
	Highlight        HighlightPackage `json:"highlight_package"`

	ImageURL string   `json:"image_url"`
	VideoURL string   `json:"video_url"`
	Photos   []string `json:"photos"`
	Videos   []string `json:"videos"`

	WhatsApp         string `json:"whatsapp"`
	ContactTelegram  string `json:"contact_telegram"`
	ContactInstagram string `json:"contact_instagram"`
	ContactEmail     string `json:"contact_email"`
	ContactOther     string `json:"contact_other"`

	TermsAccepted bool `json:"terms_accepted"`
	AgeConfirmed  bool `json:"age_confirmed"`
	ImageConsent  bool `json:"image_consent"`

	AcceptsLastMinute bool   `json:"accepts_last_minute"`
	Restrictions      string `json:"restrictions"`
	PersonalRules     string `json:"personal_rules"`

	FavoriteFragrance string `json:"favorite_fragrance"`
	FavoriteDrink     string `json:"favorite_drink"`
	PreferredGifts    string `json:"preferred_gifts"`
	FavoriteMusic     string `json:"favorite_music"`
}

// AdDraftPatch is a field-by-field patch for AdDraft. Each non-nil field
// fully replaces the corresponding draft field; maps and slices are
// replaced whole, never merged element-wise. Callers that want to keep an
// existing availability_hours entry must send the composed map themselves.
type AdDraftPatch struct {
	PresentationName *string `json:"presentation_name,omitempty"`
	Age              *int    `json:"age,omitempty"`
	Gender           *string `json:"gender,omitempty"`
	Title            *string `json:"title,omitempty" validate:"omitempty,max=100"`
	Description      *string `json:"description,omitempty" validate:"omitempty,max=2000"`
	HighlightPhrase  *string `json:"highlight_phrase,omitempty" validate:"omitempty,max=80"`

	Category         *string   `json:"category,omitempty"`
	ServicesOffered  *[]string `json:"services_offered,omitempty"`
	TargetAudience   *[]string `json:"target_audience,omitempty"`
	ServiceLocations *[]string `json:"service_locations,omitempty"`

	AvailabilityDays  *[]string             `json:"availability_days,omitempty" validate:"omitempty,dive,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	AvailabilityHours *map[string]HourRange `json:"availability_hours,omitempty"`
	AppointmentOnly   *bool                 `json:"appointment_only,omitempty"`

	Location      *string `json:"location,omitempty"`
	Neighborhood  *string `json:"neighborhood,omitempty"`
	PostalCode    *string `json:"postal_code,omitempty"`
	AcceptsTravel *bool   `json:"accepts_travel,omitempty"`

	Price          *float64          `json:"price,omitempty" validate:"omitempty,gte=0"`
	HourlyRate     *float64          `json:"hourly_rate,omitempty"`
	Packages       *map[string]any   `json:"packages,omitempty"`
	PaymentMethods *[]string         `json:"payment_methods,omitempty"`
	Highlight      *HighlightPackage `json:"highlight_package,omitempty" validate:"omitempty,oneof=basic featured premium"`

	ImageURL *string   `json:"image_url,omitempty"`
	VideoURL *string   `json:"video_url,omitempty"`
	Photos   *[]string `json:"photos,omitempty"`
	Videos   *[]string `json:"videos,omitempty"`

	WhatsApp         *string `json:"whatsapp,omitempty"`
	ContactTelegram  *string `json:"contact_telegram,omitempty"`
	ContactInstagram *string `json:"contact_instagram,omitempty"`
	ContactEmail     *string `json:"contact_email,omitempty" validate:"omitempty,email"`
	ContactOther     *string `json:"contact_other,omitempty"`

	TermsAccepted *bool `json:"terms_accepted,omitempty"`
	AgeConfirmed  *bool `json:"age_confirmed,omitempty"`
	ImageConsent  *bool `json:"image_consent,omitempty"`

	AcceptsLastMinute *bool   `json:"accepts_last_minute,omitempty"`
	Restrictions      *string `json:"restrictions,omitempty" validate:"omitempty,max=1000"`
	PersonalRules     *string `json:"personal_rules,omitempty" validate:"omitempty,max=1000"`

	FavoriteFragrance *string `json:"favorite_fragrance,omitempty"`
	FavoriteDrink     *string `json:"favorite_drink,omitempty"`
	PreferredGifts    *string `json:"preferred_gifts,omitempty"`
	FavoriteMusic     *string `json:"favorite_music,omitempty"`
}

// Ad is a submitted draft persisted by the repository.
type Ad struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Status    AdStatus  `json:"status"`
	AdDraft
	RejectionReason string    `json:"rejection_reason,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type StartWizardRequest struct {
	AdID string `json:"ad_id,omitempty" validate:"omitempty,uuid4"`
}

type WizardStateResponse struct {
	Step       int     `json:"step"`
	StepValid  bool    `json:"step_valid"`
	Completion int     `json:"completion"`
	Draft      AdDraft `json:"draft"`
}

type RejectAdRequest struct {
	Reason string `json:"reason" validate:"required,max=500"`
}
