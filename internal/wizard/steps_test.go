package wizard

import (
	"testing"

	"vitrine/internal/models"
)

func fullDraft() models.AdDraft {
	return models.AdDraft{
		PresentationName: "Ana",
		Age:              intptr(25),
		Gender:           "feminino",
		Title:            "Massagem relaxante",
		Description:      "Atendimento com hora marcada.",
		ServicesOffered:  []string{"massagem"},
		Location:         "São Paulo",
		Price:            250,
		WhatsApp:         "(11) 99999-8888",
		TermsAccepted:    true,
		AgeConfirmed:     true,
		ImageConsent:     true,
	}
}

func TestIsStepValidUnknownStepsFailClosed(t *testing.T) {
	d := fullDraft()
	for _, step := range []int{-3, 0, 7, 42} {
		if IsStepValid(step, d) {
			t.Fatalf("step %d should fail closed", step)
		}
	}
}

func TestIsStepValidIdentity(t *testing.T) {
	tests := []struct {
		name  string
		mut   func(*models.AdDraft)
		valid bool
	}{
		{"complete", func(d *models.AdDraft) {}, true},
		{"missing name", func(d *models.AdDraft) { d.PresentationName = "" }, false},
		{"nil age", func(d *models.AdDraft) { d.Age = nil }, false},
		{"zero age", func(d *models.AdDraft) { d.Age = intptr(0) }, false},
		{"negative age", func(d *models.AdDraft) { d.Age = intptr(-1) }, false},
		{"missing gender", func(d *models.AdDraft) { d.Gender = "" }, false},
		{"missing title", func(d *models.AdDraft) { d.Title = "" }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := fullDraft()
			tt.mut(&d)
			if got := IsStepValid(StepIdentity, d); got != tt.valid {
				t.Fatalf("expected %v, got %v", tt.valid, got)
			}
		})
	}
}

func TestIsStepValidServices(t *testing.T) {
	d := fullDraft()
	if !IsStepValid(StepServices, d) {
		t.Fatalf("expected valid")
	}
	d.ServicesOffered = nil
	if IsStepValid(StepServices, d) {
		t.Fatalf("no services should block")
	}
	d = fullDraft()
	d.Location = ""
	if IsStepValid(StepServices, d) {
		t.Fatalf("no location should block")
	}
}

func TestIsStepValidPricing(t *testing.T) {
	d := fullDraft()
	if !IsStepValid(StepPricing, d) {
		t.Fatalf("expected valid")
	}
	d.Price = 0
	if IsStepValid(StepPricing, d) {
		t.Fatalf("zero price should block")
	}
}

func TestIsStepValidMediaAlwaysPasses(t *testing.T) {
	if !IsStepValid(StepMedia, models.AdDraft{}) {
		t.Fatalf("media step is optional and must never gate")
	}
}

func TestIsStepValidContact(t *testing.T) {
	d := fullDraft()
	if !IsStepValid(StepContact, d) {
		t.Fatalf("expected valid")
	}
	d.WhatsApp = ""
	if IsStepValid(StepContact, d) {
		t.Fatalf("missing whatsapp should block")
	}
}

func TestIsStepValidLegalIgnoresOtherFields(t *testing.T) {
	d := models.AdDraft{TermsAccepted: true, AgeConfirmed: true, ImageConsent: true}
	if !IsStepValid(StepLegal, d) {
		t.Fatalf("all consents true must validate regardless of other fields")
	}
	for _, mut := range []func(*models.AdDraft){
		func(d *models.AdDraft) { d.TermsAccepted = false },
		func(d *models.AdDraft) { d.AgeConfirmed = false },
		func(d *models.AdDraft) { d.ImageConsent = false },
	} {
		d := models.AdDraft{TermsAccepted: true, AgeConfirmed: true, ImageConsent: true}
		mut(&d)
		if IsStepValid(StepLegal, d) {
			t.Fatalf("any consent false must block: %+v", d)
		}
	}
}

func TestStepOneFilledValidatesOnlyStepOne(t *testing.T) {
	d := models.AdDraft{
		PresentationName: "Ana",
		Age:              intptr(25),
		Gender:           "feminino",
		Title:            "X",
	}
	if !IsStepValid(StepIdentity, d) {
		t.Fatalf("step 1 should be valid")
	}
	if IsStepValid(StepServices, d) {
		t.Fatalf("step 2 should be invalid")
	}
}
