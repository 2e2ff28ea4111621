package wizard

import (
	"context"
	"errors"
	"sync"
	"time"

	"vitrine/internal/models"
)

var (
	// ErrNotAuthenticated is returned when Submit is called without a user.
	ErrNotAuthenticated = errors.New("wizard: no authenticated user")
	// ErrStepIncomplete is returned when Submit is called before the final
	// step is reached and valid.
	ErrStepIncomplete = errors.New("wizard: final step not complete")
	// ErrSubmitInFlight is returned while a previous Submit is still running.
	ErrSubmitInFlight = errors.New("wizard: submission already in flight")
)

// AdSubmitter is the narrow slice of the ad repository the wizard needs.
type AdSubmitter interface {
	Create(ctx context.Context, ad *models.Ad) error
	Update(ctx context.Context, id string, ad *models.Ad) error
}

// Wizard walks one draft through the six creation steps. HTTP handlers for
// the same session run concurrently, so all state is guarded by mu; within
// a single request each mutation is one atomic merge.
type Wizard struct {
	mu       sync.Mutex
	store    *DraftStore
	step     int
	editAdID string
	inFlight bool
}

func New() *Wizard {
	return &Wizard{store: NewDraftStore(), step: StepIdentity}
}

// NewForAd opens the wizard over an existing ad, seeding the draft from its
// stored fields. Submission then updates the ad in place.
func NewForAd(ad *models.Ad) *Wizard {
	return &Wizard{store: NewDraftStoreFromAd(ad), step: StepIdentity, editAdID: ad.ID}
}

func (w *Wizard) Step() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.step
}

func (w *Wizard) Draft() models.AdDraft {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.store.Draft()
}

func (w *Wizard) Patch(p *models.AdDraftPatch) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.store.Patch(p)
}

// Next advances to the following step if the current one validates, and
// reports whether it moved. On the terminal step or with an invalid step it
// is a no-op; the caller surfaces which field is missing.
func (w *Wizard) Next() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.step >= TerminalStep {
		return false
	}
	if !IsStepValid(w.step, w.store.Draft()) {
		return false
	}
	w.step++
	return true
}

// Back always moves one step back, floored at the first step. Validity is
// never checked on the way back.
func (w *Wizard) Back() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.step > StepIdentity {
		w.step--
	}
}

// State bundles everything the progress UI needs.
func (w *Wizard) State() models.WizardStateResponse {
	w.mu.Lock()
	defer w.mu.Unlock()
	d := w.store.Draft()
	return models.WizardStateResponse{
		Step:       w.step,
		StepValid:  IsStepValid(w.step, d),
		Completion: CompletionPercentage(d),
		Draft:      d,
	}
}

// Submit hands the draft to svc as a pending_approval ad. It declines
// without calling svc when there is no user, when the wizard is not sitting
// on a valid terminal step, or while another submission is in flight. On
// collaborator failure the draft and step are left untouched so the user
// can retry; nothing is rolled back because nothing was committed locally.
func (w *Wizard) Submit(ctx context.Context, userID string, svc AdSubmitter) (*models.Ad, error) {
	w.mu.Lock()
	if w.inFlight {
		w.mu.Unlock()
		return nil, ErrSubmitInFlight
	}
	if userID == "" {
		w.mu.Unlock()
		return nil, ErrNotAuthenticated
	}
	if w.step != TerminalStep || !IsStepValid(TerminalStep, w.store.Draft()) {
		w.mu.Unlock()
		return nil, ErrStepIncomplete
	}
	w.inFlight = true
	draft := w.store.Draft()
	editID := w.editAdID
	w.mu.Unlock()

	defer func() {
		w.mu.Lock()
		w.inFlight = false
		w.mu.Unlock()
	}()

	ad := &models.Ad{
		ID:      editID,
		UserID:  userID,
		Status:  models.AdStatusPendingApproval,
		AdDraft: draft,
	}
	if ad.Highlight == "" {
		ad.Highlight = models.HighlightBasic
	}

	if editID != "" {
		ad.UpdatedAt = time.Now().UTC()
		if err := svc.Update(ctx, editID, ad); err != nil {
			return nil, err
		}
		return ad, nil
	}

	ad.CreatedAt = time.Now().UTC()
	ad.UpdatedAt = ad.CreatedAt
	if err := svc.Create(ctx, ad); err != nil {
		return nil, err
	}
	return ad, nil
}
