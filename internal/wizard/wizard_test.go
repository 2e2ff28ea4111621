package wizard

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"vitrine/internal/models"
)

// fakeSubmitter records invocations and can be made to fail or block.
type fakeSubmitter struct {
	mu      sync.Mutex
	creates int
	updates int
	err     error
	block   chan struct{}
	lastAd  *models.Ad
}

func (f *fakeSubmitter) Create(ctx context.Context, ad *models.Ad) error {
	f.mu.Lock()
	f.creates++
	f.lastAd = ad
	block := f.block
	err := f.err
	f.mu.Unlock()
	if block != nil {
		<-block
	}
	if err != nil {
		return err
	}
	ad.ID = "ad-1"
	return nil
}

func (f *fakeSubmitter) Update(ctx context.Context, id string, ad *models.Ad) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates++
	f.lastAd = ad
	return f.err
}

func (f *fakeSubmitter) calls() (int, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.creates, f.updates
}

func wizardAtTerminalStep(t *testing.T) *Wizard {
	t.Helper()
	w := New()
	d := fullDraft()
	w.Patch(&models.AdDraftPatch{
		PresentationName: &d.PresentationName,
		Age:              d.Age,
		Gender:           &d.Gender,
		Title:            &d.Title,
		ServicesOffered:  &d.ServicesOffered,
		Location:         &d.Location,
		Price:            &d.Price,
		WhatsApp:         &d.WhatsApp,
		TermsAccepted:    boolptr(true),
		AgeConfirmed:     boolptr(true),
		ImageConsent:     boolptr(true),
	})
	for w.Step() < TerminalStep {
		if !w.Next() {
			t.Fatalf("could not advance past step %d: %+v", w.Step(), w.Draft())
		}
	}
	return w
}

func TestNextBlockedOnInvalidStep(t *testing.T) {
	w := New()
	if w.Next() {
		t.Fatalf("empty draft must not advance past step 1")
	}
	if w.Step() != StepIdentity {
		t.Fatalf("step moved to %d", w.Step())
	}
}

func TestBackAlwaysAllowedAndFloored(t *testing.T) {
	w := New()
	w.Back()
	if w.Step() != StepIdentity {
		t.Fatalf("back on step 1 should stay at 1, got %d", w.Step())
	}

	w = wizardAtTerminalStep(t)
	// emptying the draft must not stop backward navigation
	w.Patch(&models.AdDraftPatch{PresentationName: strptr(""), WhatsApp: strptr("")})
	for i := TerminalStep; i > StepIdentity; i-- {
		w.Back()
	}
	if w.Step() != StepIdentity {
		t.Fatalf("expected step 1, got %d", w.Step())
	}
}

func TestSubmitCreatesPendingApprovalAd(t *testing.T) {
	w := wizardAtTerminalStep(t)
	svc := &fakeSubmitter{}

	ad, err := w.Submit(context.Background(), "u1", svc)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if ad.Status != models.AdStatusPendingApproval {
		t.Fatalf("expected pending_approval, got %q", ad.Status)
	}
	if ad.UserID != "u1" {
		t.Fatalf("expected user id attached, got %q", ad.UserID)
	}
	if ad.Highlight != models.HighlightBasic {
		t.Fatalf("expected default highlight package, got %q", ad.Highlight)
	}
	if c, u := svc.calls(); c != 1 || u != 0 {
		t.Fatalf("expected 1 create / 0 updates, got %d/%d", c, u)
	}
}

func TestSubmitWithoutUserIsBlocked(t *testing.T) {
	w := wizardAtTerminalStep(t)
	svc := &fakeSubmitter{}

	if _, err := w.Submit(context.Background(), "", svc); !errors.Is(err, ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
	if c, u := svc.calls(); c != 0 || u != 0 {
		t.Fatalf("collaborator must not be invoked, got %d/%d", c, u)
	}
}

func TestSubmitBeforeTerminalStepIsBlocked(t *testing.T) {
	// price left at zero keeps the wizard stuck on the pricing step, so the
	// submission guard never lets the repository see the draft
	w := New()
	w.Patch(&models.AdDraftPatch{
		PresentationName: strptr("Ana"),
		Age:              intptr(25),
		Gender:           strptr("feminino"),
		Title:            strptr("X"),
		ServicesOffered:  &[]string{"massagem"},
		Location:         strptr("SP"),
		WhatsApp:         strptr("(11) 99999-8888"),
		TermsAccepted:    boolptr(true),
		AgeConfirmed:     boolptr(true),
		ImageConsent:     boolptr(true),
	})
	w.Next()
	w.Next()
	if w.Step() != StepPricing {
		t.Fatalf("expected to be stuck on pricing, got step %d", w.Step())
	}
	if w.Next() {
		t.Fatalf("price 0 must not pass the pricing gate")
	}

	svc := &fakeSubmitter{}
	if _, err := w.Submit(context.Background(), "u1", svc); !errors.Is(err, ErrStepIncomplete) {
		t.Fatalf("expected ErrStepIncomplete, got %v", err)
	}
	if c, u := svc.calls(); c != 0 || u != 0 {
		t.Fatalf("collaborator must record zero invocations, got %d/%d", c, u)
	}
}

func TestSubmitInvalidTerminalStepIsBlocked(t *testing.T) {
	w := wizardAtTerminalStep(t)
	w.Patch(&models.AdDraftPatch{TermsAccepted: boolptr(false)})

	svc := &fakeSubmitter{}
	if _, err := w.Submit(context.Background(), "u1", svc); !errors.Is(err, ErrStepIncomplete) {
		t.Fatalf("expected ErrStepIncomplete, got %v", err)
	}
	if c, _ := svc.calls(); c != 0 {
		t.Fatalf("collaborator must not be invoked")
	}
}

func TestSubmitFailurePreservesDraftForRetry(t *testing.T) {
	w := wizardAtTerminalStep(t)
	svc := &fakeSubmitter{err: errors.New("backend down")}

	before := w.Draft()
	if _, err := w.Submit(context.Background(), "u1", svc); err == nil {
		t.Fatalf("expected failure")
	}
	if w.Step() != TerminalStep {
		t.Fatalf("step changed after failed submit: %d", w.Step())
	}
	if got := w.Draft(); got.PresentationName != before.PresentationName || got.Price != before.Price {
		t.Fatalf("draft changed after failed submit")
	}

	// manual retry works once the backend recovers
	svc2 := &fakeSubmitter{}
	if _, err := w.Submit(context.Background(), "u1", svc2); err != nil {
		t.Fatalf("retry: %v", err)
	}
}

func TestSubmitAtMostOneInFlight(t *testing.T) {
	w := wizardAtTerminalStep(t)
	block := make(chan struct{})
	svc := &fakeSubmitter{block: block}

	done := make(chan error, 1)
	go func() {
		_, err := w.Submit(context.Background(), "u1", svc)
		done <- err
	}()

	// wait until the first submission is inside the collaborator
	for {
		if c, _ := svc.calls(); c == 1 {
			break
		}
		time.Sleep(time.Millisecond)
	}

	if _, err := w.Submit(context.Background(), "u1", svc); !errors.Is(err, ErrSubmitInFlight) {
		t.Fatalf("expected ErrSubmitInFlight, got %v", err)
	}

	close(block)
	if err := <-done; err != nil {
		t.Fatalf("first submit: %v", err)
	}
	if c, _ := svc.calls(); c != 1 {
		t.Fatalf("expected exactly one invocation, got %d", c)
	}
}

func TestSubmitEditFlowUpdatesExistingAd(t *testing.T) {
	ad := &models.Ad{ID: "ad-7", UserID: "u1", Status: models.AdStatusApproved}
	ad.AdDraft = fullDraft()

	w := NewForAd(ad)
	for w.Step() < TerminalStep {
		if !w.Next() {
			t.Fatalf("seeded draft should pass every gate, stuck at %d", w.Step())
		}
	}

	svc := &fakeSubmitter{}
	out, err := w.Submit(context.Background(), "u1", svc)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if out.ID != "ad-7" {
		t.Fatalf("expected update in place, got id %q", out.ID)
	}
	if out.Status != models.AdStatusPendingApproval {
		t.Fatalf("edit must go back through moderation, got %q", out.Status)
	}
	if c, u := svc.calls(); c != 0 || u != 1 {
		t.Fatalf("expected 0 creates / 1 update, got %d/%d", c, u)
	}
}
