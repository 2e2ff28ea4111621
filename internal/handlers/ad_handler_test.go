package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"vitrine/internal/models"
)

func newAdRouter(repo *mockAdRepo) *chi.Mux {
	h := NewAdHandler(repo)
	r := chi.NewRouter()
	r.Get("/ads", h.ListAds)
	r.Get("/ads/mine", h.ListMyAds)
	r.Get("/ads/{id}", h.GetAd)
	r.Delete("/ads/{id}", h.DeleteAd)
	r.Post("/ads/{id}/pause", h.PauseAd)
	return r
}

func TestListAdsDefaultsToApproved(t *testing.T) {
	repo := newMockAdRepo()
	repo.list = []*models.Ad{{ID: "ad-1", Status: models.AdStatusApproved}}
	r := newAdRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/ads?category=massagem&location=paulo", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d (%s)", w.Code, w.Body.String())
	}
	if repo.lastFilter.Status != string(models.AdStatusApproved) {
		t.Fatalf("public listing must filter approved, got %q", repo.lastFilter.Status)
	}
	if repo.lastFilter.Category != "massagem" || repo.lastFilter.Location != "paulo" {
		t.Fatalf("query filters not forwarded: %+v", repo.lastFilter)
	}

	var ads []models.Ad
	if err := json.Unmarshal(w.Body.Bytes(), &ads); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(ads) != 1 || ads[0].ID != "ad-1" {
		t.Fatalf("unexpected ads: %+v", ads)
	}
}

func TestListAdsEmptyIsJSONArray(t *testing.T) {
	r := newAdRouter(newMockAdRepo())

	req := httptest.NewRequest(http.MethodGet, "/ads", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}
	if body := w.Body.String(); body != "[]\n" {
		t.Fatalf("expected empty array, got %q", body)
	}
}

func TestListMyAdsUsesCallerID(t *testing.T) {
	repo := newMockAdRepo()
	r := newAdRouter(repo)

	req := authedRequest(t, http.MethodGet, "/ads/mine", "", "u1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}
	if repo.lastFilter.UserID != "u1" {
		t.Fatalf("expected owner filter, got %+v", repo.lastFilter)
	}
	if repo.lastFilter.Status != "" {
		t.Fatalf("owner listing must include every status, got %q", repo.lastFilter.Status)
	}
}

func TestGetAdNotFoundReturnsJSON(t *testing.T) {
	r := newAdRouter(newMockAdRepo())

	req := httptest.NewRequest(http.MethodGet, "/ads/missing", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d (%s)", w.Code, w.Body.String())
	}
	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["error"] != "ad_not_found" {
		t.Fatalf("expected ad_not_found, got %v", resp)
	}
}

func TestDeleteAdByNonOwnerForbidden(t *testing.T) {
	repo := newMockAdRepo()
	repo.ads["ad-1"] = &models.Ad{ID: "ad-1", UserID: "someone-else"}
	r := newAdRouter(repo)

	req := authedRequest(t, http.MethodDelete, "/ads/ad-1", "", "u1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 got %d (%s)", w.Code, w.Body.String())
	}
}

func TestPauseAdByOwner(t *testing.T) {
	repo := newMockAdRepo()
	repo.ads["ad-1"] = &models.Ad{ID: "ad-1", UserID: "u1", Status: models.AdStatusApproved}
	r := newAdRouter(repo)

	req := authedRequest(t, http.MethodPost, "/ads/ad-1/pause", "", "u1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d (%s)", w.Code, w.Body.String())
	}
	if repo.statuses["ad-1"] != models.AdStatusPaused {
		t.Fatalf("expected paused, got %q", repo.statuses["ad-1"])
	}
}
