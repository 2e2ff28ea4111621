package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
	"vitrine/internal/config"
)

func TestSignupSuccess(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("INSERT INTO users").WillReturnRows(
		sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now().UTC()),
	)

	h := NewAuthHandler(db, &config.Config{JWTSecret: "dev"})

	payload := map[string]any{
		"email":        "luna@example.com",
		"password":     "supersecret",
		"display_name": "Luna",
		"user_name":    "luna",
		"phone_number": "11999998888",
	}
	b, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/signup", bytes.NewReader(b))
	w := httptest.NewRecorder()
	h.Signup(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d (%s)", w.Code, w.Body.String())
	}
	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] == nil || resp["email"] != "luna@example.com" {
		t.Fatalf("unexpected response: %v", resp)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestSignupDuplicateAccount(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("INSERT INTO users").WillReturnError(&pq.Error{Code: "23505"})

	h := NewAuthHandler(db, &config.Config{JWTSecret: "dev"})

	payload := map[string]any{
		"email":        "luna@example.com",
		"password":     "supersecret",
		"display_name": "Luna",
		"user_name":    "luna",
		"phone_number": "11999998888",
	}
	b, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/signup", bytes.NewReader(b))
	w := httptest.NewRecorder()
	h.Signup(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d (%s)", w.Code, w.Body.String())
	}
	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["error"] != "duplicate_account" {
		t.Fatalf("expected duplicate_account, got %v", resp)
	}
}

func TestLoginSuccessReturnsToken(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	hash, _ := bcrypt.GenerateFromPassword([]byte("supersecret"), bcrypt.MinCost)
	mock.ExpectQuery(`SELECT id, email, display_name, user_name, phone_number, role, verified, password_hash, created_at\s+FROM users`).
		WithArgs("luna").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "display_name", "user_name", "phone_number", "role", "verified", "password_hash", "created_at"}).
			AddRow("u1", "luna@example.com", "Luna", "luna", "11999998888", "member", true, string(hash), time.Now().UTC()))

	h := NewAuthHandler(db, &config.Config{JWTSecret: "dev"})

	b, _ := json.Marshal(map[string]any{"identifier": "luna", "password": "supersecret"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(b))
	w := httptest.NewRecorder()
	h.Login(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d (%s)", w.Code, w.Body.String())
	}
	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["access_token"] == nil || resp["access_token"] == "" {
		t.Fatalf("expected access_token, got %v", resp)
	}
	if resp["role"] != "member" {
		t.Fatalf("expected member role, got %v", resp["role"])
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	hash, _ := bcrypt.GenerateFromPassword([]byte("supersecret"), bcrypt.MinCost)
	mock.ExpectQuery(`SELECT id, email, display_name, user_name, phone_number, role, verified, password_hash, created_at\s+FROM users`).
		WithArgs("luna").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "display_name", "user_name", "phone_number", "role", "verified", "password_hash", "created_at"}).
			AddRow("u1", "luna@example.com", "Luna", "luna", "11999998888", "member", true, string(hash), time.Now().UTC()))

	h := NewAuthHandler(db, &config.Config{JWTSecret: "dev"})

	b, _ := json.Marshal(map[string]any{"identifier": "luna", "password": "wrong-password"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(b))
	w := httptest.NewRecorder()
	h.Login(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d (%s)", w.Code, w.Body.String())
	}
	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["error"] != "invalid_credentials" {
		t.Fatalf("expected invalid_credentials, got %v", resp)
	}
}
