package service

import (
	"errors"
	"testing"

	"github.com/lshigami/Marmosets/config"
	"github.com/lshigami/Marmosets/internal/dto"
	"github.com/lshigami/Marmosets/internal/model"
	"github.com/lshigami/Marmosets/internal/repository"
	"github.com/lshigami/Marmosets/internal/testhelpers"
	"gorm.io/gorm"
)

func newAuthEnv(t *testing.T) (AuthService, *gorm.DB) {
	t.Helper()
	db := testhelpers.SetupTestDB(t)
	cfg := &config.Config{JwtSecret: "test-secret"}
	svc := NewAuthService(repository.NewUserRepository(db), repository.NewAnalyticsRepository(db), cfg)
	return svc, db
}

func registerReq() dto.RegisterRequestDTO {
	return dto.RegisterRequestDTO{
		Email:     "alice@example.com",
		Password:  "correct-horse",
		FirstName: "Alice",
		LastName:  "Nguyen",
	}
}

func TestRegister_CreatesUserWithAnalyticsRow(t *testing.T) {
	svc, db := newAuthEnv(t)

	resp, err := svc.Register(registerReq())
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if resp.Token == "" {
		t.Fatalf("expected a token")
	}
	if resp.Role != string(model.RoleUser) {
		t.Fatalf("role = %q, want %q", resp.Role, model.RoleUser)
	}

	var user model.User
	if err := db.Where("email = ?", "alice@example.com").First(&user).Error; err != nil {
		t.Fatalf("expected user row: %v", err)
	}
	if user.Password == "correct-horse" {
		t.Fatalf("password stored in plain text")
	}

	var analytics model.Analytics
	if err := db.Where("user_id = ?", user.ID).First(&analytics).Error; err != nil {
		t.Fatalf("expected analytics row created at registration: %v", err)
	}
	if analytics.TotalInterviews != 0 {
		t.Fatalf("expected zeroed analytics, got %+v", analytics)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, _ := newAuthEnv(t)

	if _, err := svc.Register(registerReq()); err != nil {
		t.Fatalf("first Register returned error: %v", err)
	}
	if _, err := svc.Register(registerReq()); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestLogin_RoundTrip(t *testing.T) {
	svc, _ := newAuthEnv(t)

	if _, err := svc.Register(registerReq()); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	resp, err := svc.Login(dto.LoginRequestDTO{Email: "alice@example.com", Password: "correct-horse"})
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}

	userID, err := svc.ValidateToken(resp.Token)
	if err != nil {
		t.Fatalf("ValidateToken returned error: %v", err)
	}
	if userID != resp.UserID {
		t.Fatalf("token user = %d, want %d", userID, resp.UserID)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _ := newAuthEnv(t)

	if _, err := svc.Register(registerReq()); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if _, err := svc.Login(dto.LoginRequestDTO{Email: "alice@example.com", Password: "wrong"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc, _ := newAuthEnv(t)
	if _, err := svc.Login(dto.LoginRequestDTO{Email: "nobody@example.com", Password: "whatever"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestValidateToken_RejectsGarbage(t *testing.T) {
	svc, _ := newAuthEnv(t)
	if _, err := svc.ValidateToken("not.a.token"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestValidateToken_RejectsForeignSignature(t *testing.T) {
	svc, db := newAuthEnv(t)

	// Token signed with a different secret against the same store.
	foreign := NewAuthService(repository.NewUserRepository(db), repository.NewAnalyticsRepository(db), &config.Config{JwtSecret: "other-secret"})
	resp, err := foreign.Register(registerReq())
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	if _, err := svc.ValidateToken(resp.Token); err == nil {
		t.Fatalf("expected validation failure for foreign token")
	}
}

func TestGetUserByID_NotFound(t *testing.T) {
	svc, _ := newAuthEnv(t)
	if _, err := svc.GetUserByID(999); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUpdateProfile(t *testing.T) {
	svc, db := newAuthEnv(t)

	resp, err := svc.Register(registerReq())
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	updated, err := svc.UpdateProfile(resp.UserID, dto.ProfileUpdateDTO{
		FirstName:   "Alicia",
		LastName:    "Tran",
		PhoneNumber: "555-0101",
		TargetRole:  "Staff Engineer",
		ResumeText:  "ten years of Go",
	})
	if err != nil {
		t.Fatalf("UpdateProfile returned error: %v", err)
	}
	if updated.FirstName != "Alicia" || updated.LastName != "Tran" {
		t.Fatalf("name = %q %q, want Alicia Tran", updated.FirstName, updated.LastName)
	}

	var stored model.User
	if err := db.First(&stored, resp.UserID).Error; err != nil {
		t.Fatalf("failed to reload user: %v", err)
	}
	if stored.TargetRole != "Staff Engineer" || stored.PhoneNumber != "555-0101" {
		t.Fatalf("stored profile = %+v", stored)
	}
	if stored.Email != "alice@example.com" {
		t.Fatalf("email changed to %q", stored.Email)
	}

	if _, err := svc.UpdateProfile(4242, dto.ProfileUpdateDTO{FirstName: "X", LastName: "Y"}); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
