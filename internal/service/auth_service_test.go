package service

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/colorwalk/colorwalk-backend-go/internal/database"
	"github.com/colorwalk/colorwalk-backend-go/internal/models"
	"github.com/colorwalk/colorwalk-backend-go/internal/repository"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()

	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := database.NewMigrationManager(db).RunMigrations(); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	return NewAuthService(repository.NewUserRepository(db), "test-secret")
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newAuthService(t)

	id, err := svc.Register(models.RegisterRequest{
		Name: "Alice", Email: "a@x.com", Password: "hunter22",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if id == 0 {
		t.Fatal("expected non-zero user id")
	}

	result, err := svc.Login(models.LoginRequest{Email: "a@x.com", Password: "hunter22"})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if result.Token == "" || result.Name != "Alice" {
		t.Errorf("unexpected login response: %+v", result)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newAuthService(t)

	req := models.RegisterRequest{Name: "Alice", Email: "a@x.com", Password: "hunter22"}
	if _, err := svc.Register(req); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if _, err := svc.Register(req); !errors.Is(err, ErrEmailTaken) {
		t.Errorf("expected ErrEmailTaken, got %v", err)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := newAuthService(t)

	if _, err := svc.Register(models.RegisterRequest{
		Name: "Alice", Email: "a@x.com", Password: "hunter22",
	}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if _, err := svc.Login(models.LoginRequest{Email: "a@x.com", Password: "wrong"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials for wrong password, got %v", err)
	}
	if _, err := svc.Login(models.LoginRequest{Email: "nobody@x.com", Password: "hunter22"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}
