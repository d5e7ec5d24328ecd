package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/projecthub/projecthub/internal/core/domain"
	"github.com/projecthub/projecthub/internal/core/token"
)

type stubUserRepo struct {
	users  map[string]*domain.User
	nextID int64
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func pairKey(username string, role domain.Role) string {
	return fmt.Sprintf("%s|%s", username, role)
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Insert(_ context.Context, user *domain.User) (*domain.User, error) {
	key := pairKey(user.Username, user.Role)
	if _, exists := r.users[key]; exists {
		return nil, domain.ErrDuplicateIdentity
	}
	r.nextID++
	stored := cloneUser(user)
	stored.ID = r.nextID
	r.users[key] = stored
	return cloneUser(stored), nil
}

func (r *stubUserRepo) FindByUsernameRole(_ context.Context, username string, role domain.Role) (*domain.User, error) {
	if u, ok := r.users[pairKey(username, role)]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func newAuthService(repo *stubUserRepo) *AuthService {
	return NewAuthService(repo, token.NewIssuer("secret", time.Hour), zerolog.Nop())
}

func TestAuthService_Register_Success(t *testing.T) {
	svc := newAuthService(newStubUserRepo())

	user, err := svc.Register(context.Background(), "alice", "pass123", domain.RoleUser)
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.ID == 0 {
		t.Fatalf("expected assigned id")
	}
	if user.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if user.Role != domain.RoleUser {
		t.Fatalf("unexpected role: %s", user.Role)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc := newAuthService(newStubUserRepo())

	if _, err := svc.Register(context.Background(), "", "pass", domain.RoleUser); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for empty username, got %v", err)
	}
	if _, err := svc.Register(context.Background(), "bob", "", domain.RoleUser); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for empty password, got %v", err)
	}
	if _, err := svc.Register(context.Background(), "bob", "pass", domain.Role("root")); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for bad role, got %v", err)
	}
}

func TestAuthService_Register_DuplicatePair(t *testing.T) {
	svc := newAuthService(newStubUserRepo())

	if _, err := svc.Register(context.Background(), "bob", "pass", domain.RoleUser); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), "bob", "pass2", domain.RoleUser); err != domain.ErrDuplicateIdentity {
		t.Fatalf("expected ErrDuplicateIdentity, got %v", err)
	}
}

func TestAuthService_Register_SameUsernameDifferentRole(t *testing.T) {
	svc := newAuthService(newStubUserRepo())

	asUser, err := svc.Register(context.Background(), "bob", "userpass", domain.RoleUser)
	if err != nil {
		t.Fatalf("register as user failed: %v", err)
	}
	asAdmin, err := svc.Register(context.Background(), "bob", "adminpass", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("register as admin failed: %v", err)
	}
	if asUser.ID == asAdmin.ID {
		t.Fatalf("expected distinct identities, both got id %d", asUser.ID)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	issuer := token.NewIssuer("secret", time.Hour)
	svc := NewAuthService(repo, issuer, zerolog.Nop())

	registered, err := svc.Register(context.Background(), "carol", "s3cret", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	signed, user, err := svc.Login(context.Background(), "carol", "s3cret", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if signed == "" {
		t.Fatalf("expected token, got empty")
	}
	if user.ID != registered.ID {
		t.Fatalf("expected user %d, got %d", registered.ID, user.ID)
	}

	claims, err := issuer.Validate(signed)
	if err != nil {
		t.Fatalf("token invalid: %v", err)
	}
	if claims.Subject != registered.ID {
		t.Fatalf("expected subject %d, got %d", registered.ID, claims.Subject)
	}
	if claims.Role != domain.RoleAdmin {
		t.Fatalf("expected role admin, got %s", claims.Role)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc := newAuthService(newStubUserRepo())

	_, _ = svc.Register(context.Background(), "dave", "goodpass", domain.RoleUser)
	if _, _, err := svc.Login(context.Background(), "dave", "badpass", domain.RoleUser); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownPairSameError(t *testing.T) {
	svc := newAuthService(newStubUserRepo())

	// Absent pair and wrong password must be indistinguishable.
	_, _, missErr := svc.Login(context.Background(), "ghost", "pass", domain.RoleUser)
	if missErr != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for unknown pair, got %v", missErr)
	}

	_, _ = svc.Register(context.Background(), "erin", "rightpass", domain.RoleUser)
	_, _, pwErr := svc.Login(context.Background(), "erin", "wrongpass", domain.RoleUser)
	if !errors.Is(missErr, pwErr) {
		t.Fatalf("expected identical error kinds, got %v vs %v", missErr, pwErr)
	}
}

func TestAuthService_Login_RoleIsPartOfIdentity(t *testing.T) {
	svc := newAuthService(newStubUserRepo())

	_, _ = svc.Register(context.Background(), "frank", "pass", domain.RoleUser)
	if _, _, err := svc.Login(context.Background(), "frank", "pass", domain.RoleAdmin); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for wrong-role login, got %v", err)
	}
}
