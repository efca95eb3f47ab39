package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/medroster/roster-system/internal/core/domain"
)

type stubUserRepo struct {
	users map[string]*domain.User
	seq   int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Email]; exists {
		return nil, domain.ErrEmailExists
	}
	r.seq++
	copy := cloneUser(user)
	copy.ID = "u" + strconv.Itoa(r.seq)
	r.users[copy.Email] = cloneUser(copy)
	return cloneUser(copy), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", 15*time.Minute)

	user, err := svc.Register(context.Background(), "alice@hospital.local", "pass123", domain.RoleNurse)
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user == nil || user.ID == "" {
		t.Fatalf("expected created user with id, got %+v", user)
	}
	if user.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass124")); err == nil {
		t.Fatalf("hash matched a different password")
	}
	if user.Role != domain.RoleNurse {
		t.Fatalf("unexpected role: %s", user.Role)
	}
	if !user.Active {
		t.Fatalf("expected new user to be active")
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", 15*time.Minute)

	cases := []struct {
		name     string
		email    string
		password string
		role     domain.Role
	}{
		{"empty email", "", "secret1", domain.RoleNurse},
		{"not an email", "nobody", "secret1", domain.RoleNurse},
		{"short password", "bob@hospital.local", "five5", domain.RoleNurse},
		{"unknown role", "bob@hospital.local", "secret1", domain.Role("doctor")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tc.email, tc.password, tc.role)
			var ve *domain.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
		})
	}
	if len(repo.users) != 0 {
		t.Fatalf("validation failures must not persist users")
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", 15*time.Minute)

	if _, err := svc.Register(context.Background(), "a@b.com", "secret1", domain.RoleNurse); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), "a@b.com", "other66", domain.RoleAdmin); !errors.Is(err, domain.ErrEmailExists) {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}
	if len(repo.users) != 1 {
		t.Fatalf("expected exactly one record, got %d", len(repo.users))
	}
}

func TestAuthService_Register_NormalizesEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", 15*time.Minute)

	user, err := svc.Register(context.Background(), "  Carol@Hospital.Local ", "secret1", domain.RoleSupervisor)
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if user.Email != "carol@hospital.local" {
		t.Fatalf("expected normalized email, got %q", user.Email)
	}

	if _, err := svc.Register(context.Background(), "CAROL@hospital.local", "secret1", domain.RoleNurse); !errors.Is(err, domain.ErrEmailExists) {
		t.Fatalf("case variant should collide, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", 15*time.Minute)

	if _, err := svc.Register(context.Background(), "carol@hospital.local", "s3cret", domain.RoleAdmin); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "carol@hospital.local", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if user == nil || user.Role != domain.RoleAdmin {
		t.Fatalf("unexpected user: %+v", user)
	}

	identity, err := svc.VerifyToken(token)
	if err != nil {
		t.Fatalf("issued token failed verification: %v", err)
	}
	if identity.SubjectID != user.ID {
		t.Fatalf("expected subject %s, got %s", user.ID, identity.SubjectID)
	}
	if identity.Role != domain.RoleAdmin {
		t.Fatalf("expected role admin, got %s", identity.Role)
	}
}

// Unknown email and wrong password must be indistinguishable to the caller.
func TestAuthService_Login_Indistinguishable(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", 15*time.Minute)

	if _, err := svc.Register(context.Background(), "real@x.com", "goodpass", domain.RoleNurse); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, _, errGhost := svc.Login(context.Background(), "nonexistent@x.com", "anything")
	_, _, errWrong := svc.Login(context.Background(), "real@x.com", "wrongpassword")

	if !errors.Is(errGhost, domain.ErrInvalidCredentials) {
		t.Fatalf("ghost login: expected ErrInvalidCredentials, got %v", errGhost)
	}
	if !errors.Is(errWrong, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", errWrong)
	}
	if errGhost.Error() != errWrong.Error() {
		t.Fatalf("failure messages differ: %q vs %q", errGhost, errWrong)
	}
}

func TestAuthService_Login_InactiveUser(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", 15*time.Minute)

	user, err := svc.Register(context.Background(), "gone@hospital.local", "secret1", domain.RoleNurse)
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	repo.users[user.Email].Active = false

	if _, _, err := svc.Login(context.Background(), "gone@hospital.local", "secret1"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for inactive user, got %v", err)
	}
}

func TestAuthService_TokenExpiryBoundary(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", 15*time.Minute)

	issuedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return issuedAt }

	token, err := svc.IssueToken(&domain.User{ID: "u1", Role: domain.RoleNurse})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	svc.now = func() time.Time { return issuedAt.Add(14*time.Minute + 59*time.Second) }
	if _, err := svc.VerifyToken(token); err != nil {
		t.Fatalf("token rejected before expiry: %v", err)
	}

	svc.now = func() time.Time { return issuedAt.Add(15*time.Minute + 1*time.Second) }
	if _, err := svc.VerifyToken(token); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated after expiry, got %v", err)
	}
}

func TestAuthService_VerifyToken_Tampered(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", 15*time.Minute)

	token, err := svc.IssueToken(&domain.User{ID: "u1", Role: domain.RoleAdmin})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("expected three token segments, got %d", len(parts))
	}
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	if _, err := svc.VerifyToken(tampered); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated for tampered token, got %v", err)
	}
}

func TestAuthService_VerifyToken_WrongSecret(t *testing.T) {
	repo := newStubUserRepo()
	issuer := NewAuthService(repo, "secret-a", 15*time.Minute)
	verifier := NewAuthService(repo, "secret-b", 15*time.Minute)

	token, err := issuer.IssueToken(&domain.User{ID: "u1", Role: domain.RoleNurse})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	if _, err := verifier.VerifyToken(token); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated across secrets, got %v", err)
	}
}

func TestAuthService_VerifyToken_Malformed(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", 15*time.Minute)

	for _, token := range []string{"", "not-a-token", "a.b", "a.b.c.d"} {
		if _, err := svc.VerifyToken(token); !errors.Is(err, domain.ErrUnauthenticated) {
			t.Fatalf("token %q: expected ErrUnauthenticated, got %v", token, err)
		}
	}
}
