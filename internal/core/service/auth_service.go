package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/medroster/roster-system/internal/core/domain"
	"github.com/medroster/roster-system/internal/core/ports"
)

// bcryptCost is the fixed work factor for password hashing.
const bcryptCost = 10

const defaultTokenTTL = 15 * time.Minute

// dummyHash is a syntactically valid bcrypt digest compared against when a
// login targets a nonexistent email, so a miss costs the same as a wrong
// password and the two failures stay indistinguishable to the caller.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// sessionClaims is the claim set embedded in every issued token.
type sessionClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// AuthService implements registration, login, and token verification.
type AuthService struct {
	repo      ports.UserRepository
	jwtSecret string
	tokenTTL  time.Duration
	now       func() time.Time
}

func NewAuthService(repo ports.UserRepository, jwtSecret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = defaultTokenTTL
	}
	return &AuthService{repo: repo, jwtSecret: jwtSecret, tokenTTL: tokenTTL, now: time.Now}
}

// Register creates a new user with a fresh bcrypt hash and active=true.
// Email uniqueness is double-checked: a friendly lookup first, then the
// storage-level unique index backing Create closes the check-then-act race.
func (s *AuthService) Register(ctx context.Context, email, password string, role domain.Role) (*domain.User, error) {
	email = normalizeEmail(email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, domain.NewValidationError("email must be a valid email")
	}
	if len(password) < 6 {
		return nil, domain.NewValidationError("password must be at least 6 characters")
	}
	if !role.Valid() {
		return nil, domain.NewValidationError("role must be one of: admin supervisor nurse")
	}

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrEmailExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("register lookup: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := s.now().UTC()
	user := &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Login verifies credentials and issues a signed session token. A missing
// user, a wrong password, and an inactive account all yield the same
// ErrInvalidCredentials so account existence and state never leak.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Burn the same bcrypt cost as a real comparison.
			_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(password))
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("login lookup: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}
	if !user.Active {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.IssueToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// IssueToken signs an HS256 token asserting the user's identity and role,
// expiring tokenTTL after issuance. Tokens are never stored server-side.
func (s *AuthService) IssueToken(user *domain.User) (string, error) {
	now := s.now()
	claims := sessionClaims{
		Role: string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// VerifyToken checks signature, structure, and expiry, and returns the
// asserted identity. Any failure collapses to ErrUnauthenticated; a valid,
// unexpired token is always honored (no revocation list exists).
func (s *AuthService) VerifyToken(token string) (*domain.Identity, error) {
	claims := &sessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return []byte(s.jwtSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil || !parsed.Valid {
		return nil, domain.ErrUnauthenticated
	}

	role := domain.Role(claims.Role)
	if !role.Valid() {
		return nil, domain.ErrUnauthenticated
	}
	return &domain.Identity{SubjectID: claims.Subject, Role: role}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
