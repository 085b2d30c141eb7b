package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/plastifind/collection-system/internal/core/domain"
	"github.com/plastifind/collection-system/internal/core/ports"
)

// AuthService implements registration and login.
type AuthService struct {
	repo      ports.ActorRepository
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthService(repo ports.ActorRepository, jwtSecret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{repo: repo, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.Actor, error) {
	if input.Username == "" || input.Password == "" || input.Name == "" {
		return nil, domain.ErrInvalidCredentials
	}
	role := input.Role
	if role == "" {
		role = domain.RoleFieldOfficer
	}
	if !role.IsValid() {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	actor := &domain.Actor{
		Username:     input.Username,
		Name:         input.Name,
		Email:        input.Email,
		Organization: input.Organization,
		PasswordHash: string(hash),
		Role:         role,
		Status:       domain.AccountActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, actor)
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.Actor, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	actor, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		// Unknown usernames read the same as wrong passwords.
		if errors.Is(err, domain.ErrActorNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(actor.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(actor)
	if err != nil {
		return "", nil, err
	}

	return token, actor, nil
}

// generateToken signs an HS256 JWT carrying the claims the ActorContext needs.
// Suspension status rides in the token so the gate can deny writes without an
// extra lookup; suspended actors may still authenticate.
func (s *AuthService) generateToken(actor *domain.Actor) (string, error) {
	claims := jwt.MapClaims{
		"sub":            actor.ID,
		"username":       actor.Username,
		"role":           string(actor.Role),
		"account_status": string(actor.Status),
		"exp":            time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
