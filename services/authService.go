package services

import (
	"context"

	"github.com/arthurhenrique02/doc-pay-manager/config"
	"github.com/arthurhenrique02/doc-pay-manager/models"
	"github.com/arthurhenrique02/doc-pay-manager/repositories"
	"github.com/arthurhenrique02/doc-pay-manager/utils"
)

// Identity is the resolved caller of an authenticated request.
type Identity struct {
	ID          int64
	Username    string
	IsSuperuser bool
}

type AuthService interface {
	Authenticate(ctx context.Context, username, password string) (*models.User, error)
	IssueToken(username string) (string, error)
	ResolveToken(ctx context.Context, token string) (*Identity, error)
}

type authService struct {
	userRepo repositories.UserRepository
	config   *config.AppConfig
}

func NewAuthService(userRepo repositories.UserRepository, config *config.AppConfig) AuthService {
	return &authService{userRepo: userRepo, config: config}
}

// Authenticate verifies a username/password pair against the store.
func (s *authService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.userRepo.GetCredentials(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil || !utils.CheckPasswordHash(password, user.Password) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// IssueToken creates a bearer token whose subject is the username.
func (s *authService) IssueToken(username string) (string, error) {
	return utils.GenerateAccessToken(s.config.GetSymmetricKey(), username, s.config.GetTokenExpiry())
}

// ResolveToken validates a bearer token and resolves its subject to the
// persisted user. The returned identity reflects the store, not the raw
// claims.
func (s *authService) ResolveToken(ctx context.Context, token string) (*Identity, error) {
	claims, err := utils.ValidateToken(s.config.GetSymmetricKey(), token)
	if err != nil {
		return nil, ErrInvalidToken
	}

	user, err := s.userRepo.GetByUsername(ctx, claims.Subject)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidToken
	}

	return &Identity{
		ID:          user.ID,
		Username:    user.Username,
		IsSuperuser: user.IsSuperuser,
	}, nil
}
