package service

import (
	"context"
	"errors"

	"github.com/hkust/smart-buddy/internal/domain"
	"github.com/hkust/smart-buddy/internal/repository"
	"github.com/hkust/smart-buddy/internal/token"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// TokenService verifies credentials and issues session tokens. It has no
// side effects beyond the user lookup and is safe for concurrent use.
type TokenService struct {
	userRepo repository.UserRepository
	codec    *token.Codec
}

func NewTokenService(userRepo repository.UserRepository, codec *token.Codec) *TokenService {
	return &TokenService{
		userRepo: userRepo,
		codec:    codec,
	}
}

// CreateToken authenticates the username/password pair and returns a
// signed session token for the matching user.
func (s *TokenService) CreateToken(ctx context.Context, username, password string) (string, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrUserNotFound
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", domain.ErrWrongPassword
	}

	return s.codec.Issue(user.Username, user.UserID)
}
