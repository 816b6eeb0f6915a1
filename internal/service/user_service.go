package service

import (
	"context"
	"errors"
	"time"

	"github.com/hkust/smart-buddy/internal/domain"
	"github.com/hkust/smart-buddy/internal/repository"
	"github.com/hkust/smart-buddy/internal/uid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserService registers new accounts.
type UserService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

type CreateUserInput struct {
	Username        string
	Password        string
	ConfirmPassword string
	Email           string
}

// CreateUser validates the input and persists a new user. Any validation
// failure leaves the store untouched. The password/confirm comparison runs
// before any lookup so a mismatch costs no I/O.
func (s *UserService) CreateUser(ctx context.Context, input CreateUserInput) error {
	if input.Password != input.ConfirmPassword {
		return domain.ErrPasswordMismatch
	}

	exists, err := s.userRepo.ExistsByUsername(ctx, input.Username)
	if err != nil {
		return err
	}
	if exists {
		return domain.ErrUsernameExists
	}

	userID, err := uid.Generate(ctx, s.userRepo.ExistsByUserID)
	if err != nil {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &domain.User{
		UserID:   userID,
		Username: input.Username,
		Password: string(hashedPassword),
		Email:    input.Email,
	}
	user.StampCreation(domain.DefaultCreatedBy, time.Now())

	if err := s.userRepo.Create(ctx, user); err != nil {
		// The unique constraint on username closes the race two
		// concurrent registrations can win against the pre-check.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrUsernameExists
		}
		return err
	}

	return nil
}
