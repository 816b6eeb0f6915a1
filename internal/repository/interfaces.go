package repository

import (
	"context"

	"github.com/hkust/smart-buddy/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByUserID(ctx context.Context, userID string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	ExistsByUserID(ctx context.Context, userID string) (bool, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}

type MessageRepository interface {
	Create(ctx context.Context, message *domain.Message) error
	GetByMessageID(ctx context.Context, messageID string) (*domain.Message, error)
	ExistsByMessageID(ctx context.Context, messageID string) (bool, error)
	ListByUserID(ctx context.Context, userID string, page, size int) ([]*domain.Message, int64, error)
}

type Repositories struct {
	User    UserRepository
	Message MessageRepository
}
