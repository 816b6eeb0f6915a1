package postgres

import (
	"context"

	"github.com/hkust/smart-buddy/internal/domain"
	"gorm.io/gorm"
)

type messageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) *messageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, message *domain.Message) error {
	return r.db.WithContext(ctx).Create(message).Error
}

func (r *messageRepository) GetByMessageID(ctx context.Context, messageID string) (*domain.Message, error) {
	var message domain.Message
	err := r.db.WithContext(ctx).First(&message, "message_id = ?", messageID).Error
	if err != nil {
		return nil, err
	}
	return &message, nil
}

func (r *messageRepository) ExistsByMessageID(ctx context.Context, messageID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Message{}).Where("message_id = ?", messageID).Count(&count).Error
	return count > 0, err
}

// ListByUserID returns one page of a user's messages, newest first, along
// with the total row count for that user.
func (r *messageRepository) ListByUserID(ctx context.Context, userID string, page, size int) ([]*domain.Message, int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&domain.Message{}).Where("user_id = ?", userID).Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	var messages []*domain.Message
	err = r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_date DESC").
		Limit(size).
		Offset(page * size).
		Find(&messages).Error
	if err != nil {
		return nil, 0, err
	}

	return messages, total, nil
}
