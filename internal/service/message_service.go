package service

import (
	"context"
	"time"

	"github.com/hkust/smart-buddy/internal/domain"
	"github.com/hkust/smart-buddy/internal/repository"
	"github.com/hkust/smart-buddy/internal/token"
	"github.com/hkust/smart-buddy/internal/uid"
)

// MessageService persists chat messages and produces advice replies. The
// presented token is the only authorization check on reads and writes.
type MessageService struct {
	messageRepo repository.MessageRepository
	resolver    *token.Resolver
	advise      AdviceFunc
}

func NewMessageService(messageRepo repository.MessageRepository, resolver *token.Resolver, advise AdviceFunc) *MessageService {
	return &MessageService{
		messageRepo: messageRepo,
		resolver:    resolver,
		advise:      advise,
	}
}

// MessageResponse is the outward shape of a single message.
type MessageResponse struct {
	Content         string    `json:"content"`
	Sender          string    `json:"sender"`
	CreatedDateTime time.Time `json:"createdDateTime"`
}

// MessagePage is one page of a user's chat history, newest first.
type MessagePage struct {
	Content       []MessageResponse `json:"content"`
	TotalElements int64             `json:"totalElements"`
	TotalPages    int               `json:"totalPages"`
	Page          int               `json:"number"`
	Size          int               `json:"size"`
}

// GetMessages returns one page of the token holder's chat history.
func (s *MessageService) GetMessages(ctx context.Context, tokenString string, page, size int) (*MessagePage, error) {
	userID, err := s.resolver.ResolveUserID(tokenString)
	if err != nil {
		return nil, err
	}

	messages, total, err := s.messageRepo.ListByUserID(ctx, userID, page, size)
	if err != nil {
		return nil, err
	}

	content := make([]MessageResponse, 0, len(messages))
	for _, m := range messages {
		content = append(content, toResponse(m))
	}

	totalPages := 0
	if size > 0 {
		totalPages = int((total + int64(size) - 1) / int64(size))
	}

	return &MessagePage{
		Content:       content,
		TotalElements: total,
		TotalPages:    totalPages,
		Page:          page,
		Size:          size,
	}, nil
}

// CreateMessage stores the token holder's message, generates the advice
// reply, stores that too, and returns the reply.
func (s *MessageService) CreateMessage(ctx context.Context, tokenString, content string) (*MessageResponse, error) {
	userID, err := s.resolver.ResolveUserID(tokenString)
	if err != nil {
		return nil, err
	}

	if _, err := s.saveMessage(ctx, userID, content, domain.SenderUser); err != nil {
		return nil, err
	}

	advice, err := s.advise(ctx, content)
	if err != nil {
		return nil, err
	}

	aiMessage, err := s.saveMessage(ctx, userID, advice, domain.SenderAI)
	if err != nil {
		return nil, err
	}

	resp := toResponse(aiMessage)
	return &resp, nil
}

func (s *MessageService) saveMessage(ctx context.Context, userID, content, sender string) (*domain.Message, error) {
	messageID, err := uid.Generate(ctx, s.messageRepo.ExistsByMessageID)
	if err != nil {
		return nil, err
	}

	message := &domain.Message{
		MessageID: messageID,
		UserID:    userID,
		Content:   content,
		Sender:    sender,
	}
	message.StampCreation(sender, time.Now())

	if err := s.messageRepo.Create(ctx, message); err != nil {
		return nil, err
	}

	return message, nil
}

func toResponse(m *domain.Message) MessageResponse {
	return MessageResponse{
		Content:         m.Content,
		Sender:          m.Sender,
		CreatedDateTime: m.CreatedDate,
	}
}
