package testutil

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hkust/smart-buddy/internal/domain"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserBuilder creates test users with a builder pattern
type UserBuilder struct {
	username string
	password string
	email    string
}

// NewUserBuilder creates a new UserBuilder with default values
func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		username: fmt.Sprintf("testuser_%s", uuid.New().String()[:8]),
		password: "testpassword123",
		email:    "test@example.com",
	}
}

// WithUsername sets the username
func (b *UserBuilder) WithUsername(username string) *UserBuilder {
	b.username = username
	return b
}

// WithPassword sets the password
func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.password = password
	return b
}

// WithEmail sets the email
func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.email = email
	return b
}

// Build creates the user in the database and returns the user with the raw password
func (b *UserBuilder) Build(t *testing.T, db *gorm.DB) (*domain.User, string) {
	t.Helper()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(b.password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &domain.User{
		UserID:   uuid.New().String(),
		Username: b.username,
		Password: string(hashedPassword),
		Email:    b.email,
	}
	user.StampCreation(domain.DefaultCreatedBy, time.Now())

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return user, b.password
}

// CreateMessage persists a message row for a user
func CreateMessage(t *testing.T, db *gorm.DB, userID, content, sender string, createdAt time.Time) *domain.Message {
	t.Helper()

	message := &domain.Message{
		MessageID: uuid.New().String(),
		UserID:    userID,
		Content:   content,
		Sender:    sender,
	}
	message.StampCreation(sender, createdAt)

	if err := db.Create(message).Error; err != nil {
		t.Fatalf("failed to create message: %v", err)
	}

	return message
}

// TokenResponse matches the token endpoint's data payload
type TokenResponse struct {
	Token string `json:"token"`
}

// Envelope matches the API response envelope
type Envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}
