package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/hkust/smart-buddy/internal/domain"
	"github.com/hkust/smart-buddy/internal/repository/postgres"
	"github.com/hkust/smart-buddy/internal/service"
	"github.com/hkust/smart-buddy/internal/testutil"
	"github.com/hkust/smart-buddy/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageService_CreateMessage(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	cfg := testutil.TestConfig()
	services := service.NewServices(repos, cfg)
	ctx := context.Background()

	user, password := testutil.NewUserBuilder().WithUsername("alice").Build(t, testDB.DB)
	signed, err := services.Token.CreateToken(ctx, "alice", password)
	require.NoError(t, err)

	resp, err := services.Message.CreateMessage(ctx, signed, "how do I study for finals?")
	require.NoError(t, err)

	assert.Equal(t, domain.SenderAI, resp.Sender)
	assert.Equal(t, "Ai Advice for: how do I study for finals?", resp.Content)
	assert.False(t, resp.CreatedDateTime.IsZero())

	// Both the user message and the advice reply are persisted, scoped to
	// the token holder.
	var messages []*domain.Message
	require.NoError(t, testDB.DB.Order("record_id").Find(&messages).Error)
	require.Len(t, messages, 2)

	assert.Equal(t, domain.SenderUser, messages[0].Sender)
	assert.Equal(t, "how do I study for finals?", messages[0].Content)
	assert.Equal(t, user.UserID, messages[0].UserID)

	assert.Equal(t, domain.SenderAI, messages[1].Sender)
	assert.Equal(t, user.UserID, messages[1].UserID)
	assert.NotEqual(t, messages[0].MessageID, messages[1].MessageID)
}

func TestMessageService_CreateMessage_TokenErrors(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	services := service.NewServices(repos, testutil.TestConfig())
	ctx := context.Background()

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{"blank token", "  ", token.ErrTokenMissing},
		{"garbage token", "garbage", token.ErrTokenMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := services.Message.CreateMessage(ctx, tt.token, "hello")
			assert.ErrorIs(t, err, tt.wantErr)

			var count int64
			require.NoError(t, testDB.DB.Model(&domain.Message{}).Count(&count).Error)
			assert.Zero(t, count, "rejected message must not be persisted")
		})
	}
}

func TestMessageService_GetMessages(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	services := service.NewServices(repos, testutil.TestConfig())
	ctx := context.Background()

	user, password := testutil.NewUserBuilder().WithUsername("alice").Build(t, testDB.DB)
	other, _ := testutil.NewUserBuilder().WithUsername("mallory").Build(t, testDB.DB)

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		testutil.CreateMessage(t, testDB.DB, user.UserID,
			"message", domain.SenderUser, base.Add(time.Duration(i)*time.Minute))
	}
	testutil.CreateMessage(t, testDB.DB, other.UserID, "not yours", domain.SenderUser, base)

	signed, err := services.Token.CreateToken(ctx, "alice", password)
	require.NoError(t, err)

	page, err := services.Message.GetMessages(ctx, signed, 0, 2)
	require.NoError(t, err)

	assert.Equal(t, int64(5), page.TotalElements)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 0, page.Page)
	assert.Equal(t, 2, page.Size)
	require.Len(t, page.Content, 2)

	// Newest first, and never another user's messages.
	assert.True(t, page.Content[0].CreatedDateTime.After(page.Content[1].CreatedDateTime))
	for _, m := range page.Content {
		assert.NotEqual(t, "not yours", m.Content)
	}

	last, err := services.Message.GetMessages(ctx, signed, 2, 2)
	require.NoError(t, err)
	assert.Len(t, last.Content, 1)
}

func TestMessageService_GetMessages_ExpiredToken(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	cfg := testutil.TestConfig()
	services := service.NewServices(repos, cfg)

	expired := token.NewCodec(cfg.JWTSecret, -time.Minute)
	signed, err := expired.Issue("alice", "u1")
	require.NoError(t, err)

	_, err = services.Message.GetMessages(context.Background(), signed, 0, 20)
	assert.ErrorIs(t, err, token.ErrTokenExpired)
}
