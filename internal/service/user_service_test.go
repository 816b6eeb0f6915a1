package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/hkust/smart-buddy/internal/domain"
	"github.com/hkust/smart-buddy/internal/repository/postgres"
	"github.com/hkust/smart-buddy/internal/service"
	"github.com/hkust/smart-buddy/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestUserService_CreateUser(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	services := service.NewServices(repos, testutil.TestConfig())
	ctx := context.Background()

	tests := []struct {
		name      string
		input     service.CreateUserInput
		setup     func()
		wantErr   error
		wantUsers int64
	}{
		{
			name: "successful registration",
			input: service.CreateUserInput{
				Username:        "newuser",
				Password:        "password123",
				ConfirmPassword: "password123",
				Email:           "newuser@example.com",
			},
			wantUsers: 1,
		},
		{
			name: "password mismatch",
			input: service.CreateUserInput{
				Username:        "newuser",
				Password:        "password123",
				ConfirmPassword: "password124",
				Email:           "newuser@example.com",
			},
			wantErr:   domain.ErrPasswordMismatch,
			wantUsers: 0,
		},
		{
			name: "duplicate username",
			input: service.CreateUserInput{
				Username:        "existinguser",
				Password:        "password123",
				ConfirmPassword: "password123",
				Email:           "other@example.com",
			},
			setup: func() {
				testutil.NewUserBuilder().
					WithUsername("existinguser").
					Build(t, testDB.DB)
			},
			wantErr:   domain.ErrUsernameExists,
			wantUsers: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testDB.Truncate(t)

			if tt.setup != nil {
				tt.setup()
			}

			err := services.User.CreateUser(ctx, tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}

			// Validation failures must leave the store untouched.
			var count int64
			require.NoError(t, testDB.DB.Model(&domain.User{}).Count(&count).Error)
			assert.Equal(t, tt.wantUsers, count)
		})
	}
}

func TestUserService_CreateUser_PersistedFields(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	services := service.NewServices(repos, testutil.TestConfig())
	ctx := context.Background()

	err := services.User.CreateUser(ctx, service.CreateUserInput{
		Username:        "bob",
		Password:        "hunter22",
		ConfirmPassword: "hunter22",
		Email:           "bob@example.com",
	})
	require.NoError(t, err)

	user, err := repos.User.GetByUsername(ctx, "bob")
	require.NoError(t, err)

	_, err = uuid.Parse(user.UserID)
	assert.NoError(t, err, "user id should be a canonical UUID")
	assert.Equal(t, "bob@example.com", user.Email)
	assert.Equal(t, domain.DefaultCreatedBy, user.CreatedBy)
	assert.Equal(t, domain.DefaultCreatedBy, user.LastModifiedBy)
	assert.Equal(t, domain.DefaultRecordVersion, user.RecordVersion)
	assert.False(t, user.CreatedDate.IsZero())

	// Digest, never the plaintext, and verifiable only through bcrypt.
	assert.NotEqual(t, "hunter22", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("hunter22")))
}
