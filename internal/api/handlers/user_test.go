package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/hkust/smart-buddy/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserHandler_Create(t *testing.T) {
	ts := testutil.NewTestServer(t)

	tests := []struct {
		name            string
		request         map[string]string
		setup           func()
		expectedStatus  int
		expectedMessage string
		checkFields     []string
	}{
		{
			name: "successful registration",
			request: map[string]string{
				"username":        "newuser",
				"password":        "password123",
				"confirmPassword": "password123",
				"email":           "newuser@example.com",
			},
			expectedStatus:  http.StatusOK,
			expectedMessage: "User created successfully",
		},
		{
			name: "password mismatch",
			request: map[string]string{
				"username":        "newuser",
				"password":        "password123",
				"confirmPassword": "password124",
				"email":           "newuser@example.com",
			},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Password and confirm password do not match",
		},
		{
			name: "duplicate username",
			request: map[string]string{
				"username":        "existinguser",
				"password":        "password123",
				"confirmPassword": "password123",
				"email":           "other@example.com",
			},
			setup: func() {
				testutil.NewUserBuilder().
					WithUsername("existinguser").
					Build(t, ts.DB.DB)
			},
			expectedStatus:  http.StatusConflict,
			expectedMessage: "Username already exists",
		},
		{
			name: "missing fields reported per field",
			request: map[string]string{
				"password": "password123",
			},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Validation failed",
			checkFields:     []string{"username", "confirmPassword", "email"},
		},
		{
			name:            "empty request body",
			request:         map[string]string{},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Validation failed",
			checkFields:     []string{"username", "password", "confirmPassword", "email"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts.DB.Truncate(t)

			if tt.setup != nil {
				tt.setup()
			}

			body, _ := json.Marshal(tt.request)
			resp, err := http.Post(ts.APIURL("/auth/users"), "application/json", bytes.NewBuffer(body))
			require.NoError(t, err)
			defer resp.Body.Close()

			envelope := testutil.AssertEnvelope(t, resp, tt.expectedStatus, tt.expectedMessage)

			if len(tt.checkFields) > 0 {
				var fields map[string]string
				require.NoError(t, json.Unmarshal(envelope.Data, &fields))
				for _, field := range tt.checkFields {
					assert.Contains(t, fields, field)
				}
			}
		})
	}
}
