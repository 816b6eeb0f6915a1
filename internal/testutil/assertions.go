package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertStatusCode verifies the HTTP response status code
func AssertStatusCode(t *testing.T, resp *http.Response, expected int) {
	t.Helper()
	assert.Equal(t, expected, resp.StatusCode, "unexpected status code")
}

// AssertJSONResponse decodes JSON response into v
func AssertJSONResponse(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "failed to read response body")

	err = json.Unmarshal(body, v)
	require.NoError(t, err, "failed to unmarshal response: %s", string(body))
}

// AssertEnvelope decodes the response into the envelope and verifies both
// HTTP status and envelope status/message
func AssertEnvelope(t *testing.T, resp *http.Response, expectedStatus int, expectedMessage string) *Envelope {
	t.Helper()

	assert.Equal(t, expectedStatus, resp.StatusCode, "unexpected status code")

	var envelope Envelope
	AssertJSONResponse(t, resp, &envelope)
	assert.Equal(t, expectedStatus, envelope.Status, "envelope status mismatch")
	assert.Equal(t, expectedMessage, envelope.Message, "envelope message mismatch")

	return &envelope
}
