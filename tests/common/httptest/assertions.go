//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, targetStruct any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d. Response: %s", expectedStatus, w.Code, w.Body.String())) {
		return
	}

	if expectedStatus >= 200 && expectedStatus < 300 && targetStruct != nil {
		err := json.Unmarshal(w.Body.Bytes(), targetStruct)
		assert.NoError(t, err, fmt.Sprintf("Failed to decode response JSON: %s", w.Body.String()))
	}
}

// AssertErrorResponse accepts both error body shapes the API produces: the
// plain {"error": "..."} from handlers and the structured
// {"error": {"message": "..."}} from the binding layer.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedErrorMsg string) {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d. Response: %s", expectedStatus, w.Code, w.Body.String()))

	if expectedErrorMsg == "" {
		return
	}

	var envelope struct {
		Error json.RawMessage `json:"error"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &envelope)
	assert.NoError(t, err, fmt.Sprintf("Failed to decode error response JSON: %s", w.Body.String()))

	var plain string
	if json.Unmarshal(envelope.Error, &plain) == nil {
		assert.Contains(t, plain, expectedErrorMsg,
			"Response error message doesn't contain expected text")
		return
	}

	var structured struct {
		Message string `json:"message"`
	}
	assert.NoError(t, json.Unmarshal(envelope.Error, &structured),
		fmt.Sprintf("Unexpected error body shape: %s", w.Body.String()))
	assert.Contains(t, structured.Message, expectedErrorMsg,
		"Response error message doesn't contain expected text")
}
