/*
 *    Copyright 2025 XeOps.ai
 *
 *    Licensed under the Apache License, Version 2.0 (the "License");
 *    you may not use this file except in compliance with the License.
 *    You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 *    Unless required by applicable law or agreed to in writing, software
 *    distributed under the License is distributed on an "AS IS" BASIS,
 *    WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *    See the License for the specific language governing permissions and
 *    limitations under the License.
 */

package in

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	adapterentities "lead-intake/adapters/entities"
	"lead-intake/common"
	"lead-intake/domain/entities"
	"lead-intake/domain/services"
	"lead-intake/domain/services/intake"
	leadhttp "lead-intake/http"
	"lead-intake/logging"
	"lead-intake/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/uber-go/tally/v4"
)

const submissionBody = `{
	"firstName": "Jean",
	"lastName": "Dupont",
	"email": "jean.dupont@example.com",
	"company": "Example SARL",
	"companySize": "11-50",
	"industry": "technology",
	"infrastructure": ["cloud"],
	"urgency": "critical",
	"gdprConsent": true,
	"recaptchaResponse": "token"
}`

func submitApp(processor services.Processor, rateLimiter common.RateLimiter) *fiber.App {
	controller := NewSubmissionController(processor, rateLimiter, tally.NoopScope, logging.NewDiscardLog())
	handlers := []leadhttp.Handler{
		{HTTPMethod: "POST", Path: "/form-submit", HandlerFunc: controller.Submit},
	}

	return common.CreateFiberAppForTest(handlers)
}

func postSubmission(t *testing.T, app *fiber.App, body string, headers map[string]string) (*http.Response, adapterentities.SubmissionResponse) {
	t.Helper()

	request := httptest.NewRequest("POST", "/v1/form-submit", strings.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
	for key, value := range headers {
		request.Header.Set(key, value)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Errorf("failed to send request. %v", err)
	}
	defer response.Body.Close()

	raw, err := io.ReadAll(response.Body)
	assert.NoError(t, err)

	return response, common.GetObjectFromJSON[adapterentities.SubmissionResponse](t, raw)
}

func TestSubmitAcceptedSubmission(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	processor := mocks.NewMockProcessor(mockCtrl)
	processor.EXPECT().Process(gomock.Any(), gomock.Any(), "token", gomock.Any()).
		Return(entities.Receipt{ScanID: "XS-ABC123-0F12AB", Filename: "record.json", EstimatedDelivery: "17/03/2025 10:30"}, nil)

	response, parsed := postSubmission(t, submitApp(processor, nil), submissionBody, nil)

	assert.Equal(t, fiber.StatusOK, response.StatusCode)
	assert.True(t, parsed.Success)
	assert.Equal(t, "Votre demande de scan a été reçue avec succès!", parsed.Message)
	assert.Equal(t, "XS-ABC123-0F12AB", parsed.ScanID)
	assert.Equal(t, "17/03/2025 10:30", parsed.EstimatedDelivery)
	assert.Equal(t, "record.json", parsed.Filename)
	assert.Zero(t, parsed.ErrorCode)
}

func TestSubmitRejectsInvalidJSON(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	processor := mocks.NewMockProcessor(mockCtrl)

	response, parsed := postSubmission(t, submitApp(processor, nil), "{not json", nil)

	assert.Equal(t, fiber.StatusBadRequest, response.StatusCode)
	assert.False(t, parsed.Success)
	assert.Equal(t, "Invalid JSON data", parsed.Message)
	assert.Equal(t, fiber.StatusBadRequest, parsed.ErrorCode)
}

func TestSubmitMapsValidationError(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	processor := mocks.NewMockProcessor(mockCtrl)
	processor.EXPECT().Process(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(entities.Receipt{}, intake.NewValidationError("email", "Invalid email address"))

	response, parsed := postSubmission(t, submitApp(processor, nil), submissionBody, nil)

	assert.Equal(t, fiber.StatusBadRequest, response.StatusCode)
	assert.Equal(t, "Invalid email address", parsed.Message)
}

func TestSubmitMapsCaptchaErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{name: "missing token", err: services.ErrCaptchaRequired, expected: "reCAPTCHA token is required"},
		{name: "rejected token", err: services.ErrCaptchaRejected, expected: "reCAPTCHA verification failed"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			mockCtrl := gomock.NewController(t)
			defer mockCtrl.Finish()

			processor := mocks.NewMockProcessor(mockCtrl)
			processor.EXPECT().Process(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				Return(entities.Receipt{}, tt.err)

			response, parsed := postSubmission(t, submitApp(processor, nil), submissionBody, nil)

			assert.Equal(t, fiber.StatusBadRequest, response.StatusCode)
			assert.Equal(t, tt.expected, parsed.Message)
		})
	}
}

func TestSubmitMapsPersistenceError(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	processor := mocks.NewMockProcessor(mockCtrl)
	processor.EXPECT().Process(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(entities.Receipt{}, services.ErrPersistence)

	response, parsed := postSubmission(t, submitApp(processor, nil), submissionBody, nil)

	assert.Equal(t, fiber.StatusInternalServerError, response.StatusCode)
	assert.Equal(t, "Failed to save form data", parsed.Message)
	assert.Equal(t, fiber.StatusInternalServerError, parsed.ErrorCode)
}

func TestSubmitThrottled(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	processor := mocks.NewMockProcessor(mockCtrl)
	rateLimiter := mocks.NewMockRateLimiter(mockCtrl)
	rateLimiter.EXPECT().IsRequestAllowed("203.0.113.7").Return(false)

	headers := map[string]string{"X-Forwarded-For": "203.0.113.7"}
	response, parsed := postSubmission(t, submitApp(processor, rateLimiter), submissionBody, headers)

	assert.Equal(t, fiber.StatusTooManyRequests, response.StatusCode)
	assert.False(t, parsed.Success)
	assert.Equal(t, fiber.StatusTooManyRequests, parsed.ErrorCode)
}

func TestSubmitForwardsClientAddress(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	processor := mocks.NewMockProcessor(mockCtrl)
	processor.EXPECT().Process(gomock.Any(), gomock.Any(), "token", gomock.Any()).
		DoAndReturn(func(ctx interface{}, submission *entities.Submission, token string, client entities.ClientInfo) (entities.Receipt, error) {
			assert.Equal(t, "203.0.113.7", client.IPAddress)
			assert.Equal(t, "test-agent", client.UserAgent)
			return entities.Receipt{ScanID: "XS-ABC123-0F12AB"}, nil
		})

	headers := map[string]string{
		"X-Forwarded-For": "203.0.113.7, 10.0.0.1",
		"User-Agent":      "test-agent",
	}
	response, _ := postSubmission(t, submitApp(processor, nil), submissionBody, headers)

	assert.Equal(t, fiber.StatusOK, response.StatusCode)
}

func TestSubmitOnlyAcceptsPost(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	processor := mocks.NewMockProcessor(mockCtrl)
	app := submitApp(processor, nil)

	request := httptest.NewRequest("GET", "/v1/form-submit", http.NoBody)

	response, err := app.Test(request, -1)
	if err != nil {
		t.Errorf("failed to send request. %v", err)
	}
	defer response.Body.Close()

	assert.Equal(t, fiber.StatusMethodNotAllowed, response.StatusCode)
}
