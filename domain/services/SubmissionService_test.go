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

package services

import (
	"context"
	"regexp"
	"testing"
	"time"

	"lead-intake/domain/entities"
	"lead-intake/logging"
	"lead-intake/mocks"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC)

func testSubmission() *entities.Submission {
	return &entities.Submission{
		FirstName:      "Jean",
		LastName:       "Dupont",
		Email:          "jean.dupont@example.com",
		Company:        "Example SARL",
		CompanySize:    "11-50",
		Industry:       "technology",
		Infrastructure: []string{"cloud"},
		Urgency:        entities.UrgencyNormal,
		GdprConsent:    true,
	}
}

func testClient() entities.ClientInfo {
	return entities.ClientInfo{
		IPAddress:  "203.0.113.7",
		UserAgent:  "Mozilla/5.0",
		ReceivedAt: fixedNow.Add(-50 * time.Millisecond),
	}
}

func newServiceForTest(t *testing.T, ctrl *gomock.Controller) (*SubmissionService, *mocks.MockCaptchaVerifier, *mocks.MockLeadStore, *mocks.SpyNotifier) {
	t.Helper()

	verifier := mocks.NewMockCaptchaVerifier(ctrl)
	store := mocks.NewMockLeadStore(ctrl)
	notifier := mocks.NewSpyNotifier()

	service := NewSubmissionService(verifier, store, notifier, logging.NewDiscardLog())
	service.now = func() time.Time { return fixedNow }

	return service, verifier, store, notifier
}

func TestProcessAcceptsValidSubmission(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, verifier, store, _ := newServiceForTest(t, ctrl)
	client := testClient()

	verifier.EXPECT().Verify(gomock.Any(), "token", client.IPAddress).Return(true, nil)

	var saved *entities.Submission
	store.EXPECT().SaveRecord(gomock.Any()).DoAndReturn(func(s *entities.Submission) (string, error) {
		saved = s
		return "scan_request_test.json", nil
	})
	store.EXPECT().AppendCRMRow(gomock.Any()).Return(nil)
	store.EXPECT().AppendAuditLine(gomock.Any()).DoAndReturn(func(entry entities.AuditEntry) error {
		assert.Equal(t, client.IPAddress, entry.IPAddress)
		assert.Equal(t, "jean.dupont@example.com", entry.Email)
		assert.Equal(t, "scan_request_test.json", entry.Filename)
		return nil
	})

	receipt, err := service.Process(context.Background(), testSubmission(), "token", client)

	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^XS-[A-Z0-9]+-[A-F0-9]{6}$`), receipt.ScanID)
	assert.Equal(t, "scan_request_test.json", receipt.Filename)
	assert.Equal(t, fixedNow.Add(48*time.Hour).Format("02/01/2006 15:04"), receipt.EstimatedDelivery)

	require.NotNil(t, saved)
	assert.Equal(t, receipt.ScanID, saved.ScanID)
	assert.Equal(t, client.IPAddress, saved.ServerMetadata.IPAddress)
	assert.Equal(t, fixedNow.Format(time.RFC3339), saved.SubmissionDate)
	assert.InDelta(t, 0.05, saved.ServerMetadata.ServerProcessingTime, 0.001)
}

func TestProcessNotifiesOutOfBand(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, verifier, store, notifier := newServiceForTest(t, ctrl)

	verifier.EXPECT().Verify(gomock.Any(), "token", gomock.Any()).Return(true, nil)
	store.EXPECT().SaveRecord(gomock.Any()).Return("record.json", nil)
	store.EXPECT().AppendCRMRow(gomock.Any()).Return(nil)
	store.EXPECT().AppendAuditLine(gomock.Any()).Return(nil)

	_, err := service.Process(context.Background(), testSubmission(), "token", testClient())
	require.NoError(t, err)

	assert.Eventually(t, func() bool { return notifier.Count() == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, "Example SARL", notifier.Last().Company)
}

func TestProcessRejectsInvalidSubmissionBeforeAnySideEffect(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, _, notifier := newServiceForTest(t, ctrl)

	submission := testSubmission()
	submission.Email = ""

	_, err := service.Process(context.Background(), submission, "token", testClient())

	assert.EqualError(t, err, "Field 'email' is required")
	assert.Equal(t, 0, notifier.Count())
}

func TestProcessRequiresCaptchaToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, _, _ := newServiceForTest(t, ctrl)

	_, err := service.Process(context.Background(), testSubmission(), "", testClient())

	assert.ErrorIs(t, err, ErrCaptchaRequired)
}

func TestProcessRejectsFailedCaptcha(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, verifier, _, _ := newServiceForTest(t, ctrl)

	verifier.EXPECT().Verify(gomock.Any(), "bad-token", gomock.Any()).Return(false, nil)

	_, err := service.Process(context.Background(), testSubmission(), "bad-token", testClient())

	assert.ErrorIs(t, err, ErrCaptchaRejected)
}

func TestProcessFailsClosedWhenCaptchaUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, verifier, _, _ := newServiceForTest(t, ctrl)

	verifier.EXPECT().Verify(gomock.Any(), "token", gomock.Any()).Return(false, errors.New("connection refused"))

	_, err := service.Process(context.Background(), testSubmission(), "token", testClient())

	assert.ErrorIs(t, err, ErrCaptchaRejected)
}

func TestProcessReportsPersistenceFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, verifier, store, notifier := newServiceForTest(t, ctrl)

	verifier.EXPECT().Verify(gomock.Any(), "token", gomock.Any()).Return(true, nil)
	store.EXPECT().SaveRecord(gomock.Any()).Return("", errors.New("disk full"))

	_, err := service.Process(context.Background(), testSubmission(), "token", testClient())

	assert.ErrorIs(t, err, ErrPersistence)
	assert.Equal(t, 0, notifier.Count())
}

func TestProcessToleratesCRMAndAuditFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, verifier, store, _ := newServiceForTest(t, ctrl)

	verifier.EXPECT().Verify(gomock.Any(), "token", gomock.Any()).Return(true, nil)
	store.EXPECT().SaveRecord(gomock.Any()).Return("record.json", nil)
	store.EXPECT().AppendCRMRow(gomock.Any()).Return(errors.New("csv locked"))
	store.EXPECT().AppendAuditLine(gomock.Any()).Return(errors.New("log locked"))

	receipt, err := service.Process(context.Background(), testSubmission(), "token", testClient())

	require.NoError(t, err)
	assert.NotEmpty(t, receipt.ScanID)
}

func TestEstimateDelivery(t *testing.T) {
	tests := map[string]time.Duration{
		entities.UrgencyCritical: 12 * time.Hour,
		entities.UrgencyUrgent:   24 * time.Hour,
		entities.UrgencyNormal:   48 * time.Hour,
		"anything else":          48 * time.Hour,
	}

	for urgency, lead := range tests {
		expected := fixedNow.Add(lead).Format("02/01/2006 15:04")
		assert.Equal(t, expected, EstimateDelivery(urgency, fixedNow))
	}
}
