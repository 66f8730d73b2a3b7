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
	"time"

	"lead-intake/domain/entities"
	"lead-intake/domain/ports/out"
	"lead-intake/domain/services/intake"
	"lead-intake/logging"

	"github.com/pkg/errors"
)

//go:generate go run -mod=mod github.com/golang/mock/mockgen -destination=../../mocks/mock_submission_processor.go -package=mocks -source=SubmissionService.go

var (
	ErrCaptchaRequired = errors.New("reCAPTCHA token is required")
	ErrCaptchaRejected = errors.New("reCAPTCHA verification failed")
	ErrPersistence     = errors.New("failed to save form data")
)

const (
	deliveryCritical = 12 * time.Hour
	deliveryUrgent   = 24 * time.Hour
	deliveryDefault  = 48 * time.Hour

	deliveryDisplayFormat = "02/01/2006 15:04"
)

// Processor accepts a raw submission and runs it through the whole intake
// pipeline. A non-nil error means nothing was persisted, except for the
// best effort side channels noted on the implementation.
type Processor interface {
	Process(ctx context.Context, submission *entities.Submission, captchaToken string, client entities.ClientInfo) (entities.Receipt, error)
}

// StatsProvider exposes read access to already persisted leads.
type StatsProvider interface {
	DailyLeads(day time.Time) (entities.DailyLeads, error)
}

// Notifier is told about accepted submissions after they are on disk.
// Implementations must be safe for concurrent use.
type Notifier interface {
	NotifyAccepted(submission *entities.Submission)
}

type SubmissionService struct {
	validator *intake.Validator
	sanitizer *intake.Sanitizer
	verifier  out.CaptchaVerifier
	store     out.LeadStore
	notifier  Notifier
	logger    logging.Logger
	now       func() time.Time
}

func NewSubmissionService(
	verifier out.CaptchaVerifier,
	store out.LeadStore,
	notifier Notifier,
	logger logging.Logger,
) *SubmissionService {
	return &SubmissionService{
		validator: intake.NewValidator(),
		sanitizer: intake.NewSanitizer(),
		verifier:  verifier,
		store:     store,
		notifier:  notifier,
		logger:    logger,
		now:       time.Now,
	}
}

// Process validates, verifies the CAPTCHA, sanitizes and persists a
// submission. The JSON record is authoritative. CRM and audit appends are
// best effort, a failure there is logged and the submission still succeeds.
func (s *SubmissionService) Process(
	ctx context.Context,
	submission *entities.Submission,
	captchaToken string,
	client entities.ClientInfo,
) (entities.Receipt, error) {
	if err := s.validator.Validate(submission); err != nil {
		return entities.Receipt{}, err
	}

	if captchaToken == "" {
		return entities.Receipt{}, ErrCaptchaRequired
	}

	ok, err := s.verifier.Verify(ctx, captchaToken, client.IPAddress)
	if err != nil {
		s.logger.Warnw("CAPTCHA verification unavailable, rejecting submission", "error", err)
		return entities.Receipt{}, ErrCaptchaRejected
	}
	if !ok {
		return entities.Receipt{}, ErrCaptchaRejected
	}

	now := s.now()

	processed := s.sanitizer.Sanitize(submission)
	if processed.SubmissionDate == "" {
		processed.SubmissionDate = now.Format(time.RFC3339)
	}
	processed.ScanID = intake.NewScanID(now)
	processed.ServerMetadata = entities.ServerMetadata{
		IPAddress:            client.IPAddress,
		UserAgent:            client.UserAgent,
		Timestamp:            now.Format(time.RFC3339),
		ServerProcessingTime: now.Sub(client.ReceivedAt).Seconds(),
	}

	filename, err := s.store.SaveRecord(processed)
	if err != nil {
		s.logger.Errorw("Failed to persist submission record", "scanId", processed.ScanID, "error", err)
		return entities.Receipt{}, errors.Wrap(ErrPersistence, err.Error())
	}

	if err := s.store.AppendCRMRow(processed); err != nil {
		s.logger.Errorw("Failed to append CRM row", "scanId", processed.ScanID, "error", err)
	}

	audit := entities.AuditEntry{
		Timestamp: now.Format(time.RFC3339),
		ScanID:    processed.ScanID,
		Email:     processed.Email,
		Company:   processed.Company,
		Filename:  filename,
		IPAddress: client.IPAddress,
		UserAgent: client.UserAgent,
	}
	if err := s.store.AppendAuditLine(audit); err != nil {
		s.logger.Errorw("Failed to append audit line", "scanId", processed.ScanID, "error", err)
	}

	if s.notifier != nil {
		go s.notifier.NotifyAccepted(processed)
	}

	s.logger.Infow("Submission accepted",
		"scanId", processed.ScanID,
		"company", processed.Company,
		"urgency", processed.Urgency)

	return entities.Receipt{
		ScanID:            processed.ScanID,
		Filename:          filename,
		EstimatedDelivery: EstimateDelivery(processed.Urgency, now),
	}, nil
}

// EstimateDelivery maps urgency to a human readable completion time.
func EstimateDelivery(urgency string, from time.Time) string {
	var lead time.Duration
	switch urgency {
	case entities.UrgencyCritical:
		lead = deliveryCritical
	case entities.UrgencyUrgent:
		lead = deliveryUrgent
	default:
		lead = deliveryDefault
	}

	return from.Add(lead).Format(deliveryDisplayFormat)
}
