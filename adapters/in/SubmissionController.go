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
	"time"

	adapterentities "lead-intake/adapters/entities"
	"lead-intake/common"
	"lead-intake/domain/entities"
	"lead-intake/domain/services"
	"lead-intake/domain/services/intake"
	"lead-intake/logging"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/uber-go/tally/v4"
)

const (
	msgSuccess         = "Votre demande de scan a été reçue avec succès!"
	msgInvalidJSON     = "Invalid JSON data"
	msgTooManyRequests = "Too many requests, please try again later"
	msgInternal        = "An internal error occurred"
)

type SubmissionController struct {
	processor   services.Processor
	rateLimiter common.RateLimiter
	metrics     tally.Scope
	logger      logging.Logger
}

func NewSubmissionController(processor services.Processor, rateLimiter common.RateLimiter, metrics tally.Scope, logger logging.Logger) SubmissionController {
	return SubmissionController{processor: processor, rateLimiter: rateLimiter, metrics: metrics, logger: logger}
}

// Submit
// @Summary		Accepts a free scan request from the marketing form
// @Tags		leads
// @Accept		json
// @Produce		json
// @Param		request	body	adapterentities.SubmissionRequest	true	"Form submission"
// @Success		200 {object} adapterentities.SubmissionResponse
// @Failure		400 {object} adapterentities.SubmissionResponse
// @Failure		429 {object} adapterentities.SubmissionResponse
// @Failure		500 {object} adapterentities.SubmissionResponse
// @Router      /form-submit [post]
func (s *SubmissionController) Submit(c *fiber.Ctx) error {
	request := &adapterentities.SubmissionRequest{}
	if err := c.BodyParser(request); err != nil {
		s.logger.Warnw("Could not parse submission body", "error", err)
		s.metrics.Counter("submission_malformed").Inc(1)

		return s.failure(c, fiber.StatusBadRequest, msgInvalidJSON)
	}

	client := entities.ClientInfo{
		IPAddress:  common.ClientIP(c),
		UserAgent:  common.GetFirstNonEmpty(c.Get(fiber.HeaderUserAgent), request.UserAgent, "unknown"),
		ReceivedAt: time.Now(),
	}

	if s.rateLimiter != nil && !s.rateLimiter.IsRequestAllowed(client.IPAddress) {
		s.logger.Warnw("Submission throttled", "ip", client.IPAddress)
		s.metrics.Counter("submission_throttled").Inc(1)

		return s.failure(c, fiber.StatusTooManyRequests, msgTooManyRequests)
	}

	receipt, err := s.processor.Process(c.UserContext(), request.ToSubmission(), request.RecaptchaResponse, client)
	if err != nil {
		return s.mapError(c, err)
	}

	s.metrics.Counter("submission_accepted").Inc(1)

	return c.Status(fiber.StatusOK).JSON(adapterentities.SubmissionResponse{
		Success:           true,
		Message:           msgSuccess,
		ScanID:            receipt.ScanID,
		EstimatedDelivery: receipt.EstimatedDelivery,
		Filename:          receipt.Filename,
	})
}

func (s *SubmissionController) mapError(c *fiber.Ctx, err error) error {
	var validationErr *intake.ValidationError

	switch {
	case errors.As(err, &validationErr):
		s.metrics.Counter("submission_invalid").Inc(1)
		return s.failure(c, fiber.StatusBadRequest, validationErr.Error())
	case errors.Is(err, services.ErrCaptchaRequired), errors.Is(err, services.ErrCaptchaRejected):
		s.metrics.Counter("submission_captcha_rejected").Inc(1)
		return s.failure(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrPersistence):
		s.logger.Errorw("Submission persistence failed", "error", err)
		s.metrics.Counter("submission_persistence_error").Inc(1)
		return s.failure(c, fiber.StatusInternalServerError, "Failed to save form data")
	default:
		s.logger.Errorw("Submission failed", "error", err)
		s.metrics.Counter("submission_error").Inc(1)
		return s.failure(c, fiber.StatusInternalServerError, msgInternal)
	}
}

func (s *SubmissionController) failure(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(adapterentities.SubmissionResponse{
		Success:   false,
		Message:   message,
		ErrorCode: status,
	})
}
