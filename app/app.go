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

package app

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	adaptersin "lead-intake/adapters/in"
	adaptersout "lead-intake/adapters/out"
	"lead-intake/common"
	"lead-intake/config"
	portsout "lead-intake/domain/ports/out"
	"lead-intake/domain/services"
	"lead-intake/domain/services/notification"
	leadhttp "lead-intake/http"
	"lead-intake/logging"
	"lead-intake/metrics"
	"lead-intake/pkg/awsutils"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/spf13/afero"
	"github.com/uber-go/tally/v4"
	"gopkg.in/DataDog/dd-trace-go.v1/ddtrace/tracer"
	"gopkg.in/DataDog/dd-trace-go.v1/profiler"
)

const (
	submissionsPerMinute = 10
	submissionsPerHour   = 100
	submissionLimitKey   = "form-submit"
)

func Start(ctx context.Context) error {
	appConfig, err := config.LoadConfig()
	if err != nil {
		return err
	}

	// Enable Datadog tracer
	tracer.Start()
	defer tracer.Stop()

	// Enable Datadog Profiler
	if err = profiler.Start(); err != nil {
		return err
	}
	defer profiler.Stop()

	logger, err := logging.NewZapLogger(appConfig.HTTPServer.DebugLog)
	if err != nil {
		return err
	}

	var metricsHandler http.Handler
	var metricsScope tally.Scope
	var metricsClose io.Closer

	if appConfig.HTTPServer.Metrics {
		metricsScope, metricsHandler, metricsClose = metrics.NewPrometheusScope()
		defer metricsClose.Close()
	} else {
		metricsScope, metricsHandler, _ = metrics.NewNoopScope()
	}

	var archiver portsout.Archiver
	if appConfig.Aws.ArchiveBucket != "" {
		var client awsutils.Clients
		session, err := client.Session(appConfig.Aws.Region, appConfig.Aws.Resolver)
		if err != nil {
			return fmt.Errorf("failed to initialize aws client. Error: %s, Region: %s, Resolver: %s", err, appConfig.Aws.Region, appConfig.Aws.Resolver)
		}

		archiver = adaptersout.NewS3Archiver(session, nil, appConfig.Aws.ArchiveBucket)
	}

	storage, err := adaptersout.NewLeadStorageFS(afero.NewOsFs(), appConfig.Storage.DataDir, appConfig.Storage.AuditLog, archiver, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize lead storage. Error: %s", err)
	}

	verifier := adaptersout.NewRecaptchaVerifier(appConfig.Captcha.Secret, appConfig.Captcha.VerifyURL, time.Duration(appConfig.Captcha.Timeout)*time.Second)

	var mailer portsout.Mailer
	if appConfig.Email.Enabled {
		if appConfig.Email.Transport == "smtp" {
			mailer = adaptersout.NewSMTPMailer(appConfig.Email.Host, appConfig.Email.Port, appConfig.Email.Username,
				appConfig.Email.Password, appConfig.Email.From, appConfig.Email.FromName, logger)
		} else {
			mailer = adaptersout.NewLogMailer(logger)
		}
	}

	var messenger portsout.MessageSender
	if appConfig.Notification.Slack.Webhook != "" {
		messenger = adaptersout.NewSlackNotifier(appConfig.Notification.Slack.Webhook, appConfig.Notification.Slack.ChannelID)
	}

	notifier := notification.NewLeadNotifier(mailer, messenger, appConfig.Email.NotifyTo, logger)

	var rateLimiter common.RateLimiter
	if appConfig.Redis.URL != "" {
		rateLimiter = common.NewRateLimiter(appConfig.Redis.URL, appConfig.Redis.Password, appConfig.Redis.UseTLS, common.RateLimitConfig{
			Minute: submissionsPerMinute,
			Hour:   submissionsPerHour,
			Key:    submissionLimitKey,
		})
	}

	submissionService := services.NewSubmissionService(verifier, storage, notifier, logger)
	statsService := services.NewLeadStatsService(storage)

	submissionController := adaptersin.NewSubmissionController(submissionService, rateLimiter, metricsScope, logger)
	statisticsController := adaptersin.NewStatisticsController(statsService, logger)

	fiberConfig := leadhttp.FiberConfig{
		MaxRequestSize:    appConfig.HTTPServer.MaxRequestSize,
		AuthorizationKeys: appConfig.HTTPServer.AuthorizationKeys,
		Profiler:          appConfig.HTTPServer.Profiler,
		Metrics:           adaptor.HTTPHandler(metricsHandler),
		RequestLogger: func(c *fiber.Ctx) error {
			// Prevent generating lots of requests because of healthcheck
			if !strings.HasPrefix(c.Path(), "/healthcheck/") && !strings.HasPrefix(c.Path(), "/metrics") {
				logger.Infow("Received webapi request", "request_id", uuid.New().String(), "ip", c.IP(),
					"method", c.Method(), "url", c.BaseURL(), "path", c.Path(), "response_status", c.Response().StatusCode())
			}
			return c.Next()
		},
		Readiness: func(c *fiber.Ctx) error {
			if err := storage.Ready(); err != nil {
				logger.Errorw("Lead storage not ready.", "error", err)
				return c.Status(fiber.StatusServiceUnavailable).SendString(fmt.Sprintf("Storage not writable. %s", err))
			}

			return c.SendStatus(fiber.StatusOK)
		},
		Liveness: func(c *fiber.Ctx) error {
			return c.SendStatus(fiber.StatusOK)
		},
		Handlers: []leadhttp.Handler{
			{HTTPMethod: "POST", Path: "/form-submit", HandlerFunc: submissionController.Submit},
			{HTTPMethod: "GET", Path: "/leads", HandlerFunc: statisticsController.GetDailyLeads},
		},
	}

	app, err := leadhttp.CreateFiberApp(fiberConfig, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize fiber framework. Error: %s", err)
	}

	return app.Listen(fmt.Sprintf(":%d", appConfig.HTTPServer.Port))
}
