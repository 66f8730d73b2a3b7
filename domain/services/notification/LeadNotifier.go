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

package notification

import (
	"fmt"

	"lead-intake/domain/entities"
	"lead-intake/domain/ports/out"
	"lead-intake/logging"
)

// LeadNotifier fans an accepted submission out to the sales inbox, the
// submitter and the team channel. Every delivery is best effort, the
// submission is already on disk by the time this runs.
type LeadNotifier struct {
	mailer    out.Mailer
	messenger out.MessageSender
	notifyTo  string
	logger    logging.Logger
}

func NewLeadNotifier(mailer out.Mailer, messenger out.MessageSender, notifyTo string, logger logging.Logger) *LeadNotifier {
	return &LeadNotifier{
		mailer:    mailer,
		messenger: messenger,
		notifyTo:  notifyTo,
		logger:    logger,
	}
}

func (n *LeadNotifier) NotifyAccepted(submission *entities.Submission) {
	if n.mailer != nil {
		sent, err := n.mailer.Send(n.notifyTo, notificationSubject(submission), notificationBody(submission), submission.Email)
		if err != nil || !sent {
			n.logger.Errorw("Failed to send notification email", "scanId", submission.ScanID, "error", err)
		}

		sent, err = n.mailer.Send(submission.Email, confirmationSubject(submission), confirmationBody(submission), "")
		if err != nil || !sent {
			n.logger.Errorw("Failed to send confirmation email", "scanId", submission.ScanID, "error", err)
		}
	}

	if n.messenger != nil {
		message := fmt.Sprintf("Nouvelle demande de scan %s de %s (%s, urgence %s)",
			submission.ScanID, submission.Company, submission.Industry, submission.Urgency)
		if err := n.messenger.SendMessage(message); err != nil {
			n.logger.Errorw("Failed to send channel notification", "scanId", submission.ScanID, "error", err)
		}
	}
}
