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

package out

import (
	"fmt"
	"net/smtp"
	"strings"

	"lead-intake/logging"

	"github.com/pkg/errors"
)

// SMTPMailer delivers plain text mail through a single relay. The stdlib
// client is enough here, the service sends two small messages per lead and
// needs no pooling or HTML support.
type SMTPMailer struct {
	host     string
	port     int
	username string
	password string
	from     string
	fromName string
	logger   logging.Logger
}

func NewSMTPMailer(host string, port int, username, password, from, fromName string, logger logging.Logger) *SMTPMailer {
	return &SMTPMailer{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
		fromName: fromName,
		logger:   logger,
	}
}

func (m *SMTPMailer) Send(to, subject, body, replyTo string) (bool, error) {
	message := m.buildMessage(to, subject, body, replyTo)

	var auth smtp.Auth
	if m.username != "" {
		auth = smtp.PlainAuth("", m.username, m.password, m.host)
	}

	addr := fmt.Sprintf("%s:%d", m.host, m.port)
	if err := smtp.SendMail(addr, auth, m.from, []string{to}, []byte(message)); err != nil {
		return false, errors.Wrapf(err, "failed to send mail to %s", to)
	}

	return true, nil
}

func (m *SMTPMailer) buildMessage(to, subject, body, replyTo string) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("From: %s <%s>\r\n", m.fromName, m.from))
	sb.WriteString(fmt.Sprintf("To: %s\r\n", to))
	if replyTo != "" {
		sb.WriteString(fmt.Sprintf("Reply-To: %s\r\n", replyTo))
	}
	sb.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	sb.WriteString("\r\n")
	sb.WriteString(body)

	return sb.String()
}
