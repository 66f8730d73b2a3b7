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

package intake

import (
	"html"
	"lead-intake/domain/entities"
	"strings"
)

// Sanitizer assumes the Validator already ran, it never rejects.
type Sanitizer struct{}

func NewSanitizer() *Sanitizer {
	return &Sanitizer{}
}

// Sanitize returns a copy of the submission safe for persistence. Free text is
// trimmed before escaping so surrounding whitespace never turns into escaped
// artifacts. List fields are cleaned element-wise.
func (s *Sanitizer) Sanitize(in *entities.Submission) *entities.Submission {
	out := *in

	out.FirstName = cleanText(in.FirstName)
	out.LastName = cleanText(in.LastName)
	out.Email = cleanEmail(in.Email)
	out.Company = cleanText(in.Company)
	out.JobTitle = cleanText(in.JobTitle)
	out.Phone = cleanText(in.Phone)
	out.Challenges = cleanText(in.Challenges)
	out.UserAgent = cleanText(in.UserAgent)
	out.SourceURL = cleanURL(in.SourceURL)
	out.Urgency = NormalizeUrgency(in.Urgency)

	out.Infrastructure = make([]string, 0, len(in.Infrastructure))
	for _, item := range in.Infrastructure {
		out.Infrastructure = append(out.Infrastructure, cleanText(item))
	}

	return &out
}

// NormalizeUrgency folds absent or unrecognized values to normal.
func NormalizeUrgency(urgency string) string {
	switch urgency {
	case entities.UrgencyCritical, entities.UrgencyUrgent:
		return urgency
	default:
		return entities.UrgencyNormal
	}
}

func cleanText(value string) string {
	return html.EscapeString(strings.TrimSpace(value))
}

// cleanEmail keeps only characters valid in an address. The CRM import
// expects addresses stripped of whitespace and comment syntax.
func cleanEmail(value string) string {
	const allowed = "!#$%&'*+-=?^_`{|}~@.[]"

	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case strings.ContainsRune(allowed, r):
			return r
		default:
			return -1
		}
	}, strings.TrimSpace(value))
}

func cleanURL(value string) string {
	const allowed = "$-_.+!*'(),{}|\\^~[]`<>#%\";/?:@&="

	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case strings.ContainsRune(allowed, r):
			return r
		default:
			return -1
		}
	}, strings.TrimSpace(value))
}
