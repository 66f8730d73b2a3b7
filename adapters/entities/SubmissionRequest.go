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

package entities

import (
	domain "lead-intake/domain/entities"
)

// SubmissionRequest is the wire shape of a form submit. The CAPTCHA token
// travels with the payload but never reaches the persisted record.
type SubmissionRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Company   string `json:"company"`
	JobTitle  string `json:"jobTitle"`
	Phone     string `json:"phone"`

	CompanySize string `json:"companySize"`
	Industry    string `json:"industry"`

	Infrastructure []string `json:"infrastructure"`
	Urgency        string   `json:"urgency"`
	Challenges     string   `json:"challenges"`

	GdprConsent      bool `json:"gdprConsent"`
	MarketingConsent bool `json:"marketingConsent"`

	SubmissionDate string `json:"submissionDate"`
	SourceURL      string `json:"sourceUrl"`
	UserAgent      string `json:"userAgent"`

	RecaptchaResponse string `json:"recaptchaResponse"`
}

func (r *SubmissionRequest) ToSubmission() *domain.Submission {
	return &domain.Submission{
		FirstName:        r.FirstName,
		LastName:         r.LastName,
		Email:            r.Email,
		Company:          r.Company,
		JobTitle:         r.JobTitle,
		Phone:            r.Phone,
		CompanySize:      r.CompanySize,
		Industry:         r.Industry,
		Infrastructure:   r.Infrastructure,
		Urgency:          r.Urgency,
		Challenges:       r.Challenges,
		GdprConsent:      r.GdprConsent,
		MarketingConsent: r.MarketingConsent,
		SubmissionDate:   r.SubmissionDate,
		SourceURL:        r.SourceURL,
		UserAgent:        r.UserAgent,
	}
}
