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
	"lead-intake/domain/entities"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validSubmission() *entities.Submission {
	return &entities.Submission{
		FirstName:      "Jean",
		LastName:       "Dupont",
		Email:          "jean.dupont@example.com",
		Company:        "Example SARL",
		CompanySize:    "11-50",
		Industry:       "technology",
		Infrastructure: []string{"cloud", "on-premise"},
		Urgency:        entities.UrgencyNormal,
		GdprConsent:    true,
	}
}

func TestValidSubmissionPasses(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.Validate(validSubmission()))
}

func TestMissingRequiredFields(t *testing.T) {
	tests := []struct {
		field  string
		mutate func(s *entities.Submission)
	}{
		{field: "firstName", mutate: func(s *entities.Submission) { s.FirstName = "" }},
		{field: "lastName", mutate: func(s *entities.Submission) { s.LastName = "" }},
		{field: "email", mutate: func(s *entities.Submission) { s.Email = "" }},
		{field: "company", mutate: func(s *entities.Submission) { s.Company = "" }},
		{field: "companySize", mutate: func(s *entities.Submission) { s.CompanySize = "" }},
		{field: "industry", mutate: func(s *entities.Submission) { s.Industry = "" }},
	}

	v := NewValidator()

	for _, tt := range tests {
		tt := tt
		t.Run(tt.field, func(t *testing.T) {
			submission := validSubmission()
			tt.mutate(submission)

			err := v.Validate(submission)

			assert.Error(t, err)

			validationErr, ok := err.(*ValidationError)
			assert.True(t, ok)
			assert.Equal(t, tt.field, validationErr.Field)
			assert.Contains(t, validationErr.Error(), tt.field)
			assert.Contains(t, validationErr.Error(), "required")
		})
	}
}

func TestInvalidEmailRejected(t *testing.T) {
	tests := []string{
		"plainaddress",
		"missing-domain@",
		"@missing-user.com",
		"white space@example.com",
		"no-tld@localhost",
		"two@@example.com",
	}

	v := NewValidator()

	for _, email := range tests {
		email := email
		t.Run(email, func(t *testing.T) {
			submission := validSubmission()
			submission.Email = email

			err := v.Validate(submission)

			assert.Error(t, err)
			assert.Equal(t, "Invalid email address", err.Error())
		})
	}
}

func TestMissingGdprConsentRejected(t *testing.T) {
	submission := validSubmission()
	submission.GdprConsent = false

	err := NewValidator().Validate(submission)

	assert.Error(t, err)
	assert.Equal(t, "GDPR consent is required", err.Error())
}

func TestInvalidCompanySizeRejected(t *testing.T) {
	tests := []string{"0-5", "huge", "51 - 200", "1000"}

	v := NewValidator()

	for _, size := range tests {
		size := size
		t.Run(size, func(t *testing.T) {
			submission := validSubmission()
			submission.CompanySize = size

			err := v.Validate(submission)

			assert.Error(t, err)
			assert.Equal(t, "Invalid company size", err.Error())
		})
	}
}

func TestValidCompanySizes(t *testing.T) {
	v := NewValidator()

	for _, size := range []string{"1-10", "11-50", "51-200", "201-1000", "1000+"} {
		submission := validSubmission()
		submission.CompanySize = size

		assert.NoError(t, v.Validate(submission))
	}
}

func TestInvalidIndustryRejected(t *testing.T) {
	submission := validSubmission()
	submission.Industry = "consulting"

	err := NewValidator().Validate(submission)

	assert.Error(t, err)
	assert.Equal(t, "Invalid industry", err.Error())
}

func TestValidIndustries(t *testing.T) {
	v := NewValidator()

	for _, industry := range []string{"finance", "healthcare", "technology", "manufacturing", "retail", "government", "education", "other"} {
		submission := validSubmission()
		submission.Industry = industry

		assert.NoError(t, v.Validate(submission))
	}
}

func TestValidationOrderIsFailFast(t *testing.T) {
	// Everything is wrong, but the first missing required field wins.
	submission := &entities.Submission{Email: "not-an-email", Industry: "nope"}

	err := NewValidator().Validate(submission)

	assert.Error(t, err)
	assert.Equal(t, "Field 'firstName' is required", err.Error())
}
