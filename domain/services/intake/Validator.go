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
	"fmt"
	"lead-intake/domain/entities"
	"regexp"

	"github.com/go-playground/validator/v10"
)

const (
	companySizeRule = "oneof=1-10 11-50 51-200 201-1000 1000+"
	industryRule    = "oneof=finance healthcare technology manufacturing retail government education other"
)

// The same loose pattern the browser form applies. Keep the two in sync.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidationError reports the first unmet intake rule.
type ValidationError struct {
	Field   string
	message string
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, message: message}
}

func (e *ValidationError) Error() string {
	return e.message
}

type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	return &Validator{validate: validator.New()}
}

// Validate applies the intake rules in order and stops at the first violation.
// Callers get exactly one reason, not a report.
func (v *Validator) Validate(submission *entities.Submission) error {
	required := []struct {
		name  string
		value string
	}{
		{"firstName", submission.FirstName},
		{"lastName", submission.LastName},
		{"email", submission.Email},
		{"company", submission.Company},
		{"companySize", submission.CompanySize},
		{"industry", submission.Industry},
	}

	for _, field := range required {
		if err := v.validate.Var(field.value, "required"); err != nil {
			return &ValidationError{Field: field.name, message: fmt.Sprintf("Field '%s' is required", field.name)}
		}
	}

	if !emailPattern.MatchString(submission.Email) {
		return &ValidationError{Field: "email", message: "Invalid email address"}
	}

	if !submission.GdprConsent {
		return &ValidationError{Field: "gdprConsent", message: "GDPR consent is required"}
	}

	if err := v.validate.Var(submission.CompanySize, companySizeRule); err != nil {
		return &ValidationError{Field: "companySize", message: "Invalid company size"}
	}

	if err := v.validate.Var(submission.Industry, industryRule); err != nil {
		return &ValidationError{Field: "industry", message: "Invalid industry"}
	}

	return nil
}
