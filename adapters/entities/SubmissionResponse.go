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

type SubmissionResponse struct {
	Success           bool   `json:"success"`
	Message           string `json:"message"`
	ScanID            string `json:"scanId,omitempty"`
	EstimatedDelivery string `json:"estimatedDelivery,omitempty"`
	Filename          string `json:"filename,omitempty"`
	ErrorCode         int    `json:"error_code,omitempty"`
}

// RecaptchaVerifyResponse is the siteverify answer, field names are fixed
// by the Google API.
type RecaptchaVerifyResponse struct {
	Success     bool     `json:"success"`
	ChallengeTS string   `json:"challenge_ts"`
	Hostname    string   `json:"hostname"`
	ErrorCodes  []string `json:"error-codes"`
}

type LeadStatsResponse struct {
	Date    string   `json:"date"`
	Count   int      `json:"count"`
	ScanIDs []string `json:"scanIds"`
	Error   string   `json:"error,omitempty"`
}
