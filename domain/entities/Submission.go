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

import "time"

const (
	UrgencyCritical = "critical"
	UrgencyUrgent   = "urgent"
	UrgencyNormal   = "normal"
)

// LeadSource tags every CRM row so the importer can tell which funnel produced it.
const LeadSource = "Free Scan Form"

// Submission is the scan request as received from the form, and after
// sanitization the record that gets persisted. ScanID and ServerMetadata are
// only set once the pipeline accepted the submission.
type Submission struct {
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

	ScanID         string         `json:"scanId,omitempty"`
	ServerMetadata ServerMetadata `json:"serverMetadata"`
}

type ServerMetadata struct {
	IPAddress            string  `json:"ipAddress"`
	UserAgent            string  `json:"userAgent"`
	Timestamp            string  `json:"timestamp"`
	ServerProcessingTime float64 `json:"serverProcessingTime"`
}

// ClientInfo carries the transport-level request facts into the pipeline.
type ClientInfo struct {
	IPAddress  string
	UserAgent  string
	ReceivedAt time.Time
}

// Receipt is what an accepted submission earns.
type Receipt struct {
	ScanID            string
	Filename          string
	EstimatedDelivery string
}

// AuditEntry is one line of the append-only submission log.
type AuditEntry struct {
	Timestamp string `json:"timestamp"`
	ScanID    string `json:"scan_id"`
	Email     string `json:"email"`
	Company   string `json:"company"`
	Filename  string `json:"filename"`
	IPAddress string `json:"ip_address"`
	UserAgent string `json:"user_agent"`
}

type DailyLeads struct {
	Date    string
	Count   int
	ScanIDs []string
}
