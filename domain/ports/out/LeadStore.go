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
	"lead-intake/domain/entities"
	"time"
)

//go:generate go run -mod=mod github.com/golang/mock/mockgen -destination=../../../mocks/mock_lead_store.go -package=mocks -source=LeadStore.go

// LeadStore persists accepted submissions. SaveRecord is the authoritative
// write, the CRM row and audit line are best-effort companions.
type LeadStore interface {
	SaveRecord(submission *entities.Submission) (string, error)
	AppendCRMRow(submission *entities.Submission) error
	AppendAuditLine(entry entities.AuditEntry) error
	DailyScanIDs(date time.Time) ([]string, error)
}
