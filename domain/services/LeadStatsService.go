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

package services

import (
	"time"

	"lead-intake/domain/entities"
	"lead-intake/domain/ports/out"
)

const statsDateFormat = "2006-01-02"

// LeadStatsService summarizes a day of captured leads from the CRM export.
type LeadStatsService struct {
	store out.LeadStore
}

func NewLeadStatsService(store out.LeadStore) *LeadStatsService {
	return &LeadStatsService{store: store}
}

func (s *LeadStatsService) DailyLeads(day time.Time) (entities.DailyLeads, error) {
	scanIDs, err := s.store.DailyScanIDs(day)
	if err != nil {
		return entities.DailyLeads{}, err
	}

	return entities.DailyLeads{
		Date:    day.Format(statsDateFormat),
		Count:   len(scanIDs),
		ScanIDs: scanIDs,
	}, nil
}
