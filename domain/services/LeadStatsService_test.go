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
	"testing"
	"time"

	"lead-intake/mocks"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDailyLeadsSummarizesStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockLeadStore(ctrl)
	day := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

	store.EXPECT().DailyScanIDs(day).Return([]string{"XS-A-000001", "XS-A-000002"}, nil)

	leads, err := NewLeadStatsService(store).DailyLeads(day)

	require.NoError(t, err)
	assert.Equal(t, "2025-03-15", leads.Date)
	assert.Equal(t, 2, leads.Count)
	assert.Len(t, leads.ScanIDs, 2)
}

func TestDailyLeadsPropagatesStoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockLeadStore(ctrl)
	store.EXPECT().DailyScanIDs(gomock.Any()).Return(nil, errors.New("broken export"))

	_, err := NewLeadStatsService(store).DailyLeads(time.Now())

	assert.Error(t, err)
}
