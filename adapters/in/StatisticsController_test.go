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

package in

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	adapterentities "lead-intake/adapters/entities"
	"lead-intake/common"
	"lead-intake/domain/entities"
	leadhttp "lead-intake/http"
	"lead-intake/logging"
	"lead-intake/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func statsApp(stats *mocks.MockStatsProvider) *fiber.App {
	controller := NewStatisticsController(stats, logging.NewDiscardLog())
	handlers := []leadhttp.Handler{
		{HTTPMethod: "GET", Path: "/leads", HandlerFunc: controller.GetDailyLeads},
	}

	return common.CreateFiberAppForTest(handlers)
}

func TestGetDailyLeads(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	stats := mocks.NewMockStatsProvider(mockCtrl)
	day := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	stats.EXPECT().DailyLeads(day).Return(entities.DailyLeads{
		Date:    "2025-03-15",
		Count:   2,
		ScanIDs: []string{"XS-A-000001", "XS-A-000002"},
	}, nil)

	request := httptest.NewRequest("GET", "/v1/leads?date=2025-03-15", http.NoBody)

	response, err := statsApp(stats).Test(request, -1)
	if err != nil {
		t.Errorf("failed to send request. %v", err)
	}
	defer response.Body.Close()

	assert.Equal(t, fiber.StatusOK, response.StatusCode)

	body, err := io.ReadAll(response.Body)
	assert.NoError(t, err)

	obtained := common.GetObjectFromJSON[adapterentities.LeadStatsResponse](t, body)
	assert.Equal(t, "2025-03-15", obtained.Date)
	assert.Equal(t, 2, obtained.Count)
	assert.Len(t, obtained.ScanIDs, 2)
	assert.Empty(t, obtained.Error)
}

func TestGetDailyLeadsRejectsBadDate(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	stats := mocks.NewMockStatsProvider(mockCtrl)

	request := httptest.NewRequest("GET", "/v1/leads?date=15/03/2025", http.NoBody)

	response, err := statsApp(stats).Test(request, -1)
	if err != nil {
		t.Errorf("failed to send request. %v", err)
	}
	defer response.Body.Close()

	assert.Equal(t, fiber.StatusBadRequest, response.StatusCode)

	body, err := io.ReadAll(response.Body)
	assert.NoError(t, err)

	obtained := common.GetObjectFromJSON[adapterentities.LeadStatsResponse](t, body)
	assert.NotEmpty(t, obtained.Error)
}

func TestGetDailyLeadsReportsStoreFailure(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	stats := mocks.NewMockStatsProvider(mockCtrl)
	stats.EXPECT().DailyLeads(gomock.Any()).Return(entities.DailyLeads{}, errors.New("broken export"))

	request := httptest.NewRequest("GET", "/v1/leads", http.NoBody)

	response, err := statsApp(stats).Test(request, -1)
	if err != nil {
		t.Errorf("failed to send request. %v", err)
	}
	defer response.Body.Close()

	assert.Equal(t, fiber.StatusInternalServerError, response.StatusCode)
}
