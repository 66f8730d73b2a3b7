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
	"time"

	adapterentities "lead-intake/adapters/entities"
	"lead-intake/common"
	"lead-intake/domain/services"
	"lead-intake/logging"

	"github.com/gofiber/fiber/v2"
)

type StatisticsController struct {
	stats  services.StatsProvider
	logger logging.Logger
}

func NewStatisticsController(stats services.StatsProvider, logger logging.Logger) StatisticsController {
	return StatisticsController{stats: stats, logger: logger}
}

// GetDailyLeads
// @Summary		Lists the leads captured on a given day
// @Tags		leads
// @Produce		json
// @Param		date	query	string	false	"Day to summarize, 2006-01-02, defaults to today"
// @Success		200 {object} adapterentities.LeadStatsResponse
// @Failure		400 {object} adapterentities.LeadStatsResponse
// @Failure		500 {object} adapterentities.LeadStatsResponse
// @Security	ApiKey
// @Router      /leads [get]
func (s *StatisticsController) GetDailyLeads(c *fiber.Ctx) error {
	response := adapterentities.LeadStatsResponse{}

	day, err := common.ParseDate(c.Query("date"), time.Now())
	if err != nil {
		response.Error = "invalid date, expected 2006-01-02"

		return c.Status(fiber.StatusBadRequest).JSON(response)
	}

	leads, err := s.stats.DailyLeads(day)
	if err != nil {
		s.logger.Errorw("Failed to summarize leads", "date", day, "error", err)
		response.Error = "could not load lead statistics"

		return c.Status(fiber.StatusInternalServerError).JSON(response)
	}

	response.Date = leads.Date
	response.Count = leads.Count
	response.ScanIDs = leads.ScanIDs

	return c.Status(fiber.StatusOK).JSON(response)
}
