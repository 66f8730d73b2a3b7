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

package common

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Proxy headers checked in order of trust before falling back to the socket peer.
var clientIPHeaders = []string{"X-Forwarded-For", "X-Real-Ip", "Client-Ip"}

// ClientIP resolves the submitter address behind the load balancer. The first
// entry of X-Forwarded-For is the original client.
func ClientIP(c *fiber.Ctx) string {
	for _, header := range clientIPHeaders {
		if value := c.Get(header); value != "" {
			return strings.TrimSpace(strings.Split(value, ",")[0])
		}
	}

	return c.IP()
}

func GetFirstNonEmpty(a, b, defaultValue string) string {
	if a == "" && b == "" {
		return defaultValue
	}

	if a == "" {
		return b
	}

	return a
}

func ParseDate(date string, defaultTime time.Time) (time.Time, error) {
	if date == "" {
		return defaultTime, nil
	}

	return time.Parse("2006-01-02", date)
}
