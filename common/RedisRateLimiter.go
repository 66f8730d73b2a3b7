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
	"context"
	"crypto/tls"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
)

//go:generate go run -mod=mod github.com/golang/mock/mockgen -destination=../mocks/mock_rate_limiter.go -package=mocks -source=RedisRateLimiter.go
type RateLimiter interface {
	IsRequestAllowed(key string) bool
}

type RateLimitConfig struct {
	Hour   int
	Minute int
	Key    string
}

// RedisRateLimiter throttles per caller. The counters live in redis so all
// instances behind the balancer share the same budget.
type RedisRateLimiter struct {
	config  RateLimitConfig
	limiter *redis_rate.Limiter
}

func NewRateLimiter(url, password string, useTLS bool, config RateLimitConfig) *RedisRateLimiter {
	options := redis.Options{
		Addr:     url,
		Password: password,
		DB:       0, // use default DB
	}

	if useTLS {
		options.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}

	return &RedisRateLimiter{
		config:  config,
		limiter: redis_rate.NewLimiter(redis.NewClient(&options)),
	}
}

// IsRequestAllowed charges one request against the minute and hour budgets of
// the given key. Redis being unreachable counts as a denial.
func (r *RedisRateLimiter) IsRequestAllowed(key string) bool {
	ctx := context.Background()

	if r.config.Minute != 0 {
		res, err := r.limiter.Allow(ctx, fmt.Sprintf("Minute-%s-%s", r.config.Key, key), redis_rate.PerMinute(r.config.Minute))
		if err != nil || res.Allowed == 0 {
			return false
		}
	}

	if r.config.Hour != 0 {
		res, err := r.limiter.Allow(ctx, fmt.Sprintf("Hour-%s-%s", r.config.Key, key), redis_rate.PerHour(r.config.Hour))
		if err != nil || res.Allowed == 0 {
			return false
		}
	}

	return true
}
