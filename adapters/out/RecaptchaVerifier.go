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
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	adapterentities "lead-intake/adapters/entities"

	"github.com/pkg/errors"
)

const defaultVerifyTimeout = 10 * time.Second

// RecaptchaVerifier checks tokens against the Google siteverify endpoint.
// Transport failures surface as errors so the caller can fail closed.
type RecaptchaVerifier struct {
	secret    string
	verifyURL string
	client    *http.Client
}

func NewRecaptchaVerifier(secret, verifyURL string, timeout time.Duration) *RecaptchaVerifier {
	if timeout <= 0 {
		timeout = defaultVerifyTimeout
	}

	return &RecaptchaVerifier{
		secret:    secret,
		verifyURL: verifyURL,
		client:    &http.Client{Timeout: timeout},
	}
}

func (r *RecaptchaVerifier) Verify(ctx context.Context, token, remoteIP string) (bool, error) {
	if token == "" {
		return false, nil
	}

	form := url.Values{}
	form.Set("secret", r.secret)
	form.Set("response", token)
	form.Set("remoteip", remoteIP)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.verifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		return false, errors.Wrap(err, "failed to build verify request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := r.client.Do(req)
	if err != nil {
		return false, errors.Wrap(err, "verify request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, errors.Errorf("verify endpoint answered %d", resp.StatusCode)
	}

	var verification adapterentities.RecaptchaVerifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&verification); err != nil {
		return false, errors.Wrap(err, "failed to decode verify response")
	}

	return verification.Success, nil
}
