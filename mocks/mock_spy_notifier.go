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

package mocks

import (
	"sync"

	"lead-intake/domain/entities"
)

// Hand written because the notifier runs on its own goroutine, a gomock call
// arriving after ctrl.Finish would fail the wrong test.
type SpyNotifier struct {
	mu          sync.Mutex
	submissions []*entities.Submission
}

func NewSpyNotifier() *SpyNotifier {
	return &SpyNotifier{}
}

func (s *SpyNotifier) NotifyAccepted(submission *entities.Submission) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.submissions = append(s.submissions, submission)
}

func (s *SpyNotifier) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.submissions)
}

func (s *SpyNotifier) Last() *entities.Submission {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.submissions) == 0 {
		return nil
	}
	return s.submissions[len(s.submissions)-1]
}
