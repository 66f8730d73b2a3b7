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

//go:generate go run -mod=mod github.com/golang/mock/mockgen -destination=../../../mocks/mock_mailer.go -package=mocks -source=Mailer.go

// Mailer delivers a single plain-text message. Implementations are selected
// at configuration time, not probed at runtime.
type Mailer interface {
	Send(to, subject, body, replyTo string) (bool, error)
}

// MessageSender pushes a short notification to a chat channel.
type MessageSender interface {
	SendMessage(message string) error
}
