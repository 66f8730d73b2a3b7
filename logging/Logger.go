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

package logging

// Logger is the key-value logging surface used across the service.
// zap's SugaredLogger satisfies it directly.
type Logger interface {
	Debugw(msg string, keysAndValues ...interface{})
	Infow(msg string, keysAndValues ...interface{})
	Warnw(msg string, keysAndValues ...interface{})
	Errorw(msg string, keysAndValues ...interface{})
}

type discardLog struct{}

// NewDiscardLog returns a logger that drops everything. Used in tests.
func NewDiscardLog() Logger {
	return discardLog{}
}

func (discardLog) Debugw(msg string, keysAndValues ...interface{}) {}
func (discardLog) Infow(msg string, keysAndValues ...interface{})  {}
func (discardLog) Warnw(msg string, keysAndValues ...interface{})  {}
func (discardLog) Errorw(msg string, keysAndValues ...interface{}) {}
