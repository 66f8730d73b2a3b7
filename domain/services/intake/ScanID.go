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

package intake

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const randomSuffixBytes = 3

// NewScanID builds a human readable identifier, XS-<base36 unix time>-<6 hex>.
// Stateless, safe to call from independent processes without coordination.
func NewScanID(now time.Time) string {
	suffix := make([]byte, randomSuffixBytes)
	if _, err := rand.Read(suffix); err != nil {
		// crypto/rand does not fail on supported platforms, but a zeroed
		// suffix would silently break uniqueness within a second.
		var fallback [8]byte
		binary.BigEndian.PutUint64(fallback[:], uint64(now.UnixNano()))
		copy(suffix, fallback[5:])
	}

	return fmt.Sprintf("XS-%s-%s",
		strings.ToUpper(strconv.FormatInt(now.Unix(), 36)),
		strings.ToUpper(hex.EncodeToString(suffix)))
}
