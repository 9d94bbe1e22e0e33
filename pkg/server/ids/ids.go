/* Copyright 2025 Notevault Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package ids derives the identifiers that tie notes and images to their
// owners. Identifiers are SHA-256 digests encoded as lowercase hex: fixed
// length, URL-safe and comparable without regard to case.
//
// Uniqueness is not enforced here. Timestamp granularity plus the digest
// width make collisions practically impossible; the primary-key constraint
// on the id column is the actual safety net, and a collision surfaces as an
// insert error.
package ids

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// timeFormat pins the timestamp serialization so that an identifier is a
// pure function of its inputs.
const timeFormat = time.RFC3339Nano

func digest(parts ...string) string {
	h := sha256.New()
	for _, p := range parts {
		h.Write([]byte(p))
	}

	return hex.EncodeToString(h.Sum(nil))
}

// NoteID derives the identifier for a note from the uppercase owner id and
// the creation time.
func NoteID(ownerID string, t time.Time) string {
	return digest(ownerID, t.UTC().Format(timeFormat))
}

// ImageUID derives the identifier for an image from the upload time and the
// sanitized original filename.
func ImageUID(t time.Time, filename string) string {
	return digest(t.UTC().Format(timeFormat), filename)
}
