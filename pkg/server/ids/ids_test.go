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

package ids

import (
	"regexp"
	"testing"
	"time"

	"github.com/notevault/notevault/pkg/assert"
)

var hexPattern = regexp.MustCompile("^[0-9a-f]{64}$")

func TestNoteIDDeterministic(t *testing.T) {
	ts := time.Date(2025, time.March, 14, 9, 26, 53, 589793238, time.UTC)

	id1 := NoteID("ALICE", ts)
	id2 := NoteID("ALICE", ts)

	assert.Equal(t, id1, id2, "same inputs should derive the same note id")

	if !hexPattern.MatchString(id1) {
		t.Errorf("note id %q is not 64 lowercase hex characters", id1)
	}
}

func TestNoteIDVariesByInput(t *testing.T) {
	ts := time.Date(2025, time.March, 14, 9, 26, 53, 0, time.UTC)

	assert.NotEqual(t, NoteID("ALICE", ts), NoteID("BOB", ts), "different owners should derive different ids")
	assert.NotEqual(t, NoteID("ALICE", ts), NoteID("ALICE", ts.Add(time.Nanosecond)), "different times should derive different ids")
}

func TestNoteIDTimezoneInsensitive(t *testing.T) {
	utc := time.Date(2025, time.March, 14, 9, 0, 0, 0, time.UTC)
	est := utc.In(time.FixedZone("EST", -5*60*60))

	assert.Equal(t, NoteID("ALICE", utc), NoteID("ALICE", est), "ids should not depend on the timezone representation")
}

func TestImageUID(t *testing.T) {
	ts := time.Date(2025, time.March, 14, 9, 26, 53, 0, time.UTC)

	uid1 := ImageUID(ts, "photo.png")
	uid2 := ImageUID(ts, "photo.png")
	assert.Equal(t, uid1, uid2, "same inputs should derive the same uid")

	if !hexPattern.MatchString(uid1) {
		t.Errorf("image uid %q is not 64 lowercase hex characters", uid1)
	}

	assert.NotEqual(t, uid1, ImageUID(ts, "other.png"), "different filenames should derive different uids")
}
