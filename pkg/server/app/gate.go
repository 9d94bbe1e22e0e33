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

package app

import (
	"github.com/notevault/notevault/pkg/server/database"
	"github.com/notevault/notevault/pkg/server/permissions"
)

// CanModifyNote reports whether the acting user owns the note. A
// nonexistent note is indistinguishable from an unauthorized one: both
// yield false. The decision is re-evaluated on every call; nothing is
// cached.
func (a *App) CanModifyNote(actingUserID, noteID string) bool {
	owner, err := a.NoteOwner(noteID)
	if err != nil {
		return false
	}

	return permissions.ModifyNote(NormalizeUserID(actingUserID), database.Note{NoteID: noteID, Owner: owner})
}

// CanModifyImage reports whether the acting user owns the image, with the
// same deny-by-default behavior as CanModifyNote.
func (a *App) CanModifyImage(actingUserID, uid string) bool {
	owner, err := a.ImageOwner(uid)
	if err != nil {
		return false
	}

	return permissions.ModifyImage(NormalizeUserID(actingUserID), database.Image{UID: uid, Owner: owner})
}
