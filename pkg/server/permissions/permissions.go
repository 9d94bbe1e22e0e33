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

// Package permissions implements the ownership checks that gate every
// mutation. The predicates are pure; they compare the acting user id, in its
// uppercase form, against the recorded owner of a loaded resource.
package permissions

import (
	"github.com/notevault/notevault/pkg/server/database"
)

// AdminUserID is the reserved id of the administrator account. It cannot be
// deleted and it alone may manage the user roster.
const AdminUserID = "ADMIN"

// ModifyNote checks if the given user can modify the given note
func ModifyNote(actingUserID string, note database.Note) bool {
	if actingUserID == "" {
		return false
	}
	if note.Owner == "" {
		return false
	}

	return actingUserID == note.Owner
}

// ModifyImage checks if the given user can modify the given image
func ModifyImage(actingUserID string, image database.Image) bool {
	if actingUserID == "" {
		return false
	}
	if image.Owner == "" {
		return false
	}

	return actingUserID == image.Owner
}

// IsAdmin checks if the given user is the administrator
func IsAdmin(actingUserID string) bool {
	return actingUserID == AdminUserID
}
