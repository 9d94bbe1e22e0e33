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

// Package operations combines the ownership gate with the stores. Every
// mutating request flows Authenticate -> Authorize -> Execute; a denied
// authorization never executes.
package operations

import (
	"github.com/notevault/notevault/pkg/server/app"
	"github.com/notevault/notevault/pkg/server/database"
	"github.com/notevault/notevault/pkg/server/permissions"
)

// DeleteNote deletes a note on behalf of the acting user. A note the acting
// user does not own, including one that does not exist, yields
// app.ErrUnauthorized.
func DeleteNote(a *app.App, actingUserID, noteID string) error {
	if !a.CanModifyNote(actingUserID, noteID) {
		return app.ErrUnauthorized
	}

	return a.DeleteNote(noteID)
}

// DeleteImage deletes image metadata and blob on behalf of the acting user
func DeleteImage(a *app.App, actingUserID, uid string) error {
	if !a.CanModifyImage(actingUserID, uid) {
		return app.ErrUnauthorized
	}

	return a.DeleteImage(uid)
}

// AddUser creates a user on behalf of the acting user. Only the
// administrator manages the roster.
func AddUser(a *app.App, actingUserID, newUserID, password string) (database.User, error) {
	if !permissions.IsAdmin(app.NormalizeUserID(actingUserID)) {
		return database.User{}, app.ErrForbidden
	}

	return a.CreateUser(newUserID, password)
}

// DeleteUser cascades the deletion of a user and everything it owns on
// behalf of the acting user. It returns the uids of the images whose
// metadata was removed.
func DeleteUser(a *app.App, actingUserID, targetUserID string) ([]string, error) {
	if !permissions.IsAdmin(app.NormalizeUserID(actingUserID)) {
		return nil, app.ErrForbidden
	}

	return a.PurgeUser(targetUserID)
}
