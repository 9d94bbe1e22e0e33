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
	"testing"

	"github.com/notevault/notevault/pkg/assert"
	"github.com/notevault/notevault/pkg/server/database"
	"github.com/notevault/notevault/pkg/server/testutils"
	"github.com/pkg/errors"
)

func TestSignIn(t *testing.T) {
	db := testutils.InitMemoryDB(t)
	a := NewTest()
	a.DB = db

	user := testutils.SetupUserData(db, "alice", "pass1234")

	session, err := a.SignIn(&user)
	if err != nil {
		t.Fatal(errors.Wrap(err, "signing in"))
	}

	assert.Equal(t, session.UserID, user.ID, "session user id mismatch")
	assert.NotEqual(t, session.Key, "", "session key should be set")
	assert.Equal(t, session.ExpiresAt, a.Clock.Now().Add(SessionLifetime), "session expiry mismatch")
}

func TestDeleteSession(t *testing.T) {
	db := testutils.InitMemoryDB(t)
	a := NewTest()
	a.DB = db

	user := testutils.SetupUserData(db, "alice", "pass1234")
	session := testutils.SetupSession(db, user)

	if err := a.DeleteSession(session.Key); err != nil {
		t.Fatal(errors.Wrap(err, "deleting session"))
	}

	var count int64
	testutils.MustExec(t, db.Model(&database.Session{}).Where("key = ?", session.Key).Count(&count), "counting sessions")
	assert.Equal(t, count, int64(0), "session should be deleted")
}
