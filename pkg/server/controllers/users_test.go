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

package controllers

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/notevault/notevault/pkg/assert"
	"github.com/notevault/notevault/pkg/server/app"
	"github.com/notevault/notevault/pkg/server/database"
	"github.com/notevault/notevault/pkg/server/middleware"
	"github.com/notevault/notevault/pkg/server/testutils"
)

func TestLogin(t *testing.T) {
	db := testutils.InitMemoryDB(t)
	a := app.NewTest()
	a.DB = db

	testutils.SetupUserData(db, "alice", "pass1234")

	server := MustNewServer(t, &a)
	defer server.Close()

	form := url.Values{}
	form.Set("user_id", "alice")
	form.Set("password", "pass1234")

	res := postWithCSRF(t, "/", "/login", form.Encode(), server, nil)
	defer res.Body.Close()

	assert.StatusCodeEquals(t, res, http.StatusFound, "login status mismatch")
	assert.Equal(t, res.Header.Get("Location"), "/notes", "redirect location mismatch")

	var session database.Session
	testutils.MustExec(t, db.First(&session), "getting session")
	assert.Equal(t, session.UserID, "ALICE", "session user mismatch")

	c := testutils.GetCookieByName(res.Cookies(), middleware.SessionCookieName)
	if c == nil {
		t.Fatal("session cookie not set")
	}
	assert.Equal(t, c.Value, session.Key, "session cookie key mismatch")
	assert.Equal(t, c.HttpOnly, true, "session cookie should be http-only")
}

func TestLogin_WrongPassword(t *testing.T) {
	db := testutils.InitMemoryDB(t)
	a := app.NewTest()
	a.DB = db

	testutils.SetupUserData(db, "alice", "pass1234")

	server := MustNewServer(t, &a)
	defer server.Close()

	form := url.Values{}
	form.Set("user_id", "alice")
	form.Set("password", "wrong")

	res := postWithCSRF(t, "/", "/login", form.Encode(), server, nil)
	defer res.Body.Close()

	assert.StatusCodeEquals(t, res, http.StatusUnauthorized, "login status mismatch")

	var count int64
	testutils.MustExec(t, db.Model(&database.Session{}).Count(&count), "counting sessions")
	assert.Equal(t, count, int64(0), "no session should be created")
}

func TestLogin_UnknownUser(t *testing.T) {
	db := testutils.InitMemoryDB(t)
	a := app.NewTest()
	a.DB = db

	server := MustNewServer(t, &a)
	defer server.Close()

	form := url.Values{}
	form.Set("user_id", "ghost")
	form.Set("password", "pass1234")

	res := postWithCSRF(t, "/", "/login", form.Encode(), server, nil)
	defer res.Body.Close()

	// same response as a wrong password so the page does not reveal ids
	assert.StatusCodeEquals(t, res, http.StatusUnauthorized, "login status mismatch")
}

func TestLogout(t *testing.T) {
	db := testutils.InitMemoryDB(t)
	a := app.NewTest()
	a.DB = db

	user := testutils.SetupUserData(db, "alice", "pass1234")
	session := testutils.SetupSession(db, user)

	server := MustNewServer(t, &a)
	defer server.Close()

	res := postWithCSRF(t, "/notes", "/logout", "", server, &session)
	defer res.Body.Close()

	assert.StatusCodeEquals(t, res, http.StatusFound, "logout status mismatch")

	var count int64
	testutils.MustExec(t, db.Model(&database.Session{}).Count(&count), "counting sessions")
	assert.Equal(t, count, int64(0), "session should be deleted")
}
