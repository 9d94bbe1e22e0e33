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

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/notevault/notevault/pkg/assert"
	"github.com/notevault/notevault/pkg/server/context"
	"github.com/notevault/notevault/pkg/server/database"
	"github.com/notevault/notevault/pkg/server/testutils"
	"github.com/pkg/errors"
)

func TestAuthWithSession(t *testing.T) {
	db := testutils.InitMemoryDB(t)

	user := testutils.SetupUserData(db, "alice", "pass1234")
	session := testutils.SetupSession(db, user)

	req := httptest.NewRequest("GET", "/notes", nil)
	testutils.AddSessionCookie(req, session)

	resolved, ok, err := AuthWithSession(db, req)
	if err != nil {
		t.Fatal(errors.Wrap(err, "authenticating"))
	}
	assert.Equal(t, ok, true, "session should authenticate")
	assert.Equal(t, resolved.ID, user.ID, "resolved user mismatch")
}

func TestAuthWithSession_NoCookie(t *testing.T) {
	db := testutils.InitMemoryDB(t)

	req := httptest.NewRequest("GET", "/notes", nil)

	_, ok, err := AuthWithSession(db, req)
	if err != nil {
		t.Fatal(errors.Wrap(err, "authenticating"))
	}
	assert.Equal(t, ok, false, "request without cookie should not authenticate")
}

func TestAuthWithSession_Expired(t *testing.T) {
	db := testutils.InitMemoryDB(t)

	user := testutils.SetupUserData(db, "alice", "pass1234")
	session := database.Session{
		Key:       "expired-session-key",
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(-time.Hour),
	}
	testutils.MustExec(t, db.Save(&session), "preparing expired session")

	req := httptest.NewRequest("GET", "/notes", nil)
	testutils.AddSessionCookie(req, session)

	_, ok, err := AuthWithSession(db, req)
	if err != nil {
		t.Fatal(errors.Wrap(err, "authenticating"))
	}
	assert.Equal(t, ok, false, "expired session should not authenticate")
}

func TestAuth_Guest(t *testing.T) {
	db := testutils.InitMemoryDB(t)

	handler := Auth(db, func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not run for a guest")
	}, nil)

	req := httptest.NewRequest("GET", "/notes", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, rec.Code, http.StatusUnauthorized, "status code mismatch")
}

func TestAuth_GuestRedirect(t *testing.T) {
	db := testutils.InitMemoryDB(t)

	handler := Auth(db, func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not run for a guest")
	}, &AuthParams{RedirectGuestsToLogin: true})

	req := httptest.NewRequest("GET", "/notes", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, rec.Code, http.StatusFound, "status code mismatch")
	assert.Equal(t, rec.Header().Get("Location"), "/?referrer=%2Fnotes", "redirect location mismatch")
}

func TestAuth_User(t *testing.T) {
	db := testutils.InitMemoryDB(t)

	user := testutils.SetupUserData(db, "alice", "pass1234")
	session := testutils.SetupSession(db, user)

	var gotUserID string
	handler := Auth(db, func(w http.ResponseWriter, r *http.Request) {
		if u := context.User(r.Context()); u != nil {
			gotUserID = u.ID
		}
	}, nil)

	req := httptest.NewRequest("GET", "/notes", nil)
	testutils.AddSessionCookie(req, session)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, rec.Code, http.StatusOK, "status code mismatch")
	assert.Equal(t, gotUserID, user.ID, "context user mismatch")
}

func TestAdminOnly(t *testing.T) {
	db := testutils.InitMemoryDB(t)

	admin := testutils.SetupUserData(db, "ADMIN", "pass1234")
	adminSession := testutils.SetupSession(db, admin)

	regular := testutils.SetupUserData(db, "alice", "pass1234")
	regularSession := database.Session{
		Key:       "regular-session-key",
		UserID:    regular.ID,
		ExpiresAt: time.Now().Add(time.Hour),
	}
	testutils.MustExec(t, db.Save(&regularSession), "preparing regular session")

	var ran bool
	handler := AdminOnly(db, func(w http.ResponseWriter, r *http.Request) {
		ran = true
	}, nil)

	req := httptest.NewRequest("GET", "/admin", nil)
	testutils.AddSessionCookie(req, regularSession)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, rec.Code, http.StatusForbidden, "regular user status code mismatch")
	assert.Equal(t, ran, false, "handler should not run for a regular user")

	req = httptest.NewRequest("GET", "/admin", nil)
	testutils.AddSessionCookie(req, adminSession)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, rec.Code, http.StatusOK, "admin status code mismatch")
	assert.Equal(t, ran, true, "handler should run for the admin")
}
