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
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/notevault/notevault/pkg/server/context"
	"github.com/notevault/notevault/pkg/server/database"
	"github.com/notevault/notevault/pkg/server/helpers"
	"github.com/notevault/notevault/pkg/server/log"
	"github.com/notevault/notevault/pkg/server/permissions"
	pkgErrors "github.com/pkg/errors"
	"gorm.io/gorm"
)

// SessionCookieName is the name of the cookie holding the session key
const SessionCookieName = "notevault_session"

// AuthParams is the params for the authentication middleware
type AuthParams struct {
	RedirectGuestsToLogin bool
}

// Auth is an authentication middleware. It resolves the acting user from
// the session cookie and stores it in the request context.
func Auth(db *gorm.DB, next http.HandlerFunc, p *AuthParams) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok, err := AuthWithSession(db, r)
		if err != nil {
			DoError(w, "authenticating with session", err, http.StatusInternalServerError)
			return
		}
		if !ok {
			if p != nil && p.RedirectGuestsToLogin {
				q := url.Values{}
				q.Set("referrer", r.URL.Path)
				http.Redirect(w, r, helpers.GetPath("/", &q), http.StatusFound)
				return
			}

			RespondUnauthorized(w)
			return
		}

		ctx := context.WithUser(r.Context(), &user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AdminOnly is an authentication middleware that additionally requires the
// acting user to be the administrator.
func AdminOnly(db *gorm.DB, next http.HandlerFunc, p *AuthParams) http.HandlerFunc {
	return Auth(db, func(w http.ResponseWriter, r *http.Request) {
		user := context.User(r.Context())
		if user == nil || !permissions.IsAdmin(user.ID) {
			RespondForbidden(w)
			return
		}

		next.ServeHTTP(w, r)
	}, p)
}

// AuthWithSession performs user authentication with session
func AuthWithSession(db *gorm.DB, r *http.Request) (database.User, bool, error) {
	var user database.User

	sessionKey := getSessionKey(r)
	if sessionKey == "" {
		return user, false, nil
	}

	var session database.Session
	err := db.Where("key = ?", sessionKey).First(&session).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return user, false, nil
	} else if err != nil {
		return user, false, pkgErrors.Wrap(err, "finding session")
	}

	if session.ExpiresAt.Before(time.Now()) {
		return user, false, nil
	}

	err = db.Where("id = ?", session.UserID).First(&user).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return user, false, nil
	} else if err != nil {
		return user, false, pkgErrors.Wrap(err, "finding user from session")
	}

	return user, true, nil
}

// GuestOnly lets only unauthenticated requests through, redirecting the
// rest to the private notes page.
func GuestOnly(db *gorm.DB, next http.HandlerFunc) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, ok, err := AuthWithSession(db, r)
		if err != nil {
			// log the error and continue
			log.ErrorWrap(err, "authenticating with session")
		}

		if ok {
			http.Redirect(w, r, "/notes", http.StatusFound)
		} else {
			next.ServeHTTP(w, r)
		}
	})
}

func getSessionKey(r *http.Request) string {
	c, err := r.Cookie(SessionCookieName)
	if err != nil {
		return ""
	}

	return c.Value
}
