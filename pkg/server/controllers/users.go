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

	"github.com/notevault/notevault/pkg/server/app"
	"github.com/notevault/notevault/pkg/server/middleware"
	"github.com/notevault/notevault/pkg/server/views"
	"github.com/pkg/errors"
)

// NewUsers creates a new Users controller.
func NewUsers(app *app.App) *Users {
	return &Users{
		LoginView: views.NewView("login"),
		app:       app,
	}
}

// Users is the controller for the login and logout flows
type Users struct {
	LoginView *views.View
	app       *app.App
}

// Login renders the login page
func (u *Users) Login(w http.ResponseWriter, r *http.Request) {
	u.LoginView.Render(w, r, &views.Data{Title: "Login"}, http.StatusOK)
}

type loginForm struct {
	UserID   string `schema:"user_id"`
	Password string `schema:"password"`
}

// NewLogin authenticates a user and starts a session
func (u *Users) NewLogin(w http.ResponseWriter, r *http.Request) {
	var form loginForm
	if err := parseRequestData(r, &form); err != nil {
		handleError(w, "parsing login payload", err)
		return
	}

	user, err := u.app.Authenticate(form.UserID, form.Password)
	if err != nil {
		// respond with the same message for a missing user and a bad
		// password so the login page does not reveal which IDs exist
		if errors.Is(errors.Cause(err), app.ErrNotFound) || errors.Is(errors.Cause(err), app.ErrLoginInvalid) {
			u.LoginView.Render(w, r, &views.Data{
				Title: "Login",
				Alert: "Wrong user ID or password",
			}, http.StatusUnauthorized)
			return
		}

		handleError(w, "authenticating user", err)
		return
	}

	session, err := u.app.SignIn(user)
	if err != nil {
		handleError(w, "signing in", err)
		return
	}

	setSessionCookie(w, session.Key, session.ExpiresAt)

	dest := getReferrer(r)
	if dest == "" {
		dest = "/notes"
	}
	http.Redirect(w, r, dest, http.StatusFound)
}

// Logout deletes the session and unsets the session cookie
func (u *Users) Logout(w http.ResponseWriter, r *http.Request) {
	key := ""
	if c, err := r.Cookie(middleware.SessionCookieName); err == nil {
		key = c.Value
	}

	if key != "" {
		if err := u.app.DeleteSession(key); err != nil {
			handleError(w, "deleting session", err)
			return
		}
	}

	unsetSessionCookie(w)
	http.Redirect(w, r, "/", http.StatusFound)
}
