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

	"github.com/gorilla/mux"
	"github.com/notevault/notevault/pkg/server/app"
	"github.com/notevault/notevault/pkg/server/context"
	"github.com/notevault/notevault/pkg/server/middleware"
	"github.com/notevault/notevault/pkg/server/operations"
	"github.com/notevault/notevault/pkg/server/views"
)

// NewAdmin creates a new Admin controller.
func NewAdmin(app *app.App) *Admin {
	return &Admin{
		IndexView: views.NewView("admin"),
		app:       app,
	}
}

// Admin is the controller for the user roster
type Admin struct {
	IndexView *views.View
	app       *app.App
}

// Index renders the user roster
func (a *Admin) Index(w http.ResponseWriter, r *http.Request) {
	userIDs, err := a.app.ListUserIDs()
	if err != nil {
		handleError(w, "listing users", err)
		return
	}

	a.IndexView.Render(w, r, &views.Data{
		Title: "Admin",
		Yield: map[string]interface{}{
			"UserIDs": userIDs,
		},
	}, http.StatusOK)
}

type addUserForm struct {
	UserID   string `schema:"user_id"`
	Password string `schema:"password"`
}

// AddUser creates a new user on the roster
func (a *Admin) AddUser(w http.ResponseWriter, r *http.Request) {
	user := context.User(r.Context())
	if user == nil {
		middleware.RespondUnauthorized(w)
		return
	}

	var form addUserForm
	if err := parseRequestData(r, &form); err != nil {
		handleError(w, "parsing user payload", err)
		return
	}

	if _, err := operations.AddUser(a.app, user.ID, form.UserID, form.Password); err != nil {
		handleError(w, "adding user", err)
		return
	}

	http.Redirect(w, r, "/admin", http.StatusFound)
}

// DeleteUser removes a user and everything the user owns
func (a *Admin) DeleteUser(w http.ResponseWriter, r *http.Request) {
	user := context.User(r.Context())
	if user == nil {
		middleware.RespondUnauthorized(w)
		return
	}

	vars := mux.Vars(r)
	targetUserID := vars["userID"]

	if _, err := operations.DeleteUser(a.app, user.ID, targetUserID); err != nil {
		handleError(w, "deleting user", err)
		return
	}

	http.Redirect(w, r, "/admin", http.StatusFound)
}
