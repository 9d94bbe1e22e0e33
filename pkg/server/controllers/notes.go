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

// NewNotes creates a new Notes controller.
func NewNotes(app *app.App) *Notes {
	return &Notes{
		IndexView: views.NewView("notes"),
		app:       app,
	}
}

// Notes is the controller for the private notes page
type Notes struct {
	IndexView *views.View
	app       *app.App
}

// Index renders the acting user's notes and images
func (n *Notes) Index(w http.ResponseWriter, r *http.Request) {
	user := context.User(r.Context())
	if user == nil {
		middleware.RespondUnauthorized(w)
		return
	}

	notes, err := n.app.GetNotes(user.ID)
	if err != nil {
		handleError(w, "getting notes", err)
		return
	}

	images, err := n.app.ListImages(user.ID)
	if err != nil {
		handleError(w, "listing images", err)
		return
	}

	n.IndexView.Render(w, r, &views.Data{
		Title: "My notes",
		Yield: map[string]interface{}{
			"Notes":  notes,
			"Images": images,
		},
	}, http.StatusOK)
}

type createNoteForm struct {
	Body string `schema:"body"`
}

// Create writes a new note owned by the acting user
func (n *Notes) Create(w http.ResponseWriter, r *http.Request) {
	user := context.User(r.Context())
	if user == nil {
		middleware.RespondUnauthorized(w)
		return
	}

	var form createNoteForm
	if err := parseRequestData(r, &form); err != nil {
		handleError(w, "parsing note payload", err)
		return
	}

	if _, err := n.app.WriteNote(user.ID, form.Body); err != nil {
		handleError(w, "writing note", err)
		return
	}

	http.Redirect(w, r, "/notes", http.StatusFound)
}

// Delete deletes a note if the acting user may modify it
func (n *Notes) Delete(w http.ResponseWriter, r *http.Request) {
	user := context.User(r.Context())
	if user == nil {
		middleware.RespondUnauthorized(w)
		return
	}

	vars := mux.Vars(r)
	noteID := vars["noteID"]

	if err := operations.DeleteNote(n.app, user.ID, noteID); err != nil {
		handleError(w, "deleting note", err)
		return
	}

	http.Redirect(w, r, "/notes", http.StatusFound)
}
