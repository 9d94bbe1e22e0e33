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
	"io"
	"mime"
	"net/http"
	"path/filepath"

	"github.com/gorilla/mux"
	"github.com/notevault/notevault/pkg/server/app"
	"github.com/notevault/notevault/pkg/server/context"
	"github.com/notevault/notevault/pkg/server/middleware"
	"github.com/notevault/notevault/pkg/server/operations"
	"github.com/pkg/errors"
)

// NewImages creates a new Images controller.
func NewImages(app *app.App) *Images {
	return &Images{
		app: app,
	}
}

// Images is the controller for uploaded images
type Images struct {
	app *app.App
}

// Create handles a multipart image upload for the acting user
func (i *Images) Create(w http.ResponseWriter, r *http.Request) {
	user := context.User(r.Context())
	if user == nil {
		middleware.RespondUnauthorized(w)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, i.app.MaxUploadSize)
	if err := r.ParseMultipartForm(i.app.MaxUploadSize); err != nil {
		handleError(w, "parsing multipart form", errors.Wrap(app.ErrUploadTooLarge, err.Error()))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		handleError(w, "reading upload", errors.Wrap(app.ErrFilenameRequired, err.Error()))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		handleError(w, "reading upload body", err)
		return
	}

	if _, err := i.app.UploadImage(user.ID, header.Filename, data); err != nil {
		handleError(w, "uploading image", err)
		return
	}

	http.Redirect(w, r, "/notes", http.StatusFound)
}

// Show serves the image blob if the acting user may access it
func (i *Images) Show(w http.ResponseWriter, r *http.Request) {
	user := context.User(r.Context())
	if user == nil {
		middleware.RespondUnauthorized(w)
		return
	}

	vars := mux.Vars(r)
	uid := vars["uid"]

	if !i.app.CanModifyImage(user.ID, uid) {
		middleware.RespondForbidden(w)
		return
	}

	image, data, err := i.app.ReadImage(uid)
	if err != nil {
		handleError(w, "reading image", err)
		return
	}

	contentType := mime.TypeByExtension(filepath.Ext(image.Name))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// Delete deletes an image if the acting user may modify it
func (i *Images) Delete(w http.ResponseWriter, r *http.Request) {
	user := context.User(r.Context())
	if user == nil {
		middleware.RespondUnauthorized(w)
		return
	}

	vars := mux.Vars(r)
	uid := vars["uid"]

	if err := operations.DeleteImage(i.app, user.ID, uid); err != nil {
		handleError(w, "deleting image", err)
		return
	}

	http.Redirect(w, r, "/notes", http.StatusFound)
}
