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
	"time"

	"github.com/gorilla/schema"
	"github.com/notevault/notevault/pkg/server/app"
	"github.com/notevault/notevault/pkg/server/database"
	"github.com/notevault/notevault/pkg/server/log"
	"github.com/notevault/notevault/pkg/server/middleware"
	"github.com/pkg/errors"
)

// parseRequestData parses the form values of the given request into the
// given destination struct.
func parseRequestData(r *http.Request, dst interface{}) error {
	if err := parseForm(r); err != nil {
		return errors.Wrap(err, "parsing form")
	}

	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	if err := dec.Decode(dst, r.PostForm); err != nil {
		return errors.Wrap(err, "decoding params")
	}

	return nil
}

func parseForm(r *http.Request) error {
	if err := r.ParseForm(); err != nil {
		return errors.Wrap(err, "parsing form")
	}

	return nil
}

// setSessionCookie sets the session cookie on the response
func setSessionCookie(w http.ResponseWriter, key string, expires time.Time) {
	cookie := http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    key,
		Expires:  expires,
		Path:     "/",
		HttpOnly: true,
	}

	http.SetCookie(w, &cookie)
}

// unsetSessionCookie unsets the session cookie on the response
func unsetSessionCookie(w http.ResponseWriter) {
	expires := time.Now().Add(time.Hour * -24 * 30)
	cookie := http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Expires:  expires,
		Path:     "/",
		HttpOnly: true,
	}

	http.SetCookie(w, &cookie)
}

// statusForError maps domain errors to HTTP status codes.
func statusForError(err error) int {
	cause := errors.Cause(err)

	switch {
	case errors.Is(cause, app.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(cause, app.ErrUnauthorized), errors.Is(cause, app.ErrLoginInvalid):
		return http.StatusUnauthorized
	case errors.Is(cause, app.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(cause, app.ErrUnsupportedMediaType):
		return http.StatusUnsupportedMediaType
	case errors.Is(cause, app.ErrUploadTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(cause, app.ErrDuplicateUser),
		errors.Is(cause, app.ErrInvalidUserID),
		errors.Is(cause, app.ErrUserIDRequired),
		errors.Is(cause, app.ErrPasswordRequired),
		errors.Is(cause, app.ErrFilenameRequired):
		return http.StatusBadRequest
	case errors.Is(cause, database.ErrUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// handleError logs the error and responds with the mapped status code.
func handleError(w http.ResponseWriter, msg string, err error) {
	statusCode := statusForError(err)

	if statusCode >= 500 {
		log.ErrorWrap(err, msg)
	} else {
		log.WithFields(log.Fields{
			"statusCode": statusCode,
		}).Info(msg)
	}

	http.Error(w, http.StatusText(statusCode), statusCode)
}

func getReferrer(r *http.Request) string {
	q := r.URL.Query()

	referrer := q.Get("referrer")
	if referrer == "" {
		return ""
	}

	u, err := url.Parse(referrer)
	if err != nil {
		return ""
	}
	// only allow internal redirects
	if u.Host != "" || u.Scheme != "" {
		return ""
	}

	return u.Path
}
