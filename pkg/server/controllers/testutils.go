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
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/notevault/notevault/pkg/server/app"
	"github.com/notevault/notevault/pkg/server/database"
	"github.com/notevault/notevault/pkg/server/testutils"
	"github.com/pkg/errors"
)

// MustNewServer is a test utility function to initialize a new server
// with the given app
func MustNewServer(t *testing.T, a *app.App) *httptest.Server {
	server, err := NewServer(a)
	if err != nil {
		t.Fatal(errors.Wrap(err, "initializing router"))
	}

	return server
}

func NewServer(a *app.App) (*httptest.Server, error) {
	ctl := New(a)
	rc := RouteConfig{
		Controllers: ctl,
		WebRoutes:   NewWebRoutes(a, ctl),
	}
	r, err := NewRouter(a, rc)
	if err != nil {
		return nil, errors.Wrap(err, "initializing router")
	}

	server := httptest.NewServer(r)

	return server, nil
}

var csrfTokenPattern = regexp.MustCompile(`name="gorilla.csrf.Token" value="([^"]+)"`)

// getCSRF fetches the given page and returns the embedded token together
// with the cookies that must accompany the following mutation.
func getCSRF(t *testing.T, path string, server *httptest.Server, session *database.Session) (string, []*http.Cookie) {
	req := testutils.MakeReq(server.URL, "GET", path, "")
	if session != nil {
		testutils.AddSessionCookie(req, *session)
	}

	res := testutils.HTTPDo(t, req)
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatal(errors.Wrap(err, "reading token page"))
	}

	match := csrfTokenPattern.FindSubmatch(body)
	if match == nil {
		t.Fatalf("no csrf token found in %s response", path)
	}

	return string(match[1]), res.Cookies()
}

// postWithCSRF performs a form POST with a freshly fetched token. The token
// page must render a form for the same session.
func postWithCSRF(t *testing.T, tokenPath, path, data string, server *httptest.Server, session *database.Session) *http.Response {
	token, cookies := getCSRF(t, tokenPath, server, session)

	req := testutils.MakeReq(server.URL, "POST", path, data)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("X-CSRF-Token", token)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	if session != nil {
		testutils.AddSessionCookie(req, *session)
	}

	return testutils.HTTPDo(t, req)
}
