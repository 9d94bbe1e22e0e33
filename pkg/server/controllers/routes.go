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
	"strings"

	"github.com/gorilla/csrf"
	"github.com/gorilla/mux"
	"github.com/notevault/notevault/pkg/server/app"
	"github.com/notevault/notevault/pkg/server/middleware"
)

// Route represents a single route
type Route struct {
	Method      string
	Pattern     string
	HandlerFunc http.HandlerFunc
}

// RouteConfig is the configuration for routes
type RouteConfig struct {
	Controllers *Controllers
	WebRoutes   []Route
}

// NewWebRoutes returns the routes for the web application
func NewWebRoutes(a *app.App, c *Controllers) []Route {
	redirectGuests := &middleware.AuthParams{RedirectGuestsToLogin: true}

	return []Route{
		{"GET", "/", middleware.GuestOnly(a.DB, c.Users.Login)},
		{"POST", "/login", c.Users.NewLogin},
		{"POST", "/logout", c.Users.Logout},

		{"GET", "/notes", middleware.Auth(a.DB, c.Notes.Index, redirectGuests)},
		{"POST", "/notes", middleware.Auth(a.DB, c.Notes.Create, nil)},
		{"POST", "/notes/{noteID}/delete", middleware.Auth(a.DB, c.Notes.Delete, nil)},

		{"POST", "/images", middleware.Auth(a.DB, c.Images.Create, nil)},
		{"GET", "/images/{uid}", middleware.Auth(a.DB, c.Images.Show, redirectGuests)},
		{"POST", "/images/{uid}/delete", middleware.Auth(a.DB, c.Images.Delete, nil)},

		{"GET", "/admin", middleware.AdminOnly(a.DB, c.Admin.Index, redirectGuests)},
		{"POST", "/admin/users", middleware.AdminOnly(a.DB, c.Admin.AddUser, nil)},
		{"POST", "/admin/users/{userID}/delete", middleware.AdminOnly(a.DB, c.Admin.DeleteUser, nil)},

		{"GET", "/health", c.Health.Index},
	}
}

func registerRoutes(router *mux.Router, wrapper middleware.Middleware, routes []Route) {
	for _, route := range routes {
		handler := wrapper(route.HandlerFunc)
		router.Handle(route.Pattern, handler).Methods(route.Method)
	}
}

// NewRouter creates and returns a new router
func NewRouter(a *app.App, rc RouteConfig) (http.Handler, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}

	router := mux.NewRouter().StrictSlash(true)

	registerRoutes(router, middleware.Global, rc.WebRoutes)

	router.PathPrefix("/").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
	})

	csrfMiddleware := csrf.Protect(
		[]byte(a.SessionSecret),
		csrf.Path("/"),
		csrf.Secure(strings.HasPrefix(a.WebURL, "https://")),
	)

	return csrfMiddleware(router), nil
}
