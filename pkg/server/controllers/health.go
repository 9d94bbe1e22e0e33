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
	"fmt"
	"net/http"

	"github.com/notevault/notevault/pkg/server/app"
	"github.com/notevault/notevault/pkg/server/buildinfo"
)

// NewHealth creates a new Health controller.
func NewHealth(app *app.App) *Health {
	return &Health{
		app: app,
	}
}

// Health is the controller for the health check endpoint
type Health struct {
	app *app.App
}

// Index reports the server version and the database status
func (h *Health) Index(w http.ResponseWriter, r *http.Request) {
	sqlDB, err := h.app.DB.DB()
	if err == nil {
		err = sqlDB.Ping()
	}
	if err != nil {
		handleError(w, "pinging database", err)
		return
	}

	fmt.Fprintf(w, "notevault-server-%s", buildinfo.Version)
}
