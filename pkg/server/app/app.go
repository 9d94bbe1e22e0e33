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

// Package app implements the application core: credential, note and image
// stores, session management and the cascade deletion of a user together
// with everything it owns. All mutations take the acting user id explicitly;
// nothing here reads ambient session state.
package app

import (
	"regexp"
	"strings"

	"github.com/notevault/notevault/pkg/clock"
	"github.com/notevault/notevault/pkg/server/blob"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

var (
	// ErrEmptyDB is an error for missing database connection in the app configuration
	ErrEmptyDB = errors.New("No database connection was provided")
	// ErrEmptyClock is an error for missing clock in the app configuration
	ErrEmptyClock = errors.New("No clock was provided")
	// ErrEmptyBlobPool is an error for missing blob pool in the app configuration
	ErrEmptyBlobPool = errors.New("No blob pool was provided")
)

var userIDPattern = regexp.MustCompile(`^[A-Z0-9_-]+$`)

// App is an application context
type App struct {
	DB            *gorm.DB
	Clock         clock.Clock
	Blobs         *blob.Pool
	MaxUploadSize int64
	WebURL        string
	Port          string
	DatabaseURL   string
	SessionSecret string
}

// Validate validates the app configuration
func (a *App) Validate() error {
	if a.DB == nil {
		return ErrEmptyDB
	}
	if a.Clock == nil {
		return ErrEmptyClock
	}
	if a.Blobs == nil {
		return ErrEmptyBlobPool
	}

	return nil
}

// NormalizeUserID converts a user id to its canonical uppercase form. All
// storage and comparison happens on the normalized form, whatever case the
// client supplied.
func NormalizeUserID(userID string) string {
	return strings.ToUpper(strings.TrimSpace(userID))
}

// ValidUserID reports whether the normalized user id is well formed
func ValidUserID(userID string) bool {
	return userIDPattern.MatchString(userID)
}
