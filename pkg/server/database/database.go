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

// Package database implements persistence for users, notes, image metadata
// and sessions on top of a relational store. The engine is selected once at
// startup from the database URL; everything above this package is engine
// agnostic.
package database

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// ErrUnavailable indicates a connection-level store failure
var ErrUnavailable = errors.New("store unavailable")

// isPostgresURL reports whether the given database URL addresses a
// PostgreSQL server rather than a SQLite file.
func isPostgresURL(databaseURL string) bool {
	return strings.HasPrefix(databaseURL, "postgres://") ||
		strings.HasPrefix(databaseURL, "postgresql://") ||
		strings.Contains(databaseURL, "host=")
}

// Open initializes the database connection. The URL either addresses a
// PostgreSQL server or names a SQLite file path.
func Open(databaseURL string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	if isPostgresURL(databaseURL) {
		dialector = postgres.Open(databaseURL)
	} else {
		dir := filepath.Dir(databaseURL)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, errors.Wrapf(err, "creating database directory at %s", dir)
		}

		dialector = sqlite.Open(databaseURL)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, errors.Wrapf(ErrUnavailable, "opening database connection: %v", err)
	}

	return db, nil
}

// InitSchema migrates the database schema to reflect the latest model definition
func InitSchema(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&User{},
		&Note{},
		&Image{},
		&Session{},
	); err != nil {
		return errors.Wrap(err, "auto-migrating schema")
	}

	return nil
}
