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

package database

import (
	"path/filepath"
	"testing"

	"github.com/notevault/notevault/pkg/assert"
)

func TestIsPostgresURL(t *testing.T) {
	testCases := []struct {
		url      string
		expected bool
	}{
		{"postgres://user:pw@localhost:5432/notevault", true},
		{"postgresql://user:pw@localhost/notevault", true},
		{"host=localhost user=notevault dbname=notevault", true},
		{"/var/lib/notevault/server.db", false},
		{"server.db", false},
		{":memory:", false},
	}

	for _, tc := range testCases {
		assert.Equal(t, isPostgresURL(tc.url), tc.expected, "engine detection mismatch for "+tc.url)
	}
}

func TestOpenSQLite(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "data", "server.db")

	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("opening database: %v", err)
	}

	if err := InitSchema(db); err != nil {
		t.Fatalf("initializing schema: %v", err)
	}

	for _, table := range []string{"users", "notes", "images", "sessions"} {
		if !db.Migrator().HasTable(table) {
			t.Errorf("expected table %q to exist", table)
		}
	}
}

func TestMigrateIdempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "server.db")

	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("opening database: %v", err)
	}
	if err := InitSchema(db); err != nil {
		t.Fatalf("initializing schema: %v", err)
	}

	if err := Migrate(db); err != nil {
		t.Fatalf("first migrate: %v", err)
	}
	if err := Migrate(db); err != nil {
		t.Fatalf("second migrate should be a no-op: %v", err)
	}

	var version int
	if err := db.Raw("SELECT COALESCE(MAX(version), 0) FROM schema_migrations").Scan(&version).Error; err != nil {
		t.Fatalf("reading version: %v", err)
	}
	assert.Equal(t, version, 3, "schema version mismatch")
}

func TestValidateMigrationFilename(t *testing.T) {
	valid := []string{"001-initial.sql", "042-add-index.sql"}
	for _, name := range valid {
		if err := validateMigrationFilename(name); err != nil {
			t.Errorf("expected %q to be valid: %v", name, err)
		}
	}

	invalid := []string{"1-short.sql", "001.sql", "001-.sql", "001-no-extension", "abc-def.sql"}
	for _, name := range invalid {
		if err := validateMigrationFilename(name); err == nil {
			t.Errorf("expected %q to be invalid", name)
		}
	}
}
