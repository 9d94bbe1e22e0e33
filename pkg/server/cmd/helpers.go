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

package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/notevault/notevault/pkg/clock"
	"github.com/notevault/notevault/pkg/server/app"
	"github.com/notevault/notevault/pkg/server/blob"
	"github.com/notevault/notevault/pkg/server/config"
	"github.com/notevault/notevault/pkg/server/database"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

func initDB(databaseURL string) (*gorm.DB, error) {
	db, err := database.Open(databaseURL)
	if err != nil {
		return nil, errors.Wrap(err, "opening database")
	}
	if err := database.InitSchema(db); err != nil {
		return nil, errors.Wrap(err, "initializing schema")
	}
	if err := database.Migrate(db); err != nil {
		return nil, errors.Wrap(err, "running migrations")
	}

	return db, nil
}

func initApp(cfg config.Config) (app.App, error) {
	db, err := initDB(cfg.DatabaseURL)
	if err != nil {
		return app.App{}, err
	}

	blobs, err := blob.NewPool(cfg.UploadDir)
	if err != nil {
		return app.App{}, errors.Wrap(err, "initializing blob pool")
	}

	return app.App{
		DB:            db,
		Clock:         clock.New(),
		Blobs:         blobs,
		MaxUploadSize: cfg.MaxUploadSize,
		WebURL:        cfg.WebURL,
		Port:          cfg.Port,
		DatabaseURL:   cfg.DatabaseURL,
		SessionSecret: cfg.SessionSecret,
	}, nil
}

// printFlags prints flags with -- prefix for consistency with CLI
func printFlags(fs *flag.FlagSet) {
	fs.VisitAll(func(f *flag.Flag) {
		fmt.Printf("  --%s", f.Name)

		// Print type hint for non-boolean flags
		name, usage := flag.UnquoteUsage(f)
		if name != "" {
			fmt.Printf(" %s", name)
		}
		fmt.Println()

		// Print usage description with indentation
		if usage != "" {
			fmt.Printf("    \t%s", usage)
			if f.DefValue != "" && f.DefValue != "false" {
				fmt.Printf(" (default: %s)", f.DefValue)
			}
			fmt.Println()
		}
	})
}

// setupFlagSet creates a FlagSet with standard usage format
func setupFlagSet(name, usageCmd string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	fs.Usage = func() {
		fmt.Printf(`Usage:
  %s [flags]

Flags:
`, usageCmd)
		printFlags(fs)
	}
	return fs
}

// requireString validates that a required string flag is not empty
func requireString(fs *flag.FlagSet, value, fieldName string) {
	if value == "" {
		fmt.Printf("Error: %s is required\n", fieldName)
		fs.Usage()
		os.Exit(1)
	}
}

// setupAppWithDB creates config, initializes app, and returns cleanup function
func setupAppWithDB(fs *flag.FlagSet, databaseURL string) (*app.App, func()) {
	cfg, err := config.New(config.Params{
		DatabaseURL: databaseURL,
	})
	if err != nil {
		fmt.Printf("Error: %s\n\n", err)
		fs.Usage()
		os.Exit(1)
	}

	a, err := initApp(cfg)
	if err != nil {
		fmt.Printf("Error: %s\n", err)
		os.Exit(1)
	}

	cleanup := func() {
		sqlDB, err := a.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	return &a, cleanup
}
