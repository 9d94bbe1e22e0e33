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
	"fmt"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/notevault/notevault/pkg/server/buildinfo"
	"github.com/notevault/notevault/pkg/server/config"
	"github.com/notevault/notevault/pkg/server/controllers"
	"github.com/notevault/notevault/pkg/server/log"
	"github.com/pkg/errors"
)

func startCmd(args []string) {
	fs := setupFlagSet("start", "notevault-server start")

	port := fs.String("port", "", "Server port (env: PORT, default: 3001)")
	webURL := fs.String("webUrl", "", "Full URL to server without trailing slash (env: WEB_URL, default: http://localhost:3001)")
	databaseURL := fs.String("databaseUrl", "", "SQLite file path or postgres:// URL (env: DATABASE_URL, default: $XDG_DATA_HOME/notevault/server.db)")
	uploadDir := fs.String("uploadDir", "", "Directory for uploaded image blobs (env: UPLOAD_DIR, default: $XDG_DATA_HOME/notevault/image_pool)")
	maxUploadSize := fs.Int64("maxUploadSize", 0, "Upload size limit in bytes (env: MAX_UPLOAD_SIZE, default: 16777216)")
	logLevel := fs.String("logLevel", "", "Log level: debug, info, warn, or error (env: LOG_LEVEL, default: info)")

	fs.Parse(args)

	// .env is optional and only used for local development
	godotenv.Load()

	cfg, err := config.New(config.Params{
		Port:          *port,
		WebURL:        *webURL,
		DatabaseURL:   *databaseURL,
		UploadDir:     *uploadDir,
		MaxUploadSize: *maxUploadSize,
		LogLevel:      *logLevel,
	})
	if err != nil {
		fmt.Printf("Error: %s\n\n", err)
		fs.Usage()
		os.Exit(1)
	}

	log.SetLevel(cfg.LogLevel)

	app, err := initApp(cfg)
	if err != nil {
		log.ErrorWrap(err, "initializing app")
		os.Exit(1)
	}
	defer func() {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}()

	ctl := controllers.New(&app)
	rc := controllers.RouteConfig{
		Controllers: ctl,
		WebRoutes:   controllers.NewWebRoutes(&app, ctl),
	}

	r, err := controllers.NewRouter(&app, rc)
	if err != nil {
		panic(errors.Wrap(err, "initializing router"))
	}

	log.WithFields(log.Fields{
		"version": buildinfo.Version,
		"port":    cfg.Port,
	}).Info("Notevault server starting")

	if err := http.ListenAndServe(fmt.Sprintf(":%s", cfg.Port), r); err != nil {
		log.ErrorWrap(err, "server failed")
		os.Exit(1)
	}
}
