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

package config

import (
	"net/url"
	"os"
	"path/filepath"
	"strconv"

	"github.com/notevault/notevault/pkg/dirs"
	"github.com/pkg/errors"
)

const (
	// AppEnvProduction represents an app environment for production.
	AppEnvProduction string = "PRODUCTION"
	// DefaultDataDir is the default directory name for notevault data
	DefaultDataDir = "notevault"
	// DefaultDBFilename is the default database filename
	DefaultDBFilename = "server.db"
	// DefaultUploadDirname is the default directory name for the blob pool
	DefaultUploadDirname = "image_pool"
	// DefaultMaxUploadSize is the default upload size limit in bytes
	DefaultMaxUploadSize = int64(16 << 20)
)

var (
	// ErrDBMissingURL is an error for an incomplete configuration missing the database URL
	ErrDBMissingURL = errors.New("Database URL is empty")
	// ErrWebURLInvalid is an error for an incomplete configuration with invalid web url
	ErrWebURLInvalid = errors.New("Invalid WebURL")
	// ErrPortInvalid is an error for an incomplete configuration with invalid port
	ErrPortInvalid = errors.New("Invalid Port")
	// ErrUploadDirMissing is an error for a missing upload directory
	ErrUploadDirMissing = errors.New("Upload directory is empty")
	// ErrMaxUploadSizeInvalid is an error for a non-positive upload size limit
	ErrMaxUploadSizeInvalid = errors.New("Invalid MaxUploadSize")
)

// getOrEnv returns value if non-empty, otherwise env var, otherwise default
func getOrEnv(value, envKey, defaultVal string) string {
	if value != "" {
		return value
	}
	if env := os.Getenv(envKey); env != "" {
		return env
	}
	return defaultVal
}

func getOrEnvInt64(value int64, envKey string, defaultVal int64) (int64, error) {
	if value != 0 {
		return value, nil
	}
	if env := os.Getenv(envKey); env != "" {
		parsed, err := strconv.ParseInt(env, 10, 64)
		if err != nil {
			return 0, errors.Wrapf(err, "parsing %s", envKey)
		}
		return parsed, nil
	}
	return defaultVal, nil
}

// Config is an application configuration
type Config struct {
	AppEnv        string
	WebURL        string
	Port          string
	DatabaseURL   string
	UploadDir     string
	MaxUploadSize int64
	SessionSecret string
	LogLevel      string
}

// Params are the configuration parameters for creating a new Config
type Params struct {
	AppEnv        string
	Port          string
	WebURL        string
	DatabaseURL   string
	UploadDir     string
	MaxUploadSize int64
	SessionSecret string
	LogLevel      string
}

// New constructs and returns a new validated config.
// Empty params fall back to environment variables and defaults.
func New(p Params) (Config, error) {
	defaultDBPath := filepath.Join(dirs.DataHome, DefaultDataDir, DefaultDBFilename)
	defaultUploadDir := filepath.Join(dirs.DataHome, DefaultDataDir, DefaultUploadDirname)

	maxUploadSize, err := getOrEnvInt64(p.MaxUploadSize, "MAX_UPLOAD_SIZE", DefaultMaxUploadSize)
	if err != nil {
		return Config{}, err
	}

	c := Config{
		AppEnv:        getOrEnv(p.AppEnv, "APP_ENV", AppEnvProduction),
		Port:          getOrEnv(p.Port, "PORT", "3001"),
		WebURL:        getOrEnv(p.WebURL, "WEB_URL", "http://localhost:3001"),
		DatabaseURL:   getOrEnv(p.DatabaseURL, "DATABASE_URL", defaultDBPath),
		UploadDir:     getOrEnv(p.UploadDir, "UPLOAD_DIR", defaultUploadDir),
		MaxUploadSize: maxUploadSize,
		SessionSecret: getOrEnv(p.SessionSecret, "SESSION_SECRET", "development-secret-32-bytes-long"),
		LogLevel:      getOrEnv(p.LogLevel, "LOG_LEVEL", "info"),
	}

	if err := validate(c); err != nil {
		return Config{}, err
	}

	return c, nil
}

// IsProd checks if the app environment is configured to be production.
func (c Config) IsProd() bool {
	return c.AppEnv == AppEnvProduction
}

func validate(c Config) error {
	if _, err := url.ParseRequestURI(c.WebURL); err != nil {
		return errors.Wrapf(ErrWebURLInvalid, "'%s'", c.WebURL)
	}
	if c.Port == "" {
		return ErrPortInvalid
	}
	if c.DatabaseURL == "" {
		return ErrDBMissingURL
	}
	if c.UploadDir == "" {
		return ErrUploadDirMissing
	}
	if c.MaxUploadSize <= 0 {
		return ErrMaxUploadSizeInvalid
	}

	return nil
}
