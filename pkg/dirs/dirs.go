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

// Package dirs resolves the standard directories for user-specific data,
// following the XDG base directory specification.
package dirs

import (
	"os"
	"os/user"
	"path/filepath"

	"github.com/pkg/errors"
)

var (
	// Home is the home directory of the current user
	Home string
	// ConfigHome is the directory for user-specific configuration
	ConfigHome string
	// DataHome is the directory for user-specific data files
	DataHome string
)

func init() {
	Reload()
}

// Reload recomputes the directory paths from the environment. Tests use it
// after changing HOME or the XDG variables.
func Reload() {
	home := getHomeDir()

	Home = home
	ConfigHome = readPath("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	DataHome = readPath("XDG_DATA_HOME", filepath.Join(home, ".local", "share"))
}

func getHomeDir() string {
	if dir := os.Getenv("HOME"); dir != "" {
		return dir
	}

	usr, err := user.Current()
	if err != nil {
		panic(errors.Wrap(err, "getting home dir"))
	}

	return usr.HomeDir
}

func readPath(envName, defaultPath string) string {
	if dir := os.Getenv(envName); dir != "" {
		return dir
	}

	return defaultPath
}
