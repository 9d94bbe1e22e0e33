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

package dirs

import (
	"path/filepath"
	"testing"

	"github.com/notevault/notevault/pkg/assert"
)

func TestReloadDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("XDG_DATA_HOME", "")

	Reload()

	assert.Equal(t, Home, home, "Home mismatch")
	assert.Equal(t, ConfigHome, filepath.Join(home, ".config"), "ConfigHome mismatch")
	assert.Equal(t, DataHome, filepath.Join(home, ".local", "share"), "DataHome mismatch")
}

func TestReloadXDGOverride(t *testing.T) {
	home := t.TempDir()
	data := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_DATA_HOME", data)

	Reload()

	assert.Equal(t, DataHome, data, "DataHome should honor XDG_DATA_HOME")
}
