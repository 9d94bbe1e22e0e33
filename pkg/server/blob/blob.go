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

// Package blob stores uploaded image bytes in a filesystem pool. A blob is
// addressed directly by "{uid}-{name}"; no directory scan is ever needed to
// locate one.
package blob

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

var filenameSafePattern = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// SanitizeFilename reduces an uploader-supplied filename to a safe base name.
// Path separators and special characters are stripped so that the result can
// never escape the pool directory. It returns an empty string if nothing
// safe remains.
func SanitizeFilename(name string) string {
	// Drop any directory components, whichever separator the client used
	name = name[strings.LastIndexByte(name, '/')+1:]
	name = name[strings.LastIndexByte(name, '\\')+1:]

	name = filenameSafePattern.ReplaceAllString(name, "_")
	name = strings.Trim(name, "._")

	return name
}

// Pool is a filesystem directory holding image blobs
type Pool struct {
	dir string
}

// NewPool opens the pool at the given directory, creating it if needed
func NewPool(dir string) (*Pool, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.Wrapf(err, "creating blob pool at %s", dir)
	}

	return &Pool{dir: dir}, nil
}

// Dir returns the pool directory
func (p *Pool) Dir() string {
	return p.dir
}

// Path computes the location of a blob from its uid and stored filename
func (p *Pool) Path(uid, name string) string {
	return filepath.Join(p.dir, fmt.Sprintf("%s-%s", uid, name))
}

// Save writes the blob bytes for the given uid and filename
func (p *Pool) Save(uid, name string, data []byte) error {
	if err := os.WriteFile(p.Path(uid, name), data, 0644); err != nil {
		return errors.Wrapf(err, "writing blob %s", uid)
	}

	return nil
}

// Read returns the blob bytes for the given uid and filename
func (p *Pool) Read(uid, name string) ([]byte, error) {
	data, err := os.ReadFile(p.Path(uid, name))
	if err != nil {
		return nil, errors.Wrapf(err, "reading blob %s", uid)
	}

	return data, nil
}

// Exists reports whether the blob is present in the pool
func (p *Pool) Exists(uid, name string) bool {
	_, err := os.Stat(p.Path(uid, name))
	return err == nil
}

// Remove deletes the blob. Removing a blob that is already gone is not an
// error; the metadata row is the authoritative record.
func (p *Pool) Remove(uid, name string) error {
	err := os.Remove(p.Path(uid, name))
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "removing blob %s", uid)
	}

	return nil
}
