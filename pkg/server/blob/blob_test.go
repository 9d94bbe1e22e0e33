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

package blob

import (
	"path/filepath"
	"testing"

	"github.com/notevault/notevault/pkg/assert"
)

func TestSanitizeFilename(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"photo.png", "photo.png"},
		{"my photo.png", "my_photo.png"},
		{"../../etc/passwd", "passwd"},
		{"..\\..\\boot.ini", "boot.ini"},
		{"/absolute/path/cat.gif", "cat.gif"},
		{".hidden", "hidden"},
		{"..", ""},
		{"héllo wörld.jpg", "h_llo_w_rld.jpg"},
		{"normal-name_1.jpeg", "normal-name_1.jpeg"},
	}

	for _, tc := range testCases {
		assert.Equal(t, SanitizeFilename(tc.input), tc.expected, "sanitized name mismatch for "+tc.input)
	}
}

func TestPoolSaveReadRemove(t *testing.T) {
	pool, err := NewPool(filepath.Join(t.TempDir(), "image_pool"))
	if err != nil {
		t.Fatalf("creating pool: %v", err)
	}

	uid := "deadbeef"
	if err := pool.Save(uid, "photo.png", []byte("bytes")); err != nil {
		t.Fatalf("saving blob: %v", err)
	}

	assert.Equal(t, pool.Exists(uid, "photo.png"), true, "blob should exist after save")
	assert.Equal(t, pool.Path(uid, "photo.png"), filepath.Join(pool.Dir(), "deadbeef-photo.png"), "blob path mismatch")

	data, err := pool.Read(uid, "photo.png")
	if err != nil {
		t.Fatalf("reading blob: %v", err)
	}
	assert.Equal(t, string(data), "bytes", "blob content mismatch")

	if err := pool.Remove(uid, "photo.png"); err != nil {
		t.Fatalf("removing blob: %v", err)
	}
	assert.Equal(t, pool.Exists(uid, "photo.png"), false, "blob should be gone after remove")
}

func TestPoolRemoveMissing(t *testing.T) {
	pool, err := NewPool(t.TempDir())
	if err != nil {
		t.Fatalf("creating pool: %v", err)
	}

	if err := pool.Remove("nosuchuid", "none.png"); err != nil {
		t.Errorf("removing a missing blob should not error: %v", err)
	}
}
