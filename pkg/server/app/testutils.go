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

package app

import (
	"os"

	"github.com/notevault/notevault/pkg/clock"
	"github.com/notevault/notevault/pkg/server/blob"
	"github.com/pkg/errors"
)

// NewTest returns an app for a testing environment. The blob pool lives in
// a fresh temporary directory; the caller supplies the DB.
func NewTest() App {
	dir, err := os.MkdirTemp("", "notevault-pool-")
	if err != nil {
		panic(errors.Wrap(err, "creating temp blob dir"))
	}

	pool, err := blob.NewPool(dir)
	if err != nil {
		panic(errors.Wrap(err, "creating blob pool"))
	}

	return App{
		Clock:         clock.NewMock(),
		Blobs:         pool,
		MaxUploadSize: 1 << 20,
		WebURL:        "http://127.0.0.1",
		Port:          "3000",
		DatabaseURL:   ":memory:",
		SessionSecret: "test-secret-test-secret-test-sec",
	}
}
