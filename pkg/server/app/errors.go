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

import "github.com/pkg/errors"

var (
	// ErrNotFound is an error for a nonexistent resource
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized is an error for an acting user that does not own the resource
	ErrUnauthorized = errors.New("not authorized")
	// ErrForbidden is an error for a structurally disallowed operation
	ErrForbidden = errors.New("forbidden")
	// ErrDuplicateUser is an error for creating a user with an id that already exists
	ErrDuplicateUser = errors.New("user id already exists")
	// ErrInvalidUserID is an error for a malformed user id
	ErrInvalidUserID = errors.New("user id may only contain letters, digits, '_' and '-'")
	// ErrUserIDRequired is an error for an empty user id
	ErrUserIDRequired = errors.New("user id is required")
	// ErrPasswordRequired is an error for an empty password
	ErrPasswordRequired = errors.New("password is required")
	// ErrLoginInvalid is an error for invalid credentials
	ErrLoginInvalid = errors.New("wrong user id and password combination")
	// ErrUnsupportedMediaType is an error for an upload with a disallowed extension
	ErrUnsupportedMediaType = errors.New("unsupported file type")
	// ErrUploadTooLarge is an error for an upload exceeding the configured size limit
	ErrUploadTooLarge = errors.New("upload exceeds the maximum size")
	// ErrFilenameRequired is an error for an upload without a usable filename
	ErrFilenameRequired = errors.New("filename is required")
	// ErrDeletionFailed is an error for a cascade deletion that could not complete
	ErrDeletionFailed = errors.New("deletion could not complete")
)
