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
	"time"
)

// User is a model for a user. The id is always stored in uppercase form;
// normalization happens at the application boundary.
type User struct {
	ID           string    `json:"id" gorm:"primaryKey;type:text"`
	PasswordHash string    `json:"-" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// Note is a model for a note. The note id is derived from the owner id and
// the creation time; the owner never changes after creation.
type Note struct {
	NoteID    string    `json:"note_id" gorm:"primaryKey;type:text"`
	Owner     string    `json:"owner" gorm:"index;type:text;not null"`
	Timestamp time.Time `json:"timestamp" gorm:"not null"`
	Body      string    `json:"body"`
}

// Image is the metadata for an uploaded image. The binary bytes live in the
// blob pool on the filesystem under the name "{uid}-{name}".
type Image struct {
	UID       string    `json:"uid" gorm:"primaryKey;type:text"`
	Owner     string    `json:"owner" gorm:"index;type:text;not null"`
	Name      string    `json:"name" gorm:"not null"`
	Timestamp time.Time `json:"timestamp" gorm:"not null"`
}

// Session represents a user session
type Session struct {
	ID         int    `gorm:"primaryKey"`
	UserID     string `gorm:"index;type:text"`
	Key        string `gorm:"index"`
	LastUsedAt time.Time
	ExpiresAt  time.Time
}
