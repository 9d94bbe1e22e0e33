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
	"errors"

	"github.com/notevault/notevault/pkg/server/database"
	"github.com/notevault/notevault/pkg/server/ids"
	pkgErrors "github.com/pkg/errors"
	"gorm.io/gorm"
)

// WriteNote creates a note for the given owner and returns it. The note id
// is derived from the owner and the creation time; an id collision surfaces
// as an insert error from the primary key constraint.
func (a *App) WriteNote(ownerID, body string) (database.Note, error) {
	owner := NormalizeUserID(ownerID)
	if owner == "" {
		return database.Note{}, ErrUserIDRequired
	}

	ts := a.Clock.Now().UTC()
	note := database.Note{
		NoteID:    ids.NoteID(owner, ts),
		Owner:     owner,
		Timestamp: ts,
		Body:      body,
	}

	if err := a.DB.Create(&note).Error; err != nil {
		return database.Note{}, pkgErrors.Wrap(err, "inserting note")
	}

	return note, nil
}

// GetNotes returns all notes for the given owner, oldest first
func (a *App) GetNotes(ownerID string) ([]database.Note, error) {
	notes := []database.Note{}

	err := a.DB.
		Where("owner = ?", NormalizeUserID(ownerID)).
		Order("timestamp ASC, note_id ASC").
		Find(&notes).Error
	if err != nil {
		return nil, pkgErrors.Wrap(err, "finding notes")
	}

	return notes, nil
}

// NoteOwner resolves the owning user id for the given note id
func (a *App) NoteOwner(noteID string) (string, error) {
	var note database.Note
	err := a.DB.Select("owner").Where("note_id = ?", noteID).First(&note).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrNotFound
	} else if err != nil {
		return "", pkgErrors.Wrap(err, "finding note owner")
	}

	return note.Owner, nil
}

// DeleteNote removes the note with the given id. It performs no
// authorization check; callers gate the deletion first.
func (a *App) DeleteNote(noteID string) error {
	res := a.DB.Where("note_id = ?", noteID).Delete(&database.Note{})
	if res.Error != nil {
		return pkgErrors.Wrap(res.Error, "deleting note")
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
