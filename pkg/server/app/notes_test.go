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
	"testing"
	"time"

	"github.com/notevault/notevault/pkg/assert"
	"github.com/notevault/notevault/pkg/clock"
	"github.com/notevault/notevault/pkg/server/testutils"
	"github.com/pkg/errors"
)

func TestWriteNote(t *testing.T) {
	db := testutils.InitMemoryDB(t)
	a := NewTest()
	a.DB = db

	user := testutils.SetupUserData(db, "alice", "pass1234")

	note, err := a.WriteNote("alice", "hello world")
	if err != nil {
		t.Fatal(errors.Wrap(err, "writing note"))
	}

	assert.Equal(t, note.Owner, user.ID, "owner should be stored uppercase")
	assert.Equal(t, note.Body, "hello world", "body mismatch")
	assert.Equal(t, len(note.NoteID), 64, "note id should be a sha-256 hex digest")

	notes, err := a.GetNotes("ALICE")
	if err != nil {
		t.Fatal(errors.Wrap(err, "getting notes"))
	}
	assert.Equal(t, len(notes), 1, "note count mismatch")
	assert.Equal(t, notes[0].NoteID, note.NoteID, "note id mismatch")
}

func TestGetNotes_Ordering(t *testing.T) {
	db := testutils.InitMemoryDB(t)
	a := NewTest()
	a.DB = db

	testutils.SetupUserData(db, "alice", "pass1234")
	testutils.SetupUserData(db, "bob", "pass1234")

	mock := a.Clock.(*clock.Mock)

	first, err := a.WriteNote("alice", "first")
	if err != nil {
		t.Fatal(errors.Wrap(err, "writing first note"))
	}

	mock.Advance(time.Minute)
	if _, err := a.WriteNote("bob", "not mine"); err != nil {
		t.Fatal(errors.Wrap(err, "writing other note"))
	}

	mock.Advance(time.Minute)
	second, err := a.WriteNote("alice", "second")
	if err != nil {
		t.Fatal(errors.Wrap(err, "writing second note"))
	}

	notes, err := a.GetNotes("alice")
	if err != nil {
		t.Fatal(errors.Wrap(err, "getting notes"))
	}

	assert.Equal(t, len(notes), 2, "note count mismatch")
	assert.Equal(t, notes[0].NoteID, first.NoteID, "oldest note should come first")
	assert.Equal(t, notes[1].NoteID, second.NoteID, "newest note should come last")
}

func TestGetNotes_Empty(t *testing.T) {
	db := testutils.InitMemoryDB(t)
	a := NewTest()
	a.DB = db

	notes, err := a.GetNotes("nobody")
	if err != nil {
		t.Fatal(errors.Wrap(err, "getting notes"))
	}

	assert.Equal(t, len(notes), 0, "expected no notes")
}

func TestDeleteNote(t *testing.T) {
	db := testutils.InitMemoryDB(t)
	a := NewTest()
	a.DB = db

	testutils.SetupUserData(db, "alice", "pass1234")

	note, err := a.WriteNote("alice", "ephemeral")
	if err != nil {
		t.Fatal(errors.Wrap(err, "writing note"))
	}

	if err := a.DeleteNote(note.NoteID); err != nil {
		t.Fatal(errors.Wrap(err, "deleting note"))
	}

	_, err = a.NoteOwner(note.NoteID)
	assert.Equal(t, errors.Cause(err), ErrNotFound, "deleted note should be gone")

	err = a.DeleteNote(note.NoteID)
	assert.Equal(t, errors.Cause(err), ErrNotFound, "deleting a missing note error mismatch")
}

func TestCanModifyNote(t *testing.T) {
	db := testutils.InitMemoryDB(t)
	a := NewTest()
	a.DB = db

	testutils.SetupUserData(db, "alice", "pass1234")

	note, err := a.WriteNote("alice", "mine")
	if err != nil {
		t.Fatal(errors.Wrap(err, "writing note"))
	}

	assert.Equal(t, a.CanModifyNote("alice", note.NoteID), true, "owner should pass the gate")
	assert.Equal(t, a.CanModifyNote("ALICE", note.NoteID), true, "gate should normalize the acting user id")
	assert.Equal(t, a.CanModifyNote("bob", note.NoteID), false, "non-owner should be denied")
	assert.Equal(t, a.CanModifyNote("alice", "no-such-note"), false, "missing note should be denied, not crash")
}
